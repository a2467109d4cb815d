package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/filex"
)

const fileExt = ".json"

// FileStorage keeps one file per key inside a directory. Writes go
// through a temp file + rename, so a reader never sees a partial value.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the directory if needed and returns the backend.
func NewFileStorage(dir string) (*FileStorage, error) {
	if _, err := filex.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}
	return &FileStorage{dir: dir}, nil
}

// Dir returns the backing directory (watched by the change watcher).
func (s *FileStorage) Dir() string { return s.dir }

// path maps a key to a file name. Keys are escaped so separators or other
// unsafe characters cannot leave the directory.
func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+fileExt)
}

func (s *FileStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", common.ErrorStorage, key, err)
	}
	return data, nil
}

func (s *FileStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := filex.WriteAtomic(s.path(key), value, 0o660); err != nil {
		return fmt.Errorf("%w: write %s: %w", common.ErrorStorage, key, err)
	}
	return nil
}

func (s *FileStorage) SetMany(ctx context.Context, values map[string][]byte) error {
	for key, value := range values {
		if err := s.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: delete %s: %w", common.ErrorStorage, key, err)
	}
	return nil
}

func (s *FileStorage) List(ctx context.Context) (map[string][]byte, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", common.ErrorStorage, s.dir, err)
	}

	result := make(map[string][]byte)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != fileExt {
			continue
		}
		name := e.Name()[:len(e.Name())-len(fileExt)]
		key, err := url.PathUnescape(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", common.ErrorStorage, key, err)
		}
		result[key] = data
	}
	return result, nil
}

func (s *FileStorage) Close() error { return nil }
