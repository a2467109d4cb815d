package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFile(t *testing.T) *FileStorage {
	t.Helper()
	s, err := NewFileStorage(filepath.Join(t.TempDir(), "vault"))
	require.NoError(t, err)
	return s
}

func TestFileStorage_SetAndGet(t *testing.T) {
	s := setupFile(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k1", []byte(`{"a":1}`)))

	v, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"a":1}`), v)
}

func TestFileStorage_Get_AbsentReturnsNilNil(t *testing.T) {
	s := setupFile(t)

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestFileStorage_Set_Overwrites(t *testing.T) {
	s := setupFile(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old")))
	require.NoError(t, s.Set(ctx, "k", []byte("new")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestFileStorage_Delete_RemovesKeyAndIsIdempotent(t *testing.T) {
	s := setupFile(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "x", []byte{0x01}))
	require.NoError(t, s.Delete(ctx, "x"))

	v, err := s.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, s.Delete(ctx, "x"))
}

func TestFileStorage_List_ReturnsAllPairs(t *testing.T) {
	s := setupFile(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte{0xAA}))
	require.NoError(t, s.SetMany(ctx, map[string][]byte{"b": {0xBB}, "c": {0xCC}}))

	m, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 3)
	assert.Equal(t, []byte{0xAA}, m["a"])
	assert.Equal(t, []byte{0xBB}, m["b"])
	assert.Equal(t, []byte{0xCC}, m["c"])
}

func TestFileStorage_KeysCannotEscapeDirectory(t *testing.T) {
	s := setupFile(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "../outside", []byte("x")))

	// The escaped key resolves inside the storage dir.
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	v, err := s.Get(ctx, "../outside")
	require.NoError(t, err)
	require.Equal(t, []byte("x"), v)
}

func TestFileStorage_NoTempFilesLeftBehind(t *testing.T) {
	s := setupFile(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Set(ctx, "k", []byte{byte(i)}))
	}

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
