// Package vault is the persistence store: the capsule collection and the
// settings singleton kept under fixed keys of a storage.Storage, with
// one-time seeding on first run.
//
// The store has no per-record primitives; every mutation is a
// read-modify-write of the whole collection. A single mutex serializes
// those cycles so concurrent callers inside one process cannot lose
// updates.
package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/models"
	"github.com/dmitrijs2005/memoryvault/internal/storage"
)

// Fixed logical keys of the persisted state. The names match the
// original release, so existing data stays readable.
const (
	KeyCapsules    = "memory-vault-capsules"
	KeySettings    = "memory-vault-settings"
	KeyInitialized = "memory-vault-initialized"
)

type Vault struct {
	storage storage.Storage
	log     logging.Logger

	mu sync.Mutex
	// process-local fast path; the flag key stays authoritative
	initialized bool
}

func New(st storage.Storage, log logging.Logger) *Vault {
	return &Vault{storage: st, log: log}
}

// Initialize seeds the store on the very first run: sample capsules,
// default settings, then the sentinel flag. Idempotent; safe to call
// before every read.
func (v *Vault) Initialize(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.initializeLocked(ctx)
}

func (v *Vault) initializeLocked(ctx context.Context) error {
	if v.initialized {
		return nil
	}

	flag, err := v.storage.Get(ctx, KeyInitialized)
	if err != nil {
		return err
	}
	if flag != nil {
		v.initialized = true
		return nil
	}

	capsules, err := json.Marshal(SeedCapsules())
	if err != nil {
		return fmt.Errorf("%w: marshal seed capsules: %w", common.ErrorStorage, err)
	}
	settings, err := json.Marshal(models.DefaultSettings())
	if err != nil {
		return fmt.Errorf("%w: marshal default settings: %w", common.ErrorStorage, err)
	}

	err = v.storage.SetMany(ctx, map[string][]byte{
		KeyCapsules:    capsules,
		KeySettings:    settings,
		KeyInitialized: []byte("true"),
	})
	if err != nil {
		return err
	}

	v.log.Info(ctx, "store seeded on first run", "capsules", len(SeedCapsules()))
	v.initialized = true
	return nil
}

// ReadCapsules returns the stored collection in insertion order.
func (v *Vault) ReadCapsules(ctx context.Context) ([]models.Capsule, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.readCapsulesLocked(ctx)
}

func (v *Vault) readCapsulesLocked(ctx context.Context) ([]models.Capsule, error) {
	if err := v.initializeLocked(ctx); err != nil {
		return nil, err
	}

	data, err := v.storage.Get(ctx, KeyCapsules)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.Capsule{}, nil
	}

	var capsules []models.Capsule
	if err := json.Unmarshal(data, &capsules); err != nil {
		return nil, fmt.Errorf("%w: capsule collection: %w", common.ErrorCorruptData, err)
	}
	return capsules, nil
}

// WriteCapsules replaces the whole stored collection.
func (v *Vault) WriteCapsules(ctx context.Context, capsules []models.Capsule) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.writeCapsulesLocked(ctx, capsules)
}

func (v *Vault) writeCapsulesLocked(ctx context.Context, capsules []models.Capsule) error {
	// Settle first-run seeding before the write, otherwise the next
	// read's implicit initialize would overwrite it with seed data.
	if err := v.initializeLocked(ctx); err != nil {
		return err
	}

	if capsules == nil {
		capsules = []models.Capsule{}
	}
	data, err := json.Marshal(capsules)
	if err != nil {
		return fmt.Errorf("%w: marshal capsule collection: %w", common.ErrorStorage, err)
	}
	return v.storage.Set(ctx, KeyCapsules, data)
}

// Mutate runs fn on the current collection and persists its result, all
// under the store mutex, so the read-modify-write cycle is atomic with
// respect to other callers in this process.
func (v *Vault) Mutate(ctx context.Context, fn func(capsules []models.Capsule) ([]models.Capsule, error)) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	capsules, err := v.readCapsulesLocked(ctx)
	if err != nil {
		return err
	}
	next, err := fn(capsules)
	if err != nil {
		return err
	}
	return v.writeCapsulesLocked(ctx, next)
}

// ReadSettings returns the settings singleton, falling back to defaults
// when the key was never written.
func (v *Vault) ReadSettings(ctx context.Context) (models.Settings, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.initializeLocked(ctx); err != nil {
		return models.Settings{}, err
	}

	data, err := v.storage.Get(ctx, KeySettings)
	if err != nil {
		return models.Settings{}, err
	}
	if data == nil {
		return models.DefaultSettings(), nil
	}

	var s models.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return models.Settings{}, fmt.Errorf("%w: settings: %w", common.ErrorCorruptData, err)
	}
	return s, nil
}

// WriteSettings overwrites the settings singleton wholesale.
func (v *Vault) WriteSettings(ctx context.Context, s models.Settings) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.initializeLocked(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: marshal settings: %w", common.ErrorStorage, err)
	}
	return v.storage.Set(ctx, KeySettings, data)
}
