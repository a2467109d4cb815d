package capsules

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/models"
	"github.com/dmitrijs2005/memoryvault/internal/vault"
)

// nowFn is a test seam for the clock used to stamp timestamps.
var nowFn = time.Now

// VaultRepository implements Repository on top of the vault store.
type VaultRepository struct {
	vault *vault.Vault
}

func NewVaultRepository(v *vault.Vault) *VaultRepository {
	return &VaultRepository{vault: v}
}

// newID combines the current unix-millisecond timestamp with a random
// component, so ids stay unique even within one millisecond.
func newID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d%s", now.UnixMilli(), random)
}

func (r *VaultRepository) ListAll(ctx context.Context) ([]models.Capsule, error) {
	return r.vault.ReadCapsules(ctx)
}

func (r *VaultRepository) GetByID(ctx context.Context, id string) (*models.Capsule, error) {
	capsules, err := r.vault.ReadCapsules(ctx)
	if err != nil {
		return nil, err
	}
	for i := range capsules {
		if capsules[i].ID == id {
			c := capsules[i].Clone()
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: capsule %s", common.ErrorNotFound, id)
}

func (r *VaultRepository) Create(ctx context.Context, c models.Capsule) (*models.Capsule, error) {
	created := c.Clone()
	created.CreatedAt = nowFn().UTC()
	created.IsUnlocked = false
	created.UnlockedAt = nil
	created.Normalize()

	err := r.vault.Mutate(ctx, func(capsules []models.Capsule) ([]models.Capsule, error) {
		created.ID = newID(nowFn())
		for taken(capsules, created.ID) {
			created.ID = newID(nowFn())
		}
		return append(capsules, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func taken(capsules []models.Capsule, id string) bool {
	for i := range capsules {
		if capsules[i].ID == id {
			return true
		}
	}
	return false
}

func (r *VaultRepository) Save(ctx context.Context, c models.Capsule) (*models.Capsule, error) {
	saved := c.Clone()
	saved.Normalize()

	err := r.vault.Mutate(ctx, func(capsules []models.Capsule) ([]models.Capsule, error) {
		for i := range capsules {
			if capsules[i].ID == saved.ID {
				capsules[i] = saved
				return capsules, nil
			}
		}
		return append(capsules, saved), nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *VaultRepository) Unlock(ctx context.Context, id string) (*models.Capsule, error) {
	var result models.Capsule

	err := r.vault.Mutate(ctx, func(capsules []models.Capsule) ([]models.Capsule, error) {
		for i := range capsules {
			if capsules[i].ID != id {
				continue
			}
			if capsules[i].IsUnlocked {
				// Already unlocked: return the record unchanged.
				result = capsules[i].Clone()
				return capsules, nil
			}
			unlockedAt := nowFn().UTC()
			capsules[i].IsUnlocked = true
			capsules[i].UnlockedAt = &unlockedAt
			result = capsules[i].Clone()
			return capsules, nil
		}
		return nil, fmt.Errorf("%w: capsule %s", common.ErrorNotFound, id)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *VaultRepository) Delete(ctx context.Context, id string) error {
	return r.vault.Mutate(ctx, func(capsules []models.Capsule) ([]models.Capsule, error) {
		filtered := capsules[:0]
		for i := range capsules {
			if capsules[i].ID != id {
				filtered = append(filtered, capsules[i])
			}
		}
		return filtered, nil
	})
}
