// Package capsules implements record-level operations over the vault's
// capsule collection. This is the only place that encodes capsule
// mutation policy; whether an unlock condition is actually met is the
// caller's concern.
package capsules

import (
	"context"

	"github.com/dmitrijs2005/memoryvault/internal/models"
)

type Repository interface {
	// ListAll returns the collection in stored order.
	ListAll(ctx context.Context) ([]models.Capsule, error)

	// GetByID fails with common.ErrorNotFound when no record matches.
	GetByID(ctx context.Context, id string) (*models.Capsule, error)

	// Create assigns a fresh unique id and creation timestamp, forces
	// the record into the not-unlocked state, appends and persists.
	Create(ctx context.Context, c models.Capsule) (*models.Capsule, error)

	// Save upserts by id: replace when present, append otherwise. This
	// is the single mutation primitive behind create and unlock.
	Save(ctx context.Context, c models.Capsule) (*models.Capsule, error)

	// Unlock stamps IsUnlocked/UnlockedAt exactly once. Unlocking an
	// already-unlocked capsule is a no-op that returns the unchanged
	// record, so the operation is safe to retry.
	Unlock(ctx context.Context, id string) (*models.Capsule, error)

	// Delete removes the record; deleting an absent id is a no-op
	// success.
	Delete(ctx context.Context, id string) error
}
