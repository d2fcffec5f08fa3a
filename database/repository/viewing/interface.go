package viewingRepo

import (
	"context"

	"homeview/models"
)

// ViewingRepository is the data-access contract for confirmed viewings.
// The store is append-only: a viewing is never updated or deleted once
// created, so no mutating methods exist.
type ViewingRepository interface {
	Create(ctx context.Context, viewing *models.Viewing) error
	GetByID(ctx context.Context, id string) (*models.Viewing, error)
	ListByProperty(ctx context.Context, propertyID string) ([]models.Viewing, error)
	ListAll(ctx context.Context) ([]models.Viewing, error)
}
