package interfaces

import (
	"context"
	"madinah_tours/internal/domain/entities"
)

// ISiteRepository abstracts DynamoDB persistence for HistoricalSite.

type ISiteRepository interface {
	List(ctx context.Context) ([]entities.HistoricalSite, error)
	GetByID(ctx context.Context, id string) (entities.HistoricalSite, error)
}
