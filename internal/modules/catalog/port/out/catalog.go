package out

import (
	"context"

	"careernav/internal/modules/catalog/domain"
)

// SeedSource yields the raw mock dataset.
type SeedSource interface {
	Load(ctx context.Context) (domain.Dataset, error)
}

// CatalogStore answers ordered reads over the loaded dataset.
type CatalogStore interface {
	Learners(ctx context.Context) ([]domain.Learner, error)
	Programs(ctx context.Context) ([]domain.Program, error)
	FindProgram(ctx context.Context, ref string) (domain.Program, error)
	Pathway(ctx context.Context) ([]domain.PathwayStep, error)
	Posts(ctx context.Context) ([]domain.Post, error)
}
