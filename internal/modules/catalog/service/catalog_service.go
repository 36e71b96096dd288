package service

import (
	"context"
	"fmt"
	"strings"

	"careernav/internal/modules/catalog/domain"
	catalogout "careernav/internal/modules/catalog/port/out"
	apperrors "careernav/internal/platform/errors"
)

type CatalogService struct {
	store catalogout.CatalogStore
}

func NewCatalogService(store catalogout.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) Learners(ctx context.Context) ([]domain.Learner, error) {
	return s.store.Learners(ctx)
}

func (s *CatalogService) Programs(ctx context.Context) ([]domain.Program, error) {
	return s.store.Programs(ctx)
}

func (s *CatalogService) Program(ctx context.Context, ref string) (domain.Program, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Program{}, fmt.Errorf("program reference is required: %w", apperrors.ErrInvalidInput)
	}
	return s.store.FindProgram(ctx, ref)
}

func (s *CatalogService) Pathway(ctx context.Context) (domain.Pathway, error) {
	steps, err := s.store.Pathway(ctx)
	if err != nil {
		return domain.Pathway{}, err
	}
	return domain.NewPathway(steps), nil
}

func (s *CatalogService) Posts(ctx context.Context) ([]domain.Post, error) {
	return s.store.Posts(ctx)
}
