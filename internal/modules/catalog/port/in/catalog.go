package in

import (
	"context"

	"careernav/internal/modules/catalog/dto"
)

type Usecase interface {
	ListLearners(ctx context.Context) ([]dto.Learner, error)
	ListPrograms(ctx context.Context) ([]dto.Program, error)
	GetProgram(ctx context.Context, ref string) (dto.Program, error)
	RecommendedPathway(ctx context.Context) (dto.PathwayOutput, error)
	ListPosts(ctx context.Context) ([]dto.Post, error)
	// TogglePathwayStep flips one step of a pathway snapshot and returns the
	// updated snapshot. Nothing is persisted.
	TogglePathwayStep(current dto.PathwayOutput, step int) (dto.PathwayOutput, error)
}
