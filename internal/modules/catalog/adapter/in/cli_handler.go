package in

import (
	"context"

	"careernav/internal/modules/catalog/dto"
	catalogin "careernav/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListLearners(ctx context.Context) ([]dto.Learner, error) {
	return h.usecase.ListLearners(ctx)
}

func (h CLIHandler) ListPrograms(ctx context.Context) ([]dto.Program, error) {
	return h.usecase.ListPrograms(ctx)
}

func (h CLIHandler) GetProgram(ctx context.Context, ref string) (dto.Program, error) {
	return h.usecase.GetProgram(ctx, ref)
}

func (h CLIHandler) RecommendedPathway(ctx context.Context) (dto.PathwayOutput, error) {
	return h.usecase.RecommendedPathway(ctx)
}

func (h CLIHandler) ListPosts(ctx context.Context) ([]dto.Post, error) {
	return h.usecase.ListPosts(ctx)
}
