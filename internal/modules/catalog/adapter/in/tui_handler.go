package in

import (
	"context"

	"careernav/internal/modules/catalog/dto"
	catalogin "careernav/internal/modules/catalog/port/in"
)

type TUIHandler struct {
	usecase catalogin.Usecase
}

func NewTUIHandler(usecase catalogin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) ListLearners(ctx context.Context) ([]dto.Learner, error) {
	return h.usecase.ListLearners(ctx)
}

func (h TUIHandler) ListPrograms(ctx context.Context) ([]dto.Program, error) {
	return h.usecase.ListPrograms(ctx)
}

func (h TUIHandler) RecommendedPathway(ctx context.Context) (dto.PathwayOutput, error) {
	return h.usecase.RecommendedPathway(ctx)
}

func (h TUIHandler) TogglePathwayStep(current dto.PathwayOutput, step int) (dto.PathwayOutput, error) {
	return h.usecase.TogglePathwayStep(current, step)
}

func (h TUIHandler) ListPosts(ctx context.Context) ([]dto.Post, error) {
	return h.usecase.ListPosts(ctx)
}
