package in

import (
	"context"

	"careernav/internal/modules/careerdetail/dto"
	careerdetailin "careernav/internal/modules/careerdetail/port/in"
)

type TUIHandler struct {
	usecase careerdetailin.Usecase
}

func NewTUIHandler(usecase careerdetailin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) State() dto.FetchState { return h.usecase.State() }

func (h TUIHandler) Open(ctx context.Context, programName string) (dto.FetchState, func() dto.Result) {
	return h.usecase.Open(ctx, programName)
}

func (h TUIHandler) Apply(result dto.Result) (dto.FetchState, bool) {
	return h.usecase.Apply(result)
}

func (h TUIHandler) Close() dto.FetchState { return h.usecase.Close() }

func (h TUIHandler) Format(text string) dto.Rendered { return h.usecase.Format(text) }
