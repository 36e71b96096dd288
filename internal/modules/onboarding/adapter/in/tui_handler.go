package in

import (
	"careernav/internal/modules/onboarding/dto"
	onboardingin "careernav/internal/modules/onboarding/port/in"
)

type TUIHandler struct {
	usecase onboardingin.Usecase
}

func NewTUIHandler(usecase onboardingin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Draft() dto.DraftOutput { return h.usecase.Draft() }

func (h TUIHandler) SetField(field dto.Field, value string) (dto.DraftOutput, error) {
	return h.usecase.SetField(field, value)
}

func (h TUIHandler) Answer(question int, option string) (dto.DraftOutput, error) {
	return h.usecase.Answer(question, option)
}

func (h TUIHandler) Next() dto.AdvanceOutput   { return h.usecase.Next() }
func (h TUIHandler) Back() dto.DraftOutput     { return h.usecase.Back() }
func (h TUIHandler) Reset() dto.DraftOutput    { return h.usecase.Reset() }
func (h TUIHandler) Questions() []dto.Question { return h.usecase.Questions() }
func (h TUIHandler) Educations() []string      { return h.usecase.Educations() }
