package in

import "careernav/internal/modules/onboarding/dto"

type Usecase interface {
	Draft() dto.DraftOutput
	SetField(field dto.Field, value string) (dto.DraftOutput, error)
	Answer(question int, option string) (dto.DraftOutput, error)
	Next() dto.AdvanceOutput
	Back() dto.DraftOutput
	Reset() dto.DraftOutput
	Questions() []dto.Question
	Educations() []string
}
