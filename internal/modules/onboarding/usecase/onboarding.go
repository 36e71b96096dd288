package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"careernav/internal/modules/onboarding/domain"
	"careernav/internal/modules/onboarding/dto"
	onboardingin "careernav/internal/modules/onboarding/port/in"
	apperrors "careernav/internal/platform/errors"
)

// Interactor owns the single in-progress draft of the wizard. It is driven
// from the UI event loop only.
type Interactor struct {
	draft  domain.Draft
	logger *zap.Logger
}

func NewInteractor(logger *zap.Logger) onboardingin.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{draft: domain.NewDraft(), logger: logger.Named("onboarding")}
}

func (i *Interactor) Draft() dto.DraftOutput {
	return toDraftOutput(i.draft)
}

func (i *Interactor) SetField(field dto.Field, value string) (dto.DraftOutput, error) {
	switch field {
	case dto.FieldName:
		i.draft.SetName(value)
	case dto.FieldEducation:
		edu, ok := domain.ParseEducation(value)
		if !ok {
			return toDraftOutput(i.draft), fmt.Errorf("unknown education %q: %w", value, apperrors.ErrInvalidInput)
		}
		i.draft.SetEducation(edu)
	case dto.FieldStream:
		if err := i.draft.SetStream(value); err != nil {
			return toDraftOutput(i.draft), err
		}
	case dto.FieldSkills:
		i.draft.SetSkills(value)
	case dto.FieldAspirations:
		i.draft.SetAspirations(value)
	default:
		return toDraftOutput(i.draft), fmt.Errorf("unknown field %q: %w", field, apperrors.ErrInvalidInput)
	}
	return toDraftOutput(i.draft), nil
}

func (i *Interactor) Answer(question int, option string) (dto.DraftOutput, error) {
	if err := i.draft.Answer(question, option); err != nil {
		return toDraftOutput(i.draft), err
	}
	return toDraftOutput(i.draft), nil
}

func (i *Interactor) Next() dto.AdvanceOutput {
	score := i.draft.Score()
	transition, profile := i.draft.Next()
	out := dto.AdvanceOutput{Draft: toDraftOutput(i.draft)}
	switch transition {
	case domain.Blocked:
		i.logger.Debug("step incomplete", zap.Int("step", i.draft.Step()))
	case domain.Advanced:
		i.logger.Debug("step advanced", zap.Int("step", i.draft.Step()))
	case domain.Completed:
		out.Completed = true
		out.Profile = toProfile(profile)
		out.Score = score
		i.logger.Info("onboarding completed",
			zap.String("education", profile.Education),
			zap.Int("skills", len(profile.Skills)),
			zap.Int("aptitude_score", score),
		)
	}
	return out
}

func (i *Interactor) Back() dto.DraftOutput {
	i.draft.Back()
	return toDraftOutput(i.draft)
}

func (i *Interactor) Reset() dto.DraftOutput {
	i.draft = domain.NewDraft()
	return toDraftOutput(i.draft)
}

func (i *Interactor) Questions() []dto.Question {
	out := make([]dto.Question, 0, len(domain.Questions))
	for _, q := range domain.Questions {
		out = append(out, dto.Question{Prompt: q.Prompt, Options: append([]string(nil), q.Options...)})
	}
	return out
}

func (i *Interactor) Educations() []string {
	out := make([]string, 0, len(domain.Educations))
	for _, e := range domain.Educations {
		out = append(out, string(e))
	}
	return out
}

func toDraftOutput(d domain.Draft) dto.DraftOutput {
	policy := d.StreamPolicy()
	return dto.DraftOutput{
		Step:          d.Step(),
		TotalSteps:    domain.TotalSteps,
		Progress:      d.Progress(),
		Name:          d.Name(),
		Education:     string(d.Education()),
		Stream:        d.Stream(),
		Skills:        d.Skills(),
		Aspirations:   d.Aspirations(),
		StreamKind:    policy.Kind.String(),
		StreamLabel:   policy.Label,
		StreamOptions: policy.Options,
		Answers:       d.Answers(),
		Score:         d.Score(),
		CanAdvance:    d.CanAdvance(),
		CanGoBack:     d.CanGoBack(),
		FinalStep:     d.Step() == domain.TotalSteps,
	}
}

func toProfile(p domain.Profile) dto.Profile {
	return dto.Profile{
		Name:        p.Name,
		Education:   p.Education,
		Stream:      p.Stream,
		Skills:      append([]string{}, p.Skills...),
		Aspirations: append([]string{}, p.Aspirations...),
	}
}
