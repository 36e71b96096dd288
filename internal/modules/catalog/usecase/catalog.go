package usecase

import (
	"context"
	"fmt"

	"careernav/internal/modules/catalog/domain"
	"careernav/internal/modules/catalog/dto"
	catalogin "careernav/internal/modules/catalog/port/in"
	"careernav/internal/modules/catalog/service"
	apperrors "careernav/internal/platform/errors"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListLearners(ctx context.Context) ([]dto.Learner, error) {
	learners, err := i.svc.Learners(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Learner, 0, len(learners))
	for _, l := range learners {
		out = append(out, dto.Learner{
			ID:        l.ID,
			Name:      l.Name,
			Education: l.Education,
			Skills:    append([]string(nil), l.Skills...),
			Progress:  l.Progress,
		})
	}
	return out, nil
}

func (i *Interactor) ListPrograms(ctx context.Context) ([]dto.Program, error) {
	programs, err := i.svc.Programs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Program, 0, len(programs))
	for _, p := range programs {
		out = append(out, toProgram(p))
	}
	return out, nil
}

func (i *Interactor) GetProgram(ctx context.Context, ref string) (dto.Program, error) {
	p, err := i.svc.Program(ctx, ref)
	if err != nil {
		return dto.Program{}, err
	}
	return toProgram(p), nil
}

func (i *Interactor) RecommendedPathway(ctx context.Context) (dto.PathwayOutput, error) {
	pathway, err := i.svc.Pathway(ctx)
	if err != nil {
		return dto.PathwayOutput{}, err
	}
	return ToPathwayOutput(pathway), nil
}

func (i *Interactor) ListPosts(ctx context.Context) ([]dto.Post, error) {
	posts, err := i.svc.Posts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.Post{Title: p.Title, Category: p.Category, Excerpt: p.Excerpt})
	}
	return out, nil
}

func (i *Interactor) TogglePathwayStep(current dto.PathwayOutput, step int) (dto.PathwayOutput, error) {
	steps := make([]domain.PathwayStep, 0, len(current.Steps))
	for _, s := range current.Steps {
		steps = append(steps, domain.PathwayStep{
			Step:        s.Step,
			ProgramName: s.ProgramName,
			NSQFLevel:   s.NSQFLevel,
			Duration:    s.Duration,
			Mode:        domain.Mode(s.Mode),
			Completed:   s.Completed,
		})
	}
	pathway := domain.NewPathway(steps)
	if !pathway.Toggle(step) {
		return current, fmt.Errorf("pathway step %d: %w", step, apperrors.ErrNotFound)
	}
	return ToPathwayOutput(pathway), nil
}

// ToPathwayOutput snapshots a pathway, including its derived progress.
func ToPathwayOutput(p domain.Pathway) dto.PathwayOutput {
	steps := p.Steps()
	out := dto.PathwayOutput{
		Steps:     make([]dto.PathwayStep, 0, len(steps)),
		Completed: p.Completed(),
		Progress:  p.Progress(),
	}
	for _, s := range steps {
		out.Steps = append(out.Steps, dto.PathwayStep{
			Step:        s.Step,
			ProgramName: s.ProgramName,
			NSQFLevel:   s.NSQFLevel,
			Duration:    s.Duration,
			Mode:        string(s.Mode),
			Completed:   s.Completed,
		})
	}
	return out
}

func toProgram(p domain.Program) dto.Program {
	return dto.Program{
		ID:               p.ID,
		Name:             p.Name,
		NSQF:             p.NSQF,
		Provider:         p.Provider,
		Duration:         p.Duration,
		Description:      p.Description,
		LearningOutcomes: append([]string(nil), p.LearningOutcomes...),
		PotentialJobs:    append([]string(nil), p.PotentialJobs...),
	}
}
