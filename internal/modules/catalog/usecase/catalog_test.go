package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"careernav/internal/modules/catalog/domain"
	"careernav/internal/modules/catalog/service"
	"careernav/internal/modules/catalog/usecase"
	apperrors "careernav/internal/platform/errors"
)

type fakeStore struct {
	programs []domain.Program
	steps    []domain.PathwayStep
	lookups  []string
	fail     error
}

func (f *fakeStore) Learners(context.Context) ([]domain.Learner, error) {
	return []domain.Learner{{ID: 7, Name: "Rohan Verma", Skills: []string{"Teamwork"}, Progress: "50%"}}, f.fail
}
func (f *fakeStore) Programs(context.Context) ([]domain.Program, error) { return f.programs, f.fail }
func (f *fakeStore) FindProgram(_ context.Context, ref string) (domain.Program, error) {
	f.lookups = append(f.lookups, ref)
	for _, p := range f.programs {
		if p.ID == ref || p.Name == ref {
			return p, nil
		}
	}
	return domain.Program{}, fmt.Errorf("program %q: %w", ref, apperrors.ErrNotFound)
}
func (f *fakeStore) Pathway(context.Context) ([]domain.PathwayStep, error) { return f.steps, f.fail }
func (f *fakeStore) Posts(context.Context) ([]domain.Post, error) {
	return []domain.Post{{Title: "A Guide to NSQF Levels", Category: "Education"}}, f.fail
}

func newStore() *fakeStore {
	return &fakeStore{
		programs: []domain.Program{{
			ID:               "P02",
			Name:             "Advanced Diploma in Data Analytics",
			NSQF:             5,
			LearningOutcomes: []string{"Perform complex data analysis"},
			PotentialJobs:    []string{"Data Analyst"},
		}},
		steps: []domain.PathwayStep{
			{Step: 1, ProgramName: "Foundation in Digital Literacy", Mode: domain.ModeOnline, Completed: true},
			{Step: 2, ProgramName: "Certified Python Programmer", Mode: domain.ModeHybrid},
			{Step: 3, ProgramName: "Advanced Diploma in Data Analytics", Mode: domain.ModeHybrid},
			{Step: 4, ProgramName: "Machine Learning Specialization", Mode: domain.ModeOnline},
		},
	}
}

func TestListingsMapToDTOs(t *testing.T) {
	t.Parallel()
	store := newStore()
	uc := usecase.NewInteractor(service.NewCatalogService(store))

	programs, err := uc.ListPrograms(context.Background())
	if err != nil {
		t.Fatalf("list programs: %v", err)
	}
	if len(programs) != 1 || programs[0].NSQF != 5 || programs[0].PotentialJobs[0] != "Data Analyst" {
		t.Fatalf("unexpected programs: %+v", programs)
	}
	programs[0].PotentialJobs[0] = "mutated"
	if store.programs[0].PotentialJobs[0] != "Data Analyst" {
		t.Fatalf("dto must not alias domain slices")
	}

	learners, err := uc.ListLearners(context.Background())
	if err != nil || len(learners) != 1 || learners[0].Progress != "50%" {
		t.Fatalf("unexpected learners: %+v (%v)", learners, err)
	}

	posts, err := uc.ListPosts(context.Background())
	if err != nil || len(posts) != 1 || posts[0].Category != "Education" {
		t.Fatalf("unexpected posts: %+v (%v)", posts, err)
	}
}

func TestRecommendedPathwayReportsProgress(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewCatalogService(newStore()))
	out, err := uc.RecommendedPathway(context.Background())
	if err != nil {
		t.Fatalf("pathway: %v", err)
	}
	if len(out.Steps) != 4 || out.Completed != 1 || out.Progress != 25 {
		t.Fatalf("unexpected pathway output: %+v", out)
	}
	if out.Steps[1].Mode != "Hybrid" {
		t.Fatalf("mode not mapped: %+v", out.Steps[1])
	}
}

func TestGetProgramTrimsAndRejectsEmptyRef(t *testing.T) {
	t.Parallel()
	store := newStore()
	uc := usecase.NewInteractor(service.NewCatalogService(store))

	if _, err := uc.GetProgram(context.Background(), "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if len(store.lookups) != 0 {
		t.Fatalf("empty ref must not reach the store")
	}
	p, err := uc.GetProgram(context.Background(), "  P02 ")
	if err != nil || p.Name != "Advanced Diploma in Data Analytics" {
		t.Fatalf("get program: %+v (%v)", p, err)
	}
	if _, err := uc.GetProgram(context.Background(), "P99"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStoreErrorsPropagate(t *testing.T) {
	t.Parallel()
	store := newStore()
	store.fail = errors.New("disk on fire")
	uc := usecase.NewInteractor(service.NewCatalogService(store))
	if _, err := uc.ListPrograms(context.Background()); err == nil {
		t.Fatalf("expected programs error")
	}
	if _, err := uc.RecommendedPathway(context.Background()); err == nil {
		t.Fatalf("expected pathway error")
	}
}

func TestTogglePathwayStepRecomputesProgress(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewCatalogService(newStore()))
	pathway, err := uc.RecommendedPathway(context.Background())
	if err != nil {
		t.Fatalf("pathway: %v", err)
	}
	if pathway.Progress != 25 {
		t.Fatalf("expected 25%%, got %v", pathway.Progress)
	}

	toggled, err := uc.TogglePathwayStep(pathway, 2)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.Completed != 2 || toggled.Progress != 50 || !toggled.Steps[1].Completed {
		t.Fatalf("unexpected toggled pathway: %+v", toggled)
	}
	if pathway.Steps[1].Completed {
		t.Fatalf("input snapshot must not change")
	}

	again, err := uc.TogglePathwayStep(toggled, 2)
	if err != nil || again.Progress != 25 {
		t.Fatalf("double toggle must restore progress: %+v (%v)", again, err)
	}
	if _, err := uc.TogglePathwayStep(toggled, 9); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
