package out_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	careerdetailout "careernav/internal/modules/careerdetail/adapter/out"
	catalogdto "careernav/internal/modules/catalog/dto"
	apperrors "careernav/internal/platform/errors"
	"careernav/internal/platform/markdown"
)

type fakeCatalog struct {
	programs map[string]catalogdto.Program
}

func (f fakeCatalog) ListLearners(context.Context) ([]catalogdto.Learner, error) { return nil, nil }
func (f fakeCatalog) ListPrograms(context.Context) ([]catalogdto.Program, error) { return nil, nil }
func (f fakeCatalog) RecommendedPathway(context.Context) (catalogdto.PathwayOutput, error) {
	return catalogdto.PathwayOutput{}, nil
}
func (f fakeCatalog) ListPosts(context.Context) ([]catalogdto.Post, error) { return nil, nil }
func (f fakeCatalog) TogglePathwayStep(p catalogdto.PathwayOutput, _ int) (catalogdto.PathwayOutput, error) {
	return p, nil
}
func (f fakeCatalog) GetProgram(_ context.Context, ref string) (catalogdto.Program, error) {
	p, ok := f.programs[ref]
	if !ok {
		return catalogdto.Program{}, apperrors.ErrNotFound
	}
	return p, nil
}

func TestOfflineOverviewHasThreeSections(t *testing.T) {
	t.Parallel()
	gen := careerdetailout.NewOfflineGenerator(fakeCatalog{programs: map[string]catalogdto.Program{
		"Solar PV Installer": {
			Name:             "Solar PV Installer",
			NSQF:             4,
			Description:      "Install rooftop solar systems.",
			LearningOutcomes: []string{"Site survey", "Panel mounting"},
			PotentialJobs:    []string{"Solar Technician"},
		},
	}})

	text, err := gen.GenerateCareerOverview(context.Background(), "Solar PV Installer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	var headings, items []string
	for _, b := range markdown.Classify(text) {
		switch b.Kind {
		case markdown.Heading:
			headings = append(headings, b.Text)
		case markdown.ListItem:
			items = append(items, b.Text)
		}
	}
	if strings.Join(headings, "|") != "Career Description|Key Skills|Future Prospects" {
		t.Fatalf("unexpected headings: %v", headings)
	}
	if strings.Join(items, "|") != "Site survey|Panel mounting" {
		t.Fatalf("unexpected skills: %v", items)
	}
	if !strings.Contains(text, "Solar Technician") {
		t.Fatalf("prospects should name potential jobs: %q", text)
	}
}

func TestOfflineOverviewUnknownProgram(t *testing.T) {
	t.Parallel()
	gen := careerdetailout.NewOfflineGenerator(fakeCatalog{})
	_, err := gen.GenerateCareerOverview(context.Background(), "Astronaut")
	if !errors.Is(err, apperrors.ErrGenerationFailed) || !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected wrapped not found, got %v", err)
	}
}

func TestOfflineOverviewHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := careerdetailout.NewOfflineGenerator(fakeCatalog{}).GenerateCareerOverview(ctx, "x")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestGeminiGeneratorRequiresKey(t *testing.T) {
	t.Parallel()
	_, err := careerdetailout.NewGeminiGenerator(context.Background(), " ", "gemini-2.5-flash")
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
