package usecase_test

import (
	"context"
	"errors"
	"testing"

	catalogdto "careernav/internal/modules/catalog/dto"
	"careernav/internal/modules/navigation/domain"
	"careernav/internal/modules/navigation/dto"
	"careernav/internal/modules/navigation/service"
	"careernav/internal/modules/navigation/usecase"
	onboardingdto "careernav/internal/modules/onboarding/dto"
	apperrors "careernav/internal/platform/errors"
)

type fakeRecorder struct {
	transitions []domain.Transition
}

func (f *fakeRecorder) Record(_ context.Context, t domain.Transition) {
	f.transitions = append(f.transitions, t)
}

func newInteractor() (*fakeRecorder, *usecase.Interactor) {
	rec := &fakeRecorder{}
	uc := usecase.NewInteractor(service.NewController(domain.DefaultCredentials, rec))
	return rec, uc.(*usecase.Interactor)
}

func TestLearnerJourney(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rec, uc := newInteractor()

	if got := uc.Navigate(ctx, dto.ScreenDashboard).Screen; got != dto.ScreenAuth {
		t.Fatalf("dashboard without profile should land on auth, got %s", got)
	}
	if got := uc.CompleteAuth(ctx).Screen; got != dto.ScreenOnboarding {
		t.Fatalf("expected onboarding, got %s", got)
	}
	out := uc.CompleteOnboarding(ctx, onboardingdto.Profile{Name: "Ravi", Skills: []string{"Go"}})
	if out.Screen != dto.ScreenDashboard || out.Profile == nil || out.Profile.Name != "Ravi" {
		t.Fatalf("unexpected session after onboarding: %+v", out)
	}
	if got := uc.Navigate(ctx, dto.ScreenDashboard).Screen; got != dto.ScreenDashboard {
		t.Fatalf("expected dashboard, got %s", got)
	}
	out = uc.Logout(ctx)
	if out.Screen != dto.ScreenLanding || out.Profile != nil || out.AdminAuthenticated {
		t.Fatalf("logout must reset session: %+v", out)
	}
	if len(rec.transitions) != 5 {
		t.Fatalf("expected 5 recorded transitions, got %d", len(rec.transitions))
	}
	if !rec.transitions[0].Redirected {
		t.Fatalf("first transition must be marked redirected")
	}
}

func TestAdminJourneyWithProgramDetails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, uc := newInteractor()

	if got := uc.Navigate(ctx, dto.ScreenAdmin).Screen; got != dto.ScreenAdminLogin {
		t.Fatalf("expected admin login gate, got %s", got)
	}
	out, ok := uc.CompleteAdminLogin(ctx, "admin", "letmein")
	if ok || out.Screen != dto.ScreenAdminLogin || out.AdminAuthenticated {
		t.Fatalf("bad credentials must not change the session: %+v", out)
	}
	out, ok = uc.CompleteAdminLogin(ctx, "admin", "password")
	if !ok || out.Screen != dto.ScreenAdmin {
		t.Fatalf("expected admin screen, got %+v", out)
	}

	program := catalogdto.Program{ID: "P02", Name: "Solar PV Installer", PotentialJobs: []string{"Technician"}}
	out = uc.SelectProgram(ctx, program)
	if out.Screen != dto.ScreenProgramDetails || out.Program == nil || out.Program.ID != "P02" {
		t.Fatalf("expected program details for P02, got %+v", out)
	}
	program.PotentialJobs[0] = "changed"
	if uc.Session().Program.PotentialJobs[0] != "Technician" {
		t.Fatalf("selected program must not alias the caller's slices")
	}

	out = uc.BackFromProgram(ctx)
	if out.Screen != dto.ScreenAdmin || out.Program != nil {
		t.Fatalf("back must return to admin without a program: %+v", out)
	}
	if got := uc.Navigate(ctx, dto.ScreenProgramDetails).Screen; got != dto.ScreenAdmin {
		t.Fatalf("program details without a program must fall back to admin, got %s", got)
	}
}

func TestParseScreen(t *testing.T) {
	t.Parallel()
	_, uc := newInteractor()
	got, err := uc.ParseScreen("Admin Login")
	if err != nil || got != dto.ScreenAdminLogin {
		t.Fatalf("parse admin login: %q %v", got, err)
	}
	if _, err := uc.ParseScreen("nowhere"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
