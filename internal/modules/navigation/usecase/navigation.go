package usecase

import (
	"context"

	catalogdomain "careernav/internal/modules/catalog/domain"
	catalogdto "careernav/internal/modules/catalog/dto"
	"careernav/internal/modules/navigation/domain"
	"careernav/internal/modules/navigation/dto"
	navigationin "careernav/internal/modules/navigation/port/in"
	"careernav/internal/modules/navigation/service"
	onboardingdomain "careernav/internal/modules/onboarding/domain"
	onboardingdto "careernav/internal/modules/onboarding/dto"
)

// Interactor owns the one Session of a running instance.
type Interactor struct {
	svc     *service.Controller
	session domain.Session
}

func NewInteractor(svc *service.Controller) navigationin.Usecase {
	return &Interactor{svc: svc, session: domain.NewSession()}
}

func (i *Interactor) Session() dto.SessionOutput {
	return toSessionOutput(i.session)
}

func (i *Interactor) ParseScreen(raw string) (dto.ScreenKind, error) {
	kind, err := domain.ParseScreenKind(raw)
	if err != nil {
		return "", err
	}
	return dto.ScreenKind(kind), nil
}

func (i *Interactor) Navigate(ctx context.Context, target dto.ScreenKind) dto.SessionOutput {
	i.svc.Navigate(ctx, &i.session, domain.ScreenKind(target))
	return toSessionOutput(i.session)
}

func (i *Interactor) CompleteOnboarding(ctx context.Context, profile onboardingdto.Profile) dto.SessionOutput {
	i.svc.CompleteOnboarding(ctx, &i.session, onboardingdomain.Profile{
		Name:        profile.Name,
		Education:   profile.Education,
		Stream:      profile.Stream,
		Skills:      profile.Skills,
		Aspirations: profile.Aspirations,
	})
	return toSessionOutput(i.session)
}

func (i *Interactor) CompleteAdminLogin(ctx context.Context, username, password string) (dto.SessionOutput, bool) {
	ok := i.svc.CompleteAdminLogin(ctx, &i.session, username, password)
	return toSessionOutput(i.session), ok
}

func (i *Interactor) CompleteAuth(ctx context.Context) dto.SessionOutput {
	i.svc.CompleteAuth(ctx, &i.session)
	return toSessionOutput(i.session)
}

func (i *Interactor) SelectProgram(ctx context.Context, program catalogdto.Program) dto.SessionOutput {
	i.svc.SelectProgram(ctx, &i.session, catalogdomain.Program{
		ID:               program.ID,
		Name:             program.Name,
		NSQF:             program.NSQF,
		Provider:         program.Provider,
		Duration:         program.Duration,
		Description:      program.Description,
		LearningOutcomes: program.LearningOutcomes,
		PotentialJobs:    program.PotentialJobs,
	})
	return toSessionOutput(i.session)
}

func (i *Interactor) BackFromProgram(ctx context.Context) dto.SessionOutput {
	i.svc.BackFromProgram(ctx, &i.session)
	return toSessionOutput(i.session)
}

func (i *Interactor) Logout(ctx context.Context) dto.SessionOutput {
	i.svc.Logout(ctx, &i.session)
	return toSessionOutput(i.session)
}

func toSessionOutput(s domain.Session) dto.SessionOutput {
	out := dto.SessionOutput{
		Screen:             dto.ScreenKind(s.Screen().Kind()),
		AdminAuthenticated: s.AdminAuthenticated(),
	}
	if details, ok := s.Screen().(domain.ProgramDetails); ok {
		p := details.Program
		out.Program = &catalogdto.Program{
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
	if profile, ok := s.Profile(); ok {
		out.Profile = &onboardingdto.Profile{
			Name:        profile.Name,
			Education:   profile.Education,
			Stream:      profile.Stream,
			Skills:      profile.Skills,
			Aspirations: profile.Aspirations,
		}
	}
	return out
}
