package service

import (
	"context"

	catalogdomain "careernav/internal/modules/catalog/domain"
	"careernav/internal/modules/navigation/domain"
	navigationout "careernav/internal/modules/navigation/port/out"
	onboardingdomain "careernav/internal/modules/onboarding/domain"
)

// Controller applies operations to a session and reports each transition.
type Controller struct {
	creds    domain.Credentials
	recorder navigationout.TransitionRecorder
}

func NewController(creds domain.Credentials, recorder navigationout.TransitionRecorder) *Controller {
	return &Controller{creds: creds, recorder: recorder}
}

func (c *Controller) Navigate(ctx context.Context, s *domain.Session, target domain.ScreenKind) {
	c.record(ctx, s.Navigate(target))
}

func (c *Controller) CompleteOnboarding(ctx context.Context, s *domain.Session, p onboardingdomain.Profile) {
	c.record(ctx, s.CompleteOnboarding(p))
}

func (c *Controller) CompleteAdminLogin(ctx context.Context, s *domain.Session, username, password string) bool {
	t, ok := s.CompleteAdminLogin(c.creds, username, password)
	c.record(ctx, t)
	return ok
}

func (c *Controller) CompleteAuth(ctx context.Context, s *domain.Session) {
	c.record(ctx, s.CompleteAuth())
}

func (c *Controller) SelectProgram(ctx context.Context, s *domain.Session, p catalogdomain.Program) {
	c.record(ctx, s.SelectProgram(p))
}

func (c *Controller) BackFromProgram(ctx context.Context, s *domain.Session) {
	c.record(ctx, s.BackFromProgram())
}

func (c *Controller) Logout(ctx context.Context, s *domain.Session) {
	c.record(ctx, s.Logout())
}

func (c *Controller) record(ctx context.Context, t domain.Transition) {
	if c.recorder != nil {
		c.recorder.Record(ctx, t)
	}
}
