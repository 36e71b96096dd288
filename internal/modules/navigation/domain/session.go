package domain

import (
	catalogdomain "careernav/internal/modules/catalog/domain"
	onboardingdomain "careernav/internal/modules/onboarding/domain"
)

// Operation names a controller entry point, for transition records.
type Operation string

const (
	OpNavigate           Operation = "navigate"
	OpCompleteOnboarding Operation = "complete_onboarding"
	OpCompleteAdminLogin Operation = "complete_admin_login"
	OpCompleteAuth       Operation = "complete_auth"
	OpSelectProgram      Operation = "select_program"
	OpBackFromProgram    Operation = "back_from_program"
	OpLogout             Operation = "logout"
)

// Transition describes one applied session change.
type Transition struct {
	Op     Operation
	Target ScreenKind
	From   ScreenKind
	To     ScreenKind
	// Redirected is set when the screen reached differs from the one asked for.
	Redirected bool
}

// Session is the root navigation state. The zero value is not usable; call
// NewSession.
type Session struct {
	screen  Screen
	profile *onboardingdomain.Profile
	admin   bool
}

func NewSession() Session {
	return Session{screen: Landing{}}
}

func (s Session) Screen() Screen           { return s.screen }
func (s Session) AdminAuthenticated() bool { return s.admin }
func (s Session) HasProfile() bool         { return s.profile != nil }

// Profile returns a copy of the stored profile.
func (s Session) Profile() (onboardingdomain.Profile, bool) {
	if s.profile == nil {
		return onboardingdomain.Profile{}, false
	}
	return copyProfile(*s.profile), true
}

// Navigate moves to target, applying the access gates. A program-details
// target has no program to show and falls back to the admin gate.
func (s *Session) Navigate(target ScreenKind) Transition {
	from := s.screen.Kind()
	switch target {
	case ScreenAdmin, ScreenProgramDetails:
		s.screen = s.adminGate()
	case ScreenDashboard:
		if s.profile == nil {
			s.screen = Auth{}
		} else {
			s.screen = Dashboard{}
		}
	case ScreenLanding:
		s.screen = Landing{}
	case ScreenAuth:
		s.screen = Auth{}
	case ScreenOnboarding:
		s.screen = Onboarding{}
	case ScreenAdminLogin:
		s.screen = AdminLogin{}
	case ScreenBlog:
		s.screen = Blog{}
	default:
		s.screen = Landing{}
	}
	return s.transition(OpNavigate, target, from)
}

func (s *Session) CompleteOnboarding(p onboardingdomain.Profile) Transition {
	from := s.screen.Kind()
	stored := copyProfile(p)
	s.profile = &stored
	s.screen = Dashboard{}
	return s.transition(OpCompleteOnboarding, ScreenDashboard, from)
}

// CompleteAdminLogin leaves the session untouched when the credentials do not
// match.
func (s *Session) CompleteAdminLogin(creds Credentials, username, password string) (Transition, bool) {
	from := s.screen.Kind()
	if !creds.Match(username, password) {
		return Transition{Op: OpCompleteAdminLogin, Target: ScreenAdmin, From: from, To: from, Redirected: true}, false
	}
	s.admin = true
	s.screen = Admin{}
	return s.transition(OpCompleteAdminLogin, ScreenAdmin, from), true
}

// CompleteAuth is a stub sign-in; it always continues to onboarding.
func (s *Session) CompleteAuth() Transition {
	from := s.screen.Kind()
	s.screen = Onboarding{}
	return s.transition(OpCompleteAuth, ScreenOnboarding, from)
}

func (s *Session) SelectProgram(p catalogdomain.Program) Transition {
	from := s.screen.Kind()
	s.screen = ProgramDetails{Program: copyProgram(p)}
	return s.transition(OpSelectProgram, ScreenProgramDetails, from)
}

func (s *Session) BackFromProgram() Transition {
	from := s.screen.Kind()
	s.screen = s.adminGate()
	return s.transition(OpBackFromProgram, ScreenAdmin, from)
}

func (s *Session) Logout() Transition {
	from := s.screen.Kind()
	s.profile = nil
	s.admin = false
	s.screen = Landing{}
	return s.transition(OpLogout, ScreenLanding, from)
}

func (s Session) adminGate() Screen {
	if s.admin {
		return Admin{}
	}
	return AdminLogin{}
}

func (s Session) transition(op Operation, target, from ScreenKind) Transition {
	to := s.screen.Kind()
	return Transition{Op: op, Target: target, From: from, To: to, Redirected: to != target}
}

func copyProfile(p onboardingdomain.Profile) onboardingdomain.Profile {
	p.Skills = append([]string{}, p.Skills...)
	p.Aspirations = append([]string{}, p.Aspirations...)
	return p
}

func copyProgram(p catalogdomain.Program) catalogdomain.Program {
	p.LearningOutcomes = append([]string(nil), p.LearningOutcomes...)
	p.PotentialJobs = append([]string(nil), p.PotentialJobs...)
	return p
}
