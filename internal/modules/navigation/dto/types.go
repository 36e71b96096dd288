package dto

import (
	catalogdto "careernav/internal/modules/catalog/dto"
	onboardingdto "careernav/internal/modules/onboarding/dto"
)

type ScreenKind string

const (
	ScreenLanding        ScreenKind = "landing"
	ScreenAuth           ScreenKind = "auth"
	ScreenOnboarding     ScreenKind = "onboarding"
	ScreenDashboard      ScreenKind = "dashboard"
	ScreenAdmin          ScreenKind = "admin"
	ScreenAdminLogin     ScreenKind = "admin_login"
	ScreenBlog           ScreenKind = "blog"
	ScreenProgramDetails ScreenKind = "program_details"
)

// SessionOutput is a render snapshot. Program is set only on the
// program-details screen.
type SessionOutput struct {
	Screen             ScreenKind
	Program            *catalogdto.Program
	Profile            *onboardingdto.Profile
	AdminAuthenticated bool
}
