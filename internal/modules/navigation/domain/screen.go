package domain

import (
	"fmt"
	"strings"

	catalogdomain "careernav/internal/modules/catalog/domain"
	apperrors "careernav/internal/platform/errors"
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

// ScreenKinds lists every screen in menu order.
var ScreenKinds = []ScreenKind{
	ScreenLanding,
	ScreenAuth,
	ScreenOnboarding,
	ScreenDashboard,
	ScreenAdmin,
	ScreenAdminLogin,
	ScreenBlog,
	ScreenProgramDetails,
}

// ParseScreenKind accepts the canonical name, case-insensitively, with
// "-" or " " standing in for "_".
func ParseScreenKind(raw string) (ScreenKind, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for _, k := range ScreenKinds {
		if string(k) == norm {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown screen %q: %w", raw, apperrors.ErrInvalidInput)
}

// Screen is the closed set of top-level views. Only ProgramDetails carries
// data, so a selected program cannot exist outside of it.
type Screen interface {
	Kind() ScreenKind
	sealed()
}

type Landing struct{}
type Auth struct{}
type Onboarding struct{}
type Dashboard struct{}
type Admin struct{}
type AdminLogin struct{}
type Blog struct{}

type ProgramDetails struct {
	Program catalogdomain.Program
}

func (Landing) Kind() ScreenKind        { return ScreenLanding }
func (Auth) Kind() ScreenKind           { return ScreenAuth }
func (Onboarding) Kind() ScreenKind     { return ScreenOnboarding }
func (Dashboard) Kind() ScreenKind      { return ScreenDashboard }
func (Admin) Kind() ScreenKind          { return ScreenAdmin }
func (AdminLogin) Kind() ScreenKind     { return ScreenAdminLogin }
func (Blog) Kind() ScreenKind           { return ScreenBlog }
func (ProgramDetails) Kind() ScreenKind { return ScreenProgramDetails }

func (Landing) sealed()        {}
func (Auth) sealed()           {}
func (Onboarding) sealed()     {}
func (Dashboard) sealed()      {}
func (Admin) sealed()          {}
func (AdminLogin) sealed()     {}
func (Blog) sealed()           {}
func (ProgramDetails) sealed() {}
