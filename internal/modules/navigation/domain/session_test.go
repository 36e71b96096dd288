package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	catalogdomain "careernav/internal/modules/catalog/domain"
	onboardingdomain "careernav/internal/modules/onboarding/domain"
	apperrors "careernav/internal/platform/errors"
)

func testProgram() catalogdomain.Program {
	return catalogdomain.Program{
		ID:               "P01",
		Name:             "Certified Data Analyst",
		NSQF:             5,
		LearningOutcomes: []string{"SQL"},
		PotentialJobs:    []string{"Data Analyst"},
	}
}

func testProfile() onboardingdomain.Profile {
	return onboardingdomain.Profile{Name: "Ananya", Education: "Diploma", Stream: "Civil", Skills: []string{"CAD"}}
}

func TestNewSessionDefaults(t *testing.T) {
	t.Parallel()
	s := NewSession()
	require.Equal(t, ScreenLanding, s.Screen().Kind())
	require.False(t, s.HasProfile())
	require.False(t, s.AdminAuthenticated())
}

func TestNavigateGates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		setup    func(*Session)
		target   ScreenKind
		want     ScreenKind
		rerouted bool
	}{
		{"admin without login", nil, ScreenAdmin, ScreenAdminLogin, true},
		{"admin after login", func(s *Session) { s.CompleteAdminLogin(DefaultCredentials, "admin", "password") }, ScreenAdmin, ScreenAdmin, false},
		{"dashboard without profile", nil, ScreenDashboard, ScreenAuth, true},
		{"dashboard with profile", func(s *Session) { s.CompleteOnboarding(testProfile()) }, ScreenDashboard, ScreenDashboard, false},
		{"program details without login", nil, ScreenProgramDetails, ScreenAdminLogin, true},
		{"program details as admin", func(s *Session) { s.CompleteAdminLogin(DefaultCredentials, "admin", "password") }, ScreenProgramDetails, ScreenAdmin, true},
		{"blog", nil, ScreenBlog, ScreenBlog, false},
		{"onboarding", nil, ScreenOnboarding, ScreenOnboarding, false},
		{"admin login directly", nil, ScreenAdminLogin, ScreenAdminLogin, false},
		{"unknown kind", nil, ScreenKind("settings"), ScreenLanding, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewSession()
			if tt.setup != nil {
				tt.setup(&s)
			}
			tr := s.Navigate(tt.target)
			require.Equal(t, tt.want, s.Screen().Kind())
			require.Equal(t, tt.want, tr.To)
			require.Equal(t, tt.rerouted, tr.Redirected)
			require.Equal(t, OpNavigate, tr.Op)
		})
	}
}

func TestNavigateNeverYieldsProgramDetails(t *testing.T) {
	t.Parallel()
	s := NewSession()
	s.SelectProgram(testProgram())
	require.Equal(t, ScreenProgramDetails, s.Screen().Kind())

	s.Navigate(ScreenProgramDetails)
	require.NotEqual(t, ScreenProgramDetails, s.Screen().Kind())
}

func TestSelectProgramCarriesProgramInScreen(t *testing.T) {
	t.Parallel()
	s := NewSession()
	p := testProgram()
	s.SelectProgram(p)
	p.LearningOutcomes[0] = "changed"

	details, ok := s.Screen().(ProgramDetails)
	require.True(t, ok)
	require.Equal(t, "Certified Data Analyst", details.Program.Name)
	require.Equal(t, []string{"SQL"}, details.Program.LearningOutcomes, "caller's program is not aliased")
}

func TestAdminLogin(t *testing.T) {
	t.Parallel()
	s := NewSession()
	s.Navigate(ScreenAdmin)

	for _, bad := range [][2]string{{"admin", "wrong"}, {"root", "password"}, {"", ""}, {"Admin", "password"}} {
		_, ok := s.CompleteAdminLogin(DefaultCredentials, bad[0], bad[1])
		require.False(t, ok)
		require.Equal(t, ScreenAdminLogin, s.Screen().Kind())
		require.False(t, s.AdminAuthenticated())
	}

	tr, ok := s.CompleteAdminLogin(DefaultCredentials, "admin", "password")
	require.True(t, ok)
	require.Equal(t, ScreenAdmin, tr.To)
	require.True(t, s.AdminAuthenticated())
}

func TestCompleteAuthAlwaysGoesToOnboarding(t *testing.T) {
	t.Parallel()
	s := NewSession()
	s.CompleteOnboarding(testProfile())
	s.CompleteAuth()
	require.Equal(t, ScreenOnboarding, s.Screen().Kind())
	require.True(t, s.HasProfile())
}

func TestProfileIsCopied(t *testing.T) {
	t.Parallel()
	s := NewSession()
	p := testProfile()
	s.CompleteOnboarding(p)
	p.Skills[0] = "mutated"

	got, ok := s.Profile()
	require.True(t, ok)
	require.Equal(t, []string{"CAD"}, got.Skills)
	got.Skills[0] = "mutated"
	again, _ := s.Profile()
	require.Equal(t, "CAD", again.Skills[0])
}

func TestBackFromProgramUsesAdminGate(t *testing.T) {
	t.Parallel()
	s := NewSession()
	s.SelectProgram(testProgram())
	s.BackFromProgram()
	require.Equal(t, ScreenAdminLogin, s.Screen().Kind())

	s.CompleteAdminLogin(DefaultCredentials, "admin", "password")
	s.SelectProgram(testProgram())
	s.BackFromProgram()
	require.Equal(t, ScreenAdmin, s.Screen().Kind())
}

func TestLogoutFromAnyState(t *testing.T) {
	t.Parallel()
	setups := []func(*Session){
		func(*Session) {},
		func(s *Session) { s.CompleteOnboarding(testProfile()) },
		func(s *Session) { s.CompleteAdminLogin(DefaultCredentials, "admin", "password") },
		func(s *Session) { s.SelectProgram(testProgram()) },
		func(s *Session) {
			s.CompleteOnboarding(testProfile())
			s.CompleteAdminLogin(DefaultCredentials, "admin", "password")
			s.Navigate(ScreenBlog)
		},
	}
	for _, setup := range setups {
		s := NewSession()
		setup(&s)
		tr := s.Logout()
		require.Equal(t, ScreenLanding, s.Screen().Kind())
		require.False(t, s.HasProfile())
		require.False(t, s.AdminAuthenticated())
		require.False(t, tr.Redirected)
	}
}

func TestParseScreenKind(t *testing.T) {
	t.Parallel()
	for _, k := range ScreenKinds {
		got, err := ParseScreenKind(string(k))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	got, err := ParseScreenKind(" Admin-Login ")
	require.NoError(t, err)
	require.Equal(t, ScreenAdminLogin, got)
	got, err = ParseScreenKind("program details")
	require.NoError(t, err)
	require.Equal(t, ScreenProgramDetails, got)

	_, err = ParseScreenKind("settings")
	require.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestCredentialsMatch(t *testing.T) {
	t.Parallel()
	require.True(t, DefaultCredentials.Match("admin", "password"))
	require.False(t, DefaultCredentials.Match("admin", "password "))
	require.False(t, Credentials{}.Match("admin", "password"))
	require.True(t, Credentials{}.Match("", ""))
}
