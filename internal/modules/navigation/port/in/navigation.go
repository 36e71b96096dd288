package in

import (
	"context"

	catalogdto "careernav/internal/modules/catalog/dto"
	"careernav/internal/modules/navigation/dto"
	onboardingdto "careernav/internal/modules/onboarding/dto"
)

type Usecase interface {
	Session() dto.SessionOutput
	ParseScreen(raw string) (dto.ScreenKind, error)
	Navigate(ctx context.Context, target dto.ScreenKind) dto.SessionOutput
	CompleteOnboarding(ctx context.Context, profile onboardingdto.Profile) dto.SessionOutput
	CompleteAdminLogin(ctx context.Context, username, password string) (dto.SessionOutput, bool)
	CompleteAuth(ctx context.Context) dto.SessionOutput
	SelectProgram(ctx context.Context, program catalogdto.Program) dto.SessionOutput
	BackFromProgram(ctx context.Context) dto.SessionOutput
	Logout(ctx context.Context) dto.SessionOutput
}
