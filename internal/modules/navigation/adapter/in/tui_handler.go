package in

import (
	"context"

	catalogdto "careernav/internal/modules/catalog/dto"
	"careernav/internal/modules/navigation/dto"
	navigationin "careernav/internal/modules/navigation/port/in"
	onboardingdto "careernav/internal/modules/onboarding/dto"
)

type TUIHandler struct {
	usecase navigationin.Usecase
}

func NewTUIHandler(usecase navigationin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Session() dto.SessionOutput {
	return h.usecase.Session()
}

// Go parses free text, as typed in the command palette, before navigating.
func (h TUIHandler) Go(ctx context.Context, raw string) (dto.SessionOutput, error) {
	kind, err := h.usecase.ParseScreen(raw)
	if err != nil {
		return h.usecase.Session(), err
	}
	return h.usecase.Navigate(ctx, kind), nil
}

func (h TUIHandler) Navigate(ctx context.Context, target dto.ScreenKind) dto.SessionOutput {
	return h.usecase.Navigate(ctx, target)
}

func (h TUIHandler) CompleteOnboarding(ctx context.Context, profile onboardingdto.Profile) dto.SessionOutput {
	return h.usecase.CompleteOnboarding(ctx, profile)
}

func (h TUIHandler) CompleteAdminLogin(ctx context.Context, username, password string) (dto.SessionOutput, bool) {
	return h.usecase.CompleteAdminLogin(ctx, username, password)
}

func (h TUIHandler) CompleteAuth(ctx context.Context) dto.SessionOutput {
	return h.usecase.CompleteAuth(ctx)
}

func (h TUIHandler) SelectProgram(ctx context.Context, program catalogdto.Program) dto.SessionOutput {
	return h.usecase.SelectProgram(ctx, program)
}

func (h TUIHandler) BackFromProgram(ctx context.Context) dto.SessionOutput {
	return h.usecase.BackFromProgram(ctx)
}

func (h TUIHandler) Logout(ctx context.Context) dto.SessionOutput {
	return h.usecase.Logout(ctx)
}
