package in

import (
	"context"

	"careernav/internal/modules/careerdetail/dto"
	careerdetailin "careernav/internal/modules/careerdetail/port/in"
)

type CLIHandler struct {
	usecase careerdetailin.Usecase
}

func NewCLIHandler(usecase careerdetailin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Describe(ctx context.Context, programName string) (dto.DescribeOutput, error) {
	return h.usecase.Describe(ctx, programName)
}
