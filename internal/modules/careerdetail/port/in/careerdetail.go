package in

import (
	"context"

	"careernav/internal/modules/careerdetail/dto"
)

type Usecase interface {
	State() dto.FetchState
	// Open starts a fetch and returns the blocking call that performs it.
	// The call must run off the UI loop; feed its result to Apply.
	Open(ctx context.Context, programName string) (dto.FetchState, func() dto.Result)
	Apply(result dto.Result) (dto.FetchState, bool)
	Close() dto.FetchState
	Describe(ctx context.Context, programName string) (dto.DescribeOutput, error)
	Format(text string) dto.Rendered
}
