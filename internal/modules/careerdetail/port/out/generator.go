package out

import "context"

// Generator produces the free-text career overview for a program.
type Generator interface {
	GenerateCareerOverview(ctx context.Context, programName string) (string, error)
}
