package out

import (
	"context"
	"fmt"
	"strings"

	careerdetailout "careernav/internal/modules/careerdetail/port/out"
	catalogin "careernav/internal/modules/catalog/port/in"
	apperrors "careernav/internal/platform/errors"
)

// OfflineGenerator writes the overview from catalog data so the flow works
// without an API key.
type OfflineGenerator struct {
	catalog catalogin.Usecase
}

func NewOfflineGenerator(catalog catalogin.Usecase) careerdetailout.Generator {
	return &OfflineGenerator{catalog: catalog}
}

func (g *OfflineGenerator) GenerateCareerOverview(ctx context.Context, programName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	program, err := g.catalog.GetProgram(ctx, programName)
	if err != nil {
		return "", fmt.Errorf("offline overview for %q: %w: %w", programName, apperrors.ErrGenerationFailed, err)
	}

	var b strings.Builder
	b.WriteString("**Career Description**\n")
	b.WriteString(program.Description)
	b.WriteString("\n\n**Key Skills**\n")
	for _, outcome := range program.LearningOutcomes {
		b.WriteString("- ")
		b.WriteString(outcome)
		b.WriteString("\n")
	}
	b.WriteString("\n**Future Prospects**\n")
	if len(program.PotentialJobs) == 0 {
		fmt.Fprintf(&b, "Completing %s (NSQF level %d) opens further learning paths with %s.", program.Name, program.NSQF, program.Provider)
	} else {
		fmt.Fprintf(&b, "Graduates of %s (NSQF level %d) can work as %s. Demand for these roles keeps growing across India.",
			program.Name, program.NSQF, strings.Join(program.PotentialJobs, ", "))
	}
	return b.String(), nil
}
