package out

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"careernav/internal/modules/careerdetail/domain"
	careerdetailout "careernav/internal/modules/careerdetail/port/out"
	apperrors "careernav/internal/platform/errors"
)

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (careerdetailout.Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key is required: %w", apperrors.ErrInvalidInput)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateCareerOverview(ctx context.Context, programName string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(domain.Prompt(programName)), nil)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("gemini generate content: %w: %w", apperrors.ErrGenerationFailed, err)
	}
	text := res.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned empty text: %w", apperrors.ErrGenerationFailed)
	}
	return text, nil
}
