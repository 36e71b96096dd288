package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"careernav/internal/modules/careerdetail/domain"
	careerdetailout "careernav/internal/modules/careerdetail/port/out"
	"careernav/internal/platform/clock"
	apperrors "careernav/internal/platform/errors"
)

type FetchService struct {
	generator careerdetailout.Generator
	clock     clock.Clock
	timeout   time.Duration
	logger    *zap.Logger
}

func NewFetchService(generator careerdetailout.Generator, clk clock.Clock, timeout time.Duration, logger *zap.Logger) *FetchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FetchService{generator: generator, clock: clk, timeout: timeout, logger: logger.Named("careerdetail")}
}

func (s *FetchService) Now() time.Time { return s.clock.Now() }

// Fetch runs one generator call for req. Failures are returned inside the
// Result; callers never see a Go error.
func (s *FetchService) Fetch(ctx context.Context, req domain.Request) domain.Result {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	log := s.logger.With(
		zap.String("request_id", req.RequestID),
		zap.Uint64("generation", req.Generation),
		zap.String("program", req.ProgramName),
	)
	start := s.clock.Now()
	log.Debug("career details requested")

	text, err := s.generator.GenerateCareerOverview(ctx, req.ProgramName)
	elapsed := zap.Duration("elapsed", clock.Elapsed(s.clock, start))
	switch {
	case errors.Is(err, context.Canceled):
		log.Debug("career details request cancelled", elapsed)
		return domain.Result{Generation: req.Generation, Err: err}
	case err != nil:
		log.Warn("career details request failed", elapsed, zap.Error(err))
		if !errors.Is(err, apperrors.ErrGenerationFailed) {
			err = fmt.Errorf("%w: %w", apperrors.ErrGenerationFailed, err)
		}
		return domain.Result{Generation: req.Generation, Err: err}
	case domain.IsFailureText(text):
		log.Warn("generator reported failure text", elapsed)
	default:
		log.Info("career details received", elapsed, zap.Int("bytes", len(text)))
	}
	return domain.Result{Generation: req.Generation, Text: text}
}
