package usecase

import (
	"context"
	"fmt"
	"strings"

	"careernav/internal/modules/careerdetail/domain"
	"careernav/internal/modules/careerdetail/dto"
	careerdetailin "careernav/internal/modules/careerdetail/port/in"
	"careernav/internal/modules/careerdetail/service"
	apperrors "careernav/internal/platform/errors"
	"careernav/internal/platform/id"
	"careernav/internal/platform/markdown"
)

// Flow owns the single career-detail fetch. State changes happen on the
// caller's goroutine; only the function returned by Open runs elsewhere.
type Flow struct {
	svc     *service.FetchService
	ids     id.Generator
	tracker domain.Tracker
	cancel  context.CancelFunc
}

func NewFlow(svc *service.FetchService, ids id.Generator) careerdetailin.Usecase {
	return &Flow{svc: svc, ids: ids}
}

func (f *Flow) State() dto.FetchState {
	return toFetchState(f.tracker.State())
}

// Open supersedes any in-flight request. Re-opening the same program always
// fetches again.
func (f *Flow) Open(ctx context.Context, programName string) (dto.FetchState, func() dto.Result) {
	f.stop()
	reqCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	req := f.tracker.Open(programName, f.ids.New(), f.svc.Now())
	run := func() dto.Result {
		return toResult(f.svc.Fetch(reqCtx, req))
	}
	return toFetchState(f.tracker.State()), run
}

func (f *Flow) Apply(result dto.Result) (dto.FetchState, bool) {
	applied := f.tracker.Apply(domain.Result{
		Generation: result.Generation,
		Text:       result.Text,
		Err:        result.Err,
	}, f.svc.Now())
	if applied {
		f.stop()
	}
	return toFetchState(f.tracker.State()), applied
}

func (f *Flow) Close() dto.FetchState {
	f.stop()
	f.tracker.Close()
	return toFetchState(f.tracker.State())
}

// Describe runs one full fetch synchronously.
func (f *Flow) Describe(ctx context.Context, programName string) (dto.DescribeOutput, error) {
	programName = strings.TrimSpace(programName)
	if programName == "" {
		return dto.DescribeOutput{}, fmt.Errorf("program name is required: %w", apperrors.ErrInvalidInput)
	}
	_, run := f.Open(ctx, programName)
	state, _ := f.Apply(run())
	return dto.DescribeOutput{State: state, Rendered: f.Format(state.Text)}, nil
}

func (f *Flow) Format(text string) dto.Rendered {
	blocks := markdown.Classify(text)
	out := dto.Rendered{Blocks: make([]dto.Block, 0, len(blocks)), Markdown: markdown.Compose(blocks)}
	for _, b := range blocks {
		out.Blocks = append(out.Blocks, dto.Block{Kind: b.Kind.String(), Text: b.Text})
	}
	return out
}

func (f *Flow) stop() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func toFetchState(s domain.State) dto.FetchState {
	return dto.FetchState{
		ProgramName: s.ProgramName,
		Status:      string(s.Status),
		Text:        s.Text,
		Cause:       s.Cause,
		Generation:  s.Generation,
		RequestID:   s.RequestID,
		StartedAt:   s.StartedAt,
		FinishedAt:  s.FinishedAt,
	}
}

func toResult(r domain.Result) dto.Result {
	return dto.Result{Generation: r.Generation, Text: r.Text, Err: r.Err}
}
