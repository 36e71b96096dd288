package out

import (
	"context"

	"careernav/internal/modules/navigation/domain"
)

// TransitionRecorder observes every applied session change.
type TransitionRecorder interface {
	Record(ctx context.Context, t domain.Transition)
}
