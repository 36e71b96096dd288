package out

import (
	"context"

	"go.uber.org/zap"

	"careernav/internal/modules/navigation/domain"
	navigationout "careernav/internal/modules/navigation/port/out"
	apperrors "careernav/internal/platform/errors"
)

type ZapRecorder struct {
	logger *zap.Logger
}

func NewZapRecorder(logger *zap.Logger) navigationout.TransitionRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapRecorder{logger: logger.Named("navigation")}
}

func (r *ZapRecorder) Record(_ context.Context, t domain.Transition) {
	fields := []zap.Field{
		zap.String("op", string(t.Op)),
		zap.String("target", string(t.Target)),
		zap.String("from", string(t.From)),
		zap.String("to", string(t.To)),
	}
	if t.Op == domain.OpCompleteAdminLogin && t.To != domain.ScreenAdmin {
		r.logger.Info("admin login rejected", append(fields, zap.Error(apperrors.ErrInvalidCredentials))...)
		return
	}
	if t.Redirected {
		r.logger.Info("screen redirected", fields...)
		return
	}
	r.logger.Debug("screen changed", fields...)
}
