package monitor

import (
	"context"

	"github.com/Makhuta/arr-monitor-manager/pkg/configstore"
	"github.com/Makhuta/arr-monitor-manager/pkg/logger"
)

// Observer receives the structured outcomes of an orchestration run: gate
// verdicts, successful unmonitor calls and call failures. Implementations
// must not block.
type Observer interface {
	GateEvaluated(ctx context.Context, cfg configstore.Configuration, quality QualityInfo, unmonitor bool)
	TargetUnmonitored(ctx context.Context, cfg configstore.Configuration, targetID int64)
	TargetFailed(ctx context.Context, cfg configstore.Configuration, targetID int64, err error)
}

// LogObserver writes every event to the context logger.
type LogObserver struct{}

func (LogObserver) GateEvaluated(ctx context.Context, cfg configstore.Configuration, quality QualityInfo, unmonitor bool) {
	logger.FromCtx(ctx).Infow("quality gate evaluated",
		"config", cfg.Name,
		"service", cfg.ServiceType,
		"score", quality.Score,
		"formats", quality.FormatNames,
		"unmonitor", unmonitor,
	)
}

func (LogObserver) TargetUnmonitored(ctx context.Context, cfg configstore.Configuration, targetID int64) {
	logger.FromCtx(ctx).Infow("unmonitored item",
		"config", cfg.Name,
		"service", cfg.ServiceType,
		"id", targetID,
	)
}

func (LogObserver) TargetFailed(ctx context.Context, cfg configstore.Configuration, targetID int64, err error) {
	logger.FromCtx(ctx).Warnw("failed to unmonitor item",
		"config", cfg.Name,
		"service", cfg.ServiceType,
		"id", targetID,
		"error", err,
	)
}
