package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/learnpath"
	"github.com/abhisek/pathfinder/internal/pathsession"
)

// withRetries runs first, then re-issues the failed request through the
// session up to retries more times while the failure is retryable.
func withRetries(ctx context.Context, sess *pathsession.Session, logger *zap.Logger, retries int,
	first func(context.Context) (*learnpath.Plan, error)) (*learnpath.Plan, error) {
	plan, err := first(ctx)
	for attempt := 1; err != nil && attempt <= retries && learnpath.IsRetryable(err); attempt++ {
		logger.Info("retrying plan request", zap.Int("attempt", attempt), zap.Error(err))
		plan, err = sess.Retry(ctx)
	}
	return plan, err
}
