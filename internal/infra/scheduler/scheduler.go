package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// IntervalSleeper blocks for a fixed delay between poll cycles. The delay
// follows cron constant-delay rules: truncated to whole seconds, one second
// minimum.
type IntervalSleeper struct {
	schedule cron.ConstantDelaySchedule
	logger   logrus.FieldLogger
}

func NewIntervalSleeper(period time.Duration, logger logrus.FieldLogger) *IntervalSleeper {
	return &IntervalSleeper{
		schedule: cron.Every(period),
		logger:   logger,
	}
}

// Period returns the effective delay.
func (s *IntervalSleeper) Period() time.Duration {
	return s.schedule.Delay
}

// Wait sleeps for the full period or until ctx is done.
func (s *IntervalSleeper) Wait(ctx context.Context) error {
	s.logger.WithField("next_poll", time.Now().Add(s.schedule.Delay).Format(time.RFC3339)).
		Debug("Sleeping until next poll")

	timer := time.NewTimer(s.schedule.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
