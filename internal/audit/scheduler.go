package audit

import (
	"context"
	"fmt"
	"time"

	"chaseplus/pkg/logger"

	"github.com/robfig/cron/v3"
)

const runTimeout = 10 * time.Minute

type Scheduler struct {
	cron    *cron.Cron
	auditor *Auditor
	logger  *logger.Logger
}

// NewScheduler registers the audit on a standard cron spec or descriptor such as "@daily".
func NewScheduler(spec string, auditor *Auditor, log *logger.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		auditor: auditor,
		logger:  log,
	}
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("invalid audit schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("[AUDIT CRON] Scheduler started")
}

// Stop waits for a running audit to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := s.auditor.Run(ctx); err != nil {
		s.logger.Error("[AUDIT CRON] Audit failed: %v", err)
	}
}
