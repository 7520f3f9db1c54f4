package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the periodic auto-archive job.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	job      func() error
	logger   *zap.Logger
}

// New builds a scheduler that runs job on the given five-field cron
// schedule. An empty schedule disables the job.
func New(schedule string, job func() error, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		schedule: schedule,
		job:      job,
		logger:   logger,
	}
}

func (s *Scheduler) Start() error {
	if s.schedule == "" {
		s.logger.Info("auto-archive disabled, no schedule configured")
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		s.logger.Info("running scheduled report archive")
		if err := s.job(); err != nil {
			s.logger.Error("scheduled archive failed", zap.Error(err))
			return
		}
		s.logger.Info("scheduled archive completed")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("auto-archive scheduled", zap.String("schedule", s.schedule))
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
