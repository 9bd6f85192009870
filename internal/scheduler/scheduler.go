// Package scheduler drives the periodic maintenance jobs. The circulation
// core only exposes idempotent entry points; cadence is deployment
// configuration, owned by the app wiring.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context)
}

type Scheduler struct {
	log  *zap.Logger
	jobs []Job
}

func New(log *zap.Logger) *Scheduler {
	return &Scheduler{log: log.Named("scheduler")}
}

func (s *Scheduler) Add(jobs ...Job) {
	s.jobs = append(s.jobs, jobs...)
}

// Start runs every job on its own ticker until ctx is cancelled. Each job
// also fires once at startup: both jobs are catch-up safe, so an immediate
// run only shortens the window after a restart.
func (s *Scheduler) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, job := range s.jobs {
		job := job
		g.Go(func() error {
			s.runJob(ctx, job)
			ticker := time.NewTicker(job.Interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					s.runJob(ctx, job)
				case <-ctx.Done():
					return nil
				}
			}
		})
	}
	return g.Wait()
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	started := time.Now()
	s.log.Debug("job start", zap.String("job", job.Name))
	job.Run(ctx)
	s.log.Info("job done", zap.String("job", job.Name), zap.Duration("took", time.Since(started)))
}
