package worker

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"
)

// Worker a long running job
type Worker interface {
	Run(ctx context.Context) error
}

type OnWork func(ctx context.Context) error

// BaseJob runs OnWork on a cron schedule, skipping ticks while a run is in progress
type BaseJob struct {
	Cron    *cron.Cron
	OnWork  OnWork
	running sync.Mutex
}

// Schedule create the cron and register spec
func (job *BaseJob) Schedule(ctx context.Context, spec string, opts ...cron.Option) error {
	job.Cron = cron.New(opts...)
	_, err := job.Cron.AddFunc(spec, func() {
		_ = job.Tick(ctx)
	})
	return err
}

// Tick run OnWork once unless a run is already in progress
func (job *BaseJob) Tick(ctx context.Context) error {
	if !job.running.TryLock() {
		return nil
	}
	defer job.running.Unlock()

	return job.OnWork(ctx)
}

// Start start the cron and block until ctx is done
func (job *BaseJob) Start(ctx context.Context) error {
	job.Cron.Start()
	<-ctx.Done()
	<-job.Cron.Stop().Done()
	return nil
}
