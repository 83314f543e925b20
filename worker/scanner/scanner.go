package scanner

import (
	"context"
	"time"

	"liquidator/core"
	"liquidator/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// DefaultSpec scan every five minutes
const DefaultSpec = "@every 5m"

// Config scan worker config
type Config struct {
	Spec     string
	Location string
}

// Worker periodically scans for liquidatable positions and upserts them
type Worker struct {
	worker.BaseJob
	cfg              Config
	scanner          core.IScanner
	liquidationStore core.ILiquidationStore
}

// New new scan worker
func New(cfg Config, scanner core.IScanner, liquidationStore core.ILiquidationStore) *Worker {
	if cfg.Spec == "" {
		cfg.Spec = DefaultSpec
	}

	w := &Worker{
		cfg:              cfg,
		scanner:          scanner,
		liquidationStore: liquidationStore,
	}
	w.OnWork = w.onWork

	return w
}

// Run schedule scans until ctx is done
func (w *Worker) Run(ctx context.Context) error {
	loc := time.Local
	if w.cfg.Location != "" {
		l, err := time.LoadLocation(w.cfg.Location)
		if err != nil {
			return err
		}
		loc = l
	}

	if err := w.Schedule(ctx, w.cfg.Spec, cron.WithLocation(loc)); err != nil {
		return err
	}

	logger.FromContext(ctx).WithField("worker", "scanner").Infoln("scan", w.cfg.Spec)
	return w.Start(ctx)
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "scanner")

	items, err := w.scanner.Liquidatable(ctx)
	if err != nil {
		log.WithError(err).Errorln("scan liquidatable positions")
		return err
	}

	if err := w.liquidationStore.UpsertAll(ctx, core.NewLiquidations(items)); err != nil {
		log.WithError(err).Errorln("upsert liquidations")
		return err
	}

	log.Infof("upserted %d liquidations", len(items))
	return nil
}
