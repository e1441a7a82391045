package worker

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/spec-kit/inquiry-console/internal/config"
	"github.com/spec-kit/inquiry-console/internal/service"
)

// AutoMailWorker runs the enabled automatic campaigns on a cron schedule.
type AutoMailWorker struct {
	cron   *cron.Cron
	mail   *service.MailService
	logger *zap.Logger
	spec   string
}

// NewAutoMailWorker constructs the worker; Start must be called to schedule.
func NewAutoMailWorker(cfg config.SchedulerConfig, mail *service.MailService, logger *zap.Logger) *AutoMailWorker {
	return &AutoMailWorker{
		cron:   cron.New(),
		mail:   mail,
		logger: logger,
		spec:   cfg.AutoSendSpec,
	}
}

// Start registers the cron entry and launches the scheduler.
func (w *AutoMailWorker) Start() error {
	if _, err := w.cron.AddFunc(w.spec, w.runOnce); err != nil {
		return err
	}
	w.cron.Start()
	w.logger.Info("auto mail worker started", zap.String("spec", w.spec))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (w *AutoMailWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

func (w *AutoMailWorker) runOnce() {
	results := w.mail.RunAuto(context.Background())
	w.logger.Info("auto campaign pass finished", zap.Int("batches", len(results)))
}
