package processor

import (
	"context"
	"log"

	"campuscoffee/background-worker-service/internal/app/background-worker/service"
	"campuscoffee/pkg/logger"

	"github.com/robfig/cron/v3"
)

// CronScheduler запускает периодическую сверку статистики
type CronScheduler struct {
	cron         *cron.Cron
	reconcileSvc service.ReconciliationServiceInterface
}

func NewCronScheduler(reconcileSvc service.ReconciliationServiceInterface) *CronScheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &CronScheduler{
		cron:         c,
		reconcileSvc: reconcileSvc,
	}
}

// Start регистрирует задание и выполняет первичную сверку сразу,
// чтобы после рестарта не ждать ночи с потенциально разъехавшимися счётчиками
func (s *CronScheduler) Start(ctx context.Context, schedule string) error {
	logger.Info().Str("schedule", schedule).Msg("Starting cron scheduler")

	_, err := s.cron.AddFunc(schedule, func() {
		logger.Info().Msg("Cron job triggered: reconciling review stats")

		if err := s.reconcileSvc.Reconcile(ctx); err != nil {
			logger.Error().Err(err).Msg("Failed to reconcile review stats")
		} else {
			logger.Info().Msg("Cron job completed: review stats reconciled")
		}
	})

	if err != nil {
		return err
	}

	s.cron.Start()

	logger.Info().Msg("Performing initial review stats reconciliation")
	if err := s.reconcileSvc.Reconcile(ctx); err != nil {
		logger.Warn().Err(err).Msg("Initial reconciliation failed")
	}

	return nil
}

func (s *CronScheduler) Stop() {
	logger.Info().Msg("Stopping cron scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Cron scheduler stopped")
}

func (s *CronScheduler) GetEntries() []cron.Entry {
	return s.cron.Entries()
}
