package assignment_autoplan

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Service interface {
	AutoAssign(ctx context.Context, date time.Time, timeWindow string) (*entities.AssignmentBatchResult, error)
}

// AssignmentAutoplan периодически прогоняет автоназначение на текущий день.
// Ручной запуск через REST остается для админа, фоновый прогон подбирает
// заказы, пришедшие между ручными запусками.
type AssignmentAutoplan struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAssignmentAutoplan(log logger.Logger, service Service, interval time.Duration) *AssignmentAutoplan {
	return &AssignmentAutoplan{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AssignmentAutoplan) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentAutoplan) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	result, err := a.service.AutoAssign(ctxWithTimeout, time.Now().UTC(), entities.TimeWindowAll)
	if err != nil {
		return err
	}

	if len(result.Assigned) > 0 || len(result.Errors) > 0 {
		a.log.With(
			logger.NewField("assigned", len(result.Assigned)),
			logger.NewField("skipped", len(result.Skipped)),
			logger.NewField("failed", len(result.Errors)),
		).Info("assignment autoplan")
	}

	return nil
}

func (a *AssignmentAutoplan) Info() string {
	return "assignment autoplan"
}
