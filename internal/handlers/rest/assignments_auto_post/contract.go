//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignments_auto_post_test
package assignments_auto_post

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AutoAssign(ctx context.Context, date time.Time, timeWindow string) (*entities.AssignmentBatchResult, error)
}
