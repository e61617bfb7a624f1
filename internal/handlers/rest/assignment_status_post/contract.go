//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_status_post_test
package assignment_status_post

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
	Transition(
		ctx context.Context,
		assignmentID int64,
		target entities.AssignmentStatusType,
		actor entities.Actor,
		notes string,
	) (*entities.Assignment, error)
}

type RecoveryService interface {
	HandleBreakdown(ctx context.Context, driverID, brokenVehicleID int64, date time.Time) (*entities.RecoveryOutcome, error)
}
