//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_resolve_get_test
package schedule_resolve_get

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
	ResolveVehicleForRegion(ctx context.Context, region string, date time.Time) (*entities.VehicleRef, error)
}
