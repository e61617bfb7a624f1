//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=recovery_test
package recovery

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type VehicleRepository interface {
	Deactivate(ctx context.Context, vehicleID int64) error
	DeactivateDriverLink(ctx context.Context, driverID, vehicleID int64) error
	CreateDriverLink(ctx context.Context, driverID, vehicleID int64, isPrimary bool) error
	// GetSpareVehicle возвращает первую активную машину без активной связки
	// с водителем. Близость не учитывается — выбор намеренно простой.
	GetSpareVehicle(ctx context.Context) (*entities.Vehicle, error)
}

type AssignmentRepository interface {
	MigrateActiveToVehicle(ctx context.Context, driverID int64, date time.Time, vehicleID int64) (int64, error)
}

type DriverService interface {
	UpdateDriverStatus(ctx context.Context, driverID int64, status entities.DriverStatusType) (*entities.Driver, error)
}

type Broadcaster interface {
	BroadcastUpdateForDate(ctx context.Context, date time.Time, payload interface{}) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
