//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=autoassign_test
package autoassign

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type AssignmentRepository interface {
	// UpsertAssigned пишет назначение по натуральному ключу (заказ, дата).
	// Запись в защищенном статусе не перезаписывается — возвращается
	// ErrProtectedRecord.
	UpsertAssigned(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error)
	CountActiveByVehicle(ctx context.Context, date time.Time) (map[int64]int, error)
}

type OrderRepository interface {
	// OrdersForAutoAssign возвращает заказы дня без назначения либо с
	// назначением, все еще стоящим в статусе assigned, по времени создания.
	OrdersForAutoAssign(ctx context.Context, date time.Time, timeWindow string) ([]entities.Order, error)
}

type VehicleRepository interface {
	GetAssignableVehicles(ctx context.Context) ([]entities.AssignableVehicle, error)
}

type Resolver interface {
	ResolveVehicleForRegion(ctx context.Context, region string, date time.Time) (*entities.VehicleRef, error)
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
