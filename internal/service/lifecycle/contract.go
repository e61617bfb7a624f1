//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Assignment, error)
	Update(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

// Notifier — внешняя CRM-синхронизация. Вызывается только после коммита,
// ошибки не откатывают смену статуса.
type Notifier interface {
	NotifyOrderDelivered(ctx context.Context, order *entities.Order, assignment *entities.Assignment) error
	NotifyPaymentStatusChange(ctx context.Context, order *entities.Order, isPaid bool) error
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
