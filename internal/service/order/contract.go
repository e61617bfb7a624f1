//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	// CreateIfAbsent вставляет заказ по внешнему ключу, повторная доставка
	// того же события возвращает существующую запись.
	CreateIfAbsent(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByExternalID(ctx context.Context, externalID string) (*entities.Order, error)
	GetForDate(ctx context.Context, date time.Time, timeWindow string) ([]entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
