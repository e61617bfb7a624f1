package order

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/schedule"
)

type Order struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		txManager:  txManager,
	}
}

// RegisterOrder принимает заказ из вебхука или Kafka. Повторная доставка
// того же события — штатный случай, возвращается уже созданный заказ.
func (s *Order) RegisterOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ExternalID == nil ||
		orderModify.Region == nil ||
		orderModify.DeliveryDate == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidExternalID(*orderModify.ExternalID) {
		return nil, ErrInvalidExternalID
	}
	if !isValidRegion(*orderModify.Region) {
		return nil, ErrInvalidRegion
	}
	if orderModify.DeliveryDate.IsZero() {
		return nil, ErrInvalidDeliveryDate
	}

	day := schedule.Day(*orderModify.DeliveryDate)
	orderModify.DeliveryDate = &day

	var registered *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.repository.CreateIfAbsent(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		registered = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return registered, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return found, nil
}

func (s *Order) OrdersForDate(ctx context.Context, date time.Time, timeWindow string) ([]entities.Order, error) {
	if date.IsZero() {
		return nil, ErrInvalidDeliveryDate
	}
	if timeWindow == "" {
		timeWindow = entities.TimeWindowAll
	}

	orders, err := s.repository.GetForDate(ctx, schedule.Day(date), timeWindow)
	if err != nil {
		return nil, fmt.Errorf("orders for date: %w", err)
	}

	return orders, nil
}
