// Package notify публикует события жизненного цикла во внешние топики:
// CRM-синхронизацию заказов и общий канал обновлений назначений.
// Вызывается после коммита, ошибки у вызывающих best-effort.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

const dateLayout = "2006-01-02"

type Topics struct {
	OrderDelivered      string
	PaymentStatus       string
	AssignmentBroadcast string
}

type Gateway struct {
	log      gatewayLogger
	producer Producer
	topics   Topics
}

func New(log gatewayLogger, producer Producer, topics Topics) *Gateway {
	return &Gateway{
		log:      log,
		producer: producer,
		topics:   topics,
	}
}

type orderDeliveredEvent struct {
	ExternalID  string `json:"external_id"`
	OrderID     int64  `json:"order_id"`
	VehicleID   *int64 `json:"vehicle_id,omitempty"`
	DriverID    *int64 `json:"driver_id,omitempty"`
	DeliveredAt string `json:"delivered_at"`
}

func (g *Gateway) NotifyOrderDelivered(ctx context.Context, order *entities.Order, assignment *entities.Assignment) error {
	event := orderDeliveredEvent{
		ExternalID: order.ExternalID,
		OrderID:    order.ID,
		VehicleID:  assignment.VehicleID,
		DriverID:   assignment.DriverID,
	}
	if assignment.CompletedAt != nil {
		event.DeliveredAt = assignment.CompletedAt.UTC().Format(time.RFC3339)
	}

	return g.send(g.topics.OrderDelivered, order.ExternalID, event)
}

type paymentStatusEvent struct {
	ExternalID string `json:"external_id"`
	OrderID    int64  `json:"order_id"`
	IsPaid     bool   `json:"is_paid"`
}

func (g *Gateway) NotifyPaymentStatusChange(ctx context.Context, order *entities.Order, isPaid bool) error {
	event := paymentStatusEvent{
		ExternalID: order.ExternalID,
		OrderID:    order.ID,
		IsPaid:     isPaid,
	}

	return g.send(g.topics.PaymentStatus, order.ExternalID, event)
}

type broadcastEvent struct {
	Date    string      `json:"date"`
	Payload interface{} `json:"payload"`
}

// BroadcastUpdateForDate рассылает обновление всем, кто смотрит на день:
// ключ партиционирования — дата, порядок внутри дня сохраняется.
func (g *Gateway) BroadcastUpdateForDate(ctx context.Context, date time.Time, payload interface{}) error {
	day := date.UTC().Format(dateLayout)
	event := broadcastEvent{
		Date:    day,
		Payload: payload,
	}

	return g.send(g.topics.AssignmentBroadcast, day, event)
}

func (g *Gateway) send(topic, key string, event interface{}) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for %s: %w", topic, err)
	}

	if err := g.producer.Send(topic, key, value); err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}
	return nil
}
