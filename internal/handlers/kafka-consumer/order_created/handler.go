package order_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"dispatch/internal/entities"
	orderservice "dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

const dateLayout = "2006-01-02"

// createdEvent — событие CRM о новом заказе. external_id идемпотентен:
// повторная доставка того же события не создает дубликата.
type createdEvent struct {
	ExternalID   string `json:"external_id"`
	Region       string `json:"region"`
	DeliveryDate string `json:"delivery_date"`
	TimeWindow   string `json:"time_window"`
	Products     string `json:"products"`
	Total        int64  `json:"total"`
	IsPaid       bool   `json:"is_paid"`
}

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.created: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.created: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event createdEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("external_id", event.ExternalID),
		logger.NewField("region", event.Region),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.created processing")

	deliveryDate, err := time.Parse(dateLayout, event.DeliveryDate)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("order.created handler received bad delivery date")
		sess.MarkMessage(message, "")
		return false
	}

	orderModify := entities.OrderModify{
		ExternalID:   &event.ExternalID,
		Region:       &event.Region,
		DeliveryDate: &deliveryDate,
		Products:     &event.Products,
		Total:        &event.Total,
		IsPaid:       &event.IsPaid,
	}
	if event.TimeWindow != "" {
		orderModify.TimeWindow = &event.TimeWindow
	}

	order, err := h.orderService.RegisterOrder(ctx, orderModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrMissingRequiredFields),
			errors.Is(err, orderservice.ErrInvalidExternalID),
			errors.Is(err, orderservice.ErrInvalidRegion),
			errors.Is(err, orderservice.ErrInvalidDeliveryDate):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler received invalid order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.created handler failed to register order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("external_id", order.ExternalID),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.created: processed")

	sess.MarkMessage(message, "")
	return false
}
