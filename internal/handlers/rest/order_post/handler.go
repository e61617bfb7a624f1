package order_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AlekSi/pointer"
	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

const dateLayout = "2006-01-02"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok || !actor.IsAdmin {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var createDTO dto.CreateOrderRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryDate, err := time.Parse(dateLayout, createDTO.DeliveryDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModify := entities.OrderModify{
		ExternalID:   pointer.To(createDTO.ExternalID),
		Region:       pointer.To(createDTO.Region),
		DeliveryDate: pointer.To(deliveryDate),
		Products:     pointer.To(createDTO.Products),
		Total:        pointer.To(createDTO.Total),
		IsPaid:       pointer.To(createDTO.IsPaid),
	}
	if createDTO.TimeWindow != "" {
		orderModify.TimeWindow = pointer.To(createDTO.TimeWindow)
	}

	orderEntity, err := h.service.RegisterOrder(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidExternalID),
			errors.Is(err, order.ErrInvalidRegion),
			errors.Is(err, order.ErrInvalidDeliveryDate):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderResponse{
		ID:           orderEntity.ID,
		ExternalID:   orderEntity.ExternalID,
		Region:       orderEntity.Region,
		DeliveryDate: orderEntity.DeliveryDate.Format(dateLayout),
		TimeWindow:   orderEntity.TimeWindow,
		IsPaid:       orderEntity.IsPaid,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
