package assignments_auto_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/dto"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/autoassign"
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

	var requestDTO dto.AutoAssignRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	date, err := time.Parse(dateLayout, requestDTO.Date)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.AutoAssign(r.Context(), date, requestDTO.TimeWindow)
	if err != nil {
		switch {
		case errors.Is(err, autoassign.ErrInvalidDate),
			errors.Is(err, autoassign.ErrInvalidTimeWindow):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AutoAssignResponse{
		Assigned:     result.Assigned,
		VehicleLoads: result.VehicleLoads,
		Skipped:      result.Skipped,
	}
	if len(result.Errors) > 0 {
		response.Errors = make(map[int64]string, len(result.Errors))
		for orderID, orderErr := range result.Errors {
			response.Errors[orderID] = orderErr.Error()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
