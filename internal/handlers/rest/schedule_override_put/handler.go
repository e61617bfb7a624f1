package schedule_override_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AlekSi/pointer"
	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/schedule"
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

	var overrideDTO dto.UpsertOverrideRequest
	err := json.NewDecoder(r.Body).Decode(&overrideDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	date, err := time.Parse(dateLayout, overrideDTO.Date)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	overrideModify := entities.RegionOverrideModify{
		Date:      pointer.To(date),
		Region:    pointer.To(overrideDTO.Region),
		VehicleID: pointer.To(overrideDTO.VehicleID),
		CreatedBy: pointer.To(actor.Login),
	}
	if overrideDTO.Notes != "" {
		overrideModify.Notes = pointer.To(overrideDTO.Notes)
	}

	overrideEntity, err := h.service.UpsertOverride(r.Context(), overrideModify)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMissingRequiredFields),
			errors.Is(err, schedule.ErrInvalidRegion),
			errors.Is(err, schedule.ErrInvalidDate),
			errors.Is(err, schedule.ErrInvalidVehicleID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrVehicleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, schedule.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OverrideResponse{
		ID:        overrideEntity.ID,
		Date:      overrideEntity.Date.Format(dateLayout),
		Region:    overrideEntity.Region,
		VehicleID: overrideEntity.VehicleID,
		CreatedBy: overrideEntity.CreatedBy,
		Notes:     overrideEntity.Notes,
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
