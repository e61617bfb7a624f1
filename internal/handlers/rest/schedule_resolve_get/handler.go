package schedule_resolve_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/dto"
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
	region := r.URL.Query().Get("region")
	dateStr := r.URL.Query().Get("date")

	date := time.Now().UTC()
	if dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		date = parsed
	}

	vehicle, err := h.service.ResolveVehicleForRegion(r.Context(), region, date)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidRegion),
			errors.Is(err, schedule.ErrInvalidDate):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrRegionNotServed):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ResolveResponse{
		Region:    region,
		Date:      schedule.Day(date).Format(dateLayout),
		VehicleID: vehicle.ID,
		Vehicle:   vehicle.Name,
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
