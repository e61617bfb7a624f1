package driver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/driver"
	"dispatch/pkg/logger"
)

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

	var createDTO dto.CreateDriverRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.CreateDriver(r.Context(), createDTO.Name, createDTO.Login, createDTO.Pin)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidLogin),
			errors.Is(err, driver.ErrInvalidPin):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CreateDriverResponse{
		ID: id,
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
