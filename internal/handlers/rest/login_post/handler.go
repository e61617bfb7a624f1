package login_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/service/driver"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	issuer  TokenIssuer
}

func New(log handlerLogger, service Service, issuer TokenIssuer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		issuer:  issuer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverEntity, err := h.service.Authenticate(r.Context(), loginDTO.Login, loginDTO.Pin)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidLogin),
			errors.Is(err, driver.ErrInvalidPin):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrInvalidCredentials):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	actor := entities.Actor{
		DriverID: driverEntity.ID,
		Login:    driverEntity.Login,
		IsAdmin:  driverEntity.IsAdmin,
	}

	token, expiresAt, err := h.issuer.IssueToken(actor)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("login", driverEntity.Login),
		).Error("issue token")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
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
