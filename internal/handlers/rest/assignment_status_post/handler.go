package assignment_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"dispatch/internal/dto"
	"dispatch/internal/entities"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/lifecycle"
	"dispatch/pkg/logger"
)

const dateLayout = "2006-01-02"

type Handler struct {
	log      handlerLogger
	service  Service
	recovery RecoveryService
}

func New(log handlerLogger, service Service, recovery RecoveryService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		recovery: recovery,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	assignmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusDTO dto.AssignmentStatusRequest
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	target := lifecycle.NormalizeStatus(statusDTO.Status)
	if statusDTO.VehicleBroken {
		target = entities.AssignmentBroken
	}

	updated, err := h.service.Transition(r.Context(), assignmentID, target, actor, statusDTO.Notes)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidAssignmentID),
			errors.Is(err, lifecycle.ErrUnknownStatus),
			errors.Is(err, lifecycle.ErrCancelReasonRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, lifecycle.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, lifecycle.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AssignmentStatusResponse{
		Assignment: toAssignmentDTO(updated),
	}

	if target == entities.AssignmentBroken {
		response.Recovery = h.runRecovery(r, updated, statusDTO.VehicleID)
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

// runRecovery запускает переброску на запасную машину. Отказ восстановления
// не отменяет уже зафиксированный статус broken: назначение остается
// у водителя, а админ разбирается руками.
func (h *Handler) runRecovery(r *http.Request, assignment *entities.Assignment, vehicleIDOverride *int64) *dto.RecoveryResponse {
	if assignment.DriverID == nil {
		h.log.With(
			logger.NewField("assignment_id", assignment.ID),
		).Warn("broken assignment has no driver, recovery skipped")
		return nil
	}

	vehicleID := assignment.VehicleID
	if vehicleIDOverride != nil {
		vehicleID = vehicleIDOverride
	}
	if vehicleID == nil {
		h.log.With(
			logger.NewField("assignment_id", assignment.ID),
		).Warn("broken assignment has no vehicle, recovery skipped")
		return nil
	}

	outcome, err := h.recovery.HandleBreakdown(r.Context(), *assignment.DriverID, *vehicleID, assignment.DeliveryDate)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("assignment_id", assignment.ID),
			logger.NewField("vehicle_id", *vehicleID),
		).Error("breakdown recovery failed")
		return nil
	}

	return &dto.RecoveryResponse{
		DriverID:     outcome.DriverID,
		ReassignedTo: outcome.ReassignedTo,
		DriverStatus: outcome.DriverStatus.String(),
		Migrated:     outcome.Migrated,
	}
}

func toAssignmentDTO(assignment *entities.Assignment) dto.AssignmentResponse {
	response := dto.AssignmentResponse{
		ID:           assignment.ID,
		OrderID:      assignment.OrderID,
		VehicleID:    assignment.VehicleID,
		DriverID:     assignment.DriverID,
		DeliveryDate: assignment.DeliveryDate.Format(dateLayout),
		TimeWindow:   assignment.TimeWindow,
		Status:       assignment.Status.String(),
		DriverNotes:  assignment.DriverNotes,
	}

	response.AcceptedAt = formatTime(assignment.AcceptedAt)
	response.StartedAt = formatTime(assignment.StartedAt)
	response.CompletedAt = formatTime(assignment.CompletedAt)

	return response
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
