package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Lifecycle struct {
	log         serviceLogger
	repository  Repository
	orders      OrderRepository
	notifier    Notifier
	broadcaster Broadcaster
	txManager   TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	orders OrderRepository,
	notifier Notifier,
	broadcaster Broadcaster,
	txManager TxManager,
) *Lifecycle {
	return &Lifecycle{
		log:         log,
		repository:  repository,
		orders:      orders,
		notifier:    notifier,
		broadcaster: broadcaster,
		txManager:   txManager,
	}
}

// Transition переводит назначение в целевой статус. Право на мутацию
// проверяется до любой записи: только владелец-водитель или админ.
// Метки времени ставятся один раз и не перештамповываются при повторном
// входе в тот же статус. История при отмене сохраняется.
func (s *Lifecycle) Transition(
	ctx context.Context,
	assignmentID int64,
	target entities.AssignmentStatusType,
	actor entities.Actor,
	notes string,
) (*entities.Assignment, error) {
	if assignmentID <= 0 {
		return nil, ErrInvalidAssignmentID
	}
	if !isKnownStatus(target) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, target)
	}

	var (
		updated     *entities.Assignment
		wasTerminal bool
		prevStatus  entities.AssignmentStatusType
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		assignment, err := s.repository.GetByID(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}

		if !actor.CanMutate(assignment.DriverID) {
			return ErrNotOwner
		}

		if !canTransition(assignment.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, assignment.Status, target)
		}

		prevStatus = assignment.Status
		wasTerminal = assignment.Status.IsTerminal()

		modify, err := buildTransitionModify(assignment, target, notes)
		if err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Побочные эффекты строго после коммита и best-effort: их падение
	// не откатывает смену статуса.
	if target == entities.AssignmentDelivered && prevStatus != entities.AssignmentDelivered && !wasTerminal {
		s.notifyDelivered(ctx, updated)
	}
	s.broadcast(ctx, updated)

	return updated, nil
}

func buildTransitionModify(
	assignment *entities.Assignment,
	target entities.AssignmentStatusType,
	notes string,
) (entities.AssignmentModify, error) {
	now := time.Now().UTC()

	modify := entities.AssignmentModify{
		ID:     pointer.To(assignment.ID),
		Status: pointer.To(target),
	}

	switch target {
	case entities.AssignmentAccepted:
		if assignment.AcceptedAt == nil {
			modify.AcceptedAt = pointer.To(now)
		}
	case entities.AssignmentStarted:
		if assignment.StartedAt == nil {
			modify.StartedAt = pointer.To(now)
		}
	case entities.AssignmentDelivered:
		if assignment.CompletedAt == nil {
			modify.CompletedAt = pointer.To(now)
		}
	case entities.AssignmentCancelled:
		if strings.TrimSpace(notes) == "" {
			return entities.AssignmentModify{}, ErrCancelReasonRequired
		}
	}

	if notes != "" {
		modify.DriverNotes = pointer.To(notes)
	}

	return modify, nil
}

func (s *Lifecycle) notifyDelivered(ctx context.Context, assignment *entities.Assignment) {
	order, err := s.orders.GetByID(ctx, assignment.OrderID)
	if err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("order_id", assignment.OrderID),
		).Warn("fetch order for delivered notification failed")
		return
	}

	if err := s.notifier.NotifyOrderDelivered(ctx, order, assignment); err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("order_id", order.ID),
		).Warn("delivered notification failed")
	}

	if err := s.notifier.NotifyPaymentStatusChange(ctx, order, order.IsPaid); err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("order_id", order.ID),
		).Warn("payment status notification failed")
	}
}

func (s *Lifecycle) broadcast(ctx context.Context, assignment *entities.Assignment) {
	if err := s.broadcaster.BroadcastUpdateForDate(ctx, assignment.DeliveryDate, assignment); err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("assignment_id", assignment.ID),
		).Warn("broadcast assignment update failed")
	}
}
