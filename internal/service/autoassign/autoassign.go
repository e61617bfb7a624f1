package autoassign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"dispatch/internal/entities"
	"dispatch/internal/service/schedule"
	"dispatch/pkg/logger"
)

type AutoAssign struct {
	log         serviceLogger
	assignments AssignmentRepository
	orders      OrderRepository
	vehicles    VehicleRepository
	resolver    Resolver
	broadcaster Broadcaster
	txManager   TxManager
	manualOnly  map[string]struct{}
}

// New создает движок автоназначения. manualOnlyVehicles — имена машин,
// которые держатся только под ручную диспетчеризацию и не участвуют
// в балансировке.
func New(
	log serviceLogger,
	assignments AssignmentRepository,
	orders OrderRepository,
	vehicles VehicleRepository,
	resolver Resolver,
	broadcaster Broadcaster,
	txManager TxManager,
	manualOnlyVehicles []string,
) *AutoAssign {
	manualOnly := make(map[string]struct{}, len(manualOnlyVehicles))
	for _, name := range manualOnlyVehicles {
		manualOnly[name] = struct{}{}
	}

	return &AutoAssign{
		log:         log,
		assignments: assignments,
		orders:      orders,
		vehicles:    vehicles,
		resolver:    resolver,
		broadcaster: broadcaster,
		txManager:   txManager,
		manualOnly:  manualOnly,
	}
}

// AutoAssign распределяет неназначенные заказы дня по машинам в два прохода:
// сначала по региону через resolver, затем остаток на наименее загруженную
// машину. Каждый upsert — отдельная транзакция, ошибка одного заказа не
// прерывает пакет: повторный запуск доразберет хвост (идемпотентно).
func (s *AutoAssign) AutoAssign(ctx context.Context, date time.Time, timeWindow string) (*entities.AssignmentBatchResult, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if timeWindow == "" {
		timeWindow = entities.TimeWindowAll
	}

	day := schedule.Day(date)

	orders, err := s.orders.OrdersForAutoAssign(ctx, day, timeWindow)
	if err != nil {
		return nil, fmt.Errorf("orders for auto-assign: %w", err)
	}

	vehicles, err := s.vehicles.GetAssignableVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("assignable vehicles: %w", err)
	}

	loads, err := s.assignments.CountActiveByVehicle(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("current vehicle loads: %w", err)
	}

	plan, pending := s.regionPass(ctx, day, orders, loads)
	balanceErrs := s.balancingPass(vehicles, pending, loads, plan)

	result := &entities.AssignmentBatchResult{
		Assigned:     make(map[int64]int64, len(plan)),
		VehicleLoads: loads,
		Errors:       balanceErrs,
	}

	drivers := primaryDriversByVehicle(vehicles)
	for _, order := range orders {
		vehicleID, ok := plan[order.ID]
		if !ok {
			continue
		}

		err := s.writeBack(ctx, order, day, vehicleID, drivers[vehicleID])
		switch {
		case errors.Is(err, ErrProtectedRecord):
			result.Skipped = append(result.Skipped, order.ID)
			OrdersSkippedTotal.Inc()
		case err != nil:
			result.Errors[order.ID] = err
			OrdersFailedTotal.Inc()
		default:
			result.Assigned[order.ID] = vehicleID
		}
	}

	if err := s.broadcaster.BroadcastUpdateForDate(ctx, day, result); err != nil {
		// Уведомления best-effort: состояние уже закоммичено.
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("date", day),
		).Warn("broadcast auto-assign result failed")
	}

	return result, nil
}

// regionPass закрепляет заказы за машинами их регионов. Совпадение по
// региону сильнее ручных исключений: resolver отвечает и за override,
// и за постоянное расписание.
func (s *AutoAssign) regionPass(
	ctx context.Context,
	day time.Time,
	orders []entities.Order,
	loads map[int64]int,
) (plan map[int64]int64, pending []entities.Order) {
	plan = make(map[int64]int64, len(orders))

	for _, order := range orders {
		vehicle, err := s.resolver.ResolveVehicleForRegion(ctx, order.Region, day)
		if err != nil {
			if !errors.Is(err, schedule.ErrRegionNotServed) {
				s.log.With(
					logger.NewField("error", err),
					logger.NewField("order_id", order.ID),
					logger.NewField("region", order.Region),
				).Warn("resolver failed, order goes to balancing pass")
			}
			pending = append(pending, order)
			continue
		}

		plan[order.ID] = vehicle.ID
		loads[vehicle.ID]++
		OrdersAssignedTotal.WithLabelValues("region").Inc()
	}

	return plan, pending
}

// balancingPass раздает нераспознанные заказы наименее загруженной машине.
// Ничья решается порядком машин в выборке (стабильным, по id).
func (s *AutoAssign) balancingPass(
	vehicles []entities.AssignableVehicle,
	pending []entities.Order,
	loads map[int64]int,
	plan map[int64]int64,
) map[int64]error {
	errs := make(map[int64]error)

	eligible := make([]entities.AssignableVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if _, manual := s.manualOnly[v.Name]; manual {
			continue
		}
		if !v.IsAvailable {
			continue
		}
		eligible = append(eligible, v)
	}

	for _, order := range pending {
		if len(eligible) == 0 {
			errs[order.ID] = ErrNoEligibleVehicles
			continue
		}

		best := eligible[0]
		for _, v := range eligible[1:] {
			if loads[v.ID] < loads[best.ID] {
				best = v
			}
		}

		plan[order.ID] = best.ID
		loads[best.ID]++
		OrdersAssignedTotal.WithLabelValues("balance").Inc()
	}

	return errs
}

func (s *AutoAssign) writeBack(
	ctx context.Context,
	order entities.Order,
	day time.Time,
	vehicleID int64,
	driverID *int64,
) error {
	assignmentModify := entities.AssignmentModify{
		OrderID:      pointer.To(order.ID),
		VehicleID:    pointer.To(vehicleID),
		DriverID:     driverID,
		DeliveryDate: pointer.To(day),
		TimeWindow:   pointer.To(order.TimeWindow),
		Status:       pointer.To(entities.AssignmentAssigned),
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.assignments.UpsertAssigned(ctx, assignmentModify)
		return err
	})
}

func primaryDriversByVehicle(vehicles []entities.AssignableVehicle) map[int64]*int64 {
	drivers := make(map[int64]*int64, len(vehicles))
	for _, v := range vehicles {
		drivers[v.ID] = v.PrimaryDriverID
	}
	return drivers
}
