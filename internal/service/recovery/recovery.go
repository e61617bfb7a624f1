package recovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/schedule"
	"dispatch/pkg/logger"
)

type Recovery struct {
	log           serviceLogger
	vehicles      VehicleRepository
	assignments   AssignmentRepository
	driverService DriverService
	broadcaster   Broadcaster
	txManager     TxManager
}

func New(
	log serviceLogger,
	vehicles VehicleRepository,
	assignments AssignmentRepository,
	driverService DriverService,
	broadcaster Broadcaster,
	txManager TxManager,
) *Recovery {
	return &Recovery{
		log:           log,
		vehicles:      vehicles,
		assignments:   assignments,
		driverService: driverService,
		broadcaster:   broadcaster,
		txManager:     txManager,
	}
}

// HandleBreakdown обрабатывает сигнал "машина сломалась" посреди смены:
// гасит машину, отцепляет водителя и, если есть свободная машина, перевозит
// на неё все незакрытые назначения водителя на эту дату одним махом.
// Миграция и поиск запаски идут в одной транзакции: набор назначений
// водителя не должен расползтись по двум машинам, если процесс умрет
// посередине.
func (s *Recovery) HandleBreakdown(ctx context.Context, driverID, brokenVehicleID int64, date time.Time) (*entities.RecoveryOutcome, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if brokenVehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	day := schedule.Day(date)
	outcome := &entities.RecoveryOutcome{DriverID: driverID}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.vehicles.Deactivate(ctx, brokenVehicleID); err != nil {
			return fmt.Errorf("deactivate vehicle: %w", err)
		}

		if err := s.vehicles.DeactivateDriverLink(ctx, driverID, brokenVehicleID); err != nil {
			return fmt.Errorf("deactivate driver link: %w", err)
		}

		spare, err := s.vehicles.GetSpareVehicle(ctx)
		if err != nil {
			if errors.Is(err, ErrNoSpareVehicle) {
				return s.degrade(ctx, outcome)
			}
			return fmt.Errorf("find spare vehicle: %w", err)
		}

		if err := s.vehicles.CreateDriverLink(ctx, driverID, spare.ID, false); err != nil {
			return fmt.Errorf("link driver to spare vehicle: %w", err)
		}

		migrated, err := s.assignments.MigrateActiveToVehicle(ctx, driverID, day, spare.ID)
		if err != nil {
			return fmt.Errorf("migrate assignments: %w", err)
		}

		if _, err := s.driverService.UpdateDriverStatus(ctx, driverID, entities.DriverOnline); err != nil {
			return fmt.Errorf("update driver status: %w", err)
		}

		outcome.ReassignedTo = &spare.ID
		outcome.DriverStatus = entities.DriverOnline
		outcome.Migrated = migrated
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.broadcaster.BroadcastUpdateForDate(ctx, day, outcome); err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("driver_id", driverID),
		).Warn("broadcast recovery outcome failed")
	}

	return outcome, nil
}

// degrade — запаски нет: водитель помечается broken_vehicle, его назначения
// остаются на выключенной машине до ручного переназначения админом.
// Autoassign их не подхватит — они защищены от перезаписи.
func (s *Recovery) degrade(ctx context.Context, outcome *entities.RecoveryOutcome) error {
	if _, err := s.driverService.UpdateDriverStatus(ctx, outcome.DriverID, entities.DriverBrokenVehicle); err != nil {
		return fmt.Errorf("update driver status: %w", err)
	}

	outcome.ReassignedTo = nil
	outcome.DriverStatus = entities.DriverBrokenVehicle

	s.log.With(
		logger.NewField("driver_id", outcome.DriverID),
	).Warn("no spare vehicle, driver blocked until manual reassignment")
	return nil
}
