package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/autoassign"
	"dispatch/internal/service/lifecycle"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const assignmentColumns = `id, order_id, vehicle_id, driver_id, delivery_date, time_window,
	status, accepted_at, started_at, completed_at, driver_notes, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// UpsertAssigned пишет назначение по ключу (заказ, дата). Условный upsert
// по частичному уникальному индексу вместо read-then-write: параллельные
// запросы на один ключ не плодят дубли. Записи, которые водитель уже
// подтвердил или закрыл, DO UPDATE не трогает — пустой RETURNING
// превращается в ErrProtectedRecord.
func (r *Repository) UpsertAssigned(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error) {
	modifyDB := FromDomainModify(&assignmentModify)

	query := `
		INSERT INTO assignments (order_id, vehicle_id, driver_id, delivery_date, time_window, status)
		VALUES ($1, $2, $3, $4, $5, 'assigned')
		ON CONFLICT (order_id, delivery_date) WHERE status <> 'cancelled'
		DO UPDATE SET
			vehicle_id = EXCLUDED.vehicle_id,
			driver_id  = EXCLUDED.driver_id,
			status     = 'assigned',
			updated_at = NOW()
		WHERE assignments.status = 'assigned'
		RETURNING ` + assignmentColumns

	var assignmentDB AssignmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		modifyDB.OrderID,
		modifyDB.VehicleID,
		modifyDB.DriverID,
		modifyDB.DeliveryDate,
		modifyDB.TimeWindow,
	).Scan(
		&assignmentDB.ID,
		&assignmentDB.OrderID,
		&assignmentDB.VehicleID,
		&assignmentDB.DriverID,
		&assignmentDB.DeliveryDate,
		&assignmentDB.TimeWindow,
		&assignmentDB.Status,
		&assignmentDB.AcceptedAt,
		&assignmentDB.StartedAt,
		&assignmentDB.CompletedAt,
		&assignmentDB.DriverNotes,
		&assignmentDB.CreatedAt,
		&assignmentDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, autoassign.ErrProtectedRecord
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, autoassign.ErrConcurrencyConflict
		}
		return nil, fmt.Errorf("unexpected assignment repository upsert error: %w", err)
	}

	return ToDomain(&assignmentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE id = $1`

	var assignmentDB AssignmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&assignmentDB.ID,
		&assignmentDB.OrderID,
		&assignmentDB.VehicleID,
		&assignmentDB.DriverID,
		&assignmentDB.DeliveryDate,
		&assignmentDB.TimeWindow,
		&assignmentDB.Status,
		&assignmentDB.AcceptedAt,
		&assignmentDB.StartedAt,
		&assignmentDB.CompletedAt,
		&assignmentDB.DriverNotes,
		&assignmentDB.CreatedAt,
		&assignmentDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository getbyid error: %w", err)
	}

	return ToDomain(&assignmentDB), nil
}

func (r *Repository) Update(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error) {
	modifyDB := FromDomainModify(&assignmentModify)

	builder := qb.Update("assignments")

	// опциональные поля
	if modifyDB.VehicleID != nil {
		builder = builder.Set("vehicle_id", modifyDB.VehicleID)
	}
	if modifyDB.DriverID != nil {
		builder = builder.Set("driver_id", modifyDB.DriverID)
	}
	if modifyDB.Status != nil {
		builder = builder.Set("status", modifyDB.Status)
	}
	if modifyDB.AcceptedAt != nil {
		builder = builder.Set("accepted_at", modifyDB.AcceptedAt)
	}
	if modifyDB.StartedAt != nil {
		builder = builder.Set("started_at", modifyDB.StartedAt)
	}
	if modifyDB.CompletedAt != nil {
		builder = builder.Set("completed_at", modifyDB.CompletedAt)
	}
	if modifyDB.DriverNotes != nil {
		builder = builder.Set("driver_notes", modifyDB.DriverNotes)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modifyDB.ID}).
		Suffix("RETURNING " + assignmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	var assignmentDB AssignmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&assignmentDB.ID,
		&assignmentDB.OrderID,
		&assignmentDB.VehicleID,
		&assignmentDB.DriverID,
		&assignmentDB.DeliveryDate,
		&assignmentDB.TimeWindow,
		&assignmentDB.Status,
		&assignmentDB.AcceptedAt,
		&assignmentDB.StartedAt,
		&assignmentDB.CompletedAt,
		&assignmentDB.DriverNotes,
		&assignmentDB.CreatedAt,
		&assignmentDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	return ToDomain(&assignmentDB), nil
}

func (r *Repository) CountActiveByVehicle(ctx context.Context, date time.Time) (map[int64]int, error) {
	query := `
		SELECT vehicle_id, COUNT(*)
		FROM assignments
		WHERE delivery_date = $1
		  AND status <> 'cancelled'
		  AND vehicle_id IS NOT NULL
		GROUP BY vehicle_id`

	rows, err := r.querier.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository count error: %w", err)
	}
	defer rows.Close()

	loads := make(map[int64]int)
	for rows.Next() {
		var vehicleID int64
		var count int
		if err := rows.Scan(&vehicleID, &count); err != nil {
			return nil, fmt.Errorf("unexpected assignment repository count error: %w", err)
		}
		loads[vehicleID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository count error: %w", err)
	}

	return loads, nil
}

// MigrateActiveToVehicle переводит все незакрытые назначения водителя на
// дату на другую машину одним UPDATE — водитель остается на своих заказах,
// меняется только машина.
func (r *Repository) MigrateActiveToVehicle(ctx context.Context, driverID int64, date time.Time, vehicleID int64) (int64, error) {
	query := `
		UPDATE assignments
		SET vehicle_id = $3,
		    updated_at = NOW()
		WHERE driver_id = $1
		  AND delivery_date = $2
		  AND status IN ('assigned', 'accepted', 'started', 'broken')`

	result, err := r.querier.Exec(ctx, query, driverID, date, vehicleID)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository migrate error: %w", err)
	}

	return result.RowsAffected(), nil
}
