package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	scheduleservice "dispatch/internal/service/schedule"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetOverrideVehicle ищет активный override ровно на (день, регион).
// Машина подтягивается join'ом и обязана быть активной.
func (r *Repository) GetOverrideVehicle(ctx context.Context, date time.Time, region string) (*entities.VehicleRef, error) {
	query := `
		SELECT v.id, v.name
		FROM region_overrides ro
		JOIN vehicles v ON v.id = ro.vehicle_id AND v.is_active
		WHERE ro.date = $1
		  AND ro.region = $2
		  AND ro.is_active`

	var ref entities.VehicleRef
	err := r.querier.QueryRow(ctx, query, date, region).Scan(&ref.ID, &ref.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, scheduleservice.ErrOverrideNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository override error: %w", err)
	}

	return &ref, nil
}

func (r *Repository) GetStandingVehicle(ctx context.Context, region string) (*entities.VehicleRef, error) {
	query := `
		SELECT v.id, v.name
		FROM standing_schedule ss
		JOIN vehicles v ON v.id = ss.vehicle_id AND v.is_active
		WHERE ss.region = $1
		  AND ss.is_active`

	var ref entities.VehicleRef
	err := r.querier.QueryRow(ctx, query, region).Scan(&ref.ID, &ref.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, scheduleservice.ErrStandingNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository standing error: %w", err)
	}

	return &ref, nil
}

// UpsertOverride держит инвариант "один активный override на (день, регион)":
// конфликт по частичному уникальному индексу превращает вставку в обновление
// существующей строки.
func (r *Repository) UpsertOverride(ctx context.Context, overrideModify entities.RegionOverrideModify) (*entities.RegionOverride, error) {
	query := `
		INSERT INTO region_overrides (date, region, vehicle_id, created_by, notes)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''))
		ON CONFLICT (date, region) WHERE is_active
		DO UPDATE SET
			vehicle_id = EXCLUDED.vehicle_id,
			created_by = EXCLUDED.created_by,
			notes      = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, date, region, vehicle_id, created_by, notes, is_active, created_at, updated_at`

	var overrideDB RegionOverrideDB
	err := r.querier.QueryRow(
		ctx,
		query,
		overrideModify.Date,
		overrideModify.Region,
		overrideModify.VehicleID,
		overrideModify.CreatedBy,
		overrideModify.Notes,
	).Scan(
		&overrideDB.ID,
		&overrideDB.Date,
		&overrideDB.Region,
		&overrideDB.VehicleID,
		&overrideDB.CreatedBy,
		&overrideDB.Notes,
		&overrideDB.IsActive,
		&overrideDB.CreatedAt,
		&overrideDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, scheduleservice.ErrVehicleNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, scheduleservice.ErrConflict
		}
		return nil, fmt.Errorf("unexpected schedule repository upsert error: %w", err)
	}

	return ToDomain(&overrideDB), nil
}
