package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/service/recovery"
)

const vehicleColumns = `id, name, capacity, is_active, is_available, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetAssignableVehicles возвращает активные машины вместе с их основными
// водителями, стабильно по id — на этом порядке держится разрешение ничьих
// в балансировке.
func (r *Repository) GetAssignableVehicles(ctx context.Context) ([]entities.AssignableVehicle, error) {
	query := `
		SELECT v.id, v.name, v.capacity, v.is_active, v.is_available, v.created_at, v.updated_at,
		       l.driver_id
		FROM vehicles v
		LEFT JOIN driver_vehicle_links l
			ON l.vehicle_id = v.id
			AND l.is_primary
			AND l.is_active
		WHERE v.is_active
		ORDER BY v.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository list error: %w", err)
	}
	defer rows.Close()

	vehicles := make([]AssignableVehicleDB, 0, 8)
	for rows.Next() {
		var vehicleDB AssignableVehicleDB
		err := rows.Scan(
			&vehicleDB.ID,
			&vehicleDB.Name,
			&vehicleDB.Capacity,
			&vehicleDB.IsActive,
			&vehicleDB.IsAvailable,
			&vehicleDB.CreatedAt,
			&vehicleDB.UpdatedAt,
			&vehicleDB.PrimaryDriverID,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected vehicle repository list error: %w", err)
		}
		vehicles = append(vehicles, vehicleDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository list error: %w", err)
	}

	return ToAssignableDomainList(vehicles), nil
}

func (r *Repository) Deactivate(ctx context.Context, vehicleID int64) error {
	query := `
		UPDATE vehicles
		SET is_active = FALSE,
		    updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, vehicleID)
	if err != nil {
		return fmt.Errorf("unexpected vehicle repository deactivate error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return recovery.ErrVehicleNotFound
	}

	return nil
}

func (r *Repository) DeactivateDriverLink(ctx context.Context, driverID, vehicleID int64) error {
	query := `
		UPDATE driver_vehicle_links
		SET is_active = FALSE
		WHERE driver_id = $1
		  AND vehicle_id = $2
		  AND is_active`

	// Связки может и не быть (машину уже отцепили руками) — это не ошибка.
	_, err := r.querier.Exec(ctx, query, driverID, vehicleID)
	if err != nil {
		return fmt.Errorf("unexpected vehicle repository unlink error: %w", err)
	}

	return nil
}

func (r *Repository) CreateDriverLink(ctx context.Context, driverID, vehicleID int64, isPrimary bool) error {
	query := `
		INSERT INTO driver_vehicle_links (driver_id, vehicle_id, is_primary, is_active)
		VALUES ($1, $2, $3, TRUE)`

	_, err := r.querier.Exec(ctx, query, driverID, vehicleID, isPrimary)
	if err != nil {
		return fmt.Errorf("unexpected vehicle repository link error: %w", err)
	}

	return nil
}

// GetSpareVehicle — первая активная доступная машина без активной связки
// с водителем. Порядок по id, близость не учитывается.
func (r *Repository) GetSpareVehicle(ctx context.Context) (*entities.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles v
		WHERE v.is_active
		  AND v.is_available
		  AND NOT EXISTS (
			SELECT 1
			FROM driver_vehicle_links l
			WHERE l.vehicle_id = v.id
			  AND l.is_active
		  )
		ORDER BY v.id
		LIMIT 1`

	var vehicleDB VehicleDB
	err := r.querier.QueryRow(ctx, query).Scan(
		&vehicleDB.ID,
		&vehicleDB.Name,
		&vehicleDB.Capacity,
		&vehicleDB.IsActive,
		&vehicleDB.IsAvailable,
		&vehicleDB.CreatedAt,
		&vehicleDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recovery.ErrNoSpareVehicle
		}
		return nil, fmt.Errorf("unexpected vehicle repository spare error: %w", err)
	}

	return ToDomain(&vehicleDB), nil
}
