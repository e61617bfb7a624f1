package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	driverservice "dispatch/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, name, login, pin_hash, status, is_admin, is_active, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	modifyDB := FromDomainModify(&driverModify)

	query := `
		INSERT INTO drivers (name, login, pin_hash, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		modifyDB.Name,
		modifyDB.Login,
		modifyDB.PinHash,
		modifyDB.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, driverservice.ErrConflict
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `
		SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByLogin(ctx context.Context, login string) (*entities.Driver, error) {
	query := `
		SELECT ` + driverColumns + `
		FROM drivers
		WHERE login = $1`

	return r.getOne(ctx, query, login)
}

func (r *Repository) Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	modifyDB := FromDomainModify(&driverModify)

	builder := qb.Update("drivers")

	// опциональные поля
	if modifyDB.Name != nil {
		builder = builder.Set("name", modifyDB.Name)
	}
	if modifyDB.Login != nil {
		builder = builder.Set("login", modifyDB.Login)
	}
	if modifyDB.PinHash != nil {
		builder = builder.Set("pin_hash", modifyDB.PinHash)
	}
	if modifyDB.Status != nil {
		builder = builder.Set("status", modifyDB.Status)
	}
	if modifyDB.IsAdmin != nil {
		builder = builder.Set("is_admin", modifyDB.IsAdmin)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modifyDB.ID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverDB DriverDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&driverDB.ID,
		&driverDB.Name,
		&driverDB.Login,
		&driverDB.PinHash,
		&driverDB.Status,
		&driverDB.IsAdmin,
		&driverDB.IsActive,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driverservice.ErrDriverNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driverservice.ErrConflict
		}
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Driver, error) {
	var driverDB DriverDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(
		&driverDB.ID,
		&driverDB.Name,
		&driverDB.Login,
		&driverDB.PinHash,
		&driverDB.Status,
		&driverDB.IsAdmin,
		&driverDB.IsActive,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driverservice.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository get error: %w", err)
	}

	return ToDomain(&driverDB), nil
}
