package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	orderservice "dispatch/internal/service/order"
)

const orderColumns = `id, external_id, region, delivery_date, time_window, products, total, is_paid, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreateIfAbsent — идемпотентная вставка по external_id: повторное событие
// из вебхука или Kafka возвращает уже созданный заказ.
func (r *Repository) CreateIfAbsent(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	query := `
		INSERT INTO orders (external_id, region, delivery_date, time_window, products, total, is_paid)
		VALUES ($1, $2, $3, COALESCE($4, 'all'), COALESCE($5, ''), COALESCE($6, 0), COALESCE($7, FALSE))
		ON CONFLICT (external_id) DO NOTHING
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModify.ExternalID,
		orderModify.Region,
		orderModify.DeliveryDate,
		orderModify.TimeWindow,
		orderModify.Products,
		orderModify.Total,
		orderModify.IsPaid,
	).Scan(
		&orderDB.ID,
		&orderDB.ExternalID,
		&orderDB.Region,
		&orderDB.DeliveryDate,
		&orderDB.TimeWindow,
		&orderDB.Products,
		&orderDB.Total,
		&orderDB.IsPaid,
		&orderDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Заказ уже существует — отдаем его.
			return r.GetByExternalID(ctx, *orderModify.ExternalID)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE external_id = $1`

	return r.getOne(ctx, query, externalID)
}

func (r *Repository) GetForDate(ctx context.Context, date time.Time, timeWindow string) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE delivery_date = $1
		  AND ($2 = 'all' OR time_window = $2)
		ORDER BY created_at, id`

	return r.getMany(ctx, query, date, timeWindow)
}

// OrdersForAutoAssign — заказы дня без назначения либо с назначением, все
// еще стоящим в assigned: только их движок имеет право перекладывать.
func (r *Repository) OrdersForAutoAssign(ctx context.Context, date time.Time, timeWindow string) ([]entities.Order, error) {
	query := `
		SELECT o.id, o.external_id, o.region, o.delivery_date, o.time_window, o.products, o.total, o.is_paid, o.created_at
		FROM orders o
		LEFT JOIN assignments a
			ON a.order_id = o.id
			AND a.delivery_date = o.delivery_date
			AND a.status <> 'cancelled'
		WHERE o.delivery_date = $1
		  AND ($2 = 'all' OR o.time_window = $2)
		  AND (a.id IS NULL OR a.status = 'assigned')
		ORDER BY o.created_at, o.id`

	return r.getMany(ctx, query, date, timeWindow)
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Order, error) {
	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, args...).Scan(
		&orderDB.ID,
		&orderDB.ExternalID,
		&orderDB.Region,
		&orderDB.DeliveryDate,
		&orderDB.TimeWindow,
		&orderDB.Products,
		&orderDB.Total,
		&orderDB.IsPaid,
		&orderDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) getMany(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orders := make([]OrderDB, 0, 16)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.ExternalID,
			&orderDB.Region,
			&orderDB.DeliveryDate,
			&orderDB.TimeWindow,
			&orderDB.Products,
			&orderDB.Total,
			&orderDB.IsPaid,
			&orderDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orders = append(orders, orderDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orders), nil
}
