package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tireshop/internal/entities"
	"tireshop/internal/repository"
	"tireshop/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `o.id, o.tire_id, o.quantity, o.customer_name, o.phone, o.email,
	o.installation_option, o.delivery_address, o.car_model, o.notes, o.status, o.created_at, o.updated_at,
	t.id, t.brand, t.series, t.origin, t.size, t.price, t.is_active, t.created_at, t.updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.TireID,
		&orderModel.Quantity,
		&orderModel.CustomerName,
		&orderModel.Phone,
		&orderModel.Email,
		&orderModel.InstallationOption,
		&orderModel.DeliveryAddress,
		&orderModel.CarModel,
		&orderModel.Notes,
		&orderModel.Status,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
		&orderModel.Tire.ID,
		&orderModel.Tire.Brand,
		&orderModel.Tire.Series,
		&orderModel.Tire.Origin,
		&orderModel.Tire.Size,
		&orderModel.Tire.Price,
		&orderModel.Tire.IsActive,
		&orderModel.Tire.CreatedAt,
		&orderModel.Tire.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (int64, error) {
	orderModel := FromDomain(&orderEntity)
	query := `INSERT INTO tire_orders (
			tire_id, quantity, customer_name, phone, email,
			installation_option, delivery_address, car_model, notes, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModel.TireID,
		orderModel.Quantity,
		orderModel.CustomerName,
		orderModel.Phone,
		orderModel.Email,
		orderModel.InstallationOption,
		orderModel.DeliveryAddress,
		orderModel.CarModel,
		orderModel.Notes,
		orderModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return 0, order.ErrTireNotFound
		}
		return 0, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + selectColumns + `
		FROM tire_orders o
		JOIN tires t ON t.id = o.tire_id
		WHERE o.id = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// keywordExpr склеивает поля заказа и шины через пробел. Keyword ищется подстрокой по всей строке,
// так находится часть номера заказа и фраза из соседних полей ("普利司通 alenza").
const keywordExpr = "concat_ws(' ', o.id::text, o.customer_name, o.phone, coalesce(o.email, ''), o.car_model, t.brand, t.series, t.size)"

// List возвращает заказы новыми первыми.
func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(selectColumns).
		From("tire_orders o").
		Join("tires t ON t.id = o.tire_id")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"o.status": filter.Status.String()})
	}
	if filter.Keyword != nil {
		builder = builder.Where(keywordExpr+" ILIKE ?", repository.ContainsPattern(*filter.Keyword))
	}

	query, args, err := builder.OrderBy("o.created_at DESC", "o.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		var orderModel OrderDB
		if err := scanOrder(rows, &orderModel); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) error {
	query := `UPDATE tire_orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `SELECT status, COUNT(*)
		FROM tire_orders
		GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make([]StatusCountDB, 0, 4)
	for rows.Next() {
		var c StatusCountDB
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	return ToStatusCounts(counts), nil
}
