package tire

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tireshop/internal/entities"
	"tireshop/internal/repository"
	"tireshop/internal/service/tire"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	columns  = "id, brand, series, origin, size, price, is_active, created_at, updated_at"
	ordering = "brand, series, size"
)

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

func scanTire(row scanner, tireModel *TireDB) error {
	return row.Scan(
		&tireModel.ID,
		&tireModel.Brand,
		&tireModel.Series,
		&tireModel.Origin,
		&tireModel.Size,
		&tireModel.Price,
		&tireModel.IsActive,
		&tireModel.CreatedAt,
		&tireModel.UpdatedAt,
	)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Tire, error) {
	query := `SELECT ` + columns + `
		FROM tires
		WHERE id = $1`

	var tireModel TireDB
	err := scanTire(r.querier.QueryRow(ctx, query, id), &tireModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tire.ErrTireNotFound
		}

		return nil, fmt.Errorf("unexpected tire repository getbyid error: %w", err)
	}

	return ToDomain(&tireModel), nil
}

func (r *Repository) GetActive(ctx context.Context) ([]entities.Tire, error) {
	query := `SELECT ` + columns + `
		FROM tires
		WHERE is_active = TRUE
		ORDER BY ` + ordering

	tires, err := r.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected tire repository getactive error: %w", err)
	}
	return tires, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Tire, error) {
	query := `SELECT ` + columns + `
		FROM tires
		ORDER BY ` + ordering

	tires, err := r.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected tire repository getall error: %w", err)
	}
	return tires, nil
}

// Search ищет по вхождению без учёта регистра, nil поля фильтра не участвуют.
func (r *Repository) Search(ctx context.Context, filter entities.TireFilter) ([]entities.Tire, error) {
	builder := qb.
		Select(columns).
		From("tires")

	if filter.Brand != nil {
		builder = builder.Where(sq.ILike{"brand": repository.ContainsPattern(*filter.Brand)})
	}
	if filter.Series != nil {
		builder = builder.Where(sq.ILike{"series": repository.ContainsPattern(*filter.Series)})
	}
	if filter.Size != nil {
		builder = builder.Where(sq.ILike{"size": repository.ContainsPattern(*filter.Size)})
	}
	if filter.Active != nil {
		builder = builder.Where(sq.Eq{"is_active": *filter.Active})
	}

	query, args, err := builder.OrderBy(ordering).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected tire repository search error: %w", err)
	}

	tires, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected tire repository search error: %w", err)
	}
	return tires, nil
}

func (r *Repository) Create(ctx context.Context, tireModifyEntity entities.TireModify) (*entities.Tire, error) {
	tireModifyModel := FromDomainModify(&tireModifyEntity)
	query := `INSERT INTO tires (brand, series, origin, size, price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + columns

	var tireModel TireDB
	err := scanTire(r.querier.QueryRow(
		ctx,
		query,
		tireModifyModel.Brand,
		tireModifyModel.Series,
		tireModifyModel.Origin,
		tireModifyModel.Size,
		tireModifyModel.Price,
		tireModifyModel.IsActive,
	), &tireModel)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, tire.ErrConflict
		}
		return nil, fmt.Errorf("unexpected tire repository create error: %w", err)
	}

	return ToDomain(&tireModel), nil
}

// Update заменяет все редактируемые поля, origin и price могут стать NULL.
func (r *Repository) Update(ctx context.Context, tireModifyEntity entities.TireModify) (*entities.Tire, error) {
	tireModifyModel := FromDomainModify(&tireModifyEntity)
	if tireModifyModel.ID == nil {
		return nil, fmt.Errorf("unexpected tire repository update error: missing id")
	}

	query, args, err := qb.
		Update("tires").
		SetMap(map[string]interface{}{
			"brand":      tireModifyModel.Brand,
			"series":     tireModifyModel.Series,
			"origin":     tireModifyModel.Origin,
			"size":       tireModifyModel.Size,
			"price":      tireModifyModel.Price,
			"is_active":  tireModifyModel.IsActive,
			"updated_at": sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": *tireModifyModel.ID}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected tire repository update error: %w", err)
	}

	var tireModel TireDB
	err = scanTire(r.querier.QueryRow(ctx, query, args...), &tireModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tire.ErrTireNotFound
		}

		if repository.IsUniqueViolation(err) {
			return nil, tire.ErrConflict
		}

		return nil, fmt.Errorf("unexpected tire repository update error: %w", err)
	}

	return ToDomain(&tireModel), nil
}

func (r *Repository) UpdateActive(ctx context.Context, id int64, isActive bool) (*entities.Tire, error) {
	query := `UPDATE tires
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + columns

	var tireModel TireDB
	err := scanTire(r.querier.QueryRow(ctx, query, id, isActive), &tireModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tire.ErrTireNotFound
		}

		return nil, fmt.Errorf("unexpected tire repository updateactive error: %w", err)
	}

	return ToDomain(&tireModel), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Tire, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tireModels := make([]TireDB, 0, 16)
	for rows.Next() {
		var tireModel TireDB
		if err := scanTire(rows, &tireModel); err != nil {
			return nil, err
		}
		tireModels = append(tireModels, tireModel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ToDomainList(tireModels), nil
}
