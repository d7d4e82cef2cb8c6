package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"tireshop/internal/entities"
	"tireshop/internal/repository"
	"tireshop/internal/service/admin"
)

type AdminDB struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	query := `SELECT id, username, password_hash, created_at
		FROM admins
		WHERE username = $1`

	var adminModel AdminDB
	err := r.querier.QueryRow(ctx, query, username).
		Scan(
			&adminModel.ID,
			&adminModel.Username,
			&adminModel.PasswordHash,
			&adminModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, admin.ErrAdminNotFound
		}

		return nil, fmt.Errorf("unexpected admin repository getbyusername error: %w", err)
	}

	return &entities.Admin{
		ID:           adminModel.ID,
		Username:     adminModel.Username,
		PasswordHash: adminModel.PasswordHash,
		CreatedAt:    adminModel.CreatedAt,
	}, nil
}

func (r *Repository) Create(ctx context.Context, adminEntity entities.Admin) (int64, error) {
	query := `INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, adminEntity.Username, adminEntity.PasswordHash).Scan(&id)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return 0, admin.ErrConflict
		}
		return 0, fmt.Errorf("unexpected admin repository create error: %w", err)
	}

	return id, nil
}
