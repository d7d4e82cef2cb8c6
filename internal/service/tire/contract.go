//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tire_test
package tire

import (
	"context"

	"tireshop/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Tire, error)
	GetActive(ctx context.Context) ([]entities.Tire, error)
	GetAll(ctx context.Context) ([]entities.Tire, error)
	Search(ctx context.Context, filter entities.TireFilter) ([]entities.Tire, error)
	Create(ctx context.Context, tireModify entities.TireModify) (*entities.Tire, error)
	Update(ctx context.Context, tireModify entities.TireModify) (*entities.Tire, error)
	UpdateActive(ctx context.Context, id int64, isActive bool) (*entities.Tire, error)
}
