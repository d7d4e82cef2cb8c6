//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_test
package admin

import (
	"context"
	"time"

	"tireshop/internal/entities"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*entities.Admin, error)
	Create(ctx context.Context, admin entities.Admin) (int64, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(subject, role string) (string, time.Duration, error)
}
