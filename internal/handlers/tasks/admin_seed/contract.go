//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_seed_test
package admin_seed

import (
	"context"

	"tireshop/pkg/logger"
)

type Service interface {
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}
