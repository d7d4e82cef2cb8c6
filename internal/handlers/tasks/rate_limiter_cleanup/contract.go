//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_limiter_cleanup_test
package rate_limiter_cleanup

import (
	"time"

	"tireshop/pkg/logger"
)

type Limiter interface {
	Cleanup(idle time.Duration) int
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}
