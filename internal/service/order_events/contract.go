//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_events_test
package order_events

import "tireshop/pkg/logger"

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
}
