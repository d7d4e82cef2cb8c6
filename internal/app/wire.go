//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"tireshop/internal/handlers/rest/admin_login_post"
	"tireshop/internal/handlers/rest/admin_order_status_patch"
	"tireshop/internal/handlers/rest/admin_orders_get"
	"tireshop/internal/handlers/rest/admin_tire_active_patch"
	"tireshop/internal/handlers/rest/admin_tire_post"
	"tireshop/internal/handlers/rest/admin_tire_put"
	"tireshop/internal/handlers/rest/admin_tires_get"
	"tireshop/internal/handlers/rest/order_post"
	"tireshop/internal/handlers/rest/promotion_fees_get"
	"tireshop/internal/handlers/rest/promotions_get"
	"tireshop/internal/handlers/rest/tire_get"
	"tireshop/internal/handlers/rest/tires_get"
	"tireshop/internal/handlers/tasks/admin_seed"
	"tireshop/internal/handlers/tasks/order_metrics"
	"tireshop/internal/handlers/tasks/rate_limiter_cleanup"
	"tireshop/internal/pkg/auth"
	"tireshop/internal/pkg/config"

	adminRepo "tireshop/internal/repository/admin"
	orderRepo "tireshop/internal/repository/order"
	tireRepo "tireshop/internal/repository/tire"
	adminService "tireshop/internal/service/admin"
	orderService "tireshop/internal/service/order"
	orderEventsService "tireshop/internal/service/order_events"
	promotionService "tireshop/internal/service/promotion"
	tireService "tireshop/internal/service/tire"

	"tireshop/pkg/background"
	"tireshop/pkg/logger"
	"tireshop/pkg/querier"
	"tireshop/pkg/token_bucket"
	"tireshop/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceTire       ServiceTire
	ServiceOrder      ServiceOrder
	ServiceAdmin      ServiceAdmin
	ServicePromotion  ServicePromotion
	TokenManager      *auth.Manager
	Querier           *querier.Querier
	ClientLimiter     *token_bucket.KeyedTokenBucket
	BackgroundWorkers *background.Worker
}

type ServiceTire interface {
	tires_get.Service
	tire_get.Service
	admin_tires_get.Service
	admin_tire_post.Service
	admin_tire_put.Service
	admin_tire_active_patch.Service
}

type ServiceOrder interface {
	order_post.Service
	admin_orders_get.Service
	admin_order_status_patch.Service
}

type ServiceAdmin interface {
	admin_login_post.Service
}

type ServicePromotion interface {
	promotions_get.Service
	promotion_fees_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideTokenManager,
		auth.NewBcryptHasher,
		provideClientLimiter,

		provideTireRepository,
		provideOrderRepository,
		provideAdminRepository,

		provideServiceTire,
		provideServiceOrder,
		provideServiceAdmin,
		provideServicePromotion,

		provideAdminSeedTask,
		provideOrderMetricsTask,
		provideRateLimiterCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceTire), new(*tireService.Tire)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceAdmin), new(*adminService.Service)),
		wire.Bind(new(ServicePromotion), new(*promotionService.Service)),

		wire.Bind(new(tireService.Repository), new(*tireRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(adminService.Repository), new(*adminRepo.Repository)),

		wire.Bind(new(orderService.TireService), new(*tireService.Tire)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(promotionService.TireCatalog), new(*tireService.Tire)),
		wire.Bind(new(adminService.PasswordHasher), new(*auth.BcryptHasher)),
		wire.Bind(new(adminService.TokenIssuer), new(*auth.Manager)),

		wire.Bind(new(admin_seed.Service), new(*adminService.Service)),
		wire.Bind(new(order_metrics.Service), new(*orderService.Service)),
		wire.Bind(new(rate_limiter_cleanup.Limiter), new(*token_bucket.KeyedTokenBucket)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	EventService *orderEventsService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(log logger.Logger) (*KafkaWorkerApp, error) {
	wire.Build(
		provideOrderEventsService,
		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
