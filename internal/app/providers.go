package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithIsoLevel(pgx.ReadCommitted))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTokenManager(cfg *config.Config) *auth.Manager {
	return auth.NewManager(cfg.JWT.Secret, cfg.JWT.Expiration)
}

func provideClientLimiter(cfg *config.Config) *token_bucket.KeyedTokenBucket {
	return token_bucket.NewKeyedTokenBucket(cfg.Server.ClientRateLimit, cfg.Server.ClientRateLimitRefill)
}

func provideTireRepository(querier *querier.Querier) *tireRepo.Repository {
	return tireRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAdminRepository(querier *querier.Querier) *adminRepo.Repository {
	return adminRepo.New(querier)
}

func provideServiceTire(repository tireService.Repository) *tireService.Tire {
	return tireService.New(repository)
}

func provideServiceOrder(
	repository orderService.Repository,
	tires orderService.TireService,
	txManager orderService.TxManager,
	publisher orderService.EventPublisher,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(repository, tires, txManager, publisher, log)
}

func provideServiceAdmin(
	repository adminService.Repository,
	hasher adminService.PasswordHasher,
	tokens adminService.TokenIssuer,
) *adminService.Service {
	return adminService.New(repository, hasher, tokens)
}

func provideServicePromotion(catalog promotionService.TireCatalog, log logger.Logger) *promotionService.Service {
	return promotionService.New(catalog, log)
}

func provideOrderEventsService(log logger.Logger) *orderEventsService.Service {
	return orderEventsService.New(log)
}

func provideAdminSeedTask(log logger.Logger, service admin_seed.Service, cfg *config.Config) *admin_seed.AdminSeed {
	return admin_seed.NewAdminSeed(log, service, cfg.Admin.Username, cfg.Admin.Password)
}

func provideOrderMetricsTask(service order_metrics.Service, cfg *config.Config) *order_metrics.OrderMetrics {
	return order_metrics.NewOrderMetrics(service, cfg.Tasks.OrderMetricsInterval)
}

func provideRateLimiterCleanupTask(
	log logger.Logger,
	limiter rate_limiter_cleanup.Limiter,
	cfg *config.Config,
) *rate_limiter_cleanup.RateLimiterCleanup {
	return rate_limiter_cleanup.NewRateLimiterCleanup(log, limiter, cfg.Tasks.RateLimiterCleanupPeriod, cfg.Tasks.RateLimiterIdleTTL)
}

func provideTaskList(
	adminSeedTask *admin_seed.AdminSeed,
	orderMetricsTask *order_metrics.OrderMetrics,
	rateLimiterCleanupTask *rate_limiter_cleanup.RateLimiterCleanup,
) []background.Task {
	return []background.Task{
		adminSeedTask,
		orderMetricsTask,
		rateLimiterCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
