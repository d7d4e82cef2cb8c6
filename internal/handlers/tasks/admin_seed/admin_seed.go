package admin_seed

import (
	"context"
	"fmt"
	"time"

	"tireshop/pkg/logger"
)

// AdminSeed разовая задача: заводит администратора из ADMIN_USERNAME/ADMIN_PASSWORD, если его ещё нет.
type AdminSeed struct {
	log      taskLogger
	service  Service
	username string
	password string
}

func NewAdminSeed(log taskLogger, service Service, username, password string) *AdminSeed {
	return &AdminSeed{
		log:      log,
		service:  service,
		username: username,
		password: password,
	}
}

func (a *AdminSeed) TTL() time.Duration {
	return 0
}

func (a *AdminSeed) Do(ctx context.Context) error {
	if a.username == "" || a.password == "" {
		a.log.Info("admin seed skipped, credentials are not configured")
		return nil
	}

	created, err := a.service.EnsureAdmin(ctx, a.username, a.password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if created {
		a.log.Info("admin account created", logger.NewField("username", a.username))
	}
	return nil
}

func (a *AdminSeed) Info() string {
	return "admin seed"
}
