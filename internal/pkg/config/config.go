package config

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/caarlos0/env"
)

const minJWTSecretLength = 32

type (
	Tasks struct {
		OrderMetricsInterval     time.Duration `env:"BACKGROUND_ORDER_METRICS_INTERVAL" envDefault:"30s"`
		RateLimiterCleanupPeriod time.Duration `env:"BACKGROUND_RATE_LIMITER_CLEANUP_INTERVAL" envDefault:"1m"`
		RateLimiterIdleTTL       time.Duration `env:"BACKGROUND_RATE_LIMITER_IDLE_TTL" envDefault:"10m"`
	}

	HTTPServer struct {
		Port             string        `env:"PORT"`
		RequestTimeout   time.Duration `env:"MIDDLEWARE_REQUEST_TIMEOUT" envDefault:"5s"`
		RateLimiterQPS   int           `env:"MIDDLEWARE_RATE_LIMIT_QPS" envDefault:"200"`
		RateLimiterBurst int           `env:"MIDDLEWARE_RATE_LIMIT_BURST" envDefault:"100"`
		// лимит на клиента для формы заказа и логина
		ClientRateLimit       int      `env:"MIDDLEWARE_CLIENT_RATE_LIMIT" envDefault:"10"`
		ClientRateLimitRefill float64  `env:"MIDDLEWARE_CLIENT_RATE_LIMIT_REFILL" envDefault:"0.2"`
		CORSAllowedOrigins    []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
		// подсети прокси, от которых принимается X-Forwarded-For; пусто значит только RemoteAddr
		TrustedProxies []string `env:"MIDDLEWARE_TRUSTED_PROXIES" envSeparator:","`
		PprofEnabled   bool     `env:"PPROF_ENABLED"`
		PprofPort      string   `env:"PPROF_PORT"`
		LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	}

	Database struct {
		Host           string `env:"POSTGRES_HOST"`
		Port           string `env:"POSTGRES_PORT"`
		User           string `env:"POSTGRES_USER"`
		Password       string `env:"POSTGRES_PASSWORD"`
		DBName         string `env:"POSTGRES_DB"`
		SSLMode        string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
		MigrateOnStart bool   `env:"POSTGRES_MIGRATE_ON_START" envDefault:"true"`
	}

	JWT struct {
		Secret     string        `env:"JWT_SECRET"`
		Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"2h"`
	}

	Admin struct {
		Username string `env:"ADMIN_USERNAME"`
		Password string `env:"ADMIN_PASSWORD"`
	}

	Kafka struct {
		Enabled         bool   `env:"KAFKA_ENABLED"`
		PortHealthcheck string `env:"KAFKA_HTTP_HEALTHCHECK_PORT"`
		Brokers         string `env:"KAFKA_BROKERS"`
		Topic           string `env:"KAFKA_TOPIC" envDefault:"tire-order-events"`
		ConsumerGroup   string `env:"KAFKA_CONSUMER_GROUP" envDefault:"tire-order-events-worker"`
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string `env:"KAFKA_SARAMA_VERSION" envDefault:"3.6.0"`
		ConsumerOffsetsAutocommit bool   `env:"KAFKA_SARAMA_OFFSETS_AUTOCOMMIT" envDefault:"true"`
	}

	KafkaHandlers struct {
		OrderEvents OrderEvents
	}

	OrderEvents struct {
		ProcessTimeout time.Duration `env:"KAFKA_HANDLER_ORDER_EVENTS_PROCESS_TIMEOUT" envDefault:"5s"`
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		JWT      JWT
		Admin    Admin
		Kafka    Kafka
	}
)

// BrokerList разбирает KAFKA_BROKERS через запятую.
func (k Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	result := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			result = append(result, b)
		}
	}
	return result
}

// TrustedProxyPrefixes разбирает MIDDLEWARE_TRUSTED_PROXIES. Одиночный адрес без маски считается /32 или /128.
func (s HTTPServer) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(s.TrustedProxies))
	for _, raw := range s.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			addr, err := netip.ParseAddr(raw)
			if err != nil {
				return nil, fmt.Errorf("MIDDLEWARE_TRUSTED_PROXIES: %w", err)
			}
			prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			return nil, fmt.Errorf("MIDDLEWARE_TRUSTED_PROXIES: %w", err)
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	return prefixes, nil
}

// Load собирает конфиг HTTP сервиса.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker собирает конфиг kafka воркера, ему не нужны база и JWT.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateKafka(&cfg.Kafka, true); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cfg := &Config{}

	// caarlos0/env v3 не спускается во вложенные структуры без указателя, поэтому разбираем по группам
	groups := []any{
		&cfg.Tasks,
		&cfg.Server,
		&cfg.Database,
		&cfg.JWT,
		&cfg.Admin,
		&cfg.Kafka,
		&cfg.Kafka.Sarama,
		&cfg.Kafka.Handlers.OrderEvents,
	}
	for _, group := range groups {
		if err := env.Parse(group); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.ClientRateLimit <= 0 {
		return errors.New("MIDDLEWARE_CLIENT_RATE_LIMIT must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		return errors.New("CORS_ALLOWED_ORIGINS must not be empty")
	}
	if _, err := cfg.Server.TrustedProxyPrefixes(); err != nil {
		return err
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}

	if len(cfg.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}
	if cfg.JWT.Expiration <= 0 {
		return errors.New("JWT_EXPIRATION must be positive")
	}

	if (cfg.Admin.Username == "") != (cfg.Admin.Password == "") {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}

	if cfg.Tasks.OrderMetricsInterval <= 0 {
		return errors.New("BACKGROUND_ORDER_METRICS_INTERVAL must be positive")
	}
	if cfg.Tasks.RateLimiterCleanupPeriod <= 0 {
		return errors.New("BACKGROUND_RATE_LIMITER_CLEANUP_INTERVAL must be positive")
	}

	return validateKafka(&cfg.Kafka, false)
}

func validateKafka(cfg *Kafka, consumer bool) error {
	if !cfg.Enabled && !consumer {
		return nil
	}

	if len(cfg.BrokerList()) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if !consumer {
		return nil
	}

	if cfg.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Handlers.OrderEvents.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_ORDER_EVENTS_PROCESS_TIMEOUT must be positive")
	}
	return nil
}
