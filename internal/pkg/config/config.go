package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		OutboxRelayInterval     time.Duration
		OutboxRelayBatchSize    int
		WalletReconcileInterval time.Duration
		StaleTrackingInterval   time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string
	}

	Database struct {
		Host                string
		Port                string
		User                string
		Password            string
		DBName              string
		SSLMode             string
		MigrationsAutoApply bool

		MaxConns        int
		MinConns        int
		MaxConnLifetime time.Duration
	}

	Auth struct {
		JWTSecret string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		ProducerTimeout time.Duration
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Tracking struct {
		StaleAfter time.Duration
	}

	Cache struct {
		ZonesTTL time.Duration
	}

	Config struct {
		LogLevel string
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Auth     Auth
		Kafka    Kafka
		Tracking Tracking
		Cache    Cache
	}
)

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

// LoadDatabase читает только параметры подключения к Postgres, для cmd/migrate.
func LoadDatabase() (*Database, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &cfg.Database, nil
}

func loadFromEnv() (*Config, error) {
	var errs []error

	getDuration := func(key string) time.Duration {
		d, err := osGetEnvDuration(key)
		if err != nil {
			errs = append(errs, err)
		}
		return d
	}
	getInt := func(key string) int {
		v, err := osGetInt(key)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}
	getBool := func(key string) bool {
		v, err := osGetBool(key)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg := &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			OutboxRelayInterval:     getDuration("BACKGROUND_OUTBOX_RELAY_INTERVAL"),
			OutboxRelayBatchSize:    getInt("BACKGROUND_OUTBOX_RELAY_BATCH_SIZE"),
			WalletReconcileInterval: getDuration("BACKGROUND_WALLET_RECONCILE_INTERVAL"),
			StaleTrackingInterval:   getDuration("BACKGROUND_STALE_TRACKING_INTERVAL"),
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   getDuration("MIDDLEWARE_REQUEST_TIMEOUT"),
			RateLimiterQPS:   getInt("MIDDLEWARE_RATE_LIMIT_QPS"),
			RateLimiterBurst: getInt("MIDDLEWARE_RATE_LIMIT_BURST"),
			PprofEnabled:     getBool("PPROF_ENABLED"),
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: Database{
			Host:                os.Getenv("POSTGRES_HOST"),
			Port:                os.Getenv("POSTGRES_PORT"),
			User:                os.Getenv("POSTGRES_USER"),
			Password:            os.Getenv("POSTGRES_PASSWORD"),
			DBName:              os.Getenv("POSTGRES_DB"),
			SSLMode:             os.Getenv("POSTGRES_SSLMODE"),
			MigrationsAutoApply: getBool("MIGRATIONS_AUTO_APPLY"),
			MaxConns:            getInt("POSTGRES_POOL_MAX_CONNS"),
			MinConns:            getInt("POSTGRES_POOL_MIN_CONNS"),
			MaxConnLifetime:     getDuration("POSTGRES_POOL_MAX_CONN_LIFETIME"),
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			ProducerTimeout: getDuration("KAFKA_PRODUCER_TIMEOUT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: getBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"),
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: getDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT"),
				},
			},
		},
		Tracking: Tracking{
			StaleAfter: getDuration("TRACKING_STALE_AFTER"),
		},
		Cache: Cache{
			ZonesTTL: getDuration("CACHE_ZONES_TTL"),
		},
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults заполняет необязательные параметры.
func applyDefaults(cfg *Config) {
	if cfg.Tasks.OutboxRelayBatchSize == 0 {
		cfg.Tasks.OutboxRelayBatchSize = 100
	}
	if cfg.Kafka.ProducerTimeout == 0 {
		cfg.Kafka.ProducerTimeout = 5 * time.Second
	}
	if cfg.Tracking.StaleAfter == 0 {
		cfg.Tracking.StaleAfter = 2 * time.Minute
	}
	if cfg.Cache.ZonesTTL == 0 {
		cfg.Cache.ZonesTTL = time.Minute
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 20
	}
	if cfg.Database.MinConns == 0 {
		cfg.Database.MinConns = 2
	}
	if cfg.Database.MaxConnLifetime == 0 {
		cfg.Database.MaxConnLifetime = time.Hour
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.Server.GRPCHealthPort == "" {
		return errors.New("GRPC_HEALTH_PORT is required")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if len(cfg.Auth.JWTSecret) < 32 {
		return errors.New("AUTH_JWT_SECRET is required (at least 32 bytes)")
	}

	if cfg.Tasks.OutboxRelayInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OUTBOX_RELAY_INTERVAL is required")
	}
	if cfg.Tasks.WalletReconcileInterval == time.Duration(0) {
		return errors.New("BACKGROUND_WALLET_RECONCILE_INTERVAL is required")
	}
	if cfg.Tasks.StaleTrackingInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STALE_TRACKING_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("POSTGRES_POOL_MIN_CONNS (%d) exceeds POSTGRES_POOL_MAX_CONNS (%d)", db.MinConns, db.MaxConns)
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
