package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer      HttpServerConfig
	Database        DatabaseConfig
	Redis           RedisConfig
	MessageStream   MessageStreamConfig
	HttpClient      HttpClientConfig
	IdentityService IdentityServiceConfig
	PaymentGateway  PaymentGatewayConfig
	Booking         BookingConfig
}

type HttpServerConfig struct {
	Host string `envconfig:"http_server_host" default:"0.0.0.0"`
	Port string `envconfig:"http_server_port" default:"3000"`
}

type DatabaseConfig struct {
	Host            string `envconfig:"database_host" default:"localhost"`
	Port            string `envconfig:"database_port" default:"5432"`
	Username        string `envconfig:"database_username" default:"postgres"`
	Password        string `envconfig:"database_password" default:"postgres"`
	Name            string `envconfig:"database_name" default:"resort_booking"`
	SSLMode         string `envconfig:"database_ssl_mode" default:"disable"`
	MaxOpenConns    int    `envconfig:"database_max_open_conns" default:"10"`
	MaxIdleConns    int    `envconfig:"database_max_idle_conns" default:"5"`
	ConnMaxLifetime int    `envconfig:"database_conn_max_lifetime" default:"30"`
}

type RedisConfig struct {
	Host     string `envconfig:"redis_host" default:"localhost"`
	Port     string `envconfig:"redis_port" default:"6379"`
	Password string `envconfig:"redis_password" default:""`
	DB       int    `envconfig:"redis_db" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"message_stream_host" default:"localhost"`
	Port     string `envconfig:"message_stream_port" default:"5672"`
	Username string `envconfig:"message_stream_username" default:"guest"`
	Password string `envconfig:"message_stream_password" default:"guest"`
}

type HttpClientConfig struct {
	Timeout            int    `envconfig:"http_client_timeout" default:"10"`
	FailureThreshold   int64  `envconfig:"http_client_failure_threshold" default:"10"`
	ConsecutiveFailure int64  `envconfig:"http_client_consecutive_failure" default:"5"`
	Type               string `envconfig:"http_client_type" default:"consecutive"`
}

type IdentityServiceConfig struct {
	Host string `envconfig:"identity_service_host" default:"localhost"`
	Port string `envconfig:"identity_service_port" default:"8081"`
}

type PaymentGatewayConfig struct {
	Host     string `envconfig:"payment_gateway_host" default:"localhost"`
	Port     string `envconfig:"payment_gateway_port" default:"8082"`
	Provider string `envconfig:"payment_gateway_provider" default:"midtrans"`
}

type BookingConfig struct {
	HoldDurationHours        int     `envconfig:"booking_hold_duration_hours" default:"2"`
	SweepIntervalMinutes     int     `envconfig:"booking_sweep_interval_minutes" default:"1"`
	DownpaymentPercentage    float64 `envconfig:"booking_downpayment_percentage" default:"0.5"`
	MaxFailedPaymentAttempts int     `envconfig:"booking_max_failed_payment_attempts" default:"3"`
	LockExpirySlackMinutes   int     `envconfig:"booking_lock_expiry_slack_minutes" default:"5"`
	ExpiredSweepBatchSize    int     `envconfig:"booking_expired_sweep_batch_size" default:"100"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}
	return &cfg
}
