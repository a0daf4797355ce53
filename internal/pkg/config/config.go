package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URL, secrets)
// - default: Values common across all environments (timezone, timeouts, intervals)
// -----------------------------------------------------------------------------

type Config struct {
	Server        ServerConfig
	CORS          CORSConfig
	Log           LogConfig
	JWT           JWTConfig
	Cookie        CookieConfig
	Upstream      UpstreamConfig
	Store         StoreConfig
	Redis         RedisConfig
	DB            DBConfig
	Notification  NotificationConfig
	Clock         ClockConfig
	CancelRequest CancelRequestConfig
	History       HistoryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jakarta"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

// JWTConfig verifies the session tokens issued by the booking backend.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:""`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type UpstreamConfig struct {
	BaseURL         string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	Timeout         time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"15s"`
	ListTimeout     time.Duration `envconfig:"UPSTREAM_LIST_TIMEOUT" default:"10s"`
	TransferTimeout time.Duration `envconfig:"UPSTREAM_TRANSFER_TIMEOUT" default:"30s"`
	MaxUploadBytes  int64         `envconfig:"UPSTREAM_MAX_UPLOAD_BYTES" default:"10485760"`
}

type StoreConfig struct {
	// memory | redis | postgres
	Driver         string        `envconfig:"STORE_DRIVER" default:"memory"`
	KeyPrefix      string        `envconfig:"STORE_KEY_PREFIX" default:"rbff:"`
	BookingListTTL time.Duration `envconfig:"STORE_BOOKING_LIST_TTL" default:"30s"`
	SessionTTL     time.Duration `envconfig:"STORE_SESSION_TTL" default:"24h"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:""`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:""`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Jakarta"`
}

type NotificationConfig struct {
	PollInterval time.Duration `envconfig:"NOTIFICATION_POLL_INTERVAL" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"NOTIFICATION_IDLE_TIMEOUT" default:"10m"`
	Concurrency  int           `envconfig:"NOTIFICATION_CONCURRENCY" default:"4"`
}

type ClockConfig struct {
	TimeZone       string        `envconfig:"CLOCK_TIMEZONE" default:"Asia/Jakarta"`
	TimeZoneOffset int           `envconfig:"CLOCK_TIMEZONE_OFFSET" default:"25200"`
	ServerTimeTTL  time.Duration `envconfig:"CLOCK_SERVER_TIME_TTL" default:"5m"`
}

type CancelRequestConfig struct {
	// Approval only records the owner's decision unless this is enabled.
	AutoCancelOnApprove bool `envconfig:"CANCEL_REQUEST_AUTO_CANCEL_ON_APPROVE" default:"false"`
}

type HistoryConfig struct {
	Limit int `envconfig:"HISTORY_LIMIT" default:"200"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Jakarta",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Upstream: UpstreamConfig{
			BaseURL:         "http://localhost:8080/api",
			Timeout:         2 * time.Second,
			ListTimeout:     2 * time.Second,
			TransferTimeout: 5 * time.Second,
			MaxUploadBytes:  1 << 20,
		},
		Store: StoreConfig{
			Driver:         "memory",
			KeyPrefix:      "test:",
			BookingListTTL: 30 * time.Second,
			SessionTTL:     time.Hour,
		},
		Notification: NotificationConfig{
			PollInterval: 30 * time.Second,
			IdleTimeout:  10 * time.Minute,
			Concurrency:  2,
		},
		Clock: ClockConfig{
			TimeZone:       "Asia/Jakarta",
			TimeZoneOffset: 25200,
			ServerTimeTTL:  5 * time.Minute,
		},
		History: HistoryConfig{
			Limit: 50,
		},
	}
}
