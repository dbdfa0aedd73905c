package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Session      SessionConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TINDERA_APP_ENV" default:"dev"`
	Port         string `envconfig:"TINDERA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TINDERA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TINDERA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"TINDERA_DB_DRIVER" default:"sqlite"`

	// SQLite path, used when Driver is sqlite.
	Path string `envconfig:"TINDERA_DB_PATH" default:"pos.db"`

	// Postgres DSN, either given directly or assembled from the parts below.
	DSN      string `envconfig:"TINDERA_DB_DSN"`
	Host     string `envconfig:"TINDERA_DB_HOST"`
	Port     int    `envconfig:"TINDERA_DB_PORT" default:"5432"`
	User     string `envconfig:"TINDERA_DB_USER"`
	Password string `envconfig:"TINDERA_DB_PASSWORD"`
	Name     string `envconfig:"TINDERA_DB_NAME"`
	SSLMode  string `envconfig:"TINDERA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TINDERA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TINDERA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TINDERA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TINDERA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"TINDERA_REDIS_URL" default:"redis://localhost:6379/0"`
	Address      string        `envconfig:"TINDERA_REDIS_ADDR"`
	Password     string        `envconfig:"TINDERA_REDIS_PASSWORD"`
	DB           int           `envconfig:"TINDERA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TINDERA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TINDERA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TINDERA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TINDERA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TINDERA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SessionConfig struct {
	Secret     string `envconfig:"TINDERA_SESSION_SECRET" required:"true"`
	Issuer     string `envconfig:"TINDERA_SESSION_ISSUER" default:"tindera"`
	TTLMinutes int    `envconfig:"TINDERA_SESSION_TTL_MINUTES" default:"720"`
}

// TTL returns the session token lifetime configured in minutes.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"TINDERA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.IsSQLite() {
		if db.Path == "" {
			return fmt.Errorf("TINDERA_DB_PATH is required for the sqlite driver")
		}
		return nil
	}
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	parts := map[string]string{
		"TINDERA_DB_HOST": db.Host,
		"TINDERA_DB_USER": db.User,
		"TINDERA_DB_NAME": db.Name,
	}
	for _, key := range []string{"TINDERA_DB_HOST", "TINDERA_DB_USER", "TINDERA_DB_NAME"} {
		if parts[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either TINDERA_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
