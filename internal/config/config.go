package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/maxviazov/planning-api/internal/logger"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverLevelDB  = "leveldb"
	DriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Storage  StorageConfig       `mapstructure:"storage"`
	SQLite   SQLiteConfig        `mapstructure:"sqlite"`
	LevelDB  LevelDBConfig       `mapstructure:"leveldb"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	CORS     CORSConfig          `mapstructure:"cors"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version"`
	Env             string        `mapstructure:"env"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// Addr is the listen address for the HTTP server.
func (a AppConfig) Addr() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

type StorageConfig struct {
	Driver   string `mapstructure:"driver" validate:"oneof=memory sqlite leveldb postgres"`
	SeedFile string `mapstructure:"seed_file"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type LevelDBConfig struct {
	Path string `mapstructure:"path"`
}

// PostgresConfig holds connection and pool settings. Durations are whole seconds.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"db"`
	SSLMode           string `mapstructure:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"gte=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"gte=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime" validate:"gte=0"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time" validate:"gte=0"`
	HealthCheckPeriod int    `mapstructure:"health_check_period" validate:"gte=0"`
	Migrate           bool   `mapstructure:"migrate"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (c *Config) String() string {
	return fmt.Sprintf("app=%s env=%s addr=%s storage=%s", c.App.Name, c.App.Env, c.App.Addr(), c.Storage.Driver)
}
