package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional YAML file overlaid with APP_* environment variables.
// An empty path means defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	// secrets also accept the names used by the postgres image and common .env files
	_ = v.BindEnv("postgres.user", "APP_POSTGRES_USER", "POSTGRES_USER", "DB_USER")
	_ = v.BindEnv("postgres.password", "APP_POSTGRES_PASSWORD", "POSTGRES_PASSWORD", "DB_PASSWORD")
	_ = v.BindEnv("postgres.db", "APP_POSTGRES_DB", "POSTGRES_DB", "DB_NAME")
	_ = v.BindEnv("postgres.host", "APP_POSTGRES_HOST", "POSTGRES_HOST", "DB_HOST")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "planning-api")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.host", "")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", "10s")

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.output_target", "stdout")
	v.SetDefault("logger.time_format", "rfc3339nano")
	v.SetDefault("logger.env", "prod")
	v.SetDefault("logger.with_caller", false)
	v.SetDefault("logger.stacktrace", false)

	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.seed_file", "")
	v.SetDefault("sqlite.path", "data/planning.db")
	v.SetDefault("leveldb.path", "data/planning.ldb")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 300)
	v.SetDefault("postgres.health_check_period", 30)
	v.SetDefault("postgres.migrate", true)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

var configValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(storageRequirements, Config{})
	return v
}

// storageRequirements checks the settings only the selected driver needs.
func storageRequirements(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Postgres.User == "" {
			sl.ReportError(c.Postgres.User, "Postgres.User", "User", "required_for_postgres", "")
		}
		if c.Postgres.Password == "" {
			sl.ReportError(c.Postgres.Password, "Postgres.Password", "Password", "required_for_postgres", "")
		}
		if c.Postgres.DBName == "" {
			sl.ReportError(c.Postgres.DBName, "Postgres.DBName", "DBName", "required_for_postgres", "")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			sl.ReportError(c.SQLite.Path, "SQLite.Path", "Path", "required_for_sqlite", "")
		}
	case DriverLevelDB:
		if c.LevelDB.Path == "" {
			sl.ReportError(c.LevelDB.Path, "LevelDB.Path", "Path", "required_for_leveldb", "")
		}
	}
}

func validate(c *Config) error {
	if err := configValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
