// Package logger builds the process zerolog.Logger from configuration.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type LoggerConfig struct {
	Level              string                 `mapstructure:"level" json:"level,omitempty" validate:"oneof=trace debug info warn error"`
	Format             string                 `mapstructure:"format" json:"format,omitempty" validate:"oneof=json console"`
	OutputTarget       string                 `mapstructure:"output_target" json:"outputTarget,omitempty" validate:"oneof=stdout stderr"`
	TimeField          string                 `mapstructure:"time_field" json:"timeField,omitempty"`
	TimeFormat         string                 `mapstructure:"time_format" json:"timeFormat,omitempty" validate:"oneof=rfc3339 rfc3339nano unix unix_ms"`
	ServiceName        string                 `mapstructure:"service_name" json:"serviceName,omitempty"`
	ServiceVersion     string                 `mapstructure:"service_version" json:"serviceVersion,omitempty"`
	Env                string                 `mapstructure:"env" json:"env,omitempty" validate:"oneof=dev staging prod"`
	WithCaller         bool                   `mapstructure:"with_caller" json:"withCaller,omitempty"`
	Stacktrace         bool                   `mapstructure:"stacktrace" json:"stacktrace,omitempty"`
	StacktraceMinLevel string                 `mapstructure:"stacktrace_min_level" json:"stacktraceMinLevel,omitempty" validate:"oneof=debug info warn error fatal panic"`
	DebugFile          string                 `mapstructure:"debug_file" json:"debugFile,omitempty"`
	Fields             map[string]interface{} `mapstructure:"fields" json:"fields,omitempty"`
}

// envProfiles seed the unset settings of each environment.
var envProfiles = map[string]LoggerConfig{
	"dev":     {Level: "debug", Format: "console", WithCaller: true},
	"staging": {Level: "info", Format: "json", Stacktrace: true},
	"prod":    {Level: "info", Format: "json", Stacktrace: true},
}

// timeLayouts maps config names onto zerolog time field formats.
var timeLayouts = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"unix":        zerolog.TimeFormatUnix,
	"unix_ms":     zerolog.TimeFormatUnixMs,
}

// New fills defaults into cfg, validates it and builds a logger writing to the configured target.
// It also sets zerolog's global level and time settings.
func New(cfg *LoggerConfig) (zerolog.Logger, error) {
	return NewWithWriter(cfg, nil)
}

// NewWithWriter is New with the output replaced by w when w is non-nil.
func NewWithWriter(cfg *LoggerConfig, w io.Writer) (zerolog.Logger, error) {
	cfg.applyDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return zerolog.Nop(), fmt.Errorf("logger config validation error: %w", err)
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFieldName = cfg.TimeField
	zerolog.TimeFieldFormat = timeLayouts[cfg.TimeFormat]
	zerolog.SetGlobalLevel(level)

	if w == nil {
		w = cfg.output()
	}
	ctx := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Str("env", cfg.Env)
	if cfg.WithCaller {
		ctx = ctx.Caller()
	}
	if cfg.Stacktrace {
		ctx = ctx.Stack()
	}
	if len(cfg.Fields) > 0 {
		ctx = ctx.Fields(cfg.Fields)
	}
	return ctx.Logger(), nil
}

// output resolves the target stream. Debug logging in dev is mirrored to DebugFile when it can be opened.
func (c *LoggerConfig) output() io.Writer {
	var out io.Writer = os.Stdout
	if c.OutputTarget == "stderr" {
		out = os.Stderr
	}
	if c.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	if c.Env == "dev" && c.Level == "debug" {
		if f, err := openDebugFile(c.DebugFile); err == nil {
			out = zerolog.MultiLevelWriter(out, f)
		}
	}
	return out
}

func openDebugFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
}

func (c *LoggerConfig) applyDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	p := envProfiles[c.Env]
	c.Level = or(c.Level, p.Level)
	c.Format = or(c.Format, p.Format)
	c.WithCaller = c.WithCaller || p.WithCaller
	c.Stacktrace = c.Stacktrace || p.Stacktrace

	c.OutputTarget = or(c.OutputTarget, "stdout")
	c.TimeField = or(c.TimeField, "ts")
	c.TimeFormat = or(c.TimeFormat, "rfc3339nano")
	c.StacktraceMinLevel = or(c.StacktraceMinLevel, "error")
	c.ServiceName = or(c.ServiceName, "planning-api")
	c.ServiceVersion = or(c.ServiceVersion, "0.0.1")
	c.DebugFile = or(c.DebugFile, "logs/debug.log")
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
