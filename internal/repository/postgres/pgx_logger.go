package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger adapts zerolog.Logger to pgx's tracelog interface.
// Query arguments may carry record bodies, so they are only emitted at trace level.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	l := logger.With().Str("module", "repository").Str("component", "pgx").Logger()
	return &pgxLogger{logger: l}
}

func (l *pgxLogger) event(level tracelog.LogLevel) *zerolog.Event {
	switch level {
	case tracelog.LogLevelTrace:
		return l.logger.Trace()
	case tracelog.LogLevelDebug:
		return l.logger.Debug()
	case tracelog.LogLevelInfo:
		return l.logger.Info()
	case tracelog.LogLevelWarn:
		return l.logger.Warn()
	case tracelog.LogLevelError:
		return l.logger.Error()
	default:
		return l.logger.Info().Str("pgx_log_level", level.String())
	}
}

// Log implements tracelog.Logger.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	if level == tracelog.LogLevelNone {
		return
	}
	event := l.event(level)
	if !event.Enabled() {
		return
	}

	if sql, ok := data["sql"].(string); ok {
		event = event.Str("sql", sql)
		delete(data, "sql")
	}
	if args, ok := data["args"]; ok {
		if level == tracelog.LogLevelTrace {
			event = event.Interface("args", args)
		}
		delete(data, "args")
	}
	if took, ok := data["time"].(time.Duration); ok {
		event = event.Dur("took", took)
		delete(data, "time")
	}
	if len(data) > 0 {
		event = event.Fields(data)
	}
	event.Msg(msg)
}
