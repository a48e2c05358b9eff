package telemetry

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(zerolog.InfoLevel, msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write(zerolog.WarnLevel, msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(zerolog.ErrorLevel, msg, fields)
}

// Debug writes a debug-level log line; it is dropped unless EnableDebug was called.
func Debug(msg string, fields map[string]any) {
	write(zerolog.DebugLevel, msg, fields)
}

// EnableDebug toggles emission of debug-level lines.
func EnableDebug(on bool) {
	if on {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func write(level zerolog.Level, msg string, fields map[string]any) {
	// os.Stdout is resolved per call so tests can swap it.
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	event := logger.WithLevel(level)
	if event == nil {
		return
	}
	for k, v := range fields {
		if err, ok := v.(error); ok {
			event = event.Str(k, err.Error())
			continue
		}
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
