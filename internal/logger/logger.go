package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Log is the process-wide logger. It discards everything until Init runs.
var Log = zerolog.Nop()

// Options selects level and format. Format is "console" or "json".
type Options struct {
	Level  string
	Format string
}

// Init points the global logger at w.
func Init(w io.Writer, opts Options) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if strings.EqualFold(opts.Format, "json") {
		l = zerolog.New(w).With().Timestamp().Logger().Level(level)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}).With().Timestamp().Logger().Level(level)
	}

	Log = l
	zlog.Logger = l
}

// InitFile logs to path, creating parent directories. The TUI owns the
// terminal, so interactive runs log here instead of stderr. The returned
// closer must be called on exit.
func InitFile(path string, opts Options) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Init(f, opts)
	return f, nil
}

// With returns a child logger tagged with component.
func With(component string) zerolog.Logger {
	return Log.With().Str("component", component).Logger()
}
