package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
	Output string
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("EMBISCOPE_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("EMBISCOPE_LOG_FORMAT"),
			Destination: &l.Format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log destination (stdout, stderr or a file path)",
			Category:    "Logging",
			Value:       "stdout",
			Sources:     cli.EnvVars("EMBISCOPE_LOG_OUTPUT"),
			Destination: &l.Output,
		},
	}
}

// Configure sets up the logger based on configuration. The returned closer
// releases the log file, if any.
func (l *Logger) Configure() (*slog.Logger, func(), error) {
	if err := l.Validate(); err != nil {
		return nil, nil, err
	}

	format, _ := logging.ParseFormat(l.Format)

	var (
		w       io.Writer
		closeFn = func() {}
	)
	switch l.Output {
	case "stdout", "-", "":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		f, err := os.OpenFile(l.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", l.Output))
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	return logging.NewLoggerWithFormat(logging.ParseLogLevel(l.Level), w, format), closeFn, nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
		slog.String("output", l.Output),
	)
}

// Validate validates the logger configuration
func (l *Logger) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return goerr.New("invalid log level", goerr.V("level", l.Level))
	}

	if _, ok := logging.ParseFormat(l.Format); !ok {
		return goerr.New("invalid log format", goerr.V("format", l.Format))
	}

	return nil
}
