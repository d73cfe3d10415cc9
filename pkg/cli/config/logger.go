package config

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/geosync/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
	Dir    string
	NoFile bool

	// Stdout is where the console copy of the log goes. Defaults to os.Stdout.
	Stdout io.Writer

	file *os.File
}

// Flags returns CLI flags for logger configuration
func (c *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &c.Level,
			Sources:     cli.EnvVars("GEOSYNC_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (line, text, json, console)",
			Value:       "line",
			Destination: &c.Format,
			Sources:     cli.EnvVars("GEOSYNC_LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "log-dir",
			Usage:       "Directory for daily log files (default: <base-dir>/log)",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("GEOSYNC_LOG_DIR"),
		},
		&cli.BoolFlag{
			Name:        "no-log-file",
			Usage:       "Only log to stdout",
			Destination: &c.NoFile,
			Sources:     cli.EnvVars("GEOSYNC_NO_LOG_FILE"),
		},
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, goerr.New("invalid log level", goerr.V("level", s))
	}
}

// redactor hides notification secrets if they ever reach a log record
func redactor() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("slack_webhook_url"),
		masq.WithFieldName("sentry_dsn"),
		masq.WithRegex(regexp.MustCompile(`^https://hooks\.slack\.com/`)),
	)
}

// Configure configures and returns a logger. Unless NoFile is set, records
// go to today's file under Dir as well as to Stdout.
func (c *Logger) Configure() (*slog.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stdout
	if c.Stdout != nil {
		w = c.Stdout
	}

	if !c.NoFile && c.Dir != "" {
		f, err := logging.OpenDailyFile(c.Dir, time.Now())
		if err != nil {
			return nil, err
		}
		c.file = f
		w = io.MultiWriter(f, w)
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactor(),
	}

	var handler slog.Handler
	switch strings.ToLower(c.Format) {
	case "", "line":
		handler = logging.NewLineHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "console":
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithColor(c.file == nil),
		)
	default:
		_ = c.Close()
		return nil, goerr.New("invalid log format", goerr.V("format", c.Format))
	}

	return slog.New(handler), nil
}

// Close releases the log file opened by Configure
func (c *Logger) Close() error {
	if c.file == nil {
		return nil
	}
	err := c.file.Close()
	c.file = nil
	return err
}
