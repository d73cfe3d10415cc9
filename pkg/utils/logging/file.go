package logging

import (
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DailyFileName returns the log file name for the day of t
func DailyFileName(t time.Time) string {
	return t.Format("2006-01-02") + ".log"
}

// OpenDailyFile opens (appending) the log file for the day of now under dir
func OpenDailyFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create log directory", goerr.V("dir", dir))
	}

	path := filepath.Join(dir, DailyFileName(now))
	//nolint:gosec // G304: path is built from the configured log directory
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", path))
	}
	return f, nil
}
