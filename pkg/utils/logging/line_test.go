package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/geosync/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestLineHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewLineHandler(&buf, nil))

	logger.Info("file downloaded", "path", "/tmp/geoip.dat", "strategy", "stream")

	pattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3}\] file downloaded path=/tmp/geoip.dat strategy=stream\n$`)
	gt.Bool(t, pattern.MatchString(buf.String())).True()
}

func TestLineHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewLineHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	logger.Debug("hidden too")
	logger.Error("shown")

	gt.String(t, buf.String()).NotContains("hidden")
	gt.String(t, buf.String()).Contains("] shown")
}

func TestLineHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewLineHandler(&buf, nil)).
		With("run_id", "abc").
		WithGroup("dl")

	logger.Info("progress", "bytes", 42, slog.Group("src", "host", "example.com"), "note", "two words")

	line := buf.String()
	gt.String(t, line).Contains("] progress run_id=abc dl.bytes=42 dl.src.host=example.com dl.note=\"two words\"")
}

func TestLineHandler_ReplaceAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewLineHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "secret" {
				return slog.String("secret", "[REDACTED]")
			}
			if a.Key == "drop" {
				return slog.Attr{}
			}
			return a
		},
	}))

	logger.Info("configured", "secret", "hunter2", "drop", "x", "keep", "y")

	gt.String(t, buf.String()).Contains("secret=[REDACTED] keep=y")
	gt.String(t, buf.String()).NotContains("hunter2")
	gt.String(t, buf.String()).NotContains("drop=")
}

func TestLineHandler_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewLineHandler(&buf, nil))

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				logger.Info("line")
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	gt.Number(t, strings.Count(buf.String(), "] line\n")).Equal(200)
}

func TestOpenDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")
	day := time.Date(2025, 3, 9, 23, 59, 0, 0, time.Local)

	f, err := logging.OpenDailyFile(dir, day)
	gt.NoError(t, err)
	_, err = f.WriteString("first\n")
	gt.NoError(t, err)
	gt.NoError(t, f.Close())

	// reopening the same day appends
	f, err = logging.OpenDailyFile(dir, day)
	gt.NoError(t, err)
	_, err = f.WriteString("second\n")
	gt.NoError(t, err)
	gt.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(dir, "2025-03-09.log"))
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal("first\nsecond\n")
}
