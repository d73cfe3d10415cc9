package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/geosync/pkg/cli/config"
	"github.com/m-mizutani/geosync/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "Valid level: debug", level: "debug"},
		{name: "Valid level: DEBUG (case insensitive)", level: "DEBUG"},
		{name: "Valid level: info", level: "info"},
		{name: "Valid level: warn", level: "warn"},
		{name: "Valid level: ERROR", level: "ERROR"},
		{name: "Invalid level: invalid", level: "invalid", wantErr: true},
		{name: "Invalid level: empty string", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{
				Level:  tt.level,
				NoFile: true,
				Stdout: &bytes.Buffer{},
			}

			result, err := logger.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, result).NotEqual(nil)
		})
	}
}

func TestLogger_Configure_Format(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "line", want: "] test log message"},
		{format: "", want: "] test log message"},
		{format: "text", want: `msg="test log message"`},
		{format: "json", want: `"msg":"test log message"`},
		{format: "console", want: "test log message"},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := &config.Logger{
				Level:  "info",
				Format: tt.format,
				NoFile: true,
				Stdout: &buf,
			}

			result, err := logger.Configure()
			gt.NoError(t, err)
			result.Info("test log message")
			gt.String(t, buf.String()).Contains(tt.want)
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		logger := &config.Logger{Level: "info", Format: "xml", NoFile: true}
		_, err := logger.Configure()
		gt.Error(t, err)
	})
}

func TestLogger_Configure_DailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")
	var stdout bytes.Buffer
	logger := &config.Logger{
		Level:  "info",
		Format: "line",
		Dir:    dir,
		Stdout: &stdout,
	}

	result, err := logger.Configure()
	gt.NoError(t, err)
	result.Info("written twice")
	gt.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(dir, logging.DailyFileName(time.Now())))
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains("written twice")
	gt.String(t, stdout.String()).Contains("written twice")
}

func TestLogger_Redaction(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{Level: "info", Format: "json", NoFile: true, Stdout: &buf}

	result, err := logger.Configure()
	gt.NoError(t, err)
	result.Info("notifier configured",
		"slack_webhook_url", "https://hooks.slack.com/services/T000/B000/XXXX",
		"endpoint", "https://hooks.slack.com/services/T000/B000/YYYY",
	)

	out := buf.String()
	gt.String(t, out).NotContains("XXXX")
	gt.String(t, out).NotContains("YYYY")
	gt.String(t, out).Contains("notifier configured")
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}
	flags := logger.Flags()
	gt.A(t, flags).Length(4)

	var names []string
	for _, f := range flags {
		names = append(names, f.Names()[0])
	}
	gt.String(t, strings.Join(names, ",")).Equal("log-level,log-format,log-dir,no-log-file")
}
