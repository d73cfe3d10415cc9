package report

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/domain/interfaces"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/geosync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const sentryFlushTimeout = 5 * time.Second

// SentryReporter sends failed runs to Sentry
type SentryReporter struct {
	hub *sentry.Hub
}

var _ interfaces.RunReporter = (*SentryReporter)(nil)

// NewSentryReporter creates a reporter for dsn. An empty dsn yields a
// reporter whose events are dropped.
func NewSentryReporter(dsn string) (*SentryReporter, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:     dsn,
		Release: types.AppName + "@" + types.Version,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sentry client")
	}

	return &SentryReporter{
		hub: sentry.NewHub(client, sentry.NewScope()),
	}, nil
}

// Report captures every download error of a failed run
func (r *SentryReporter) Report(ctx context.Context, result *model.RunResult) error {
	if result.Success {
		return nil
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("run_id", result.RunID)
		scope.SetTag("state", string(result.State))

		failed := 0
		for _, a := range result.Artifacts {
			if a.Err == nil {
				continue
			}
			failed++
			scope.SetTag("artifact", a.Key)
			scope.SetContext("download", sentry.Context{
				"url":       a.URL,
				"file_name": a.FileName,
			})
			r.hub.CaptureException(a.Err)
		}

		if failed == 0 {
			r.hub.CaptureMessage("rule file update failed before downloads")
		}
	})

	if !r.hub.Flush(sentryFlushTimeout) {
		ctxlog.From(ctx).Warn("timed out sending events to sentry")
	}
	return nil
}
