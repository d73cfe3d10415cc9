package config

import (
	"github.com/m-mizutani/geosync/pkg/domain/interfaces"
	"github.com/m-mizutani/geosync/pkg/infra/report"
	"github.com/urfave/cli/v3"
)

// Report holds configuration of run reporters
type Report struct {
	MetricsFile     string
	SlackWebhookURL string
	SentryDSN       string
	NotifySuccess   bool
}

// Flags returns CLI flags for reporter configuration
func (c *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "metrics-file",
			Usage:       "Write Prometheus metrics for node_exporter's textfile collector to this path",
			Destination: &c.MetricsFile,
			Sources:     cli.EnvVars("GEOSYNC_METRICS_FILE"),
		},
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL notified about failed runs",
			Destination: &c.SlackWebhookURL,
			Sources:     cli.EnvVars("GEOSYNC_SLACK_WEBHOOK_URL"),
		},
		&cli.BoolFlag{
			Name:        "notify-success",
			Usage:       "Also notify Slack about successful runs",
			Destination: &c.NotifySuccess,
			Sources:     cli.EnvVars("GEOSYNC_NOTIFY_SUCCESS"),
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for reporting failed runs",
			Destination: &c.SentryDSN,
			Sources:     cli.EnvVars("GEOSYNC_SENTRY_DSN"),
		},
	}
}

// Reporters builds the reporters enabled by the configuration
func (c *Report) Reporters() ([]interfaces.RunReporter, error) {
	var reporters []interfaces.RunReporter

	if c.MetricsFile != "" {
		reporters = append(reporters, report.NewTextfileReporter(c.MetricsFile))
	}
	if c.SlackWebhookURL != "" {
		reporters = append(reporters, report.NewSlackReporter(c.SlackWebhookURL, c.NotifySuccess))
	}
	if c.SentryDSN != "" {
		r, err := report.NewSentryReporter(c.SentryDSN)
		if err != nil {
			return nil, err
		}
		reporters = append(reporters, r)
	}

	return reporters, nil
}
