package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/geosync/pkg/domain/interfaces"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/geosync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// SlackReporter posts run results to a Slack incoming webhook
type SlackReporter struct {
	webhookURL    string
	notifySuccess bool
}

var _ interfaces.RunReporter = (*SlackReporter)(nil)

// NewSlackReporter creates a reporter. Successful runs are only posted when
// notifySuccess is set.
func NewSlackReporter(webhookURL string, notifySuccess bool) *SlackReporter {
	return &SlackReporter{
		webhookURL:    webhookURL,
		notifySuccess: notifySuccess,
	}
}

// Report posts result to Slack
func (r *SlackReporter) Report(ctx context.Context, result *model.RunResult) error {
	if result.Success && !r.notifySuccess {
		return nil
	}

	if err := slack.PostWebhookContext(ctx, r.webhookURL, buildMessage(result)); err != nil {
		return goerr.Wrap(err, "failed to post slack message")
	}
	return nil
}

func buildMessage(result *model.RunResult) *slack.WebhookMessage {
	fields := []slack.AttachmentField{
		{Title: "Run ID", Value: result.RunID, Short: true},
		{Title: "State", Value: string(result.State), Short: true},
	}
	for _, a := range result.Artifacts {
		if a.Err != nil {
			fields = append(fields, slack.AttachmentField{
				Title: a.Key,
				Value: fmt.Sprintf("%s\n%v", a.URL, a.Err),
			})
			continue
		}
		fields = append(fields, slack.AttachmentField{
			Title: a.Key,
			Value: fmt.Sprintf("%d bytes via %s", a.Bytes, a.Strategy),
			Short: true,
		})
	}

	if result.Success {
		return &slack.WebhookMessage{
			Text: fmt.Sprintf("%s: rule files updated (%d directories, %s)",
				types.AppName, len(result.Targets), result.Duration.Round(time.Millisecond)),
			Attachments: []slack.Attachment{
				{Color: "good", Fields: fields},
			},
		}
	}

	failed := result.Failed()
	summary := "update aborted before downloads"
	if len(failed) > 0 {
		summary = "failed to download " + strings.Join(failed, ", ")
	}

	return &slack.WebhookMessage{
		Text: fmt.Sprintf("%s: rule file update failed", types.AppName),
		Attachments: []slack.Attachment{
			{
				Color:  "danger",
				Text:   summary,
				Fields: fields,
			},
		},
	}
}
