package fetch

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// StreamStrategy downloads with a regular http.Client, following redirects
type StreamStrategy struct {
	client    *http.Client
	userAgent string
}

// NewStreamStrategy creates the primary download strategy
func NewStreamStrategy(userAgent string, timeout time.Duration) *StreamStrategy {
	return &StreamStrategy{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Name returns the strategy name used in logs
func (s *StreamStrategy) Name() string {
	return "stream"
}

// Fetch downloads task.URL into the task's temp path
func (s *StreamStrategy) Fetch(ctx context.Context, task model.DownloadTask) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.URL, nil)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create request", goerr.V("url", task.URL))
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, goerr.Wrap(err, "HTTP request failed", goerr.V("url", task.URL))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return 0, err
	}

	return writeChunks(ctx, resp.Body, resp.ContentLength, task.TempPath())
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return goerr.New("unexpected HTTP status",
			goerr.V("status", resp.Status),
			goerr.V("url", resp.Request.URL.String()),
		)
	}
	return nil
}
