package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/domain/interfaces"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/geosync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ErrAllStrategiesFailed is returned when no strategy could fetch the URL
var ErrAllStrategiesFailed = errors.New("all download methods failed")

// config holds internal downloader configuration
type config struct {
	userAgent      string
	httpTimeout    time.Duration
	curlPath       string
	connectTimeout time.Duration
	curlRetry      int
	strategies     []interfaces.DownloadStrategy
}

// Option is a functional option for Downloader configuration
type Option func(*config)

// WithUserAgent sets the User-Agent header sent by every strategy
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithHTTPTimeout limits a whole HTTP request. Zero means no limit.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *config) {
		c.httpTimeout = d
	}
}

// WithCurlPath sets the curl binary name or path
func WithCurlPath(path string) Option {
	return func(c *config) {
		c.curlPath = path
	}
}

// WithConnectTimeout sets the connect timeout passed to curl and used by the transport dialer
func WithConnectTimeout(d time.Duration) Option {
	return func(c *config) {
		c.connectTimeout = d
	}
}

// WithCurlRetry sets the number of retries curl performs internally
func WithCurlRetry(n int) Option {
	return func(c *config) {
		c.curlRetry = n
	}
}

// WithStrategies replaces the default strategy chain
func WithStrategies(strategies ...interfaces.DownloadStrategy) Option {
	return func(c *config) {
		c.strategies = strategies
	}
}

// Downloader tries each strategy in order until one succeeds. Data is staged
// in "<destination>.tmp" and promoted with a rename, so the destination is
// never partially written.
type Downloader struct {
	strategies []interfaces.DownloadStrategy
}

var _ interfaces.Downloader = (*Downloader)(nil)

// New creates a Downloader. Without WithStrategies the chain is
// stream → transport → curl.
func New(opts ...Option) *Downloader {
	cfg := &config{
		userAgent:      types.BrowserUserAgent,
		curlPath:       "curl",
		connectTimeout: 30 * time.Second,
		curlRetry:      3,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	strategies := cfg.strategies
	if strategies == nil {
		strategies = []interfaces.DownloadStrategy{
			NewStreamStrategy(cfg.userAgent, cfg.httpTimeout),
			NewTransportStrategy(cfg.userAgent, cfg.connectTimeout, cfg.httpTimeout),
			NewCurlStrategy(cfg.curlPath, cfg.userAgent, cfg.connectTimeout, cfg.curlRetry),
		}
	}

	return &Downloader{strategies: strategies}
}

// Strategies returns the names of the configured strategies in order
func (d *Downloader) Strategies() []string {
	names := make([]string, len(d.strategies))
	for i, s := range d.strategies {
		names[i] = s.Name()
	}
	return names
}

// Download fetches url into destination and reports which strategy served it
func (d *Downloader) Download(ctx context.Context, url, destination string) (*model.DownloadResult, error) {
	logger := ctxlog.From(ctx)
	task := model.DownloadTask{URL: url, Destination: destination}

	for _, path := range []string{task.TempPath(), task.Destination} {
		if err := removeIfExists(path); err != nil {
			logger.Error("failed to remove file", "path", path, "error", err)
			return nil, goerr.Wrap(err, "failed to remove file before download", goerr.V("path", path))
		}
	}

	var lastErr error
	for _, s := range d.strategies {
		logger.Info(fmt.Sprintf("trying %s download", s.Name()), "url", url)

		n, err := s.Fetch(ctx, task)
		if err != nil {
			logger.Error(fmt.Sprintf("download failed (%s)", s.Name()), "url", url, "error", err)
			discard(ctx, task.TempPath())
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if err := os.Rename(task.TempPath(), task.Destination); err != nil {
			logger.Error("failed to move file",
				"from", task.TempPath(),
				"to", task.Destination,
				"error", err,
			)
			discard(ctx, task.TempPath())
			lastErr = err
			continue
		}

		logger.Info("file downloaded",
			"path", task.Destination,
			"size", formatSize(n),
			"strategy", s.Name(),
		)
		return &model.DownloadResult{Strategy: s.Name(), Size: n}, nil
	}

	logger.Error("all download methods failed: " + url)

	cause := "no strategy configured"
	if lastErr != nil {
		cause = lastErr.Error()
	}
	return nil, goerr.Wrap(ErrAllStrategiesFailed, "download failed",
		goerr.V("url", url),
		goerr.V("last_error", cause),
	)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// discard removes a leftover temp file; failures are only logged
func discard(ctx context.Context, path string) {
	if err := removeIfExists(path); err != nil {
		ctxlog.From(ctx).Warn("failed to remove temp file", "path", path, "error", err)
	}
}
