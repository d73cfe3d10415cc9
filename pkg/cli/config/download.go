package config

import (
	"time"

	"github.com/m-mizutani/geosync/pkg/domain/types"
	"github.com/m-mizutani/geosync/pkg/infra/fetch"
	"github.com/urfave/cli/v3"
)

// Download holds downloader configuration
type Download struct {
	UserAgent      string
	CurlPath       string
	ConnectTimeout time.Duration
	CurlRetry      int
	HTTPTimeout    time.Duration
}

// Flags returns CLI flags for downloader configuration
func (c *Download) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "user-agent",
			Usage:       "User-Agent header for downloads",
			Value:       types.BrowserUserAgent,
			Destination: &c.UserAgent,
			Sources:     cli.EnvVars("GEOSYNC_USER_AGENT"),
		},
		&cli.StringFlag{
			Name:        "curl-path",
			Usage:       "curl binary used as the last download fallback",
			Value:       "curl",
			Destination: &c.CurlPath,
			Sources:     cli.EnvVars("GEOSYNC_CURL_PATH"),
		},
		&cli.DurationFlag{
			Name:        "connect-timeout",
			Usage:       "Connect timeout for the transport and curl fallbacks",
			Value:       30 * time.Second,
			Destination: &c.ConnectTimeout,
			Sources:     cli.EnvVars("GEOSYNC_CONNECT_TIMEOUT"),
		},
		&cli.IntFlag{
			Name:        "curl-retry",
			Usage:       "Retries performed by curl",
			Value:       3,
			Destination: &c.CurlRetry,
			Sources:     cli.EnvVars("GEOSYNC_CURL_RETRY"),
		},
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Overall timeout of one HTTP download, 0 for none",
			Destination: &c.HTTPTimeout,
			Sources:     cli.EnvVars("GEOSYNC_HTTP_TIMEOUT"),
		},
	}
}

// Options converts the configuration to downloader options
func (c *Download) Options() []fetch.Option {
	return []fetch.Option{
		fetch.WithUserAgent(c.UserAgent),
		fetch.WithCurlPath(c.CurlPath),
		fetch.WithConnectTimeout(c.ConnectTimeout),
		fetch.WithCurlRetry(c.CurlRetry),
		fetch.WithHTTPTimeout(c.HTTPTimeout),
	}
}
