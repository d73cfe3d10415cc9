package fetch

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

const maxRedirects = 10

// TransportStrategy talks to http.Transport directly and follows redirects
// itself. It shares no client state with StreamStrategy.
type TransportStrategy struct {
	transport *http.Transport
	userAgent string
}

// NewTransportStrategy creates the fallback HTTP strategy
func NewTransportStrategy(userAgent string, connectTimeout, responseTimeout time.Duration) *TransportStrategy {
	dialer := &net.Dialer{Timeout: connectTimeout}

	return &TransportStrategy{
		transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   connectTimeout,
			ResponseHeaderTimeout: responseTimeout,
			DisableCompression:    true,
			DisableKeepAlives:     true,
		},
		userAgent: userAgent,
	}
}

// Name returns the strategy name used in logs
func (s *TransportStrategy) Name() string {
	return "transport"
}

// Fetch downloads task.URL into the task's temp path
func (s *TransportStrategy) Fetch(ctx context.Context, task model.DownloadTask) (int64, error) {
	target := task.URL

	for i := 0; i <= maxRedirects; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return 0, goerr.Wrap(err, "failed to create request", goerr.V("url", target))
		}
		req.Header.Set("User-Agent", s.userAgent)

		resp, err := s.transport.RoundTrip(req)
		if err != nil {
			return 0, goerr.Wrap(err, "round trip failed", goerr.V("url", target))
		}

		if isRedirect(resp.StatusCode) {
			loc, err := resp.Location()
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			if err != nil {
				return 0, goerr.Wrap(err, "invalid redirect location", goerr.V("url", target))
			}
			target = loc.String()
			continue
		}

		n, err := s.save(ctx, resp, task)
		_ = resp.Body.Close()
		return n, err
	}

	return 0, goerr.New("too many redirects", goerr.V("url", task.URL))
}

func (s *TransportStrategy) save(ctx context.Context, resp *http.Response, task model.DownloadTask) (int64, error) {
	if err := checkStatus(resp); err != nil {
		return 0, err
	}
	return writeChunks(ctx, resp.Body, resp.ContentLength, task.TempPath())
}

func isRedirect(code int) bool {
	switch code {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}
