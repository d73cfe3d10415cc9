package fetch

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// CurlStrategy shells out to curl as a last resort
type CurlStrategy struct {
	path           string
	userAgent      string
	connectTimeout time.Duration
	retry          int
}

// NewCurlStrategy creates the external-command strategy
func NewCurlStrategy(path, userAgent string, connectTimeout time.Duration, retry int) *CurlStrategy {
	return &CurlStrategy{
		path:           path,
		userAgent:      userAgent,
		connectTimeout: connectTimeout,
		retry:          retry,
	}
}

// Name returns the strategy name used in logs
func (s *CurlStrategy) Name() string {
	return "curl"
}

// Args returns the curl arguments for task
func (s *CurlStrategy) Args(task model.DownloadTask) []string {
	secs := int(s.connectTimeout / time.Second)
	if secs < 1 {
		secs = 1
	}

	return []string{
		"-A", s.userAgent,
		"-L",
		"--fail",
		"--progress-bar",
		"--connect-timeout", strconv.Itoa(secs),
		"--retry", strconv.Itoa(s.retry),
		task.URL,
		"-o", task.TempPath(),
	}
}

// Fetch runs curl and relays its progress output into the log
func (s *CurlStrategy) Fetch(ctx context.Context, task model.DownloadTask) (int64, error) {
	logger := ctxlog.From(ctx)

	bin, err := exec.LookPath(s.path)
	if err != nil {
		return 0, goerr.Wrap(err, "curl is not available", goerr.V("path", s.path))
	}

	//nolint:gosec // G204: binary and arguments are built from our own config
	cmd := exec.CommandContext(ctx, bin, s.Args(task)...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to attach curl stderr")
	}

	if err := cmd.Start(); err != nil {
		return 0, goerr.Wrap(err, "failed to start curl", goerr.V("path", bin))
	}

	scanner := bufio.NewScanner(stderr)
	scanner.Split(scanProgressLines)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Info("download progress: " + line)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Debug("stopped reading curl output", "error", err)
	}
	// curl blocks on a full pipe, so whatever the scanner left must be read before Wait
	_, _ = io.Copy(io.Discard, stderr)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return 0, goerr.Wrap(err, "curl exited with error", goerr.V("exit_code", exitErr.ExitCode()))
		}
		return 0, goerr.Wrap(err, "curl failed")
	}

	info, err := os.Stat(task.TempPath())
	if err != nil {
		return 0, goerr.Wrap(err, "curl produced no output", goerr.V("path", task.TempPath()))
	}
	return info.Size(), nil
}

// scanProgressLines splits on both \r and \n since curl redraws its
// progress bar with carriage returns
func scanProgressLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
