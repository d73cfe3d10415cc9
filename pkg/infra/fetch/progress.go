package fetch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const chunkSize = 8192

// writeChunks streams body into path in chunkSize pieces, logging progress
// after every chunk. total is the expected size or <= 0 when unknown.
func writeChunks(ctx context.Context, body io.Reader, total int64, path string) (int64, error) {
	logger := ctxlog.From(ctx)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open temp file", goerr.V("path", path))
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, chunkSize)
	buf := make([]byte, chunkSize)
	var written int64

	for {
		if err := ctx.Err(); err != nil {
			return written, goerr.Wrap(err, "download interrupted")
		}

		n, readErr := body.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return written, goerr.Wrap(err, "failed to write temp file", goerr.V("path", path))
			}
			written += int64(n)

			if total > 0 {
				percent := float64(written) / float64(total) * 100
				logger.Info(fmt.Sprintf("download progress: %.1f%% (%s/%s)", percent, formatSize(written), formatSize(total)))
			} else {
				logger.Info("downloaded: " + formatSize(written))
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return written, goerr.Wrap(readErr, "failed to read response body", goerr.V("written", written))
		}
	}

	if err := w.Flush(); err != nil {
		return written, goerr.Wrap(err, "failed to flush temp file", goerr.V("path", path))
	}
	if err := f.Close(); err != nil {
		return written, goerr.Wrap(err, "failed to close temp file", goerr.V("path", path))
	}

	if total > 0 && written != total {
		return written, goerr.New("size mismatch", goerr.V("expected", total), goerr.V("written", written))
	}

	return written, nil
}

// formatSize renders n bytes as B/KB/MB/GB with two decimals
func formatSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB"} {
		if size < 1024 {
			return fmt.Sprintf("%.2f%s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2fGB", size)
}
