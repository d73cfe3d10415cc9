package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/geosync/pkg/infra/fetch"
	"github.com/m-mizutani/geosync/pkg/infra/fsync"
	"github.com/m-mizutani/geosync/pkg/infra/source"
	"github.com/m-mizutani/geosync/pkg/usecase"
	"github.com/m-mizutani/gt"
)

// newMirror serves "content of <file>" for every artifact except the ones in missing
func newMirror(t *testing.T, missing ...string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		for _, m := range missing {
			if name == m {
				http.NotFound(w, r)
				return
			}
		}
		_, _ = fmt.Fprintf(w, "content of %s", name)
	}))
	t.Cleanup(server.Close)
	return server
}

func writeSources(t *testing.T, path, baseURL string) {
	t.Helper()
	var b strings.Builder
	b.WriteString("[URLS]\n")
	for _, a := range model.Artifacts() {
		fmt.Fprintf(&b, "%s = %q\n", a.URLKey, baseURL+"/"+a.FileName)
	}
	gt.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
}

func TestUpdate_Integration_AllReachable(t *testing.T) {
	mirror := newMirror(t)
	root := t.TempDir()
	cfg := usecase.UpdateConfig{
		StagingDir: filepath.Join(root, "temp"),
		TestDir:    filepath.Join(root, "mihomo-party", "test"),
		WorkDir:    filepath.Join(root, "mihomo-party", "work"),
	}
	configPath := filepath.Join(root, "config.toml")
	writeSources(t, configPath, mirror.URL)

	gt.NoError(t, os.MkdirAll(filepath.Join(cfg.WorkDir, "sub-a"), 0755))
	gt.NoError(t, os.MkdirAll(filepath.Join(cfg.WorkDir, "sub-b"), 0755))

	uc := usecase.NewUpdate(
		source.New(configPath),
		fetch.New(),
		fsync.New(cfg.StagingDir, model.Artifacts()),
		cfg,
	)

	result, err := uc.Run(context.Background())
	gt.NoError(t, err)
	gt.Bool(t, result.Success).True()
	for _, a := range result.Artifacts {
		gt.Value(t, a.Strategy).Equal("stream")
		gt.Number(t, a.Bytes).Equal(int64(len("content of " + a.FileName)))
	}

	targets := []string{
		cfg.TestDir,
		cfg.WorkDir,
		filepath.Join(cfg.WorkDir, "sub-a"),
		filepath.Join(cfg.WorkDir, "sub-b"),
	}
	for _, a := range model.Artifacts() {
		staged, err := os.ReadFile(filepath.Join(cfg.StagingDir, a.FileName))
		gt.NoError(t, err)
		gt.Value(t, string(staged)).Equal("content of " + a.FileName)

		for _, dir := range targets {
			got, err := os.ReadFile(filepath.Join(dir, a.FileName))
			gt.NoError(t, err)
			gt.Value(t, got).Equal(staged)
		}
	}
}

func TestUpdate_Integration_OneNotFound(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake curl script requires a POSIX shell")
	}

	mirror := newMirror(t, "ASN.mmdb")
	root := t.TempDir()
	cfg := usecase.UpdateConfig{
		StagingDir: filepath.Join(root, "temp"),
		TestDir:    filepath.Join(root, "mihomo-party", "test"),
		WorkDir:    filepath.Join(root, "mihomo-party", "work"),
	}
	configPath := filepath.Join(root, "config.toml")
	writeSources(t, configPath, mirror.URL)

	gt.NoError(t, os.MkdirAll(cfg.TestDir, 0755))
	gt.NoError(t, os.WriteFile(filepath.Join(cfg.TestDir, "geoip.dat"), []byte("old"), 0644))

	curl := filepath.Join(t.TempDir(), "curl")
	//nolint:gosec // G306: test script must be executable
	gt.NoError(t, os.WriteFile(curl, []byte("#!/bin/sh\necho 'curl: (22) 404' >&2\nexit 22\n"), 0755))

	var logs bytes.Buffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))

	uc := usecase.NewUpdate(
		source.New(configPath),
		fetch.New(fetch.WithCurlPath(curl)),
		fsync.New(cfg.StagingDir, model.Artifacts()),
		cfg,
	)

	result, err := uc.Run(ctx)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, usecase.ErrRunFailed)).True()
	gt.Value(t, result.Failed()).Equal([]string{"ASN_MMDB"})

	out := logs.String()
	gt.String(t, out).Contains("all download methods failed: " + mirror.URL + "/ASN.mmdb")
	gt.String(t, out).Contains("some downloads failed, update aborted")
	gt.String(t, out).NotContains("updating directory")

	// the target directories were left alone
	got, err := os.ReadFile(filepath.Join(cfg.TestDir, "geoip.dat"))
	gt.NoError(t, err)
	gt.Value(t, string(got)).Equal("old")
	_, err = os.Stat(cfg.WorkDir)
	gt.Bool(t, errors.Is(err, os.ErrNotExist)).True()
}
