package cli_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/geosync/pkg/cli"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func baseArgs(root string) []string {
	return []string{
		"geosync",
		"--base-dir", root,
		"--app-data", filepath.Join(root, "appdata"),
		"--log-level", "debug",
	}
}

func TestRun_InitConfig(t *testing.T) {
	root := t.TempDir()
	args := append(baseArgs(root), "--no-log-file", "init-config")

	gt.NoError(t, cli.Run(context.Background(), args))

	data, err := os.ReadFile(filepath.Join(root, "config.toml"))
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains("[URLS]")

	// refuses to overwrite without --force
	gt.Error(t, cli.Run(context.Background(), args))
	gt.NoError(t, cli.Run(context.Background(), append(args, "--force")))
}

func TestRun_Update(t *testing.T) {
	mirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, "content of %s", strings.TrimPrefix(r.URL.Path, "/"))
	}))
	t.Cleanup(mirror.Close)

	root := t.TempDir()
	var b strings.Builder
	b.WriteString("[URLS]\n")
	for _, a := range model.Artifacts() {
		fmt.Fprintf(&b, "%s = %q\n", a.URLKey, mirror.URL+"/"+a.FileName)
	}
	gt.NoError(t, os.WriteFile(filepath.Join(root, "config.toml"), []byte(b.String()), 0644))

	metrics := filepath.Join(root, "metrics", "geosync.prom")
	args := append(baseArgs(root), "--metrics-file", metrics)

	// the root command runs an update by default
	gt.NoError(t, cli.Run(context.Background(), args))

	workDir := filepath.Join(root, "appdata", "mihomo-party", "work")
	for _, a := range model.Artifacts() {
		got, err := os.ReadFile(filepath.Join(workDir, a.FileName))
		gt.NoError(t, err)
		gt.Value(t, string(got)).Equal("content of " + a.FileName)
	}

	entries, err := os.ReadDir(filepath.Join(root, "log"))
	gt.NoError(t, err)
	gt.A(t, entries).Length(1)

	data, err := os.ReadFile(metrics)
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains("geosync_last_run_success 1")
}

func TestRun_UpdateFails(t *testing.T) {
	mirror := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(mirror.Close)

	root := t.TempDir()
	var b strings.Builder
	b.WriteString("[URLS]\n")
	for _, a := range model.Artifacts() {
		fmt.Fprintf(&b, "%s = %q\n", a.URLKey, mirror.URL+"/"+a.FileName)
	}
	gt.NoError(t, os.WriteFile(filepath.Join(root, "config.toml"), []byte(b.String()), 0644))

	args := append(baseArgs(root),
		"--no-log-file",
		"--curl-path", filepath.Join(root, "no-such-curl"),
		"update",
	)
	gt.Error(t, cli.Run(context.Background(), args))
}

func TestRun_InvalidLogFormat(t *testing.T) {
	root := t.TempDir()
	args := append(baseArgs(root), "--no-log-file", "--log-format", "xml", "init-config")
	gt.Error(t, cli.Run(context.Background(), args))
}
