package fsync_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/geosync/pkg/infra/fsync"
	"github.com/m-mizutani/gt"
)

func stage(t *testing.T) (string, []model.ArtifactSpec) {
	t.Helper()
	dir := t.TempDir()
	artifacts := model.Artifacts()
	for _, a := range artifacts {
		gt.NoError(t, os.WriteFile(filepath.Join(dir, a.FileName), []byte("data of "+a.Key), 0644))
	}
	return dir, artifacts
}

func TestSyncer_UpdateDirectory(t *testing.T) {
	staging, artifacts := stage(t)
	mtime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	src := filepath.Join(staging, "geoip.dat")
	gt.NoError(t, os.Chtimes(src, mtime, mtime))

	target := filepath.Join(t.TempDir(), "mihomo-party", "test")
	gt.NoError(t, fsync.New(staging, artifacts).UpdateDirectory(context.Background(), target))

	for _, a := range artifacts {
		want, err := os.ReadFile(filepath.Join(staging, a.FileName))
		gt.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(target, a.FileName))
		gt.NoError(t, err)
		gt.Value(t, got).Equal(want)
	}

	info, err := os.Stat(filepath.Join(target, "geoip.dat"))
	gt.NoError(t, err)
	gt.Bool(t, info.ModTime().Equal(mtime)).True()

	// no temp files are left behind
	entries, err := os.ReadDir(target)
	gt.NoError(t, err)
	gt.A(t, entries).Length(len(artifacts))
}

func TestSyncer_UpdateDirectory_ContinuesOnMissingFile(t *testing.T) {
	var logs bytes.Buffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))

	staging, artifacts := stage(t)
	gt.NoError(t, os.Remove(filepath.Join(staging, "geosite.dat")))

	target := t.TempDir()
	gt.NoError(t, fsync.New(staging, artifacts).UpdateDirectory(ctx, target))

	_, err := os.Stat(filepath.Join(target, "geosite.dat"))
	gt.Error(t, err)
	_, err = os.Stat(filepath.Join(target, "country.mmdb"))
	gt.NoError(t, err)

	gt.String(t, logs.String()).Contains("failed to copy file")
}

func TestSyncer_UpdateDirectory_OverwritesExisting(t *testing.T) {
	staging, artifacts := stage(t)
	target := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(target, "ASN.mmdb"), []byte("stale"), 0644))

	gt.NoError(t, fsync.New(staging, artifacts).UpdateDirectory(context.Background(), target))

	got, err := os.ReadFile(filepath.Join(target, "ASN.mmdb"))
	gt.NoError(t, err)
	gt.Value(t, string(got)).Equal("data of ASN_MMDB")
}

func TestSyncer_UpdateSubdirectories(t *testing.T) {
	var logs bytes.Buffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))

	staging, artifacts := stage(t)
	work := t.TempDir()
	gt.NoError(t, os.Mkdir(filepath.Join(work, "profile-a"), 0755))
	gt.NoError(t, os.Mkdir(filepath.Join(work, "profile-b"), 0755))
	gt.NoError(t, os.WriteFile(filepath.Join(work, "config.yaml"), []byte("mode: rule"), 0644))

	gt.NoError(t, fsync.New(staging, artifacts).UpdateSubdirectories(ctx, work))

	gt.Number(t, strings.Count(logs.String(), "msg=\"updating directory\"")).Equal(2)

	for _, sub := range []string{"profile-a", "profile-b"} {
		_, err := os.Stat(filepath.Join(work, sub, "geoip.dat"))
		gt.NoError(t, err)
	}

	// the plain file is untouched and the parent itself is not updated
	got, err := os.ReadFile(filepath.Join(work, "config.yaml"))
	gt.NoError(t, err)
	gt.Value(t, string(got)).Equal("mode: rule")
	_, err = os.Stat(filepath.Join(work, "geoip.dat"))
	gt.Error(t, err)
}

func TestSyncer_UpdateSubdirectories_MissingParent(t *testing.T) {
	staging, artifacts := stage(t)
	err := fsync.New(staging, artifacts).UpdateSubdirectories(context.Background(), filepath.Join(t.TempDir(), "nope"))
	gt.Error(t, err)
}
