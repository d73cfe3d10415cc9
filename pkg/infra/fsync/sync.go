package fsync

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/domain/interfaces"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Syncer copies staged artifacts into target directories
type Syncer struct {
	stagingDir string
	artifacts  []model.ArtifactSpec
}

var _ interfaces.DirectorySync = (*Syncer)(nil)

// New creates a Syncer reading artifacts from stagingDir
func New(stagingDir string, artifacts []model.ArtifactSpec) *Syncer {
	return &Syncer{
		stagingDir: stagingDir,
		artifacts:  artifacts,
	}
}

// UpdateDirectory copies every artifact into targetDir. A failed copy is
// logged and the remaining artifacts are still copied; only a failure to
// create targetDir is returned.
func (s *Syncer) UpdateDirectory(ctx context.Context, targetDir string) error {
	logger := ctxlog.From(ctx)

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create target directory", goerr.V("dir", targetDir))
	}
	logger.Info("updating directory", "dir", targetDir)

	copied := 0
	for _, a := range s.artifacts {
		src := filepath.Join(s.stagingDir, a.FileName)
		dst := filepath.Join(targetDir, a.FileName)

		if err := copyFile(src, dst); err != nil {
			logger.Error("failed to copy file", "src", src, "dst", dst, "error", err)
			continue
		}
		logger.Info("file copied", "dst", dst)
		copied++
	}

	logger.Debug("directory updated", "dir", targetDir, "copied", copied, "total", len(s.artifacts))
	return nil
}

// UpdateSubdirectories runs UpdateDirectory on each immediate child
// directory of parentDir. Other entries are skipped.
func (s *Syncer) UpdateSubdirectories(ctx context.Context, parentDir string) error {
	ctxlog.From(ctx).Info("updating subdirectories", "dir", parentDir)

	entries, err := os.ReadDir(parentDir)
	if err != nil {
		return goerr.Wrap(err, "failed to read directory", goerr.V("dir", parentDir))
	}

	for _, entry := range entries {
		if !isDir(parentDir, entry) {
			continue
		}
		if err := s.UpdateDirectory(ctx, filepath.Join(parentDir, entry.Name())); err != nil {
			ctxlog.From(ctx).Error("failed to update subdirectory", "dir", entry.Name(), "error", err)
		}
	}

	return nil
}

// isDir follows symlinks so linked profile directories are updated too
func isDir(parent string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}

// copyFile copies src to dst through a sibling temp file, keeping the
// source's permission bits and modification time
func copyFile(src, dst string) error {
	//nolint:gosec // G304: src is built from the staging dir and a fixed file name
	in, err := os.Open(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open source", goerr.V("src", src))
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return goerr.Wrap(err, "failed to stat source", goerr.V("src", src))
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("dst", dst))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to copy content", goerr.V("src", src), goerr.V("dst", dst))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmpName))
	}

	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return goerr.Wrap(err, "failed to set permissions", goerr.V("path", tmpName))
	}
	if err := os.Chtimes(tmpName, info.ModTime(), info.ModTime()); err != nil {
		return goerr.Wrap(err, "failed to set modification time", goerr.V("path", tmpName))
	}

	if err := os.Rename(tmpName, dst); err != nil {
		return goerr.Wrap(err, "failed to replace destination", goerr.V("dst", dst))
	}
	return nil
}
