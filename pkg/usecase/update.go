package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/geosync/pkg/domain/interfaces"
	"github.com/m-mizutani/geosync/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// ErrRunFailed is returned when at least one artifact could not be downloaded
var ErrRunFailed = errors.New("rule file update failed")

// UpdateConfig holds the directories an update run works on
type UpdateConfig struct {
	StagingDir string // Where artifacts are downloaded to
	TestDir    string // <approot>/mihomo-party/test
	WorkDir    string // <approot>/mihomo-party/work, its subdirectories are synced too
}

// UpdateOption is a functional option for the update use case
type UpdateOption func(*updateUseCase)

// WithReporters adds reporters that receive the final RunResult
func WithReporters(reporters ...interfaces.RunReporter) UpdateOption {
	return func(uc *updateUseCase) {
		uc.reporters = append(uc.reporters, reporters...)
	}
}

// WithArtifacts overrides the compiled-in artifact list
func WithArtifacts(artifacts []model.ArtifactSpec) UpdateOption {
	return func(uc *updateUseCase) {
		uc.artifacts = artifacts
	}
}

type updateUseCase struct {
	store      interfaces.ConfigStore
	downloader interfaces.Downloader
	syncer     interfaces.DirectorySync
	reporters  []interfaces.RunReporter
	artifacts  []model.ArtifactSpec
	cfg        UpdateConfig
}

// NewUpdate creates a new instance of UpdateUseCase
func NewUpdate(
	store interfaces.ConfigStore,
	downloader interfaces.Downloader,
	syncer interfaces.DirectorySync,
	cfg UpdateConfig,
	opts ...UpdateOption,
) interfaces.UpdateUseCase {
	uc := &updateUseCase{
		store:      store,
		downloader: downloader,
		syncer:     syncer,
		artifacts:  model.Artifacts(),
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run loads the source config, downloads every artifact into the staging
// directory and, only if all downloads succeeded, copies them into the
// target directories.
func (uc *updateUseCase) Run(ctx context.Context) (*model.RunResult, error) {
	logger := ctxlog.From(ctx)

	result := &model.RunResult{
		RunID:     uuid.NewString(),
		State:     model.RunStateInit,
		StartedAt: time.Now(),
	}

	logger.Info("====== start updating rule files ======", "run_id", result.RunID)
	logger.Info(fmt.Sprintf("target directories: TEST_DIR=%s, WORK_DIR=%s", uc.cfg.TestDir, uc.cfg.WorkDir))

	if err := os.MkdirAll(uc.cfg.StagingDir, 0755); err != nil {
		uc.finish(ctx, result)
		return result, goerr.Wrap(err, "failed to create staging directory", goerr.V("dir", uc.cfg.StagingDir))
	}

	urls, err := uc.store.Load(ctx)
	if err != nil {
		uc.finish(ctx, result)
		return result, goerr.Wrap(err, "failed to load config")
	}
	uc.transition(ctx, result, model.RunStateConfigLoaded)

	uc.transition(ctx, result, model.RunStateDownloading)
	for _, a := range uc.artifacts {
		result.Artifacts = append(result.Artifacts, uc.download(ctx, urls, a))
	}

	if failed := result.Failed(); len(failed) > 0 {
		logger.Error("some downloads failed, update aborted", "failed", failed)
		uc.finish(ctx, result)
		return result, goerr.Wrap(ErrRunFailed, "download failed", goerr.V("failed", failed))
	}

	uc.transition(ctx, result, model.RunStateDirectorySyncing)
	for _, dir := range []string{uc.cfg.TestDir, uc.cfg.WorkDir} {
		if err := uc.syncer.UpdateDirectory(ctx, dir); err != nil {
			logger.Error("failed to update directory", "dir", dir, "error", err)
			continue
		}
		result.Targets = append(result.Targets, dir)
	}
	if err := uc.syncer.UpdateSubdirectories(ctx, uc.cfg.WorkDir); err != nil {
		logger.Error("failed to update subdirectories", "dir", uc.cfg.WorkDir, "error", err)
	}

	result.Success = true
	logger.Info("====== rule files updated ======")
	uc.finish(ctx, result)

	return result, nil
}

func (uc *updateUseCase) download(ctx context.Context, urls model.SourceConfig, a model.ArtifactSpec) model.ArtifactOutcome {
	logger := ctxlog.From(ctx)
	outcome := model.ArtifactOutcome{Key: a.Key, FileName: a.FileName}

	url, ok := urls.Lookup(a.URLKey)
	if !ok {
		logger.Error("config file is missing " + a.URLKey)
		outcome.Err = goerr.New("source URL is not configured", goerr.V("key", a.URLKey))
		return outcome
	}
	outcome.URL = url

	dest := filepath.Join(uc.cfg.StagingDir, a.FileName)
	downloaded, err := uc.downloader.Download(ctx, url, dest)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Strategy = downloaded.Strategy
	outcome.Bytes = downloaded.Size
	return outcome
}

func (uc *updateUseCase) transition(ctx context.Context, result *model.RunResult, next model.RunState) {
	ctxlog.From(ctx).Debug("run state changed", "from", result.State, "to", next)
	result.State = next
}

// finish marks the run done and hands it to reporters. Reporter failures
// never change the outcome of the run.
func (uc *updateUseCase) finish(ctx context.Context, result *model.RunResult) {
	uc.transition(ctx, result, model.RunStateDone)
	result.Duration = time.Since(result.StartedAt)

	for _, r := range uc.reporters {
		if err := r.Report(ctx, result); err != nil {
			ctxlog.From(ctx).Warn("failed to report run result", "error", err)
		}
	}
}
