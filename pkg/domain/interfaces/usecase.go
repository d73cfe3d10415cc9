package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . UpdateUseCase RunReporter

import (
	"context"

	"github.com/m-mizutani/geosync/pkg/domain/model"
)

// UpdateUseCase runs one refresh of all rule databases
type UpdateUseCase interface {
	// Run downloads every artifact and syncs target directories.
	// A non-nil error is returned whenever the run did not succeed.
	Run(ctx context.Context) (*model.RunResult, error)
}

// RunReporter publishes the outcome of a run (metrics, chat, error tracking)
type RunReporter interface {
	Report(ctx context.Context, result *model.RunResult) error
}
