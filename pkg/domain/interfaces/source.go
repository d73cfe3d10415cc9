package interfaces

//go:generate moq -out mocks/source_mock.go -pkg mocks . ConfigStore

import (
	"context"

	"github.com/m-mizutani/geosync/pkg/domain/model"
)

// ConfigStore loads the artifact source URLs
type ConfigStore interface {
	// Load reads the persisted config, creating or regenerating defaults when needed
	Load(ctx context.Context) (model.SourceConfig, error)

	// CreateDefault overwrites the persisted config with built-in defaults
	CreateDefault(ctx context.Context) error
}
