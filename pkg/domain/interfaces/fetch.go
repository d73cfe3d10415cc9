package interfaces

//go:generate moq -out mocks/fetch_mock.go -pkg mocks . Downloader DownloadStrategy DirectorySync

import (
	"context"

	"github.com/m-mizutani/geosync/pkg/domain/model"
)

// Downloader fetches a URL into a destination path, never leaving the
// destination partially written
type Downloader interface {
	Download(ctx context.Context, url, destination string) (*model.DownloadResult, error)
}

// DownloadStrategy is one mechanism the Downloader may use. Fetch writes the
// body to task.TempPath() and returns the number of bytes written.
type DownloadStrategy interface {
	Name() string
	Fetch(ctx context.Context, task model.DownloadTask) (int64, error)
}

// DirectorySync copies staged artifacts into target directories
type DirectorySync interface {
	UpdateDirectory(ctx context.Context, targetDir string) error
	UpdateSubdirectories(ctx context.Context, parentDir string) error
}
