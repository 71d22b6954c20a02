package download

import (
	"context"

	"github.com/ytget/glb-fetcher/internal/model"
)

// Resolver turns free-text input into a downloadable file URL
type Resolver interface {
	Resolve(ctx context.Context, input string, logf model.LogFunc) (model.ResolvedTarget, error)
}

// FileFetcher streams a file URL to a local path
type FileFetcher interface {
	Download(ctx context.Context, fileURL, dest string, onProgress model.ProgressFunc) (int64, error)
}

// BrowserOpener opens a URL in the user's browser
type BrowserOpener interface {
	OpenURL(rawURL string) error
}

// Downloader defines the interface for the job service.
type Downloader interface {
	SetUpdateCallback(func(model.Event))
	Start(input, downloadDir string) (*model.Job, error)
	GetJob(id string) (*model.Job, bool)
	GetAllJobs() []*model.Job
	IsBusy() bool
	OpenViewer() error
}
