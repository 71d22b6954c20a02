package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/glb-fetcher/internal/config"
	"github.com/ytget/glb-fetcher/internal/download"
	"github.com/ytget/glb-fetcher/internal/logger"
	"github.com/ytget/glb-fetcher/internal/platform"
	"github.com/ytget/glb-fetcher/internal/resolve"
	"github.com/ytget/glb-fetcher/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.glb-fetcher"
)

func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting", zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(ui.WindowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	downloadsDir := platform.GetDefaultDownloadDir()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Warn("failed to ensure downloads dir", zap.String("dir", downloadsDir), zap.Error(err))
	}
	settings := config.NewSettings(downloadsDir)

	resolver := resolve.NewResolver(cfg, resolve.NewPageClient(cfg.HTTP.MaxRedirects), log.Named("resolve"))
	fetcher := download.NewFetcher(cfg, download.NewDownloadClient(cfg.HTTP.DownloadTimeout, cfg.HTTP.MaxRedirects), log.Named("download"))
	jobs := download.NewService(resolver, fetcher, platform.NewBrowser(), cfg.Viewer.Name, cfg.Viewer.BaseURL, log.Named("jobs"))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, jobs, settings, cfg.Viewer.Name, log.Named("ui"))

	// Show and run
	myWindow.ShowAndRun()
}
