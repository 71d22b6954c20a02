package ui

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/glb-fetcher/internal/config"
	"github.com/ytget/glb-fetcher/internal/download"
	"github.com/ytget/glb-fetcher/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	app        fyne.App
	jobs       download.Downloader
	settings   *config.Settings
	logger     *zap.Logger
	viewerName string

	inputEntry  *widget.Entry
	downloadBtn *widget.Button
	viewerBtn   *widget.Button
	folderBtn   *widget.Button
	quitBtn     *widget.Button
	dirLabel    *widget.Label
	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	logLabel    *widget.Label
	logScroll   *container.Scroll
	logLines    []string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, jobs download.Downloader, settings *config.Settings, viewerName string, logger *zap.Logger) *RootUI {
	ui := &RootUI{
		window:     window,
		app:        app,
		jobs:       jobs,
		settings:   settings,
		logger:     logger,
		viewerName: strings.ToLower(viewerName),
	}

	window.SetTitle(WindowTitle)

	// Set up callback for job events
	ui.jobs.SetUpdateCallback(ui.onJobEvent)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.inputEntry = widget.NewEntry()
	ui.inputEntry.SetPlaceHolder(InputPlaceholder)
	// Trigger download when user presses Enter in the input field
	ui.inputEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.dirLabel = widget.NewLabel(fmt.Sprintf(SaveToFormat, ui.settings.GetDownloadDirectory()))
	ui.dirLabel.Truncation = fyne.TextTruncateEllipsis
	ui.folderBtn = widget.NewButton(ChooseFolderLabel, ui.onChooseFolder)

	ui.downloadBtn = widget.NewButton(DownloadLabel, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.viewerBtn = widget.NewButton(fmt.Sprintf(OpenViewerFormat, ui.viewerName), ui.onOpenViewer)
	ui.quitBtn = widget.NewButton(QuitLabel, ui.onQuit)

	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord
	ui.logLabel.Selectable = true
	ui.logScroll = container.NewVScroll(ui.logLabel)
	ui.logScroll.SetMinSize(fyne.NewSize(0, LogMinHeight))

	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(StatusReady)

	top := container.NewVBox(
		widget.NewLabel(InputPrompt),
		ui.inputEntry,
		container.NewBorder(nil, nil, nil, ui.folderBtn, ui.dirLabel),
		container.NewHBox(ui.downloadBtn, ui.viewerBtn, ui.quitBtn),
	)
	bottom := container.NewVBox(ui.progressBar, ui.statusLabel)

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, ui.logScroll))
	ui.window.Canvas().Focus(ui.inputEntry)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(fmt.Sprintf(OpenViewerMenu, viewerTitle(ui.viewerName)), ui.onOpenViewer)
	quitItem := fyne.NewMenuItem(QuitMenuLabel, ui.onQuit)
	quitItem.IsQuit = true

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(FileMenuLabel, openItem, fyne.NewMenuItemSeparator(), quitItem),
	))
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	text := strings.TrimSpace(ui.inputEntry.Text)
	if text == "" {
		ui.statusLabel.SetText(StatusEmptyInput)
		return
	}

	ui.progressBar.SetValue(0)
	job, err := ui.jobs.Start(text, ui.settings.GetDownloadDirectory())
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyInput):
			ui.statusLabel.SetText(StatusEmptyInput)
		case errors.Is(err, model.ErrJobActive):
			ui.statusLabel.SetText(StatusBusy)
		default:
			ui.statusLabel.SetText(err.Error())
		}
		return
	}

	// disabled until the finished event arrives
	ui.downloadBtn.Disable()
	ui.logger.Debug("job started", zap.String("job_id", job.ID))
}

// onOpenViewer opens the viewer start page
func (ui *RootUI) onOpenViewer() {
	if err := ui.jobs.OpenViewer(); err != nil {
		ui.logger.Warn("viewer not opened", zap.Error(err))
		ui.appendLog(fmt.Sprintf(LogViewerFailFormat, ui.viewerName, err))
		return
	}
	ui.statusLabel.SetText(fmt.Sprintf(StatusViewerFormat, ui.viewerName))
}

// onChooseFolder shows the folder picker
func (ui *RootUI) onChooseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.setDownloadDirectory(uri.Path())
	}, ui.window)
}

// setDownloadDirectory applies a folder chosen by the user
func (ui *RootUI) setDownloadDirectory(dir string) {
	if dir == "" {
		return
	}
	ui.settings.SetDownloadDirectory(dir)
	ui.dirLabel.SetText(fmt.Sprintf(SaveToFormat, dir))
	ui.statusLabel.SetText(fmt.Sprintf(StatusFolderFormat, dir))
}

func (ui *RootUI) onQuit() {
	ui.app.Quit()
}

// onJobEvent is called from the job goroutine
func (ui *RootUI) onJobEvent(event model.Event) {
	fyne.Do(func() {
		ui.applyEvent(event)
	})
}

// applyEvent updates widgets; must run on the UI loop
func (ui *RootUI) applyEvent(event model.Event) {
	switch event.Kind {
	case model.EventLog:
		ui.appendLog(event.Message)
	case model.EventStatus:
		ui.statusLabel.SetText(event.Message)
	case model.EventProgress:
		ui.progressBar.SetValue(float64(event.Percent) / 100)
	case model.EventFinished:
		ui.downloadBtn.Enable()
	}
}

// appendLog adds a line to the log pane and scrolls to it
func (ui *RootUI) appendLog(line string) {
	ui.logLines = append(ui.logLines, line)
	if len(ui.logLines) > MaxLogLines {
		ui.logLines = ui.logLines[len(ui.logLines)-MaxLogLines:]
	}
	ui.logLabel.SetText(strings.Join(ui.logLines, "\n"))
	ui.logScroll.ScrollToBottom()
}

// viewerTitle capitalizes the first letter for menu labels
func viewerTitle(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
