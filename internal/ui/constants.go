package ui

// Window
const (
	WindowTitle          = "meshy glb downloader"
	WindowWidth  float32 = 720
	WindowHeight float32 = 480
)

// Labels
const (
	InputPrompt       = "paste a meshy share link, model id, or a direct .glb url:"
	InputPlaceholder  = "https://www.meshy.ai/3d-models/…"
	DownloadLabel     = "download"
	ChooseFolderLabel = "choose directory"
	QuitLabel         = "quit"
	FileMenuLabel     = "File"
	QuitMenuLabel     = "Quit"
	SaveToFormat      = "save to: %s"
	OpenViewerFormat  = "open %s"
	OpenViewerMenu    = "Open %s"
)

// Status messages
const (
	StatusReady         = "ready"
	StatusEmptyInput    = "please paste something first."
	StatusBusy          = "a download is already running."
	StatusFolderFormat  = "download folder set to: %s"
	StatusViewerFormat  = "opened %s – load the .glb you downloaded."
	LogViewerFailFormat = "could not open %s: %v"
)

// Log pane
const (
	LogMinHeight float32 = 180
	MaxLogLines          = 1000
)
