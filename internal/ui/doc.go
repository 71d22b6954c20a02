package ui

// Package ui contains the Fyne desktop window. It forwards the pasted text to
// the job service and renders the events the service reports: log lines,
// status text, and download progress.
