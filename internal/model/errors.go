package model

import (
	"errors"
	"fmt"
)

// Common pipeline errors
var (
	ErrEmptyInput = errors.New("input is empty")
	ErrJobActive  = errors.New("a download is already in progress")
	ErrNotFound   = errors.New("no .glb link found")
)

// ResolutionError means no resolver strategy produced a file URL.
// Guidance is shown to the user as is.
type ResolutionError struct {
	Input    string
	Guidance string
}

// Error returns the guidance text
func (e *ResolutionError) Error() string {
	if e.Guidance != "" {
		return e.Guidance
	}
	return ErrNotFound.Error()
}

// Unwrap returns ErrNotFound so callers can match with errors.Is
func (e *ResolutionError) Unwrap() error {
	return ErrNotFound
}

// NewResolutionError creates a new resolution error
func NewResolutionError(input, guidance string) *ResolutionError {
	return &ResolutionError{Input: input, Guidance: guidance}
}

// IsResolution returns true if err is or wraps a ResolutionError
func IsResolution(err error) bool {
	var re *ResolutionError
	return errors.As(err, &re)
}

// FetchError means an HTTP request failed at the transport level or returned
// a non-success status. StatusCode is 0 for transport failures.
type FetchError struct {
	Step       string
	URL        string
	StatusCode int
	Err        error
}

// Error returns the error message
func (e *FetchError) Error() string {
	msg := e.Step
	if msg == "" {
		msg = "fetch"
	}
	if e.URL != "" {
		msg += " " + e.URL
	}
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: HTTP %d: %v", msg, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: HTTP %d", msg, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg + " failed"
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new fetch error
func NewFetchError(step, url string, statusCode int, err error) *FetchError {
	return &FetchError{Step: step, URL: url, StatusCode: statusCode, Err: err}
}

// IsFetch returns true if err is or wraps a FetchError
func IsFetch(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// DownloadError means writing the destination file or reading the stream
// failed. The partial file at Path is left on disk.
type DownloadError struct {
	Path string
	Err  error
}

// Error returns the error message
func (e *DownloadError) Error() string {
	if e.Err == nil {
		return "download to " + e.Path + " failed"
	}
	return "download to " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *DownloadError) Unwrap() error {
	return e.Err
}

// NewDownloadError creates a new download error
func NewDownloadError(path string, err error) *DownloadError {
	return &DownloadError{Path: path, Err: err}
}

// IsDownload returns true if err is or wraps a DownloadError
func IsDownload(err error) bool {
	var de *DownloadError
	return errors.As(err, &de)
}
