// Package download implements the job pipeline: resolve the input to a file
// URL, open the viewer with it, stream the file to disk with progress, and
// open the viewer again. Service runs one job at a time on a background
// goroutine and reports every step to the UI as model.Event values.
package download
