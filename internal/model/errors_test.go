package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestResolutionError(t *testing.T) {
	err := NewResolutionError("hello", "paste a direct link")

	if err.Error() != "paste a direct link" {
		t.Errorf("Error() = %q, expected guidance text", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("ResolutionError should match ErrNotFound")
	}
	if NewResolutionError("x", "").Error() != ErrNotFound.Error() {
		t.Error("empty guidance should fall back to ErrNotFound text")
	}

	wrapped := fmt.Errorf("resolve: %w", err)
	if !IsResolution(wrapped) {
		t.Error("IsResolution should see through wrapping")
	}
	if IsFetch(wrapped) || IsDownload(wrapped) {
		t.Error("ResolutionError must not match other kinds")
	}
}

func TestFetchError_Error(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name string
		err  *FetchError
		want string
	}{
		{
			name: "status only",
			err:  NewFetchError("fetch page", "https://a.b/", 404, nil),
			want: "fetch page https://a.b/: HTTP 404",
		},
		{
			name: "transport error",
			err:  NewFetchError("fetch page", "https://a.b/", 0, cause),
			want: "fetch page https://a.b/: connection refused",
		},
		{
			name: "status and error",
			err:  NewFetchError("download", "https://a.b/x.glb", 500, cause),
			want: "download https://a.b/x.glb: HTTP 500: connection refused",
		},
		{
			name: "empty",
			err:  &FetchError{},
			want: "fetch failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := fmt.Errorf("resolve: %w", NewFetchError("fetch page", "u", 0, cause))

	if !IsFetch(err) {
		t.Error("IsFetch should match wrapped FetchError")
	}
	if !errors.Is(err, cause) {
		t.Error("FetchError should unwrap to its cause")
	}
}

func TestDownloadError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDownloadError("/tmp/x.glb", cause)

	if got := err.Error(); got != "download to /tmp/x.glb: disk full" {
		t.Errorf("Error() = %v", got)
	}
	if !IsDownload(fmt.Errorf("job: %w", err)) {
		t.Error("IsDownload should match wrapped DownloadError")
	}
	if !errors.Is(err, cause) {
		t.Error("DownloadError should unwrap to its cause")
	}
	if NewDownloadError("/tmp/y.glb", nil).Error() != "download to /tmp/y.glb failed" {
		t.Error("nil cause message mismatch")
	}
}
