package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ytget/glb-fetcher/internal/config"
	"github.com/ytget/glb-fetcher/internal/model"
	"github.com/ytget/glb-fetcher/internal/platform"
)

// StepDownload is the step name reported in FetchError for file downloads
const StepDownload = "download"

// Progress constants
const (
	unknownSizeUnit   = 1 << 20 // one progress point per MiB when the size is unknown
	unknownSizeCap    = 99
	progressLogPeriod = 2 * time.Second
)

// File permissions
const (
	dirPermissions = 0755
)

// Fetcher streams a file URL to disk
type Fetcher struct {
	client    *http.Client
	logger    *zap.Logger
	userAgent string
	chunkSize int
}

// NewFetcher creates a new Fetcher. client should come from NewDownloadClient.
func NewFetcher(cfg *config.Config, client *http.Client, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client:    client,
		logger:    logger,
		userAgent: cfg.HTTP.UserAgent,
		chunkSize: cfg.Download.ChunkSize,
	}
}

// NewDownloadClient returns an HTTP client whose connect, TLS handshake and
// response header phases are each bounded by connectTimeout. Reading the body
// is not bounded.
func NewDownloadClient(connectTimeout time.Duration, maxRedirects int) *http.Client {
	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   connectTimeout,
		ResponseHeaderTimeout: connectTimeout,
		IdleConnTimeout:       90 * time.Second,
	}
	return &http.Client{
		Transport:     transport,
		CheckRedirect: platform.RedirectPolicy(maxRedirects),
	}
}

// Download streams fileURL into dest, creating parent directories. onProgress,
// if set, receives a percentage after every chunk and a final 100. It returns
// the number of bytes written. On a write or stream failure the partial file
// is left in place.
func (f *Fetcher) Download(ctx context.Context, fileURL, dest string, onProgress model.ProgressFunc) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dest), dirPermissions); err != nil {
		return 0, model.NewDownloadError(dest, fmt.Errorf("create directory: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return 0, model.NewFetchError(StepDownload, fileURL, 0, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, model.NewFetchError(StepDownload, fileURL, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, model.NewFetchError(StepDownload, fileURL, resp.StatusCode, errors.New(http.StatusText(resp.StatusCode)))
	}

	total := resp.ContentLength
	f.logger.Debug("download started",
		zap.String("url", fileURL),
		zap.String("dest", dest),
		zap.Int64("content_length", total))

	out, err := os.Create(dest)
	if err != nil {
		return 0, model.NewDownloadError(dest, err)
	}

	written, err := f.copyChunks(out, resp.Body, total, onProgress)
	if err != nil {
		_ = out.Close()
		return written, model.NewDownloadError(dest, err)
	}
	if err := out.Close(); err != nil {
		return written, model.NewDownloadError(dest, err)
	}

	report(onProgress, 100)
	f.logger.Info("download finished",
		zap.String("dest", dest),
		zap.Int64("bytes", written),
		zap.String("size", humanize.IBytes(uint64(written))))
	return written, nil
}

// copyChunks copies body to out one chunk at a time
func (f *Fetcher) copyChunks(out io.Writer, body io.Reader, total int64, onProgress model.ProgressFunc) (int64, error) {
	buf := make([]byte, f.chunkSize)
	sampler := rate.Sometimes{First: 1, Interval: progressLogPeriod}

	var received int64
	for {
		n, readErr := readChunk(body, buf)
		if n > 0 {
			if _, err := out.Write(buf[:n]); err != nil {
				return received, fmt.Errorf("write: %w", err)
			}
			received += int64(n)

			percent := progressPercent(received, total)
			report(onProgress, percent)
			sampler.Do(func() {
				f.logger.Debug("download progress",
					zap.Int64("bytes", received),
					zap.Int64("total", total),
					zap.Int("percent", percent))
			})
		}

		if readErr == io.EOF {
			if total > 0 && received != total {
				return received, fmt.Errorf("read: got %d of %d bytes: %w", received, total, io.ErrUnexpectedEOF)
			}
			return received, nil
		}
		if readErr != nil {
			return received, fmt.Errorf("read: %w", readErr)
		}
	}
}

// readChunk fills buf from r. It returns io.EOF together with the last,
// possibly short or empty, chunk only when r itself reported a clean end of
// stream; any other read error is returned unchanged.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// progressPercent maps received bytes to [0, 100]. Without a known total the
// value advances one point per MiB and wraps, staying at or below 99.
func progressPercent(received, total int64) int {
	if total > 0 {
		p := received * 100 / total
		if p > 100 {
			p = 100
		}
		return int(p)
	}
	return int(min(unknownSizeCap, (received/unknownSizeUnit)%100))
}

func report(onProgress model.ProgressFunc, percent int) {
	if onProgress != nil {
		onProgress(percent)
	}
}
