package resolve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/glb-fetcher/internal/config"
	"github.com/ytget/glb-fetcher/internal/model"
	"github.com/ytget/glb-fetcher/internal/platform"
)

// Step names reported in FetchError
const (
	StepFetchPage      = "fetch page"
	StepFetchModelPage = "fetch model page"
)

// Strategy names used in logs
const (
	StrategyDirect      = "direct"
	StrategyPageScrape  = "page scrape"
	StrategyDerivedPage = "derived page"
)

// Resolver implements the layered link resolution
type Resolver struct {
	client            *http.Client
	logger            *zap.Logger
	scan              *scanner
	ext               string
	modelPageTemplate string
	userAgent         string
	pageTimeout       time.Duration
	maxPageBytes      int64
}

// NewResolver creates a resolver from the startup configuration. A nil client
// gets one that follows up to cfg.HTTP.MaxRedirects redirects.
func NewResolver(cfg *config.Config, client *http.Client, logger *zap.Logger) *Resolver {
	if client == nil {
		client = NewPageClient(cfg.HTTP.MaxRedirects)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		client:            client,
		logger:            logger,
		scan:              newScanner(cfg.Resolver.Extension),
		ext:               cfg.Resolver.Extension,
		modelPageTemplate: cfg.Resolver.ModelPageTemplate,
		userAgent:         cfg.HTTP.UserAgent,
		pageTimeout:       cfg.HTTP.PageTimeout,
		maxPageBytes:      cfg.HTTP.MaxPageBytes,
	}
}

// NewPageClient returns an HTTP client that follows at most maxRedirects
// redirects. Timeouts are applied per request through the context.
func NewPageClient(maxRedirects int) *http.Client {
	return &http.Client{CheckRedirect: platform.RedirectPolicy(maxRedirects)}
}

// Guidance returns the message shown when nothing could be resolved
func (r *Resolver) Guidance() string {
	return fmt.Sprintf("couldn’t find a direct .%[1]s download link from what you pasted.\n"+
		"tip – in meshy, use the download/export option and copy the direct .%[1]s link if available.", r.ext)
}

// Resolve turns input into a file URL and a suggested filename. logf, if set,
// receives a line before every network fetch.
func (r *Resolver) Resolve(ctx context.Context, input string, logf model.LogFunc) (model.ResolvedTarget, error) {
	s := strings.TrimSpace(input)

	u, isURL := parseHTTPURL(s)
	if isURL && hasExtension(u, r.ext) {
		r.logger.Debug("resolved", zap.String("strategy", StrategyDirect), zap.String("url", s))
		return r.target(s), nil
	}

	scanned := ""
	if isURL {
		found, err := r.scanPage(ctx, StepFetchPage, s, logf)
		if err != nil {
			return model.ResolvedTarget{}, err
		}
		if found != "" {
			r.logger.Debug("resolved", zap.String("strategy", StrategyPageScrape), zap.String("url", found))
			return r.target(found), nil
		}
		scanned = s
	}

	if id, ok := ExtractModelID(s); ok {
		page := fmt.Sprintf(r.modelPageTemplate, id)
		if page != scanned {
			found, err := r.scanPage(ctx, StepFetchModelPage, page, logf)
			if err != nil {
				return model.ResolvedTarget{}, err
			}
			if found != "" {
				r.logger.Debug("resolved",
					zap.String("strategy", StrategyDerivedPage),
					zap.String("model_id", id),
					zap.String("url", found))
				return r.target(found), nil
			}
		}
	}

	r.logger.Info("no file link found", zap.String("input", s))
	return model.ResolvedTarget{}, model.NewResolutionError(s, r.Guidance())
}

func (r *Resolver) target(fileURL string) model.ResolvedTarget {
	return model.ResolvedTarget{
		FileURL:  fileURL,
		Filename: SuggestFilename(fileURL, r.ext),
	}
}

// scanPage fetches pageURL and returns the first file URL found in it, or ""
// when the page has none
func (r *Resolver) scanPage(ctx context.Context, step, pageURL string, logf model.LogFunc) (string, error) {
	if logf != nil {
		logf(fmt.Sprintf("fetching page to look for a .%s link – %s", r.ext, pageURL))
	}

	body, finalURL, err := r.fetchPage(ctx, step, pageURL)
	if err != nil {
		r.logger.Warn("page fetch failed", zap.String("url", pageURL), zap.Error(err))
		return "", err
	}

	found, tier, ok := r.scan.find(body, finalURL, logf)
	if !ok {
		r.logger.Debug("no candidate on page",
			zap.String("url", pageURL),
			zap.String("final_url", finalURL.String()),
			zap.Int("bytes", len(body)))
		return "", nil
	}

	r.logger.Debug("candidate found",
		zap.String("page", finalURL.String()),
		zap.String("tier", tier),
		zap.String("url", found))
	return found, nil
}

// fetchPage GETs pageURL and returns its body and the post-redirect URL
func (r *Resolver) fetchPage(ctx context.Context, step, pageURL string) (string, *url.URL, error) {
	ctx, cancel := context.WithTimeout(ctx, r.pageTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", nil, model.NewFetchError(step, pageURL, 0, err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", nil, model.NewFetchError(step, pageURL, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, model.NewFetchError(step, pageURL, resp.StatusCode, nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, r.maxPageBytes))
	if err != nil {
		return "", nil, model.NewFetchError(step, pageURL, resp.StatusCode, err)
	}

	return string(data), resp.Request.URL, nil
}
