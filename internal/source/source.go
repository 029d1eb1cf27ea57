// Package source acquires the deployments document. Acquisition is the only
// part of the pipeline that can fail: the parser downstream accepts whatever
// text it is given.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/gerunddev/contractbook/internal/config"
	"github.com/gerunddev/contractbook/internal/logger"
)

// Result holds an acquired document and where it came from
type Result struct {
	Text      string
	Origin    string // URL or file path actually used
	RequestID string
}

// Fetcher acquires the deployments document from the configured sources
type Fetcher struct {
	cfg    *config.Config
	log    *logger.Logger
	client *http.Client
}

// NewFetcher creates a fetcher for the given configuration
func NewFetcher(cfg *config.Config, log *logger.Logger) *Fetcher {
	return &Fetcher{
		cfg: cfg,
		log: log,
		client: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// Fetch retrieves the document text, trying the configured URL first and
// falling back to the local file. The returned error names which source
// failed and why.
func (f *Fetcher) Fetch(ctx context.Context) (*Result, error) {
	requestID := uuid.New().String()

	var fetchErr error
	if f.cfg.DocumentURL != "" {
		text, err := f.fetchURL(ctx, f.cfg.DocumentURL)
		if err == nil {
			f.log.DocumentFetched(f.cfg.DocumentURL, requestID, len(text))
			return &Result{Text: text, Origin: f.cfg.DocumentURL, RequestID: requestID}, nil
		}
		fetchErr = err
		if f.cfg.FallbackFile != "" {
			f.log.FetchFallback(f.cfg.DocumentURL, f.cfg.FallbackFile, err)
		}
	}

	if f.cfg.FallbackFile != "" {
		data, err := os.ReadFile(f.cfg.FallbackFile)
		if err == nil {
			f.log.DocumentFetched(f.cfg.FallbackFile, requestID, len(data))
			return &Result{Text: string(data), Origin: f.cfg.FallbackFile, RequestID: requestID}, nil
		}
		readErr := fmt.Errorf("read fallback file %s: %w", f.cfg.FallbackFile, err)
		if fetchErr != nil {
			readErr = fmt.Errorf("%w (after: %v)", readErr, fetchErr)
		}
		f.log.FetchFailed(requestID, readErr)
		return nil, readErr
	}

	if fetchErr == nil {
		fetchErr = fmt.Errorf("no document source configured")
	}
	f.log.FetchFailed(requestID, fetchErr)
	return nil, fetchErr
}

// ReadFile reads a document from an explicit path, bypassing configuration.
// Used by commands that take document arguments, like diff.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", path, err)
	}
	return string(data), nil
}

func (f *Fetcher) fetchURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: read body: %w", url, err)
	}

	return string(data), nil
}
