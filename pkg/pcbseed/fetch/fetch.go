// Package fetch acquires workbook bytes from a local file or, failing that, over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single download.
const DefaultTimeout = 90 * time.Second

// ErrNoLocation indicates a Location with neither a usable path nor a URL.
var ErrNoLocation = errors.New("no workbook location")

// Location says where a workbook can be found. Path is preferred when the file exists.
type Location struct {
	Path string
	URL  string
}

// DriveURL returns the direct-download URL for a Google Drive file id.
func DriveURL(id string) string {
	return "https://drive.google.com/uc?export=download&id=" + url.QueryEscape(id)
}

// Fetcher reads workbooks from disk or the network.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the HTTP client used for downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithTimeout sets the per-download timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// New creates a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the workbook bytes for loc.
func (f *Fetcher) Fetch(ctx context.Context, loc Location) ([]byte, error) {
	if loc.Path != "" {
		data, err := os.ReadFile(loc.Path)
		if err == nil {
			f.logger.Info("using local workbook", zap.String("path", loc.Path))
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read workbook %s: %w", loc.Path, err)
		}
		if loc.URL == "" {
			return nil, fmt.Errorf("workbook not found: %s", loc.Path)
		}
		f.logger.Info("local workbook not found, downloading",
			zap.String("path", loc.Path), zap.String("url", loc.URL))
	}
	if loc.URL == "" {
		return nil, ErrNoLocation
	}
	return f.download(ctx, loc.URL)
}

func (f *Fetcher) download(ctx context.Context, rawURL string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download workbook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download workbook: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read download: %w", err)
	}
	f.logger.Debug("workbook downloaded", zap.String("url", rawURL), zap.Int("bytes", len(data)))
	return data, nil
}
