package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultSource is the relative path the page has always read its content
// document from.
const DefaultSource = "assets/data/content.json"

// DefaultTimeout bounds a single load.
const DefaultTimeout = 10 * time.Second

// maxDocumentSize caps how much of a source is read.
const maxDocumentSize = 8 << 20

// Loader fetches and parses the content document from a file path or an
// http(s) URL.
type Loader struct {
	source  string
	client  *http.Client
	logger  *zap.Logger
	timeout time.Duration
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithLogger sets the logger that LoadOrNil reports failures to.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithTimeout bounds each load. Zero or negative disables the bound.
func WithTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) { l.timeout = d }
}

// NewLoader returns a Loader for source. An empty source means DefaultSource.
func NewLoader(source string, opts ...LoaderOption) *Loader {
	if strings.TrimSpace(source) == "" {
		source = DefaultSource
	}
	l := &Loader{
		source:  source,
		client:  http.DefaultClient,
		logger:  zap.NewNop(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the configured source.
func (l *Loader) Source() string { return l.source }

// IsRemote reports whether the source is fetched over HTTP.
func (l *Loader) IsRemote() bool { return isRemote(l.source) }

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Load reads and parses the content document.
func (l *Loader) Load(ctx context.Context) (*Content, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	data, err := l.read(ctx)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", l.source, err)
	}
	return c, nil
}

// LoadOrNil is Load for page rendering: a failure is logged and swallowed,
// and the caller gets nil so nothing renders.
func (l *Loader) LoadOrNil(ctx context.Context) *Content {
	c, err := l.Load(ctx)
	if err != nil {
		l.logger.Error("error loading content", zap.String("source", l.source), zap.Error(err))
		return nil
	}
	return c
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if l.IsRemote() {
		return l.fetch(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.source, err)
	}
	f, err := os.Open(l.source)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.source, err)
	}
	defer f.Close()
	data, err := readDocument(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.source, err)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", l.source, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", l.source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", l.source, resp.StatusCode)
	}
	data, err := readDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: reading body: %w", l.source, err)
	}
	return data, nil
}

// readDocument reads r whole, failing once it passes maxDocumentSize.
func readDocument(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("document exceeds %d MiB", maxDocumentSize>>20)
	}
	return data, nil
}
