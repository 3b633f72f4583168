package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mtbdata/mtb-results/internal/extract"
)

const (
	UserAgent = "mtb-results/1.0 (github.com/mtbdata/mtb-results)"
	Timeout   = 30 * time.Second
)

// Renderer drives a headless browser to obtain the DOM of a script-generated
// page. Render must release every browser resource it acquires before
// returning, on success and on failure alike.
type Renderer interface {
	Render(ctx context.Context, url, readySelector string) (string, error)
}

// Fetcher retrieves page HTML. The zero value is not usable; construct with
// New or NewWithClient.
type Fetcher struct {
	client   *http.Client
	renderer Renderer
}

// New creates a Fetcher with a default HTTP client. renderer may be nil when
// only static fetching is needed.
func New(renderer Renderer) *Fetcher {
	return NewWithClient(&http.Client{Timeout: Timeout}, renderer)
}

// NewWithClient creates a Fetcher using the given HTTP client.
func NewWithClient(client *http.Client, renderer Renderer) *Fetcher {
	return &Fetcher{
		client:   client,
		renderer: renderer,
	}
}

// Fetch returns the HTML of url. With renderDynamic set, the page is loaded
// in a browser session and the fetch waits for the page kind's ready selector
// before reading the DOM; otherwise a single GET is issued. No retries on
// either path.
func (f *Fetcher) Fetch(ctx context.Context, url string, kind extract.PageKind, renderDynamic bool) (string, error) {
	if renderDynamic {
		if f.renderer == nil {
			return "", fmt.Errorf("dynamic fetch of %s: no renderer configured", url)
		}
		return f.renderer.Render(ctx, url, kind.ReadySelector())
	}
	return f.get(ctx, url)
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &NetworkError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}
	return string(body), nil
}
