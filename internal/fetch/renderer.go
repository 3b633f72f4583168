package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserRenderer renders pages in a headless Chromium driven by rod. Each
// Render call owns its own browser session: launched on entry, torn down via
// defers on every exit path so a timed-out render never leaks a browser.
type BrowserRenderer struct {
	headless bool
	timeout  time.Duration
}

// NewBrowserRenderer creates a renderer. timeout bounds the whole render,
// including the wait for the ready selector.
func NewBrowserRenderer(headless bool, timeout time.Duration) *BrowserRenderer {
	if timeout <= 0 {
		timeout = Timeout
	}
	return &BrowserRenderer{
		headless: headless,
		timeout:  timeout,
	}
}

// Render navigates to url, waits until readySelector is present in the DOM,
// and returns the rendered document.
func (r *BrowserRenderer) Render(ctx context.Context, url, readySelector string) (string, error) {
	l := launcher.New().Headless(r.headless)
	controlURL, err := l.Launch()
	if err != nil {
		return "", fmt.Errorf("launching browser: %w", err)
	}
	defer l.Kill()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return "", fmt.Errorf("connecting to browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Timeout(r.timeout)

	if err := page.Navigate(url); err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}
	if err := page.WaitLoad(); err != nil {
		return "", &RenderTimeoutError{URL: url, Ready: readySelector, Timeout: r.timeout, Err: err}
	}

	// The ready condition: at least one record container in the DOM.
	if _, err := page.Element(readySelector); err != nil {
		return "", &RenderTimeoutError{URL: url, Ready: readySelector, Timeout: r.timeout, Err: err}
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading rendered DOM of %s: %w", url, err)
	}
	return html, nil
}
