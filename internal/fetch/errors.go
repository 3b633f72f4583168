package fetch

import (
	"fmt"
	"time"
)

// NetworkError reports a fetch that failed at the transport or HTTP layer.
// It aborts the whole page operation; no partial page result exists.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RenderTimeoutError reports a dynamic render whose ready condition never
// became true within the configured timeout.
type RenderTimeoutError struct {
	URL     string
	Ready   string
	Timeout time.Duration
	Err     error
}

func (e *RenderTimeoutError) Error() string {
	return fmt.Sprintf("rendering %s: %q not present after %s", e.URL, e.Ready, e.Timeout)
}

func (e *RenderTimeoutError) Unwrap() error { return e.Err }
