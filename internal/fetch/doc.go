// Package fetch retrieves raw HTML for a URL, either with a plain HTTP GET
// or through a headless-browser session for pages whose content is generated
// by scripts.
//
// The dynamic path goes through the Renderer interface so tests can inject a
// fake instead of a real browser. A browser session is acquired at the start
// of a render and released on every exit path, including timeout; no session
// outlives the call that opened it. Neither path retries: a failed fetch is
// surfaced immediately as a *NetworkError or *RenderTimeoutError.
package fetch
