// Package httputil provides HTTP support used by the icon client: a
// file-based response cache and retry with exponential backoff.
//
// The cache stores raw bodies (SVG icons) keyed by request URL, so repeated
// generation runs don't hit the rendering service for unchanged algorithms.
// Retries only fire for errors wrapped in [RetryableError]; permanent
// failures (404s, malformed requests) surface immediately.
package httputil
