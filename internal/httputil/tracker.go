package httputil

import "net/http"

// ResponseTracker wraps a ResponseWriter and records whether anything
// has been written. The error normalizer consults it to guarantee a
// single response per request: once a body has started, a late failure
// is logged but never written.
type ResponseTracker struct {
	http.ResponseWriter
	wrote bool
}

// Track wraps w unless it is already tracked.
func Track(w http.ResponseWriter) *ResponseTracker {
	if t, ok := w.(*ResponseTracker); ok {
		return t
	}
	return &ResponseTracker{ResponseWriter: w}
}

func (t *ResponseTracker) WriteHeader(status int) {
	t.wrote = true
	t.ResponseWriter.WriteHeader(status)
}

func (t *ResponseTracker) Write(b []byte) (int, error) {
	t.wrote = true
	return t.ResponseWriter.Write(b)
}

// Wrote reports whether a response has been started.
func (t *ResponseTracker) Wrote() bool { return t.wrote }
