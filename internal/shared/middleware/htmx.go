// Package middleware holds HTTP middleware shared by the web handlers.
package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const htmxKey contextKey = "htmx"

// Request is what htmx told us about the request.
type Request struct {
	Enabled bool
	// Trigger is the id of the element that fired the request, if any.
	Trigger string
}

// HTMX stores the htmx request headers in the request context.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := Request{
			Enabled: r.Header.Get("HX-Request") == "true",
			Trigger: r.Header.Get("HX-Trigger"),
		}
		ctx := context.WithValue(r.Context(), htmxKey, req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromRequest returns the htmx details of r. Requests that did not pass
// through HTMX report a zero Request.
func FromRequest(r *http.Request) Request {
	req, _ := r.Context().Value(htmxKey).(Request)
	return req
}

// Retarget makes htmx swap the response into selector instead of the
// requesting element.
func Retarget(w http.ResponseWriter, selector string) {
	w.Header().Set("HX-Retarget", selector)
	w.Header().Set("HX-Reswap", "outerHTML")
}
