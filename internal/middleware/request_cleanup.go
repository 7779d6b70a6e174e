package middleware

import (
	"io"
	"net/http"

	"github.com/pemdes/webdesa/pkg"
)

const (
	DefaultMaxRequestBodyBytes = 1 << 20

	// leftovers beyond this are not worth reading, the connection just won't be reused
	maxDrainBytes = 256 << 10
)

// DrainAndCloseRequest reads what the handler left of the body, so the
// connection can be reused, and closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes))
				_ = r.Body.Close()
			}
		})
	}
}

// LimitRequestBody answers 413 right away when the declared length is over
// maxBytes. Bodies without a declared length are capped while reading, so
// json decoding of a bigger body fails.
func LimitRequestBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				pkg.WriteJSONError(w, http.StatusRequestEntityTooLarge, pkg.MsgBodyTooBig)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
