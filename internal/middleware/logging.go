package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pemdes/webdesa/pkg"
)

// LogRequest logs the incoming request at trace level and its outcome once
// the handler returns: server errors at warn, everything else at debug.
// Headers are never logged, they carry bearer tokens.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _ := pkg.ReadUserIP(r)
			entry := log.WithFields(log.Fields{
				"method": r.Method,
				"route":  routeTemplate(r),
				"ip":     ip,
			})
			entry.Tracef(" ====> request path: [%s] [UA: %s]", r.URL.Path, r.UserAgent())

			begin := time.Now()
			resp := newResponseWriter(w)
			next.ServeHTTP(resp, r)

			entry = entry.WithFields(log.Fields{
				"status": resp.statusCode,
				"took":   time.Since(begin).Round(time.Microsecond).String(),
			})
			if resp.statusCode >= http.StatusInternalServerError {
				entry.Warnf(" <==== failed: [%s]", r.URL.Path)
				return
			}
			entry.Debugf(" <==== done: [%s]", r.URL.Path)
		})
	}
}
