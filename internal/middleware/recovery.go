package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pemdes/webdesa/internal/telemetry/metrics"
	"github.com/pemdes/webdesa/pkg"
)

// PanicRecovery turns a handler panic into a JSON 500, unless the handler
// already started writing its response. http.ErrAbortHandler is re-raised.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			resp := newResponseWriter(respWriter)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"method": req.Method,
					"route":  routeTemplate(req),
				}).Errorf("http: panic serving %s: %v\n%s", req.URL.Path, rec, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}

				span := trace.SpanFromContext(req.Context())
				span.RecordError(fmt.Errorf("panic: %v", rec))
				span.SetStatus(codes.Error, "handler-panic")

				hub := sentry.GetHubFromContext(req.Context())
				if hub == nil {
					hub = sentry.CurrentHub()
				}
				hub.RecoverWithContext(req.Context(), rec)

				if !resp.wroteHeader {
					pkg.WriteJSONError(respWriter, http.StatusInternalServerError, pkg.MsgServerError)
				}
			}()

			// handler call
			next.ServeHTTP(resp, req)
		})
	}
}
