package middleware

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/pemdes/webdesa/internal/auth"
	"github.com/pemdes/webdesa/internal/telemetry/metrics"
	"github.com/pemdes/webdesa/internal/telemetry/tracing"
	"github.com/pemdes/webdesa/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type requestGate interface {
	CheckRequest(r *http.Request) (*auth.Profile, error)
}

// AuthMiddlewareHandler lets reads and the auth endpoints through and sends
// every other request through the auth gate.
type AuthMiddlewareHandler struct {
	gate           requestGate
	metricsManager *metrics.Manager
	allowedPaths   map[string]bool
}

func NewAuthMiddlewareHandler(
	gate requestGate,
	metricsManager *metrics.Manager,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		gate:           gate,
		metricsManager: metricsManager,
		allowedPaths: map[string]bool{
			"/login":          true,
			"/logout":         true,
			"/verify":         true,
			"/reset-password": true,
		},
	}
}

func (h *AuthMiddlewareHandler) isPublic(r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	return h.allowedPaths[r.URL.Path]
}

func (h *AuthMiddlewareHandler) deny(reason string) {
	if h.metricsManager != nil {
		h.metricsManager.CounterAuthDenials.WithLabelValues(reason).Inc()
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.isPublic(r) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			profile, err := h.gate.CheckRequest(r.WithContext(ctx))
			if err != nil {
				if !auth.IsAuthError(err) {
					log.Errorf("[auth middleware] gate check %s %s: %s", r.Method, r.URL.Path, err)
					h.deny(metrics.DenyUpstream)
					span.SetStatus(codes.Error, "gate-check-err")
					span.RecordError(err)
					pkg.WriteJSONError(w, http.StatusInternalServerError, auth.MsgServerError)
					return
				}

				log.Tracef("[auth middleware] unauthorized %s %s: %s", r.Method, r.URL.Path, err)
				h.deny(denialReason(err))
				span.SetStatus(codes.Error, "unauthorized")
				pkg.WriteJSONError(w, http.StatusUnauthorized, auth.Message(err))
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithProfile(r.Context(), profile)))
		})
	}
}

func denialReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return metrics.DenyMissingToken
	case errors.Is(err, auth.ErrInactiveOrUnknownAccount):
		return metrics.DenyInactiveAccount
	default:
		return metrics.DenyInvalidToken
	}
}
