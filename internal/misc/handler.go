package misc

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pemdes/webdesa/internal/auth"
	"github.com/pemdes/webdesa/internal/middleware"
	"github.com/pemdes/webdesa/internal/telemetry/metrics"
	"github.com/pemdes/webdesa/internal/telemetry/tracing"
	"github.com/pemdes/webdesa/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=misc_test

type authService interface {
	Login(ctx context.Context, creds auth.Credentials) (*auth.LoginResult, error)
	Logout(ctx context.Context, authHeader string) error
	Verify(ctx context.Context, authHeader string) (*auth.Profile, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *auth.Profile `json:"user"`
}

type VerifyResponse struct {
	User *auth.Profile `json:"user"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type Handler struct {
	authService    authService
	versionInfo    string
	metricsManager *metrics.Manager
}

func NewHandler(
	authService authService,
	versionInfo string,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		authService:    authService,
		versionInfo:    versionInfo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	mainRouter.HandleFunc("/logout", handler.handleLogout).Methods("POST", "OPTIONS").Name("logout")
	mainRouter.HandleFunc("/verify", handler.handleVerify).Methods("POST", "OPTIONS").Name("verify")

	// credential guessing endpoints are rate limited per client ip
	authRouter := mainRouter.NewRoute().Subrouter()
	authRouter.HandleFunc("/login", handler.handleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/reset-password", handler.handleResetPassword).Methods("POST", "OPTIONS").Name("reset-password")
	authRouter.Use(middleware.RateLimit(rateLimiter, "auth", loginAllowedPerMin, handler.metricsManager))
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.login")
	defer span.End()

	var loginReq LoginRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			log.Tracef("login, parse form: %s", err)
			pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidBody)
			return
		}
		loginReq = LoginRequest{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	} else if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidBody)
		return
	}

	res, err := handler.authService.Login(ctx, auth.Credentials{
		Username: loginReq.Username,
		Password: loginReq.Password,
	})
	if err != nil {
		outcome := metrics.LoginDenied
		if !auth.IsAuthError(err) && !auth.IsValidationError(err) {
			outcome = metrics.LoginError
		}
		handler.loginAttempt(outcome)
		handler.writeError(w, span, "login", err)
		return
	}

	handler.loginAttempt(metrics.LoginSuccess)
	log.Tracef("login success for [%s]", res.User.Username)
	span.SetStatus(codes.Ok, "login-ok")
	pkg.WriteJSONOK(w, LoginResponse{
		Token: res.Token,
		User:  res.User,
	})
}

// handleLogout always succeeds, the client drops its token regardless.
func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.logout")
	defer span.End()

	if err := handler.authService.Logout(ctx, r.Header.Get("Authorization")); err != nil {
		log.Errorf("logout, revoke token: %s", err)
		span.RecordError(err)
	}

	pkg.WriteJSONOK(w, pkg.SuccessResponse{Success: true})
}

func (handler *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.verify")
	defer span.End()

	profile, err := handler.authService.Verify(ctx, r.Header.Get("Authorization"))
	if err != nil {
		handler.writeError(w, span, "verify", err)
		return
	}

	span.SetStatus(codes.Ok, "verify-ok")
	pkg.WriteJSONOK(w, VerifyResponse{User: profile})
}

func (handler *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.resetPassword")
	defer span.End()

	var resetReq ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&resetReq); err != nil {
		log.Tracef("reset password, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidBody)
		return
	}

	if err := handler.authService.ResetPassword(ctx, resetReq.Token, resetReq.NewPassword); err != nil {
		outcome := metrics.ResetRejected
		if !auth.IsValidationError(err) {
			outcome = metrics.ResetError
		}
		handler.passwordReset(outcome)
		handler.writeError(w, span, "reset password", err)
		return
	}

	handler.passwordReset(metrics.ResetSuccess)
	span.SetStatus(codes.Ok, "reset-ok")
	pkg.WriteJSONOK(w, pkg.SuccessResponse{Success: true})
}

// writeError maps auth errors to 400/401, everything else is a 500 with a
// generic message.
func (handler *Handler) writeError(w http.ResponseWriter, span trace.Span, op string, err error) {
	switch {
	case auth.IsValidationError(err):
		span.SetStatus(codes.Error, "bad-request")
		pkg.WriteJSONError(w, http.StatusBadRequest, auth.Message(err))
	case auth.IsAuthError(err):
		log.Tracef("%s denied: %s", op, err)
		span.SetStatus(codes.Error, "unauthorized")
		pkg.WriteJSONError(w, http.StatusUnauthorized, auth.Message(err))
	default:
		log.Errorf("%s: %s", op, err)
		span.SetStatus(codes.Error, op+"-failed")
		span.RecordError(err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, auth.MsgServerError)
	}
}

func (handler *Handler) loginAttempt(outcome string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterLoginAttempts.WithLabelValues(outcome).Inc()
	}
}

func (handler *Handler) passwordReset(outcome string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterPasswordResets.WithLabelValues(outcome).Inc()
	}
}
