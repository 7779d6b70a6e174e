package news

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pemdes/webdesa/internal/auth"
	"github.com/pemdes/webdesa/internal/telemetry/tracing"
	"github.com/pemdes/webdesa/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=news_test

type newsRepo interface {
	Add(ctx context.Context, n *News) error
	Update(ctx context.Context, n *News) error
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*News, error)
	All(ctx context.Context) ([]*News, error)
	Count(ctx context.Context) (int, error)
	GetPage(ctx context.Context, page, size int) ([]*News, error)
}

type PageResponse struct {
	News  []*News `json:"news"`
	Total int     `json:"total"`
}

type newsRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type Handler struct {
	repo newsRepo
}

func NewHandler(repo newsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/news/all", handler.handleAll).Methods("GET").Name("all-news")
	router.HandleFunc("/news/page/{page}/size/{size}", handler.handleGetPage).Methods("GET").Name("news-page")
	router.HandleFunc("/news/{id:[0-9]+}", handler.handleGet).Methods("GET").Name("get-news")
	router.HandleFunc("/news", handler.handleCreate).Methods("POST", "OPTIONS").Name("new-news")
	router.HandleFunc("/news/{id:[0-9]+}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("update-news")
	router.HandleFunc("/news/{id:[0-9]+}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-news")
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "newsHandler.all")
	defer span.End()

	all, err := handler.repo.All(ctx)
	if err != nil {
		handler.writeError(w, span, "get all news", err)
		return
	}
	pkg.WriteJSONOK(w, all)
}

func (handler *Handler) handleGetPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "newsHandler.page")
	defer span.End()

	page, err := pkg.IntVar(r, "page")
	if err != nil {
		log.Tracef("get news page: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "Parameter page tidak valid")
		return
	}
	size, err := pkg.IntVar(r, "size")
	if err != nil || size > MaxPageSize {
		log.Tracef("get news page, size %d: %v", size, err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "Parameter size tidak valid")
		return
	}
	span.SetAttributes(attribute.Int("page", page), attribute.Int("size", size))

	list, err := handler.repo.GetPage(ctx, page, size)
	if err != nil {
		handler.writeError(w, span, "get news page", err)
		return
	}
	total, err := handler.repo.Count(ctx)
	if err != nil {
		handler.writeError(w, span, "count news", err)
		return
	}

	pkg.WriteJSONOK(w, PageResponse{
		News:  list,
		Total: total,
	})
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "newsHandler.get")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidID)
		return
	}

	n, err := handler.repo.Get(ctx, id)
	if err != nil {
		handler.writeError(w, span, "get news", err)
		return
	}
	pkg.WriteJSONOK(w, n)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "newsHandler.create")
	defer span.End()

	profile, ok := auth.ProfileFromContext(ctx)
	if !ok {
		// route reached without the auth middleware in front of it
		pkg.WriteJSONError(w, http.StatusUnauthorized, auth.MsgMissingToken)
		return
	}

	var req newsRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("create news: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidBody)
		return
	}

	n := &News{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Author:   authorName(profile),
	}
	if err := handler.repo.Add(ctx, n); err != nil {
		handler.writeError(w, span, "create news", err)
		return
	}

	log.Debugf("news %d created by %s", n.ID, profile.Username)
	span.SetStatus(codes.Ok, "news-created")
	pkg.WriteJSON(w, http.StatusCreated, n)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "newsHandler.update")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidID)
		return
	}

	var req newsRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("update news %d: %s", id, err)
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidBody)
		return
	}

	n := &News{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if err := handler.repo.Update(ctx, n); err != nil {
		handler.writeError(w, span, "update news", err)
		return
	}
	pkg.WriteJSONOK(w, n)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "newsHandler.delete")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidID)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		handler.writeError(w, span, "delete news", err)
		return
	}
	pkg.WriteJSONOK(w, pkg.DeletedResponse{DeletedID: id})
}

func (handler *Handler) writeError(w http.ResponseWriter, span trace.Span, op string, err error) {
	if msg := validationMessage(err); msg != "" {
		span.SetStatus(codes.Error, "bad-request")
		pkg.WriteJSONError(w, http.StatusBadRequest, msg)
		return
	}
	if errors.Is(err, ErrNewsNotFound) {
		span.SetStatus(codes.Error, "not-found")
		pkg.WriteJSONError(w, http.StatusNotFound, pkg.MsgNotFound)
		return
	}

	log.Errorf("%s: %s", op, err)
	span.SetStatus(codes.Error, "failed")
	span.RecordError(err)
	pkg.WriteJSONError(w, http.StatusInternalServerError, pkg.MsgServerError)
}

func authorName(p *auth.Profile) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}
