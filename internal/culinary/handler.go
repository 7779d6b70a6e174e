package culinary

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pemdes/webdesa/internal/telemetry/tracing"
	"github.com/pemdes/webdesa/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=culinary_test

type itemRepo interface {
	Add(ctx context.Context, i *Item) error
	Update(ctx context.Context, i *Item) error
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*Item, error)
	All(ctx context.Context) ([]*Item, error)
}

type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	PriceRange  string `json:"price_range"`
	ImageURL    string `json:"image_url"`
}

type Handler struct {
	repo itemRepo
}

func NewHandler(repo itemRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/culinary/all", handler.handleAll).Methods("GET").Name("all-culinary")
	router.HandleFunc("/culinary/{id:[0-9]+}", handler.handleGet).Methods("GET").Name("get-culinary")
	router.HandleFunc("/culinary", handler.handleCreate).Methods("POST", "OPTIONS").Name("new-culinary")
	router.HandleFunc("/culinary/{id:[0-9]+}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("update-culinary")
	router.HandleFunc("/culinary/{id:[0-9]+}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-culinary")
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "culinaryHandler.all")
	defer span.End()

	items, err := handler.repo.All(ctx)
	if err != nil {
		writeError(w, span, "get all culinary", err)
		return
	}
	pkg.WriteJSONOK(w, items)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "culinaryHandler.get")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidID)
		return
	}

	item, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeError(w, span, "get culinary", err)
		return
	}
	pkg.WriteJSONOK(w, item)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "culinaryHandler.create")
	defer span.End()

	item, ok := decodeItem(w, r, 0)
	if !ok {
		return
	}
	if err := handler.repo.Add(ctx, item); err != nil {
		writeError(w, span, "create culinary", err)
		return
	}
	pkg.WriteJSON(w, http.StatusCreated, item)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "culinaryHandler.update")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidID)
		return
	}
	item, ok := decodeItem(w, r, id)
	if !ok {
		return
	}
	if err := handler.repo.Update(ctx, item); err != nil {
		writeError(w, span, "update culinary", err)
		return
	}
	pkg.WriteJSONOK(w, item)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "culinaryHandler.delete")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidID)
		return
	}
	if err := handler.repo.Delete(ctx, id); err != nil {
		writeError(w, span, "delete culinary", err)
		return
	}
	pkg.WriteJSONOK(w, pkg.DeletedResponse{DeletedID: id})
}

func decodeItem(w http.ResponseWriter, r *http.Request, id int) (*Item, bool) {
	var req itemRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("culinary item body: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidBody)
		return nil, false
	}
	return &Item{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		PriceRange:  req.PriceRange,
		ImageURL:    req.ImageURL,
	}, true
}

func writeError(w http.ResponseWriter, span trace.Span, op string, err error) {
	switch {
	case errors.Is(err, ErrNameEmpty):
		pkg.WriteJSONError(w, http.StatusBadRequest, "Nama kuliner harus diisi")
	case errors.Is(err, ErrInvalidImageURL):
		pkg.WriteJSONError(w, http.StatusBadRequest, "URL gambar tidak valid")
	case errors.Is(err, ErrItemNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, pkg.MsgNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		span.SetStatus(codes.Error, "failed")
		span.RecordError(err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, pkg.MsgServerError)
	}
}
