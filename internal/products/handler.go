package products

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=products_test

type productRepo interface {
	Add(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*Product, error)
	All(ctx context.Context) ([]*Product, error)
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
	Contact     string `json:"contact"`
}

func (req productRequest) product(id int) *Product {
	return &Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Contact:     req.Contact,
	}
}

type Handler struct {
	repo productRepo
}

func NewHandler(repo productRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/products/all", handler.handleAll).Methods("GET").Name("all-products")
	router.HandleFunc("/products/{id:[0-9]+}", handler.handleGet).Methods("GET").Name("get-product")
	router.HandleFunc("/products", handler.handleCreate).Methods("POST", "OPTIONS").Name("new-product")
	router.HandleFunc("/products/{id:[0-9]+}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("update-product")
	router.HandleFunc("/products/{id:[0-9]+}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-product")
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "productsHandler.all")
	defer span.End()

	all, err := handler.repo.All(ctx)
	if err != nil {
		writeError(w, span, "get all products", err)
		return
	}
	pkg.WriteJSONOK(w, all)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "productsHandler.get")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidID)
		return
	}

	p, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeError(w, span, "get product", err)
		return
	}
	pkg.WriteJSONOK(w, p)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "productsHandler.create")
	defer span.End()

	var req productRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("create product: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidBody)
		return
	}

	p := req.product(0)
	if err := handler.repo.Add(ctx, p); err != nil {
		writeError(w, span, "create product", err)
		return
	}
	pkg.WriteJSON(w, http.StatusCreated, p)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "productsHandler.update")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidID)
		return
	}

	var req productRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("update product %d: %s", id, err)
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidBody)
		return
	}

	p := req.product(id)
	if err := handler.repo.Update(ctx, p); err != nil {
		writeError(w, span, "update product", err)
		return
	}
	pkg.WriteJSONOK(w, p)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "productsHandler.delete")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidID)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		writeError(w, span, "delete product", err)
		return
	}
	pkg.WriteJSONOK(w, pkg.DeletedResponse{DeletedID: id})
}

func writeError(w http.ResponseWriter, span trace.Span, op string, err error) {
	if msg := validationMessage(err); msg != "" {
		span.SetStatus(codes.Error, "bad-request")
		pkg.WriteJSONError(w, http.StatusBadRequest, msg)
		return
	}
	if errors.Is(err, ErrProductNotFound) {
		span.SetStatus(codes.Error, "not-found")
		pkg.WriteJSONError(w, http.StatusNotFound, pkg.MsgNotFound)
		return
	}

	log.Errorf("%s: %s", op, err)
	span.SetStatus(codes.Error, "failed")
	span.RecordError(err)
	pkg.WriteJSONError(w, http.StatusInternalServerError, pkg.MsgServerError)
}
