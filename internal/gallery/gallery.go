package gallery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/pemdes/webdesa/internal/telemetry/tracing"
	"github.com/pemdes/webdesa/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=gallery_mocks_test.go -package=gallery_test

var (
	ErrImageNotFound   = errors.New("gallery image not found")
	ErrInvalidImageURL = errors.New("gallery image url invalid")
)

// Image points at a picture kept on the external image host.
type Image struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type imageRepo interface {
	Add(ctx context.Context, img *Image) error
	Delete(ctx context.Context, id int) error
	All(ctx context.Context) ([]*Image, error)
}

var _ imageRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, img *Image) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "galleryRepo.Add")
	defer span.End()

	img.Title = strings.TrimSpace(img.Title)
	img.ImageURL = strings.TrimSpace(img.ImageURL)
	if !pkg.IsValidImageURL(img.ImageURL) {
		return ErrInvalidImageURL
	}

	err := r.db.QueryRow(
		ctx,
		`INSERT INTO gallery_image (title, image_url) VALUES ($1, $2) RETURNING id, created_at;`,
		img.Title, img.ImageURL,
	).Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert gallery image: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "galleryRepo.Delete")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	tag, err := r.db.Exec(ctx, `DELETE FROM gallery_image WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrImageNotFound
	}
	return nil
}

func (r *Repo) All(ctx context.Context) ([]*Image, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "galleryRepo.All")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT id, title, image_url, created_at FROM gallery_image ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	images, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[Image])
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []*Image{}
	}
	return images, nil
}

type imageRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

type Handler struct {
	repo imageRepo
}

func NewHandler(repo imageRepo) *Handler {
	return &Handler{repo: repo}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/gallery/all", handler.handleAll).Methods("GET").Name("all-gallery")
	router.HandleFunc("/gallery", handler.handleCreate).Methods("POST", "OPTIONS").Name("new-gallery-image")
	router.HandleFunc("/gallery/{id:[0-9]+}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-gallery-image")
}

func (handler *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "galleryHandler.all")
	defer span.End()

	images, err := handler.repo.All(ctx)
	if err != nil {
		log.Errorf("get gallery images: %s", err)
		span.SetStatus(codes.Error, "failed")
		pkg.WriteJSONError(w, http.StatusInternalServerError, pkg.MsgServerError)
		return
	}
	pkg.WriteJSONOK(w, images)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "galleryHandler.create")
	defer span.End()

	var req imageRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("create gallery image: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidBody)
		return
	}

	img := &Image{Title: req.Title, ImageURL: req.ImageURL}
	if err := handler.repo.Add(ctx, img); err != nil {
		if errors.Is(err, ErrInvalidImageURL) {
			pkg.WriteJSONError(w, http.StatusBadRequest, "URL gambar tidak valid")
			return
		}
		log.Errorf("create gallery image: %s", err)
		span.SetStatus(codes.Error, "failed")
		pkg.WriteJSONError(w, http.StatusInternalServerError, pkg.MsgServerError)
		return
	}
	pkg.WriteJSON(w, http.StatusCreated, img)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "galleryHandler.delete")
	defer span.End()

	id, err := pkg.IntVar(r, "id")
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.MsgInvalidID)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrImageNotFound) {
			pkg.WriteJSONError(w, http.StatusNotFound, pkg.MsgNotFound)
			return
		}
		log.Errorf("delete gallery image %d: %s", id, err)
		span.SetStatus(codes.Error, "failed")
		pkg.WriteJSONError(w, http.StatusInternalServerError, pkg.MsgServerError)
		return
	}
	pkg.WriteJSONOK(w, pkg.DeletedResponse{DeletedID: id})
}
