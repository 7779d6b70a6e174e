package news

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pemdes/webdesa/internal/telemetry/tracing"
)

const newsColumns = `id, title, content, image_url, author, created_at, updated_at`

var _ newsRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanNews(row pgx.Row) (*News, error) {
	var n News
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.ImageURL, &n.Author, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &n, nil
}

func collectNews(rows pgx.Rows) ([]*News, error) {
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*News, error) {
		return scanNews(row)
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*News{}
	}
	return list, nil
}

func (r *Repo) Add(ctx context.Context, n *News) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "newsRepo.Add")
	defer span.End()

	if err := n.Normalize(); err != nil {
		return err
	}

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO news (title, content, image_url, author)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;`,
		n.Title, n.Content, n.ImageURL, n.Author,
	)
	if err := row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return fmt.Errorf("insert news: %w", err)
	}
	return nil
}

// Update replaces the editable fields; author and created_at stay as they were.
func (r *Repo) Update(ctx context.Context, n *News) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "newsRepo.Update")
	span.SetAttributes(attribute.Int("id", n.ID))
	defer span.End()

	if err := n.Normalize(); err != nil {
		return err
	}

	row := r.db.QueryRow(
		ctx,
		`UPDATE news SET title = $1, content = $2, image_url = $3, updated_at = now()
		WHERE id = $4
		RETURNING author, created_at, updated_at;`,
		n.Title, n.Content, n.ImageURL, n.ID,
	)
	if err := row.Scan(&n.Author, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNewsNotFound
		}
		return fmt.Errorf("update news %d: %w", n.ID, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "newsRepo.Delete")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	tag, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNewsNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (*News, error) {
	log.Tracef("getting news %d", id)

	ctx, span := tracing.GlobalTracer.Start(ctx, "newsRepo.Get")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	return scanNews(r.db.QueryRow(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1;`, id))
}

func (r *Repo) All(ctx context.Context) ([]*News, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "newsRepo.All")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT `+newsColumns+` FROM news ORDER BY created_at DESC, id DESC;`)
	if err != nil {
		return nil, err
	}
	return collectNews(rows)
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "newsRepo.Count")
	defer span.End()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news`).Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

// GetPage returns the page-th slice (1-based) of news, newest first.
func (r *Repo) GetPage(ctx context.Context, page, size int) ([]*News, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "newsRepo.GetPage")
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))
	defer span.End()

	if page < 1 || size < 1 {
		return nil, fmt.Errorf("invalid page %d / size %d", page, size)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+newsColumns+` FROM news
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2;`,
		size, (page-1)*size,
	)
	if err != nil {
		return nil, err
	}
	return collectNews(rows)
}
