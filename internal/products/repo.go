package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pemdes/webdesa/internal/telemetry/tracing"
)

const productColumns = `id, name, description, price, image_url, contact, created_at`

var _ productRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Contact, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Add(ctx context.Context, p *Product) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "productRepo.Add")
	defer span.End()

	if err := p.Normalize(); err != nil {
		return err
	}

	err := r.db.QueryRow(
		ctx,
		`INSERT INTO product (name, description, price, image_url, contact)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;`,
		p.Name, p.Description, p.Price, p.ImageURL, p.Contact,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, p *Product) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "productRepo.Update")
	span.SetAttributes(attribute.Int("id", p.ID))
	defer span.End()

	if err := p.Normalize(); err != nil {
		return err
	}

	err := r.db.QueryRow(
		ctx,
		`UPDATE product SET name = $1, description = $2, price = $3, image_url = $4, contact = $5
		WHERE id = $6
		RETURNING created_at;`,
		p.Name, p.Description, p.Price, p.ImageURL, p.Contact, p.ID,
	).Scan(&p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "productRepo.Delete")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	tag, err := r.db.Exec(ctx, `DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (*Product, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "productRepo.Get")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	return scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM product WHERE id = $1`, id))
}

func (r *Repo) All(ctx context.Context) ([]*Product, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "productRepo.All")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM product ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*Product{}
	}
	return list, nil
}
