package culinary

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pemdes/webdesa/internal/telemetry/tracing"
)

const itemColumns = `id, name, description, address, price_range, image_url, created_at`

var _ itemRepo = (*Repo)(nil)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanItem(row pgx.Row) (*Item, error) {
	var i Item
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Address, &i.PriceRange, &i.ImageURL, &i.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *Repo) Add(ctx context.Context, i *Item) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "culinaryRepo.Add")
	defer span.End()

	if err := i.Normalize(); err != nil {
		return err
	}

	err := r.db.QueryRow(
		ctx,
		`INSERT INTO culinary (name, description, address, price_range, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;`,
		i.Name, i.Description, i.Address, i.PriceRange, i.ImageURL,
	).Scan(&i.ID, &i.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert culinary item: %w", err)
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, i *Item) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "culinaryRepo.Update")
	span.SetAttributes(attribute.Int("id", i.ID))
	defer span.End()

	if err := i.Normalize(); err != nil {
		return err
	}

	err := r.db.QueryRow(
		ctx,
		`UPDATE culinary SET name = $1, description = $2, address = $3, price_range = $4, image_url = $5
		WHERE id = $6
		RETURNING created_at;`,
		i.Name, i.Description, i.Address, i.PriceRange, i.ImageURL, i.ID,
	).Scan(&i.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("update culinary item %d: %w", i.ID, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "culinaryRepo.Delete")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	tag, err := r.db.Exec(ctx, `DELETE FROM culinary WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (*Item, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "culinaryRepo.Get")
	span.SetAttributes(attribute.Int("id", id))
	defer span.End()

	return scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM culinary WHERE id = $1`, id))
}

func (r *Repo) All(ctx context.Context) ([]*Item, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "culinaryRepo.All")
	defer span.End()

	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM culinary ORDER BY name`)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Item, error) {
		return scanItem(row)
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*Item{}
	}
	return items, nil
}
