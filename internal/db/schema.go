package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Schema is idempotent, so Migrate can run on every deploy.
const Schema = `
CREATE TABLE IF NOT EXISTS public.admin_account
(
    id                     SERIAL PRIMARY KEY,
    username               VARCHAR(64)  NOT NULL UNIQUE,
    email                  VARCHAR(255) NOT NULL DEFAULT '',
    display_name           VARCHAR(128) NOT NULL DEFAULT '',
    password_hash          VARCHAR(255) NOT NULL,
    role                   VARCHAR(32)  NOT NULL DEFAULT 'admin',
    is_active              BOOLEAN      NOT NULL DEFAULT TRUE,
    last_login             TIMESTAMPTZ,
    reset_token            VARCHAR(255) UNIQUE,
    reset_token_expires_at TIMESTAMPTZ,
    password_changed_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
    created_at             TIMESTAMPTZ  NOT NULL DEFAULT now(),
    CONSTRAINT reset_token_has_expiry CHECK (reset_token IS NULL OR reset_token_expires_at IS NOT NULL)
);

CREATE TABLE IF NOT EXISTS public.news
(
    id         SERIAL PRIMARY KEY,
    title      VARCHAR     NOT NULL,
    content    TEXT        NOT NULL,
    image_url  VARCHAR     NOT NULL DEFAULT '',
    author     VARCHAR     NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_news_created_at ON public.news USING btree (created_at);

CREATE TABLE IF NOT EXISTS public.product
(
    id          SERIAL PRIMARY KEY,
    name        VARCHAR     NOT NULL,
    description TEXT        NOT NULL DEFAULT '',
    price       BIGINT      NOT NULL DEFAULT 0 CHECK (price >= 0),
    image_url   VARCHAR     NOT NULL DEFAULT '',
    contact     VARCHAR     NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS public.culinary
(
    id          SERIAL PRIMARY KEY,
    name        VARCHAR     NOT NULL,
    description TEXT        NOT NULL DEFAULT '',
    address     VARCHAR     NOT NULL DEFAULT '',
    price_range VARCHAR     NOT NULL DEFAULT '',
    image_url   VARCHAR     NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS public.gallery_image
(
    id         SERIAL PRIMARY KEY,
    title      VARCHAR     NOT NULL DEFAULT '',
    image_url  VARCHAR     NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_gallery_image_created_at ON public.gallery_image (created_at);
`

func Migrate(ctx context.Context, db execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debugln("db schema applied")
	return nil
}
