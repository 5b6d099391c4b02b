package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TableNames lists the tables this API owns, in dependency order.
var TableNames = []string{"users", "posts", "comments"}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	profile       JSONB,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT users_username_key UNIQUE (username),
	CONSTRAINT users_email_key UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS posts (
	id         UUID PRIMARY KEY,
	title      TEXT NOT NULL,
	body       TEXT NOT NULL,
	image      TEXT,
	tags       TEXT[] NOT NULL DEFAULT '{}',
	author_id  UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT posts_title_author_key UNIQUE (title, author_id)
);

CREATE TABLE IF NOT EXISTS comments (
	id         UUID PRIMARY KEY,
	post_id    UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	author     TEXT NOT NULL,
	text       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS comments_post_id_idx ON comments (post_id);
CREATE INDEX IF NOT EXISTS posts_author_id_idx ON posts (author_id);
`

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// DropTables removes all tables. Destructive; the seeder refuses to run
// it in prod.
func DropTables(ctx context.Context, pool *pgxpool.Pool) error {
	for i := len(TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", TableNames[i])
		if _, err := pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("drop table %s: %w", TableNames[i], err)
		}
	}
	return nil
}
