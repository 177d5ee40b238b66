package db

import (
	"context"
	"database/sql"
)

// The platform resolves identities by email only: whichever provider a
// reader signs in with, the same email lands on the same row. The unique
// index on LOWER(email) is what turns a concurrent first-login race into
// a constraint violation instead of a duplicate user.
const bootstrapMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    email text NOT NULL,
    f_name text NOT NULL DEFAULT '',
    login_method text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique
ON users (LOWER(email));
`

func RunBootstrapMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, bootstrapMigration)
	return err
}
