package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/page-sage/page-sage/internal/db"
)

// PostgresStore is the canonical user store.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, f_name, login_method
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.FirstName, &u.LoginMethod)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) ByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, f_name, login_method
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(&u.ID, &u.Email, &u.FirstName, &u.LoginMethod)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) Create(ctx context.Context, email, firstName string) (*User, error) {
	u := User{Email: email, FirstName: firstName}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, f_name)
		VALUES ($1, $2)
		RETURNING id
	`, email, firstName).Scan(&u.ID)

	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) SetLoginMethod(ctx context.Context, id uuid.UUID, method string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET login_method = $2, updated_at = NOW()
		WHERE id = $1
	`, id, method)
	return err
}
