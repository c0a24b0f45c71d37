package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository/db"
)

type UserRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewUserRepository(conn *sql.DB, d db.Dialect) *UserRepository {
	return &UserRepository{db: conn, dialect: d}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id`
	selectUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(insertUserSQL), username, passwordHash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	return id, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectUserByUsernameSQL), username).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}
