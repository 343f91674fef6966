package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("store not found")

type Repository interface {
	Create(ctx context.Context, s *Store) error
	GetByIDForUser(ctx context.Context, id, userID string) (*Store, error)
	ListByUser(ctx context.Context, userID string) ([]Store, error)
	Update(ctx context.Context, id, userID, name string) error
	Delete(ctx context.Context, id, userID string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, s *Store) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO stores (id, user_id, name, created_at, updated_at)
		VALUES ($1,$2,$3,NOW(),NOW())
	`, s.ID, s.UserID, s.Name)
	return err
}

func (r *PGRepo) GetByIDForUser(ctx context.Context, id, userID string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Store
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM stores WHERE id=$1 AND user_id=$2
	`, id, userID).Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, created_at, updated_at
		FROM stores WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Store
	for rows.Next() {
		var s Store
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, id, userID, name string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE stores SET name=$3, updated_at=NOW()
		WHERE id=$1 AND user_id=$2
	`, id, userID, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM stores WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
