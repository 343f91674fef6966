package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SizeRepo interface {
	Create(ctx context.Context, s *Size) error
	GetByID(ctx context.Context, id string) (*Size, error)
	ListByStore(ctx context.Context, storeID string) ([]Size, error)
	Update(ctx context.Context, s *Size) error
	Delete(ctx context.Context, id, storeID string) (bool, error)
}

type SizePG struct{ db *pgxpool.Pool }

func NewSizePG(db *pgxpool.Pool) *SizePG { return &SizePG{db: db} }

func (r *SizePG) Create(ctx context.Context, s *Size) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO sizes (id, store_id, name, value, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW())
	`, s.ID, s.StoreID, s.Name, s.Value)
	return err
}

func (r *SizePG) GetByID(ctx context.Context, id string) (*Size, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Size
	err := r.db.QueryRow(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes WHERE id=$1
	`, id).Scan(&s.ID, &s.StoreID, &s.Name, &s.Value, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *SizePG) ListByStore(ctx context.Context, storeID string) ([]Size, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM sizes WHERE store_id=$1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Size
	for rows.Next() {
		var s Size
		if err := rows.Scan(&s.ID, &s.StoreID, &s.Name, &s.Value, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SizePG) Update(ctx context.Context, s *Size) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE sizes SET name=$3, value=$4, updated_at=NOW()
		WHERE id=$1 AND store_id=$2
	`, s.ID, s.StoreID, s.Name, s.Value)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SizePG) Delete(ctx context.Context, id, storeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM sizes WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func sizeResource(repo SizeRepo) resource[Size, SizeRequest] {
	return resource[Size, SizeRequest]{
		name: "sizes",
		create: func(ctx context.Context, storeID string, b SizeRequest) (*Size, error) {
			ss := &Size{ID: uuid.NewString(), StoreID: storeID, Name: b.Name, Value: b.Value}
			if err := repo.Create(ctx, ss); err != nil {
				return nil, err
			}
			return repo.GetByID(ctx, ss.ID)
		},
		get: repo.GetByID,
		list: func(ctx context.Context, storeID string, _ ListQuery) ([]Size, error) {
			return repo.ListByStore(ctx, storeID)
		},
		update: func(ctx context.Context, id, storeID string, b SizeRequest) (*Size, error) {
			ss := &Size{ID: id, StoreID: storeID, Name: b.Name, Value: b.Value}
			if err := repo.Update(ctx, ss); err != nil {
				return nil, err
			}
			return repo.GetByID(ctx, id)
		},
		remove: repo.Delete,
	}
}
