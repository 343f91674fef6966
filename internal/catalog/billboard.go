package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BillboardRepo interface {
	Create(ctx context.Context, b *Billboard) error
	GetByID(ctx context.Context, id string) (*Billboard, error)
	ListByStore(ctx context.Context, storeID string) ([]Billboard, error)
	Update(ctx context.Context, b *Billboard) error
	Delete(ctx context.Context, id, storeID string) (bool, error)
}

type BillboardPG struct{ db *pgxpool.Pool }

func NewBillboardPG(db *pgxpool.Pool) *BillboardPG { return &BillboardPG{db: db} }

func (r *BillboardPG) Create(ctx context.Context, b *Billboard) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO billboards (id, store_id, label, image_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW())
	`, b.ID, b.StoreID, b.Label, b.ImageURL)
	return err
}

func (r *BillboardPG) GetByID(ctx context.Context, id string) (*Billboard, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b Billboard
	err := r.db.QueryRow(ctx, `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards WHERE id=$1
	`, id).Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *BillboardPG) ListByStore(ctx context.Context, storeID string) ([]Billboard, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, store_id, label, image_url, created_at, updated_at
		FROM billboards WHERE store_id=$1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Billboard
	for rows.Next() {
		var b Billboard
		if err := rows.Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BillboardPG) Update(ctx context.Context, b *Billboard) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE billboards SET label=$3, image_url=$4, updated_at=NOW()
		WHERE id=$1 AND store_id=$2
	`, b.ID, b.StoreID, b.Label, b.ImageURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BillboardPG) Delete(ctx context.Context, id, storeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM billboards WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func billboardResource(repo BillboardRepo) resource[Billboard, BillboardRequest] {
	return resource[Billboard, BillboardRequest]{
		name: "billboards",
		create: func(ctx context.Context, storeID string, b BillboardRequest) (*Billboard, error) {
			bb := &Billboard{ID: uuid.NewString(), StoreID: storeID, Label: b.Label, ImageURL: b.ImageURL}
			if err := repo.Create(ctx, bb); err != nil {
				return nil, err
			}
			return repo.GetByID(ctx, bb.ID)
		},
		get: repo.GetByID,
		list: func(ctx context.Context, storeID string, _ ListQuery) ([]Billboard, error) {
			return repo.ListByStore(ctx, storeID)
		},
		update: func(ctx context.Context, id, storeID string, b BillboardRequest) (*Billboard, error) {
			bb := &Billboard{ID: id, StoreID: storeID, Label: b.Label, ImageURL: b.ImageURL}
			if err := repo.Update(ctx, bb); err != nil {
				return nil, err
			}
			return repo.GetByID(ctx, id)
		},
		remove: repo.Delete,
	}
}
