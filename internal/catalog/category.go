package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	ListByStore(ctx context.Context, storeID string) ([]Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id, storeID string) (bool, error)
}

type CategoryPG struct{ db *pgxpool.Pool }

func NewCategoryPG(db *pgxpool.Pool) *CategoryPG { return &CategoryPG{db: db} }

func (r *CategoryPG) Create(ctx context.Context, c *Category) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, store_id, billboard_id, name, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW())
	`, c.ID, c.StoreID, c.BillboardID, c.Name)
	return err
}

// GetByID returns the category together with its billboard, so the caller
// gets the denormalized view in one call.
func (r *CategoryPG) GetByID(ctx context.Context, id string) (*Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Category
	var b Billboard
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
		       b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at
		FROM categories c
		JOIN billboards b ON b.id = c.billboard_id
		WHERE c.id=$1
	`, id).Scan(&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
		&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	c.Billboard = &b
	return &c, nil
}

func (r *CategoryPG) ListByStore(ctx context.Context, storeID string) ([]Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
		       b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at
		FROM categories c
		JOIN billboards b ON b.id = c.billboard_id
		WHERE c.store_id=$1
		ORDER BY c.created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		var b Billboard
		if err := rows.Scan(&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
			&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		c.Billboard = &b
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryPG) Update(ctx context.Context, c *Category) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE categories SET name=$3, billboard_id=$4, updated_at=NOW()
		WHERE id=$1 AND store_id=$2
	`, c.ID, c.StoreID, c.Name, c.BillboardID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryPG) Delete(ctx context.Context, id, storeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func categoryResource(repo CategoryRepo) resource[Category, CategoryRequest] {
	return resource[Category, CategoryRequest]{
		name: "categories",
		create: func(ctx context.Context, storeID string, b CategoryRequest) (*Category, error) {
			cc := &Category{ID: uuid.NewString(), StoreID: storeID, BillboardID: b.BillboardID, Name: b.Name}
			if err := repo.Create(ctx, cc); err != nil {
				return nil, err
			}
			return repo.GetByID(ctx, cc.ID)
		},
		get: repo.GetByID,
		list: func(ctx context.Context, storeID string, _ ListQuery) ([]Category, error) {
			return repo.ListByStore(ctx, storeID)
		},
		update: func(ctx context.Context, id, storeID string, b CategoryRequest) (*Category, error) {
			cc := &Category{ID: id, StoreID: storeID, BillboardID: b.BillboardID, Name: b.Name}
			if err := repo.Update(ctx, cc); err != nil {
				return nil, err
			}
			return repo.GetByID(ctx, id)
		},
		remove: repo.Delete,
	}
}
