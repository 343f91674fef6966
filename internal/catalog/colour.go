package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ColourRepo interface {
	Create(ctx context.Context, c *Colour) error
	GetByID(ctx context.Context, id string) (*Colour, error)
	ListByStore(ctx context.Context, storeID string) ([]Colour, error)
	Update(ctx context.Context, c *Colour) error
	Delete(ctx context.Context, id, storeID string) (bool, error)
}

type ColourPG struct{ db *pgxpool.Pool }

func NewColourPG(db *pgxpool.Pool) *ColourPG { return &ColourPG{db: db} }

func (r *ColourPG) Create(ctx context.Context, c *Colour) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO colours (id, store_id, name, value, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW())
	`, c.ID, c.StoreID, c.Name, c.Value)
	return err
}

func (r *ColourPG) GetByID(ctx context.Context, id string) (*Colour, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Colour
	err := r.db.QueryRow(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM colours WHERE id=$1
	`, id).Scan(&c.ID, &c.StoreID, &c.Name, &c.Value, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *ColourPG) ListByStore(ctx context.Context, storeID string) ([]Colour, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, store_id, name, value, created_at, updated_at
		FROM colours WHERE store_id=$1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Colour
	for rows.Next() {
		var c Colour
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.Value, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ColourPG) Update(ctx context.Context, c *Colour) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE colours SET name=$3, value=$4, updated_at=NOW()
		WHERE id=$1 AND store_id=$2
	`, c.ID, c.StoreID, c.Name, c.Value)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ColourPG) Delete(ctx context.Context, id, storeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM colours WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func colourResource(repo ColourRepo) resource[Colour, ColourRequest] {
	return resource[Colour, ColourRequest]{
		name: "colours",
		create: func(ctx context.Context, storeID string, b ColourRequest) (*Colour, error) {
			cc := &Colour{ID: uuid.NewString(), StoreID: storeID, Name: b.Name, Value: b.Value}
			if err := repo.Create(ctx, cc); err != nil {
				return nil, err
			}
			return repo.GetByID(ctx, cc.ID)
		},
		get: repo.GetByID,
		list: func(ctx context.Context, storeID string, _ ListQuery) ([]Colour, error) {
			return repo.ListByStore(ctx, storeID)
		},
		update: func(ctx context.Context, id, storeID string, b ColourRequest) (*Colour, error) {
			cc := &Colour{ID: id, StoreID: storeID, Name: b.Name, Value: b.Value}
			if err := repo.Update(ctx, cc); err != nil {
				return nil, err
			}
			return repo.GetByID(ctx, id)
		},
		remove: repo.Delete,
	}
}
