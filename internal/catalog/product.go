package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ProductRepo interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, storeID string, q ListQuery) ([]Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id, storeID string) (bool, error)
}

type ProductPG struct{ db *pgxpool.Pool }

func NewProductPG(db *pgxpool.Pool) *ProductPG { return &ProductPG{db: db} }

// Create inserts the product and its images as one transaction, so a product
// is never visible without its image set.
func (r *ProductPG) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO products (id, store_id, category_id, colour_id, size_id, name, price, is_featured, is_archived, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
	`, p.ID, p.StoreID, p.CategoryID, p.ColourID, p.SizeID, p.Name, p.Price.String(), p.IsFeatured, p.IsArchived); err != nil {
		return err
	}
	if err := insertImages(ctx, tx, p.ID, p.Images); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update overwrites the scalar fields scoped to (id, store_id) and swaps the
// whole image collection inside the same transaction: either the product with
// its new images becomes visible, or nothing changes.
func (r *ProductPG) Update(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE products
		SET category_id=$3, colour_id=$4, size_id=$5, name=$6, price=$7,
		    is_featured=$8, is_archived=$9, updated_at=NOW()
		WHERE id=$1 AND store_id=$2
	`, p.ID, p.StoreID, p.CategoryID, p.ColourID, p.SizeID, p.Name, p.Price.String(), p.IsFeatured, p.IsArchived)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM images WHERE product_id=$1`, p.ID); err != nil {
		return err
	}
	if err := insertImages(ctx, tx, p.ID, p.Images); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertImages(ctx context.Context, tx pgx.Tx, productID string, images []Image) error {
	for _, img := range images {
		if _, err := tx.Exec(ctx, `
			INSERT INTO images (id, product_id, url, created_at)
			VALUES ($1,$2,$3,NOW())
		`, img.ID, productID, img.URL); err != nil {
			return err
		}
	}
	return nil
}

const productSelect = `
	SELECT p.id, p.store_id, p.category_id, p.colour_id, p.size_id, p.name, p.price::text,
	       p.is_featured, p.is_archived, p.created_at, p.updated_at,
	       c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
	       co.id, co.store_id, co.name, co.value, co.created_at, co.updated_at,
	       s.id, s.store_id, s.name, s.value, s.created_at, s.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN colours co ON co.id = p.colour_id
	JOIN sizes s ON s.id = p.size_id
`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	var c Category
	var co Colour
	var s Size
	var price string
	if err := row.Scan(&p.ID, &p.StoreID, &p.CategoryID, &p.ColourID, &p.SizeID, &p.Name, &price,
		&p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
		&co.ID, &co.StoreID, &co.Name, &co.Value, &co.CreatedAt, &co.UpdatedAt,
		&s.ID, &s.StoreID, &s.Name, &s.Value, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	p.Price = d
	p.Category = &c
	p.Colour = &co
	p.Size = &s
	return &p, nil
}

func (r *ProductPG) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRow(ctx, productSelect+`WHERE p.id=$1`, id))
	if err != nil {
		return nil, ErrNotFound
	}
	if err := r.loadImages(ctx, map[string]*Product{p.ID: p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductPG) List(ctx context.Context, storeID string, q ListQuery) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, productSelect+`
		WHERE p.store_id=$1
		  AND p.is_archived = FALSE
		  AND ($2 = '' OR p.category_id::text = $2)
		  AND ($3 = '' OR p.colour_id::text = $3)
		  AND ($4 = '' OR p.size_id::text = $4)
		  AND (NOT $5::bool OR p.is_featured)
		ORDER BY p.created_at DESC
	`, storeID, q.CategoryID, q.ColourID, q.SizeID, q.Featured)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps []*Product
	byID := make(map[string]*Product)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadImages(ctx, byID); err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, *p)
	}
	return out, nil
}

func (r *ProductPG) loadImages(ctx context.Context, byID map[string]*Product) error {
	if len(byID) == 0 {
		return nil
	}
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, url, created_at
		FROM images
		WHERE product_id::text = ANY($1)
		ORDER BY created_at
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.CreatedAt); err != nil {
			return err
		}
		if p, ok := byID[img.ProductID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return rows.Err()
}

func (r *ProductPG) Delete(ctx context.Context, id, storeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// images go with the product via ON DELETE CASCADE
	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func buildProduct(id, storeID string, b ProductRequest) *Product {
	p := &Product{
		ID:         id,
		StoreID:    storeID,
		CategoryID: b.CategoryID,
		ColourID:   b.ColourID,
		SizeID:     b.SizeID,
		Name:       b.Name,
		Price:      b.Price,
		IsFeatured: b.IsFeatured,
		IsArchived: b.IsArchived,
	}
	for _, img := range b.Images {
		p.Images = append(p.Images, Image{ID: uuid.NewString(), ProductID: id, URL: img.URL})
	}
	return p
}

func productResource(repo ProductRepo) resource[Product, ProductRequest] {
	return resource[Product, ProductRequest]{
		name: "products",
		create: func(ctx context.Context, storeID string, b ProductRequest) (*Product, error) {
			p := buildProduct(uuid.NewString(), storeID, b)
			if err := repo.Create(ctx, p); err != nil {
				return nil, err
			}
			return repo.GetByID(ctx, p.ID)
		},
		get:  repo.GetByID,
		list: repo.List,
		update: func(ctx context.Context, id, storeID string, b ProductRequest) (*Product, error) {
			p := buildProduct(id, storeID, b)
			if err := repo.Update(ctx, p); err != nil {
				return nil, err
			}
			return repo.GetByID(ctx, id)
		},
		remove: repo.Delete,
	}
}
