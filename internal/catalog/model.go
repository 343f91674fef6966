// Package catalog holds the store-scoped resource types and the uniform
// create/read/update/delete protocol shared by all of them.
package catalog

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Billboard struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Label     string    `json:"label"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID          string     `json:"id"`
	StoreID     string     `json:"store_id"`
	BillboardID string     `json:"billboard_id"`
	Name        string     `json:"name"`
	Billboard   *Billboard `json:"billboard,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Colour struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"` // hex code
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Size struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Image struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID         string `json:"id"`
	StoreID    string `json:"store_id"`
	CategoryID string `json:"category_id"`
	ColourID   string `json:"colour_id"`
	SizeID     string `json:"size_id"`
	Name       string `json:"name"`
	// NUMERIC in Postgres; moved as decimal to avoid rounding errors
	Price      decimal.Decimal `json:"price"`
	IsFeatured bool            `json:"is_featured"`
	IsArchived bool            `json:"is_archived"`
	Images     []Image         `json:"images"`
	Category   *Category       `json:"category,omitempty"`
	Colour     *Colour         `json:"colour,omitempty"`
	Size       *Size           `json:"size,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type Order struct {
	ID        string      `json:"id"`
	StoreID   string      `json:"store_id"`
	IsPaid    bool        `json:"is_paid"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	// price snapshot taken at checkout
	Price decimal.Decimal `json:"price"`
}

// BillboardRequest payload for billboard create and update.
// swagger:model BillboardRequest
type BillboardRequest struct {
	Label    string `json:"label"     example:"Summer sale"`
	ImageURL string `json:"image_url" example:"https://cdn.example.com/banner.png"`
}

func (r BillboardRequest) Validate() error {
	if r.Label == "" || r.ImageURL == "" {
		return errors.New("label and image_url are required")
	}
	return nil
}

// CategoryRequest payload for category create and update.
// swagger:model CategoryRequest
type CategoryRequest struct {
	Name        string `json:"name"         example:"Shirts"`
	BillboardID string `json:"billboard_id"`
}

func (r CategoryRequest) Validate() error {
	if r.Name == "" || r.BillboardID == "" {
		return errors.New("name and billboard_id are required")
	}
	return nil
}

// ColourRequest payload for colour create and update.
// swagger:model ColourRequest
type ColourRequest struct {
	Name  string `json:"name"  example:"Crimson"`
	Value string `json:"value" example:"#dc143c"`
}

func (r ColourRequest) Validate() error {
	if r.Name == "" || r.Value == "" {
		return errors.New("name and value are required")
	}
	return nil
}

// SizeRequest payload for size create and update.
// swagger:model SizeRequest
type SizeRequest struct {
	Name  string `json:"name"  example:"Medium"`
	Value string `json:"value" example:"M"`
}

func (r SizeRequest) Validate() error {
	if r.Name == "" || r.Value == "" {
		return errors.New("name and value are required")
	}
	return nil
}

// ImageRequest is one image reference inside a product payload.
type ImageRequest struct {
	URL string `json:"url"`
}

// ProductRequest payload for product create and update. Updates overwrite the
// complete field set and replace the whole image collection.
// swagger:model ProductRequest
type ProductRequest struct {
	Name       string          `json:"name"       example:"Linen shirt"`
	Price      decimal.Decimal `json:"price"      swaggertype:"number" example:"49.90"`
	CategoryID string          `json:"category_id"`
	ColourID   string          `json:"colour_id"`
	SizeID     string          `json:"size_id"`
	IsFeatured bool            `json:"is_featured"`
	IsArchived bool            `json:"is_archived"`
	Images     []ImageRequest  `json:"images"`
}

func (r ProductRequest) Validate() error {
	if r.Name == "" || r.Price.IsZero() || r.CategoryID == "" || r.ColourID == "" || r.SizeID == "" {
		return errors.New("name, price, category_id, colour_id and size_id are required")
	}
	if len(r.Images) == 0 {
		return errors.New("at least one image is required")
	}
	for _, img := range r.Images {
		if img.URL == "" {
			return errors.New("image url is required")
		}
	}
	return nil
}
