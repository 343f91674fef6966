package store

import "time"

// Store is the tenant boundary: every catalog entity hangs off exactly one store.
type Store struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertStoreRequest payload for store create and rename.
// swagger:model UpsertStoreRequest
type UpsertStoreRequest struct {
	Name string `json:"name" example:"Main Street Shop"`
}
