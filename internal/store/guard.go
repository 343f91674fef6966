package store

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nmarchetti/shop-admin/internal/httpx"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrStoreIDRequired = errors.New("store id is required")
	ErrDenied          = errors.New("store not owned by caller")
)

// Guard decides whether a caller may mutate anything under a store.
// It sits at the top of every POST/PATCH/DELETE handler; reads skip it.
type Guard struct{ repo Repository }

func NewGuard(repo Repository) *Guard { return &Guard{repo: repo} }

// Authorize returns the store when userID owns storeID. An absent identity
// short-circuits before any lookup; a missing or foreign store is never
// distinguished to the caller beyond the denial itself.
func (g *Guard) Authorize(ctx context.Context, userID, storeID string) (*Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if storeID == "" {
		return nil, ErrStoreIDRequired
	}
	s, err := g.repo.GetByIDForUser(ctx, storeID, userID)
	if err != nil {
		return nil, ErrDenied
	}
	return s, nil
}

// RespondGuardError maps guard failures onto the fixed status set.
func RespondGuardError(c *gin.Context, err error) {
	switch err {
	case ErrUnauthenticated:
		httpx.Unauthenticated(c)
	case ErrStoreIDRequired:
		httpx.BadRequest(c, err.Error())
	default:
		httpx.Denied(c)
	}
}
