package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmarchetti/shop-admin/internal/httpx"
	"github.com/nmarchetti/shop-admin/internal/identity"
	"github.com/nmarchetti/shop-admin/internal/store"
)

// ErrNotFound is returned by scoped mutations that matched no row. A valid
// owner token for some other store must never reach a foreign record, so the
// handlers surface it as a denial.
var ErrNotFound = errors.New("record not found")

// Body is a resource request payload with its required-field check.
type Body interface{ Validate() error }

// ListQuery carries the optional list filters. Only products honour them;
// empty fields mean "no constraint", never "zero matches".
type ListQuery struct {
	CategoryID string
	ColourID   string
	SizeID     string
	Featured   bool
}

// resource is the one scoped-CRUD protocol, instantiated per resource type
// with its payload validation and persistence accessors. Each request runs
// validate -> authorize -> persist -> respond, and is rejected at the first
// failing step.
type resource[M any, B Body] struct {
	name   string // URL segment and handler tag
	create func(ctx context.Context, storeID string, b B) (*M, error)
	get    func(ctx context.Context, id string) (*M, error)
	list   func(ctx context.Context, storeID string, q ListQuery) ([]M, error)
	update func(ctx context.Context, id, storeID string, b B) (*M, error)
	remove func(ctx context.Context, id, storeID string) (bool, error)
}

func (rs resource[M, B]) mount(rg *gin.RouterGroup, g *store.Guard) {
	rg.GET("/:storeId/"+rs.name, rs.listHandler())
	rg.POST("/:storeId/"+rs.name, rs.createHandler(g))
	rg.GET("/:storeId/"+rs.name+"/:id", rs.getHandler())
	rg.PATCH("/:storeId/"+rs.name+"/:id", rs.updateHandler(g))
	rg.DELETE("/:storeId/"+rs.name+"/:id", rs.deleteHandler(g))
}

func (rs resource[M, B]) createHandler(g *store.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		var b B
		if err := c.ShouldBindJSON(&b); err != nil {
			httpx.BadRequest(c, "invalid json body")
			return
		}
		if err := b.Validate(); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}
		st, err := g.Authorize(c.Request.Context(), identity.UserID(c), c.Param("storeId"))
		if err != nil {
			store.RespondGuardError(c, err)
			return
		}
		m, err := rs.create(c.Request.Context(), st.ID, b)
		if err != nil {
			httpx.Internal(c, rs.name+"_post", err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// getHandler is public by design; a miss reads back as null, not 404.
func (rs resource[M, B]) getHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			httpx.BadRequest(c, "id is required")
			return
		}
		m, err := rs.get(c.Request.Context(), id)
		if err != nil {
			if err == ErrNotFound {
				c.JSON(http.StatusOK, nil)
				return
			}
			httpx.Internal(c, rs.name+"_get", err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

func (rs resource[M, B]) listHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Param("storeId")
		if storeID == "" {
			httpx.BadRequest(c, "store id is required")
			return
		}
		q := ListQuery{
			CategoryID: c.Query("categoryId"),
			ColourID:   c.Query("colourId"),
			SizeID:     c.Query("sizeId"),
			Featured:   c.Query("isFeatured") != "",
		}
		out, err := rs.list(c.Request.Context(), storeID, q)
		if err != nil {
			httpx.Internal(c, rs.name+"_get", err)
			return
		}
		if out == nil {
			out = []M{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func (rs resource[M, B]) updateHandler(g *store.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		var b B
		if err := c.ShouldBindJSON(&b); err != nil {
			httpx.BadRequest(c, "invalid json body")
			return
		}
		if err := b.Validate(); err != nil {
			httpx.BadRequest(c, err.Error())
			return
		}
		st, err := g.Authorize(c.Request.Context(), identity.UserID(c), c.Param("storeId"))
		if err != nil {
			store.RespondGuardError(c, err)
			return
		}
		m, err := rs.update(c.Request.Context(), c.Param("id"), st.ID, b)
		if err != nil {
			if err == ErrNotFound {
				httpx.Denied(c)
				return
			}
			httpx.Internal(c, rs.name+"_patch", err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

func (rs resource[M, B]) deleteHandler(g *store.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := g.Authorize(c.Request.Context(), identity.UserID(c), c.Param("storeId"))
		if err != nil {
			store.RespondGuardError(c, err)
			return
		}
		ok, err := rs.remove(c.Request.Context(), c.Param("id"), st.ID)
		if err != nil {
			httpx.Internal(c, rs.name+"_delete", err)
			return
		}
		if !ok {
			httpx.Denied(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
