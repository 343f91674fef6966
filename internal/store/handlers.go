package store

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nmarchetti/shop-admin/internal/httpx"
	"github.com/nmarchetti/shop-admin/internal/identity"
)

func Routes(rg *gin.RouterGroup, repo Repository) {
	rg.GET("/stores", listStoresHandler(repo))
	rg.POST("/stores", createStoreHandler(repo))
	rg.GET("/stores/:storeId", getStoreHandler(repo))
	rg.PATCH("/stores/:storeId", updateStoreHandler(repo))
	rg.DELETE("/stores/:storeId", deleteStoreHandler(repo))
}

// createStoreHandler opens a new tenant for the caller.
// @Summary  Create a store
// @Accept   json
// @Produce  json
// @Param    body body UpsertStoreRequest true "store"
// @Success  200 {object} Store
// @Failure  400 {object} httpx.HTTPError
// @Failure  401 {object} httpx.HTTPError
// @Router   /stores [post]
func createStoreHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := identity.UserID(c)
		if userID == "" {
			httpx.Unauthenticated(c)
			return
		}
		var req UpsertStoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, "invalid json body")
			return
		}
		if req.Name == "" {
			httpx.BadRequest(c, "name is required")
			return
		}
		s := &Store{ID: uuid.NewString(), UserID: userID, Name: req.Name}
		if err := repo.Create(c.Request.Context(), s); err != nil {
			httpx.Internal(c, "stores_post", err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func listStoresHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := identity.UserID(c)
		if userID == "" {
			httpx.Unauthenticated(c)
			return
		}
		out, err := repo.ListByUser(c.Request.Context(), userID)
		if err != nil {
			httpx.Internal(c, "stores_get", err)
			return
		}
		if out == nil {
			out = []Store{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func getStoreHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := identity.UserID(c)
		if userID == "" {
			httpx.Unauthenticated(c)
			return
		}
		s, err := repo.GetByIDForUser(c.Request.Context(), c.Param("storeId"), userID)
		if err != nil {
			// miss reads back as null, not 404
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// updateStoreHandler renames a store the caller owns.
// @Summary  Rename a store
// @Accept   json
// @Produce  json
// @Param    storeId path string true "store id"
// @Param    body body UpsertStoreRequest true "store"
// @Success  200 {object} Store
// @Failure  403 {object} httpx.HTTPError
// @Router   /stores/{storeId} [patch]
func updateStoreHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := identity.UserID(c)
		if userID == "" {
			httpx.Unauthenticated(c)
			return
		}
		var req UpsertStoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadRequest(c, "invalid json body")
			return
		}
		if req.Name == "" {
			httpx.BadRequest(c, "name is required")
			return
		}
		storeID := c.Param("storeId")
		if err := repo.Update(c.Request.Context(), storeID, userID, req.Name); err != nil {
			if err == ErrNotFound {
				httpx.Denied(c)
				return
			}
			httpx.Internal(c, "store_patch", err)
			return
		}
		s, err := repo.GetByIDForUser(c.Request.Context(), storeID, userID)
		if err != nil {
			httpx.Internal(c, "store_patch", err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func deleteStoreHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := identity.UserID(c)
		if userID == "" {
			httpx.Unauthenticated(c)
			return
		}
		ok, err := repo.Delete(c.Request.Context(), c.Param("storeId"), userID)
		if err != nil {
			httpx.Internal(c, "store_delete", err)
			return
		}
		if !ok {
			httpx.Denied(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}
