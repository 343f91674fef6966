package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nmarchetti/shop-admin/internal/httpx"
	"github.com/nmarchetti/shop-admin/internal/identity"
	"github.com/nmarchetti/shop-admin/internal/store"
)

// RevenueResponse is the revenue total for a store.
// swagger:model RevenueResponse
type RevenueResponse struct {
	Total decimal.Decimal `json:"total" swaggertype:"number"`
	// "current" or "snapshot"
	Mode string `json:"mode"`
}

// CountResponse is a plain counter value.
// swagger:model CountResponse
type CountResponse struct {
	Count int `json:"count"`
}

// Routes mounts the dashboard metrics. Unlike catalog reads these are
// owner-only: they expose sales data, not the storefront catalog.
func Routes(rg *gin.RouterGroup, g *store.Guard, repo Repository) {
	rg.GET("/:storeId/stats/revenue", revenueHandler(g, repo))
	rg.GET("/:storeId/stats/sales", salesHandler(g, repo))
	rg.GET("/:storeId/stats/stock", stockHandler(g, repo))
	rg.GET("/:storeId/stats/graph", graphHandler(g, repo))
}

func authorize(c *gin.Context, g *store.Guard) bool {
	_, err := g.Authorize(c.Request.Context(), identity.UserID(c), c.Param("storeId"))
	if err != nil {
		store.RespondGuardError(c, err)
		return false
	}
	return true
}

// revenueHandler returns the store's total revenue over paid orders.
// @Summary  Total revenue
// @Produce  json
// @Param    storeId path string true "store id"
// @Param    mode query string false "current (default) or snapshot"
// @Success  200 {object} RevenueResponse
// @Router   /{storeId}/stats/revenue [get]
func revenueHandler(g *store.Guard, repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authorize(c, g) {
			return
		}
		orders, err := repo.PaidOrders(c.Request.Context(), c.Param("storeId"))
		if err != nil {
			httpx.Internal(c, "stats_revenue", err)
			return
		}
		mode := c.DefaultQuery("mode", "current")
		total := Revenue(orders)
		if mode == "snapshot" {
			total = RevenueSnapshot(orders)
		}
		c.JSON(http.StatusOK, RevenueResponse{Total: total, Mode: mode})
	}
}

func salesHandler(g *store.Guard, repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authorize(c, g) {
			return
		}
		n, err := repo.SalesCount(c.Request.Context(), c.Param("storeId"))
		if err != nil {
			httpx.Internal(c, "stats_sales", err)
			return
		}
		c.JSON(http.StatusOK, CountResponse{Count: n})
	}
}

func stockHandler(g *store.Guard, repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authorize(c, g) {
			return
		}
		n, err := repo.StockCount(c.Request.Context(), c.Param("storeId"))
		if err != nil {
			httpx.Internal(c, "stats_stock", err)
			return
		}
		c.JSON(http.StatusOK, CountResponse{Count: n})
	}
}

func graphHandler(g *store.Guard, repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authorize(c, g) {
			return
		}
		orders, err := repo.PaidOrders(c.Request.Context(), c.Param("storeId"))
		if err != nil {
			httpx.Internal(c, "stats_graph", err)
			return
		}
		c.JSON(http.StatusOK, Graph(orders))
	}
}
