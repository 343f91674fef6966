package catalog

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nmarchetti/shop-admin/internal/httpx"
	"github.com/nmarchetti/shop-admin/internal/identity"
	"github.com/nmarchetti/shop-admin/internal/store"
)

// Orders are read-only here; they are written by the checkout flow, which is
// a different system.
type OrderRepo interface {
	ListByStore(ctx context.Context, storeID string) ([]Order, error)
}

type OrderPG struct{ db *pgxpool.Pool }

func NewOrderPG(db *pgxpool.Pool) *OrderPG { return &OrderPG{db: db} }

func (r *OrderPG) ListByStore(ctx context.Context, storeID string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT o.id, o.store_id, o.is_paid, o.phone, o.address, o.created_at, o.updated_at,
		       i.id, i.order_id, i.product_id, i.price::text
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.store_id=$1
		ORDER BY o.created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	idx := make(map[string]int)
	for rows.Next() {
		var o Order
		var itemID, itemOrderID, itemProductID, itemPrice *string
		if err := rows.Scan(&o.ID, &o.StoreID, &o.IsPaid, &o.Phone, &o.Address, &o.CreatedAt, &o.UpdatedAt,
			&itemID, &itemOrderID, &itemProductID, &itemPrice); err != nil {
			return nil, err
		}
		i, ok := idx[o.ID]
		if !ok {
			out = append(out, o)
			i = len(out) - 1
			idx[o.ID] = i
		}
		if itemID != nil {
			price, err := decimal.NewFromString(*itemPrice)
			if err != nil {
				return nil, err
			}
			out[i].Items = append(out[i].Items, OrderItem{
				ID:        *itemID,
				OrderID:   *itemOrderID,
				ProductID: *itemProductID,
				Price:     price,
			})
		}
	}
	return out, rows.Err()
}

// listOrdersHandler serves the dashboard orders table. Unlike the catalog
// reads this one is owner-only: orders carry customer phone and address.
// @Summary  List a store's orders
// @Produce  json
// @Param    storeId path string true "store id"
// @Success  200 {array} Order
// @Failure  401 {object} httpx.HTTPError
// @Failure  403 {object} httpx.HTTPError
// @Router   /{storeId}/orders [get]
func listOrdersHandler(g *store.Guard, repo OrderRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := g.Authorize(c.Request.Context(), identity.UserID(c), c.Param("storeId"))
		if err != nil {
			store.RespondGuardError(c, err)
			return
		}
		out, err := repo.ListByStore(c.Request.Context(), st.ID)
		if err != nil {
			httpx.Internal(c, "orders_get", err)
			return
		}
		if out == nil {
			out = []Order{}
		}
		c.JSON(http.StatusOK, out)
	}
}
