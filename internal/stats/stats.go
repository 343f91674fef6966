// Package stats computes the dashboard aggregates from paid orders.
package stats

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LineItem carries both prices an order item can be valued at: the snapshot
// taken at checkout and the product's current catalog price.
type LineItem struct {
	ProductID    string
	Price        decimal.Decimal
	ProductPrice decimal.Decimal
}

type PaidOrder struct {
	ID        string
	CreatedAt time.Time
	Items     []LineItem
}

type Repository interface {
	PaidOrders(ctx context.Context, storeID string) ([]PaidOrder, error)
	SalesCount(ctx context.Context, storeID string) (int, error)
	StockCount(ctx context.Context, storeID string) (int, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) PaidOrders(ctx context.Context, storeID string) ([]PaidOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT o.id, o.created_at, i.product_id, i.price::text, p.price::text
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		JOIN products p ON p.id = i.product_id
		WHERE o.store_id=$1 AND o.is_paid
		ORDER BY o.created_at
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PaidOrder
	idx := make(map[string]int)
	for rows.Next() {
		var orderID, productID, snap, current string
		var createdAt time.Time
		if err := rows.Scan(&orderID, &createdAt, &productID, &snap, &current); err != nil {
			return nil, err
		}
		snapD, err := decimal.NewFromString(snap)
		if err != nil {
			return nil, err
		}
		curD, err := decimal.NewFromString(current)
		if err != nil {
			return nil, err
		}
		i, ok := idx[orderID]
		if !ok {
			out = append(out, PaidOrder{ID: orderID, CreatedAt: createdAt})
			i = len(out) - 1
			idx[orderID] = i
		}
		out[i].Items = append(out[i].Items, LineItem{ProductID: productID, Price: snapD, ProductPrice: curD})
	}
	return out, rows.Err()
}

func (r *PGRepo) SalesCount(ctx context.Context, storeID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM orders WHERE store_id=$1 AND is_paid
	`, storeID).Scan(&n)
	return n, err
}

func (r *PGRepo) StockCount(ctx context.Context, storeID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM products WHERE store_id=$1 AND is_archived = FALSE
	`, storeID).Scan(&n)
	return n, err
}

// Revenue values every line item at the product's current catalog price.
// This mirrors the dashboard's historical behaviour; see RevenueSnapshot for
// the order-time valuation.
func Revenue(orders []PaidOrder) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		for _, it := range o.Items {
			total = total.Add(it.ProductPrice)
		}
	}
	return total
}

// RevenueSnapshot values every line item at the price recorded at checkout.
func RevenueSnapshot(orders []PaidOrder) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		for _, it := range o.Items {
			total = total.Add(it.Price)
		}
	}
	return total
}

// MonthBucket is one bar of the revenue graph.
type MonthBucket struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// Graph buckets paid-order revenue by the calendar month of order creation,
// always returning twelve buckets Jan through Dec.
func Graph(orders []PaidOrder) []MonthBucket {
	totals := make([]decimal.Decimal, 12)
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for _, o := range orders {
		m := int(o.CreatedAt.Month()) - 1
		for _, it := range o.Items {
			totals[m] = totals[m].Add(it.ProductPrice)
		}
	}
	out := make([]MonthBucket, 12)
	for i, t := range totals {
		out[i] = MonthBucket{Name: time.Month(i + 1).String()[:3], Total: t}
	}
	return out
}
