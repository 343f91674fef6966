package stats_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nmarchetti/shop-admin/internal/identity"
	"github.com/nmarchetti/shop-admin/internal/stats"
	"github.com/nmarchetti/shop-admin/internal/store"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRevenue_Empty(t *testing.T) {
	require.True(t, stats.Revenue(nil).IsZero())
	require.True(t, stats.RevenueSnapshot(nil).IsZero())
}

func TestRevenue_SumsCurrentProductPrices(t *testing.T) {
	orders := []stats.PaidOrder{
		{
			ID: "o1",
			Items: []stats.LineItem{
				{ProductID: "p1", Price: d("8.00"), ProductPrice: d("10.00")},
				{ProductID: "p2", Price: d("5.00"), ProductPrice: d("5.00")},
			},
		},
	}
	require.True(t, stats.Revenue(orders).Equal(d("15.00")),
		"revenue must be valued at current product prices")
	require.True(t, stats.RevenueSnapshot(orders).Equal(d("13.00")),
		"snapshot mode must use the checkout price")
}

func TestGraph_BucketsByMonthAndCoversYear(t *testing.T) {
	mk := func(month time.Month, price string) stats.PaidOrder {
		return stats.PaidOrder{
			ID:        uuid.NewString(),
			CreatedAt: time.Date(2025, month, 10, 0, 0, 0, 0, time.UTC),
			Items:     []stats.LineItem{{ProductPrice: d(price), Price: d(price)}},
		}
	}
	orders := []stats.PaidOrder{
		mk(time.January, "10.00"),
		mk(time.January, "2.50"),
		mk(time.November, "7.00"),
	}

	g := stats.Graph(orders)
	require.Len(t, g, 12)
	require.Equal(t, "Jan", g[0].Name)
	require.Equal(t, "Dec", g[11].Name)
	require.True(t, g[0].Total.Equal(d("12.50")))
	require.True(t, g[10].Total.Equal(d("7.00")))
	require.True(t, g[5].Total.IsZero())

	sum := decimal.Zero
	for _, b := range g {
		sum = sum.Add(b.Total)
	}
	require.True(t, sum.Equal(stats.Revenue(orders)), "graph buckets must sum to total revenue")
}

// ===== handler-level: metrics are owner-only =====

type stubStoreRepo struct{ st *store.Store }

func (s *stubStoreRepo) Create(context.Context, *store.Store) error { return nil }
func (s *stubStoreRepo) GetByIDForUser(_ context.Context, id, userID string) (*store.Store, error) {
	if s.st != nil && s.st.ID == id && s.st.UserID == userID {
		return s.st, nil
	}
	return nil, store.ErrNotFound
}
func (s *stubStoreRepo) ListByUser(context.Context, string) ([]store.Store, error) { return nil, nil }
func (s *stubStoreRepo) Update(context.Context, string, string, string) error      { return nil }
func (s *stubStoreRepo) Delete(context.Context, string, string) (bool, error)      { return false, nil }

type stubStatsRepo struct {
	orders []stats.PaidOrder
	stock  int
}

func (s *stubStatsRepo) PaidOrders(context.Context, string) ([]stats.PaidOrder, error) {
	return s.orders, nil
}
func (s *stubStatsRepo) SalesCount(context.Context, string) (int, error) { return len(s.orders), nil }
func (s *stubStatsRepo) StockCount(context.Context, string) (int, error) { return s.stock, nil }

func newRouter(userID string, storeRepo store.Repository, repo stats.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			identity.SetUserID(c, userID)
		}
		c.Next()
	})
	stats.Routes(r.Group("/api"), store.NewGuard(storeRepo), repo)
	return r
}

func TestStatsEndpoints_RequireOwnership(t *testing.T) {
	owner := uuid.NewString()
	st := &store.Store{ID: uuid.NewString(), UserID: owner}
	repo := &stubStatsRepo{stock: 2}

	// no identity
	r := newRouter("", &stubStoreRepo{st: st}, repo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/"+st.ID+"/stats/revenue", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// wrong owner
	r = newRouter(uuid.NewString(), &stubStoreRepo{st: st}, repo)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/"+st.ID+"/stats/stock", nil))
	require.Equal(t, http.StatusForbidden, w.Code)

	// owner
	r = newRouter(owner, &stubStoreRepo{st: st}, repo)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/"+st.ID+"/stats/stock", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"count": 2}`, w.Body.String())
}

func TestRevenueHandler_Modes(t *testing.T) {
	owner := uuid.NewString()
	st := &store.Store{ID: uuid.NewString(), UserID: owner}
	repo := &stubStatsRepo{orders: []stats.PaidOrder{{
		ID: "o1",
		Items: []stats.LineItem{
			{Price: d("8.00"), ProductPrice: d("10.00")},
			{Price: d("5.00"), ProductPrice: d("5.00")},
		},
	}}}
	r := newRouter(owner, &stubStoreRepo{st: st}, repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/"+st.ID+"/stats/revenue", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var got stats.RevenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "current", got.Mode)
	require.True(t, got.Total.Equal(d("15.00")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/"+st.ID+"/stats/revenue?mode=snapshot", nil))
	require.Equal(t, http.StatusOK, w.Code)
	got = stats.RevenueResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "snapshot", got.Mode)
	require.True(t, got.Total.Equal(d("13.00")))
}
