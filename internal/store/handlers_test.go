package store_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nmarchetti/shop-admin/internal/identity"
	"github.com/nmarchetti/shop-admin/internal/store"
)

type stubRepo struct {
	stores  map[string]*store.Store
	lookups int
}

func newStubRepo(stores ...*store.Store) *stubRepo {
	s := &stubRepo{stores: make(map[string]*store.Store)}
	for _, st := range stores {
		s.stores[st.ID] = st
	}
	return s
}

func (s *stubRepo) Create(ctx context.Context, st *store.Store) error {
	s.stores[st.ID] = st
	return nil
}

func (s *stubRepo) GetByIDForUser(ctx context.Context, id, userID string) (*store.Store, error) {
	s.lookups++
	st, ok := s.stores[id]
	if !ok || st.UserID != userID {
		return nil, store.ErrNotFound
	}
	return st, nil
}

func (s *stubRepo) ListByUser(ctx context.Context, userID string) ([]store.Store, error) {
	var out []store.Store
	for _, st := range s.stores {
		if st.UserID == userID {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (s *stubRepo) Update(ctx context.Context, id, userID, name string) error {
	st, ok := s.stores[id]
	if !ok || st.UserID != userID {
		return store.ErrNotFound
	}
	st.Name = name
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id, userID string) (bool, error) {
	st, ok := s.stores[id]
	if !ok || st.UserID != userID {
		return false, nil
	}
	delete(s.stores, id)
	return true, nil
}

func newRouter(userID string, repo store.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			identity.SetUserID(c, userID)
		}
		c.Next()
	})
	store.Routes(r.Group("/api"), repo)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGuard_ShortCircuitsWithoutIdentity(t *testing.T) {
	repo := newStubRepo()
	g := store.NewGuard(repo)

	if _, err := g.Authorize(context.Background(), "", "some-store"); err != store.ErrUnauthenticated {
		t.Fatalf("err=%v, expected ErrUnauthenticated", err)
	}
	if repo.lookups != 0 {
		t.Fatalf("lookups=%d, missing identity must not reach the repo", repo.lookups)
	}
}

func TestGuard_MissingStoreID(t *testing.T) {
	g := store.NewGuard(newStubRepo())
	if _, err := g.Authorize(context.Background(), uuid.NewString(), ""); err != store.ErrStoreIDRequired {
		t.Fatalf("err=%v, expected ErrStoreIDRequired", err)
	}
}

func TestGuard_DeniesForeignStore(t *testing.T) {
	owner := uuid.NewString()
	st := &store.Store{ID: uuid.NewString(), UserID: owner, Name: "shop"}
	g := store.NewGuard(newStubRepo(st))

	if _, err := g.Authorize(context.Background(), uuid.NewString(), st.ID); err != store.ErrDenied {
		t.Fatalf("err=%v, expected ErrDenied", err)
	}
	got, err := g.Authorize(context.Background(), owner, st.ID)
	if err != nil {
		t.Fatalf("owner denied: %v", err)
	}
	if got.ID != st.ID {
		t.Fatalf("got store %q, expected %q", got.ID, st.ID)
	}
}

func TestCreateStore(t *testing.T) {
	owner := uuid.NewString()
	repo := newStubRepo()
	r := newRouter(owner, repo)

	w := do(r, http.MethodPost, "/api/stores", map[string]string{"name": "Main Street Shop"})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got store.Store
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.UserID != owner || got.Name != "Main Street Shop" {
		t.Fatalf("got=%+v", got)
	}

	w = do(r, http.MethodPost, "/api/stores", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty name: status=%d", w.Code)
	}
}

func TestCreateStore_Unauthenticated(t *testing.T) {
	r := newRouter("", newStubRepo())
	w := do(r, http.MethodPost, "/api/stores", map[string]string{"name": "x"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestRenameStore_ScopedToOwner(t *testing.T) {
	owner := uuid.NewString()
	st := &store.Store{ID: uuid.NewString(), UserID: owner, Name: "before"}
	repo := newStubRepo(st)

	// an authenticated stranger cannot rename it
	r := newRouter(uuid.NewString(), repo)
	w := do(r, http.MethodPatch, "/api/stores/"+st.ID, map[string]string{"name": "after"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status=%d", w.Code)
	}
	if repo.stores[st.ID].Name != "before" {
		t.Fatalf("name=%q, rename leaked across owners", repo.stores[st.ID].Name)
	}

	// the owner can
	r = newRouter(owner, repo)
	w = do(r, http.MethodPatch, "/api/stores/"+st.ID, map[string]string{"name": "after"})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if repo.stores[st.ID].Name != "after" {
		t.Fatalf("name=%q", repo.stores[st.ID].Name)
	}
}

func TestDeleteStore(t *testing.T) {
	owner := uuid.NewString()
	st := &store.Store{ID: uuid.NewString(), UserID: owner, Name: "shop"}
	repo := newStubRepo(st)
	r := newRouter(owner, repo)

	w := do(r, http.MethodDelete, "/api/stores/"+st.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if _, ok := repo.stores[st.ID]; ok {
		t.Fatalf("store still present after delete")
	}
}
