package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"items-api/config"
	"items-api/internal/domain/item"
	"items-api/internal/handler"
	"items-api/internal/repository"
	"items-api/internal/services"
)

func newTestServer() *Server {
	cfg := &config.Config{
		AppPort:      "0",
		AppMode:      TestMode,
		JWTSecret:    "test-secret",
		JWTExpiryMin: 60,
	}

	userRepo := repository.NewMemoryUserRepository()
	itemRepo := repository.NewMemoryItemRepository()
	authService := services.NewAuthService(userRepo, cfg)
	itemService := services.NewItemService(itemRepo)

	s := New(cfg, nil)
	s.SetupRoutes(&Handlers{
		Auth:  handler.NewAuthHandler(authService),
		Items: handler.NewItemHandler(itemService),
	}, authService, nil)
	return s
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func loginAs(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"username": username, "password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}
	return decode[map[string]string](t, rec)["token"]
}

func TestRegisterLoginAndItemFlow(t *testing.T) {
	h := newTestServer().Handler()

	// register
	rec := doJSON(t, h, http.MethodPost, "/register", "", map[string]string{
		"username": "alice", "password": "pw1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}

	// duplicate register fails regardless of password
	rec = doJSON(t, h, http.MethodPost, "/register", "", map[string]string{
		"username": "alice", "password": "pw2",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register returned %d", rec.Code)
	}
	if msg := decode[map[string]string](t, rec)["error"]; msg == "" {
		t.Error("error body missing on duplicate register")
	}

	token := loginAs(t, h, "alice", "pw1")

	// create without token
	rec = doJSON(t, h, http.MethodPost, "/items", "", map[string]string{"name": "milk"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create returned %d", rec.Code)
	}

	// create with a mangled token
	rec = doJSON(t, h, http.MethodPost, "/items", token+"x", map[string]string{"name": "milk"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("invalid-token create returned %d", rec.Code)
	}

	// create with the real token
	rec = doJSON(t, h, http.MethodPost, "/items", token, map[string]string{"name": "milk"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[item.Item](t, rec)
	if created.ID != 1 || created.Name != "milk" || created.Completed {
		t.Errorf("unexpected created item %+v", created)
	}

	// nothing is completed yet
	rec = doJSON(t, h, http.MethodGet, "/items?completed=true", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	if items := decode[[]item.Item](t, rec); len(items) != 0 {
		t.Errorf("expected no completed items, got %+v", items)
	}
}

func TestListIsPublicAndFiltered(t *testing.T) {
	h := newTestServer().Handler()

	doJSON(t, h, http.MethodPost, "/register", "", map[string]string{"username": "alice", "password": "pw"})
	token := loginAs(t, h, "alice", "pw")

	for _, name := range []string{"Buy Milk", "buy bread", "walk dog"} {
		if rec := doJSON(t, h, http.MethodPost, "/items", token, map[string]string{"name": name}); rec.Code != http.StatusCreated {
			t.Fatalf("create %q returned %d", name, rec.Code)
		}
	}

	rec := doJSON(t, h, http.MethodGet, "/items?name=buy&sortBy=name", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	items := decode[[]item.Item](t, rec)
	if len(items) != 2 || items[0].Name != "Buy Milk" || items[1].Name != "buy bread" {
		t.Errorf("unexpected filtered listing %+v", items)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	h := newTestServer().Handler()

	doJSON(t, h, http.MethodPost, "/register", "", map[string]string{"username": "alice", "password": "pw"})
	token := loginAs(t, h, "alice", "pw")

	if rec := doJSON(t, h, http.MethodPost, "/items", token, map[string]string{"name": "milk"}); rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d", rec.Code)
	}

	// mark completed, then explicitly un-complete; false must apply
	rec := doJSON(t, h, http.MethodPut, "/items/1", token, map[string]any{"completed": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, h, http.MethodPut, "/items/1", token, map[string]any{"completed": false})
	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}
	if updated := decode[item.Item](t, rec); updated.Completed {
		t.Errorf("explicit completed=false not applied: %+v", updated)
	}

	// update of an unknown id
	rec = doJSON(t, h, http.MethodPut, "/items/99", token, map[string]any{"name": "x"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update of missing item returned %d", rec.Code)
	}

	// delete needs a token
	rec = doJSON(t, h, http.MethodDelete, "/items/1", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated delete returned %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodDelete, "/items/1", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete returned %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("delete body should be empty, got %q", rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodDelete, "/items/1", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete returned %d", rec.Code)
	}

	// the supplement: single-item fetch
	rec = doJSON(t, h, http.MethodGet, "/items/1", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get of deleted item returned %d", rec.Code)
	}
}

func TestHealthAndPing(t *testing.T) {
	h := newTestServer().Handler()

	for _, path := range []string{"/ping", "/health"} {
		rec := doJSON(t, h, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusOK {
			t.Errorf("%s returned %d", path, rec.Code)
		}
	}
}
