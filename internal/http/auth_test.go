package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"apotheka/internal/config"
)

func TestAuthDisabledLeavesWritesOpen(t *testing.T) {
	app := newApp(t)
	resp := doJSON(t, app, "POST", "/api/products", map[string]any{"id": "p1"})
	if resp.StatusCode != 201 {
		t.Fatalf("writes must stay open with auth off, got %d", resp.StatusCode)
	}
}

func TestAuthGuardsWritesWhenEnabled(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	app := newAppWithConfig(t, config.Config{AdminPasswordHash: string(hash)})

	// reads stay open
	if resp := doJSON(t, app, "GET", "/api/products", nil); resp.StatusCode != 200 {
		t.Fatalf("reads must stay open, got %d", resp.StatusCode)
	}

	// writes require a token
	if resp := doJSON(t, app, "POST", "/api/products", map[string]any{"id": "p1"}); resp.StatusCode != 401 {
		t.Fatalf("want 401 without token, got %d", resp.StatusCode)
	}

	// wrong password
	if resp := doJSON(t, app, "POST", "/api/auth/login", map[string]any{"password": "nope"}); resp.StatusCode != 401 {
		t.Fatalf("want 401 for bad password, got %d", resp.StatusCode)
	}

	resp := doJSON(t, app, "POST", "/api/auth/login", map[string]any{"password": "Passw0rd!"})
	if resp.StatusCode != 200 {
		t.Fatalf("want 200 login, got %d", resp.StatusCode)
	}
	token, _ := decodeMap(t, resp)["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}

	raw, _ := json.Marshal(map[string]any{"id": "p1"})
	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp2, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp2.StatusCode != 201 {
		t.Fatalf("want 201 with token, got %d", resp2.StatusCode)
	}
}
