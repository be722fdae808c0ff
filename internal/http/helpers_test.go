package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/claretax/apartmart/internal/config"
	"github.com/claretax/apartmart/internal/http/handlers"
	"github.com/claretax/apartmart/internal/repos"
)

func testConfig() config.Config {
	return config.Config{
		Port:         "0",
		DBDSN:        ":memory:",
		JWTSecret:    "test-secret",
		LoginRateMax: 100,
	}
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return handlers.NewApp(db, testConfig(), "../../web/templates")
}

func jsonReq(method, path string, body any, cookie string) *http.Request {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: cookie})
	}
	return req
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// login authenticates one of the seeded accounts and returns the session token.
func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/auth", map[string]string{
		"username": username, "password": password,
	}, ""))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", username, resp.StatusCode)
	}
	tok := extractCookie(resp, "auth_token")
	if tok == "" {
		t.Fatalf("login %s: no auth_token cookie", username)
	}
	resp.Body.Close()
	return tok
}
