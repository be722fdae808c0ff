package handlers_test

import (
	"net/http"
	"testing"

	"github.com/claretax/apartmart/internal/http/handlers"
	"github.com/claretax/apartmart/internal/repos"
)

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(jsonReq("GET", "/healthz", nil, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestLoginRateLimit(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := testConfig()
	cfg.LoginRateMax = 2
	app := handlers.NewApp(db, cfg, "../../web/templates")

	for i := 0; i < 2; i++ {
		resp, err := app.Test(jsonReq("POST", "/auth", map[string]string{
			"username": "demo", "password": "wrong",
		}, ""))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp, err := app.Test(jsonReq("POST", "/auth", map[string]string{
		"username": "demo", "password": "demo123",
	}, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("third attempt: expected 429, got %d", resp.StatusCode)
	}
	body := decode(t, resp)
	if body["success"] != false || body["message"] != "Too many attempts. Please try again later." {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAPINotFoundIsJSON(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonReq("GET", "/products/prod-1/reviews", nil, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body := decode(t, resp); body["success"] != false {
		t.Fatalf("expected the JSON envelope, got %v", body)
	}
}

func TestHomeRedirectsAnonymous(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonReq("GET", "/", nil, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
	resp.Body.Close()

	// authenticated visitors land on their dashboard instead
	tok := login(t, app, "demo", "demo123")
	resp, err = app.Test(jsonReq("GET", "/", nil, tok))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("resident home: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// and a logged-in visit to /login bounces home
	resp, err = app.Test(jsonReq("GET", "/login", nil, tok))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login page while authenticated: expected 302, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
