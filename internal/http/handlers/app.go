package handlers

import (
	"strings"
	"time"

	"github.com/claretax/apartmart/internal/config"
	"github.com/claretax/apartmart/internal/domain"
	applog "github.com/claretax/apartmart/internal/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/jmoiron/sqlx"
)

func isAPIPath(p string) bool {
	for _, prefix := range []string{"/auth", "/products", "/orders", "/users", "/healthz"} {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

// NewApp wires middleware, handlers and routes into a fiber app.
// templatesDir is relative to the working directory so tests can point at
// the repo copy.
func NewApp(db *sqlx.DB, cfg config.Config, templatesDir string) *fiber.App {
	deps := NewDeps(db, cfg)

	engine := html.New(templatesDir, ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return fail(c, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{AllowCredentials: false}))
	app.Use(AttachUser(deps.Auth))

	loginLimiter := limiter.New(limiter.Config{
		Max:        cfg.LoginRateMax,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return fail(c, fiber.StatusTooManyRequests, "Too many attempts. Please try again later.")
		},
	})

	// ---------- Auth ----------
	app.Post("/auth", loginLimiter, deps.AuthHandler.Login)
	app.Get("/auth", deps.AuthHandler.Session)
	app.Delete("/auth", deps.AuthHandler.Logout)
	app.Post("/auth/signup", deps.AuthHandler.Signup)

	// ---------- Catalog ----------
	app.Get("/products", deps.ProductHandler.List)
	app.Post("/products", RequireCan(domain.OpCatalogWrite), deps.ProductHandler.Create)
	app.Get("/products/:id", deps.ProductHandler.Detail)
	app.Put("/products/:id", RequireCan(domain.OpCatalogWrite), deps.ProductHandler.Update)
	app.Delete("/products/:id", RequireCan(domain.OpCatalogWrite), deps.ProductHandler.Delete)

	// ---------- Orders ----------
	app.Get("/orders", RequireAuth(), deps.OrderHandler.List)
	app.Post("/orders", RequireCan(domain.OpOrderCreate), deps.OrderHandler.Create)
	app.Get("/orders/:id", RequireAuth(), deps.OrderHandler.Detail)
	app.Put("/orders/:id", RequireCan(domain.OpOrderFulfill), deps.OrderHandler.UpdateStatus)

	// ---------- Users ----------
	app.Get("/users", RequireCan(domain.OpUserAdmin), deps.UserHandler.List)
	app.Post("/users", RequireCan(domain.OpUserAdmin), deps.UserHandler.Create)
	app.Get("/users/:id", RequireAuth(), deps.UserHandler.Detail)
	app.Put("/users/:id", RequireAuth(), deps.UserHandler.Update)
	app.Delete("/users/:id", RequireCan(domain.OpUserAdmin), deps.UserHandler.Delete)

	// ---------- Web shells & static ----------
	app.Get("/", deps.WebHandler.Home)
	app.Get("/login", deps.WebHandler.LoginPage)
	app.Static("/static", "./web/static")

	// ---------- Health & 404 ----------
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		if isAPIPath(c.Path()) {
			return fail(c, fiber.StatusNotFound, "Not found")
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	return app
}
