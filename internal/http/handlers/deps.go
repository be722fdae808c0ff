package handlers

import (
	"github.com/claretax/apartmart/internal/config"
	"github.com/claretax/apartmart/internal/repos"
	"github.com/claretax/apartmart/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Auth           *services.AuthService
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
	UserHandler    *UserHandler
	WebHandler     *WebHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)
	userSvc := services.NewUserService(userRepo)
	catalogSvc := services.NewCatalogService(prodRepo)
	orderSvc := services.NewOrderService(orderRepo)

	return &Deps{
		Auth:           authSvc,
		AuthHandler:    &AuthHandler{Auth: authSvc, CookieSecure: cfg.CookieSecure},
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		OrderHandler:   &OrderHandler{Orders: orderSvc},
		UserHandler:    &UserHandler{Users: userSvc},
		WebHandler:     &WebHandler{},
	}
}
