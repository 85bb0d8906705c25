package handlers

import (
	"github.com/gofiber/fiber/v2"

	"apotheka/internal/config"
	"apotheka/internal/repos"
	"apotheka/internal/services"
	"apotheka/internal/store"
)

type Deps struct {
	Products   *ResourceHandler
	Offers     *ResourceHandler
	Categories *ResourceHandler
	Orders     *ResourceHandler
	Pages      *ResourceHandler
	Settings   *SettingsHandler
	Statistics *StatisticsHandler
	Upload     *UploadHandler
	AuthH      *AuthHandler
	Auth       *services.AuthService
}

func NewDeps(st *store.Store, cfg config.Config) *Deps {
	r := repos.New(st)
	auth := services.NewAuthService(cfg.AdminPasswordHash)

	return &Deps{
		Products:   &ResourceHandler{Col: r.Products, Label: "Product", AllowDelete: true},
		Offers:     &ResourceHandler{Col: r.Offers, Label: "Offer", AllowDelete: true},
		Categories: &ResourceHandler{Col: r.Categories, Label: "Category", AllowDelete: true},
		Orders:     &ResourceHandler{Col: r.Orders, Label: "Order", AllowDelete: false},
		Pages:      &ResourceHandler{Col: r.Pages, Label: "Page", AllowDelete: true},
		Settings:   &SettingsHandler{Settings: r.Settings},
		Statistics: &StatisticsHandler{Stats: services.NewStatisticsService(r)},
		Upload:     &UploadHandler{Dir: cfg.UploadDir},
		AuthH:      &AuthHandler{Auth: auth},
		Auth:       auth,
	}
}

// Mount registers the whole /api surface on the given group. main and the
// handler tests share this wiring.
func (d *Deps) Mount(api fiber.Router) {
	api.Use(RequireAdmin(d.Auth))

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	api.Post("/auth/login", d.AuthH.Login)
	api.Post("/auth/logout", d.AuthH.Logout)

	d.Products.Register(api.Group("/products"))
	d.Offers.Register(api.Group("/offers"))
	d.Categories.Register(api.Group("/categories"))
	d.Orders.Register(api.Group("/orders"))
	d.Pages.Register(api.Group("/pages"))

	api.Get("/settings", d.Settings.Get)
	api.Put("/settings", d.Settings.Put)
	api.Get("/statistics", d.Statistics.Get)
	api.Post("/upload", d.Upload.Image)
}
