package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturacion-sv/internal/application/auth"
	"github.com/tu-usuario/facturacion-sv/internal/application/catalog"
	appdte "github.com/tu-usuario/facturacion-sv/internal/application/dte"
	appsales "github.com/tu-usuario/facturacion-sv/internal/application/sales"
	"github.com/tu-usuario/facturacion-sv/internal/infrastructure/notify"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *catalog.ProductUseCase
	ClientUC  *catalog.ClientUseCase
	SaleUC    *appsales.SaleUseCase
	DTEUC     *appdte.DTEUseCase
	Feed      *notify.Feed
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Products + vista de inventario (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	protected.Get("/inventory", productHandler.Inventory)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SaleUC)
	salesGroup.Post("/preview", salesHandler.Preview)
	salesGroup.Post("/", salesHandler.Submit)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Get("/:id/pdf", salesHandler.ExportPDF)

	// DTE (protegido)
	dteGroup := protected.Group("/dte")
	dteHandler := NewDTEHandler(deps.DTEUC)
	dteGroup.Get("/", dteHandler.List)
	dteGroup.Get("/summary", dteHandler.Summary)
	dteGroup.Get("/:id", dteHandler.GetByID)
	dteGroup.Post("/:id/events", dteHandler.ApplyEvent)
	dteGroup.Get("/:id/download", dteHandler.Download)

	// Notifications (protegido)
	notificationHandler := NewNotificationHandler(deps.Feed)
	protected.Get("/notifications", notificationHandler.List)
}
