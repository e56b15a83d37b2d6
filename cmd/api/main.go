package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/facturacion-sv/internal/application/auth"
	"github.com/tu-usuario/facturacion-sv/internal/application/catalog"
	appdte "github.com/tu-usuario/facturacion-sv/internal/application/dte"
	appsales "github.com/tu-usuario/facturacion-sv/internal/application/sales"
	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
	"github.com/tu-usuario/facturacion-sv/internal/infrastructure/memory"
	"github.com/tu-usuario/facturacion-sv/internal/infrastructure/notify"
	infrapdf "github.com/tu-usuario/facturacion-sv/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/facturacion-sv/internal/interfaces/http"
	"github.com/tu-usuario/facturacion-sv/pkg/config"
	"github.com/tu-usuario/facturacion-sv/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Repositorios en memoria con datos demo. Todo el estado vive en el
	// proceso: reiniciar la aplicación lo restablece.
	userRepo := memory.NewUserRepository()
	productRepo := memory.NewProductRepository()
	clientRepo := memory.NewClientRepository()
	saleRepo := memory.NewSaleRepository()
	dteRepo := memory.NewDTERepository(memory.SeedDTEDocuments())

	if err := memory.SeedUsers(userRepo, []memory.DemoUser{
		{Email: cfg.Demo.AdminEmail, Name: "Administrador", Role: entity.RoleAdmin, Password: cfg.Demo.Password},
		{Email: cfg.Demo.CashierEmail, Name: "Cajero", Role: entity.RoleCashier, Password: cfg.Demo.Password},
	}); err != nil {
		log.Fatal().Err(err).Msg("sembrar usuarios demo")
	}
	if err := memory.SeedCatalog(productRepo, clientRepo); err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo demo")
	}

	feed := notify.NewFeed(log)

	// PDF: representación gráfica de ventas y DTE
	exporter := infrapdf.NewMarotoExporter(infrapdf.BusinessInfo{
		Name:    cfg.Business.Name,
		NIT:     cfg.Business.NIT,
		NRC:     cfg.Business.NRC,
		Address: cfg.Business.Address,
	})

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := catalog.NewProductUseCase(productRepo)
	clientUC := catalog.NewClientUseCase(clientRepo)
	saleUC := appsales.NewSaleUseCase(saleRepo, productRepo, clientRepo, feed, exporter)
	dteUC := appdte.NewDTEUseCase(dteRepo, feed, exporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		ClientUC:  clientUC,
		SaleUC:    saleUC,
		DTEUC:     dteUC,
		Feed:      feed,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
