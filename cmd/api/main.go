package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/zakayo-api/docs"
	"github.com/jhoicas/zakayo-api/internal/application/auth"
	"github.com/jhoicas/zakayo-api/internal/application/billing"
	"github.com/jhoicas/zakayo-api/internal/application/export"
	"github.com/jhoicas/zakayo-api/internal/application/usecase"
	"github.com/jhoicas/zakayo-api/internal/application/validation"
	"github.com/jhoicas/zakayo-api/internal/application/workspace"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/memory"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/messaging"
	infrapdf "github.com/jhoicas/zakayo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/zakayo-api/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/zakayo-api/internal/interfaces/http"
	"github.com/jhoicas/zakayo-api/pkg/config"
	"github.com/jhoicas/zakayo-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

//	@title			Zakayo Holdings API
//	@version		1.0.0
//	@description	API del tablero multi-subsidiaria de Zakayo Holdings.
//	@BasePath		/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token. Formato: "Bearer {token}"

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
		Str("session_backend", cfg.Session.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Datos de negocio sembrados en memoria (no hay base de datos).
	store, err := memory.Seed(cfg.Auth.DemoPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar datos")
	}

	var sessions auth.SessionStore
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := session.DialRedis(ctx, cfg.Session.RedisAddr, cfg.Session.RedisPassword, cfg.Session.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Session.RedisAddr).Msg("conexión a Redis")
		}
		defer client.Close()
		sessions = session.NewRedisStore(client)
	default:
		sessions = session.NewMemoryStore()
	}

	validator := validation.New()
	authUC := auth.NewAuthUseCase(store.Users, store.Subsidiaries, sessions, auth.Config{
		JWTSecret:  cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
		SessionKey: cfg.Session.Key,
		SessionTTL: cfg.Session.TTL,
	})

	// PDF y WhatsApp: colaboradores de los documentos de facturación
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.Billing.Currency)
	documentUC := billing.NewDocumentUseCase(
		store.Invoices, store.DeliveryNotes, store.Subsidiaries,
		pdfGenerator, messaging.NewWhatsAppLinker(), cfg.Billing.Currency, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Zakayo Holdings API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		SubsidiaryUC:   usecase.NewSubsidiaryUseCase(store.Subsidiaries),
		UserUC:         usecase.NewUserUseCase(store.Users),
		CustomerUC:     usecase.NewCustomerUseCase(store.Customers, store.Subsidiaries, validator),
		OrderUC:        usecase.NewOrderUseCase(store.Orders, store.Subsidiaries, validator),
		InvoiceUC:      billing.NewInvoiceUseCase(store.Invoices, store.Subsidiaries, validator, cfg.Billing.VATRate),
		DeliveryNoteUC: billing.NewDeliveryNoteUseCase(store.DeliveryNotes, store.Subsidiaries, validator),
		DocumentUC:     documentUC,
		WorkspaceUC: workspace.NewWorkspaceUseCase(
			store.Customers, store.Orders, store.Invoices, store.DeliveryNotes, store.Subsidiaries,
		),
		ExportUC: export.NewExportUseCase(
			store.Customers, store.Orders, store.Invoices, store.DeliveryNotes,
			validator, cfg.Export.Delay, cfg.Export.Retention, log,
		),
		Status: httpRouter.StatusInfo{
			Environment:   cfg.App.Env,
			DeployContext: cfg.Deploy.Context,
			Netlify:       cfg.Deploy.Netlify,
		},
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
