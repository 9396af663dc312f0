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

	"github.com/ep-bau/ep-system/internal/application/analytics"
	"github.com/ep-bau/ep-system/internal/application/auth"
	appkassa "github.com/ep-bau/ep-system/internal/application/kassa"
	"github.com/ep-bau/ep-system/internal/application/lager"
	"github.com/ep-bau/ep-system/internal/application/reports"
	"github.com/ep-bau/ep-system/internal/application/usecase"
	infrapdf "github.com/ep-bau/ep-system/internal/infrastructure/pdf"
	"github.com/ep-bau/ep-system/internal/infrastructure/postgres"
	httpRouter "github.com/ep-bau/ep-system/internal/interfaces/http"
	"github.com/ep-bau/ep-system/pkg/config"
	"github.com/ep-bau/ep-system/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("konfiguration laden: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("anwendung startet")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("verbindung zu PostgreSQL")
	}
	defer pool.Close()

	benutzerRepo := postgres.NewBenutzerRepository(pool)
	wareRepo := postgres.NewWareRepository(pool)
	logRepo := postgres.NewWarenLogRepository(pool)
	kategorieRepo := postgres.NewKategorieRepository(pool)
	projektRepo := postgres.NewProjektRepository(pool)
	etappeRepo := postgres.NewEtappeRepository(pool)
	dokumentRepo := postgres.NewDokumentRepository(pool)
	kundeRepo := postgres.NewKundeRepository(pool)
	subunternehmerRepo := postgres.NewSubunternehmerRepository(pool)
	anfrageRepo := postgres.NewAnfrageRepository(pool)
	aufgabeRepo := postgres.NewAufgabeRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	kassaRepo := postgres.NewKassaRepository(pool)
	saleRepo := postgres.NewKassaSaleRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hierarchy := usecase.NewHierarchyCache(benutzerRepo)

	wareUC := lager.NewWareUseCase(wareRepo, logRepo)
	recordMovementUC := lager.NewRecordMovementUseCase(txRunner, benutzerRepo, projektRepo)
	webhookUC := appkassa.NewWebhookUseCase(txRunner)
	kassaUC := appkassa.NewKassaUseCase(kassaRepo, saleRepo)
	kategorieUC := usecase.NewKategorieUseCase(kategorieRepo)
	projektUC := usecase.NewProjektUseCase(projektRepo, etappeRepo, dokumentRepo, kategorieRepo)
	anfrageUC := usecase.NewAnfrageUseCase(anfrageRepo, kategorieRepo, projektRepo)
	kundeUC := usecase.NewKundeUseCase(kundeRepo)
	subunternehmerUC := usecase.NewSubunternehmerUseCase(subunternehmerRepo)
	benutzerUC := usecase.NewBenutzerUseCase(benutzerRepo, hierarchy)
	aufgabeUC := usecase.NewAufgabeUseCase(aufgabeRepo, hierarchy)
	ticketUC := usecase.NewTicketUseCase(ticketRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo)
	authUC := auth.NewUseCase(benutzerRepo, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		Issuer:            cfg.JWT.Issuer,
		ExpirationMinutes: cfg.JWT.Expiration,
	})

	// PDF: Projektbericht mit Stammdaten, Etappenfortschritt und Dokumentanzahl
	berichtGenerator := infrapdf.NewMarotoBerichtGenerator()
	berichtUC := reports.NewProjektberichtUseCase(
		projektRepo, kundeRepo, etappeRepo, dokumentRepo, kategorieRepo, berichtGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI lokal: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EP-System API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		JWTSecret:      cfg.JWT.Secret,
		Auth:           httpRouter.NewAuthHandler(authUC),
		Ware:           httpRouter.NewWareHandler(wareUC),
		Lager:          httpRouter.NewLagerHandler(recordMovementUC, wareUC),
		Kassa:          httpRouter.NewKassaHandler(webhookUC, kassaUC),
		Kategorie:      httpRouter.NewKategorieHandler(kategorieUC),
		Projekt:        httpRouter.NewProjektHandler(projektUC, berichtUC),
		Anfrage:        httpRouter.NewAnfrageHandler(anfrageUC),
		Kunde:          httpRouter.NewKundeHandler(kundeUC),
		Subunternehmer: httpRouter.NewSubunternehmerHandler(subunternehmerUC),
		Benutzer:       httpRouter.NewBenutzerHandler(benutzerUC),
		Aufgabe:        httpRouter.NewAufgabeHandler(aufgabeUC),
		Ticket:         httpRouter.NewTicketHandler(ticketUC),
		Dashboard:      httpRouter.NewDashboardHandler(dashboardUC),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP-Server beendet")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown-signal empfangen, server wird beendet...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server-shutdown")
	}

	log.Info().Msg("anwendung beendet")
}
