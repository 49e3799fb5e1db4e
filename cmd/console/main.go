package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"earnhub/internal/adapter/web"
	"earnhub/internal/adapter/web/handler"
	webmiddleware "earnhub/internal/adapter/web/middleware"
	"earnhub/internal/adapter/web/router"
	"earnhub/internal/infrastructure/platform"
	"earnhub/internal/infrastructure/ws"
	"earnhub/internal/usecase"
	"earnhub/pkg/config"
)

const version = "1.2.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Base remote client carries no credential; the registry derives a
	// bearer-scoped client per session.
	platformClient := platform.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, nil)
	authClient := platform.NewAuthClient(platformClient)

	hub := ws.NewHub()
	hub.Start(ctx)

	registry := usecase.NewContextRegistry(platformClient, hub)
	authUseCase := usecase.NewAuthUseCase(authClient, registry)

	handler.Setup(authUseCase, registry, hub, version)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = web.NewValidator()

	sessionMiddleware := webmiddleware.NewSessionMiddleware(authUseCase, cfg.CookieDomain, cfg.CookieSecure)
	guard := webmiddleware.NewGuardMiddleware()

	router.Setup(e, sessionMiddleware, guard)

	log.Printf("Starting console on port %s (environment: %s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
