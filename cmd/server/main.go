package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/artvault/gallery/internal/catalog"
	"github.com/artvault/gallery/internal/config"
	"github.com/artvault/gallery/internal/events"
	"github.com/artvault/gallery/internal/facade"
	"github.com/artvault/gallery/internal/handlers"
	"github.com/artvault/gallery/internal/httpserver"
	"github.com/artvault/gallery/internal/logging"
	"github.com/artvault/gallery/internal/repo"
	"github.com/artvault/gallery/internal/search"
	"github.com/artvault/gallery/internal/sim"
	"github.com/artvault/gallery/internal/store"
)

func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch {
	case cfg.RedisAddr != "":
		r := store.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		return r, func() { r.Close() }, nil
	case cfg.DatabaseURL != "":
		g, err := store.OpenGorm(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return g, func() { g.Close() }, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}

func main() {
	cfg := config.Load()
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, closeStore, err := openStore(initCtx, cfg)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}
	defer closeStore()

	users := &repo.Users{Store: st}
	sessions := &repo.Sessions{Store: st}
	carts := &repo.Cart{Store: st}
	notifications := &repo.Notifications{Store: st}
	stats := &repo.Stats{Store: st}

	if err := users.Seed(initCtx); err != nil {
		log.Fatalf("user seed error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	var searchSvc *search.Service
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Warn("search disabled", "error", err)
		} else {
			searchSvc = &search.Service{ES: es, Index: cfg.ESIndex}
			if err := searchSvc.IndexArtworks(initCtx, catalog.All()); err != nil {
				logger.Warn("catalog indexing failed", "error", err)
			}
		}
	}

	router := sim.NewRouter(cfg.RequestDelay)
	(&handlers.Auth{
		Users:     users,
		Sessions:  sessions,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Producer:  producer,
	}).Register(router)
	artworksHandler := &handlers.Artworks{Sessions: sessions, Stats: stats}
	if searchSvc != nil {
		artworksHandler.Search = searchSvc
	}
	artworksHandler.Register(router)
	(&handlers.Cart{Carts: carts}).Register(router)
	(&handlers.Payments{
		Carts:    carts,
		Sessions: sessions,
		Stats:    stats,
		Producer: producer,
	}).Register(router)
	(&handlers.Notifications{Notifications: notifications, Producer: producer}).Register(router)
	(&handlers.User{Sessions: sessions, Stats: stats}).Register(router)

	client := facade.New(router)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(httpserver.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(httpserver.RateLimiter())

	httpserver.Register(e, &httpserver.Deps{
		Gallery:   &httpserver.Gallery{Client: client},
		JWTSecret: cfg.JWTSecret,
	})

	port := strconv.Itoa(cfg.ServerPort)
	go func() {
		logger.Info("starting gallery server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	logger.Info("server stopped")
}
