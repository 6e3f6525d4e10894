package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/kaitozaw/tennislot/internal/config"
	"github.com/kaitozaw/tennislot/internal/database"
	"github.com/kaitozaw/tennislot/internal/handler"
	"github.com/kaitozaw/tennislot/internal/middleware"
	"github.com/kaitozaw/tennislot/internal/queue"
	"github.com/kaitozaw/tennislot/internal/repository"
	"github.com/kaitozaw/tennislot/internal/router"
	"github.com/kaitozaw/tennislot/internal/wizard"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		// Drafts live in Redis; without it the wizard cannot run.
		log.Fatal("redis: connection failed")
	}

	store := repository.NewStore(db)
	drafts := repository.NewDraftRepo(rdb, time.Duration(cfg.DraftTTLMin)*time.Minute)
	wiz := wizard.New(store, store.PageRepo)

	authHandler := handler.NewAuthHandler(cfg, store.OrganiserRepo, store.TokenRepo)
	wizardHandler := handler.NewWizardHandler(wiz, drafts, store.PageRepo, store.RuleRepo)
	sectionHandler := handler.NewSectionHandler(wiz, drafts, store.PageRepo)
	dashboardHandler := handler.NewDashboardHandler(store.PageRepo)
	bookingHandler := handler.NewBookingHandler(store.BookingRepo, store.PageRepo)
	publicHandler := handler.NewPublicHandler(store)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e, publicHandler, config.LoadCacheConfig(), rdb)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterOrganiser(e, wizardHandler, sectionHandler, dashboardHandler, bookingHandler, cfg.JWTSecret)

	// Background consumer writing booking_page.created events to the
	// audit log. Runs its own reconnect loop.
	go func() {
		if err := queue.StartPageCreatedConsumer(); err != nil {
			log.Printf("page-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
