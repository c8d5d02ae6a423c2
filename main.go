package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toursapp/internal/config"
	api "toursapp/internal/http"
	"toursapp/internal/http/handlers"
	"toursapp/internal/services"
)

func main() {
	configPath := flag.String("config", os.Getenv("APP_CONFIG"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := config.OpenDB(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close()

	if cfg.Database.Type == "sqlite" {
		if err := config.CreateSchema(context.Background(), db); err != nil {
			log.Fatalf("failed to create schema: %v", err)
		}
	}

	pdf := services.NewPdfService()
	excel := services.NewExcelService()
	email := services.NewEmailService(cfg.SMTP)

	h := api.Handlers{
		System:       handlers.NewSystemHandler(db),
		Auth:         handlers.NewAuthHandler(services.NewAuthService(db, cfg.Auth)),
		Destinations: handlers.NewDestinationHandler(services.NewDestinationService(db), pdf, excel),
		Tours:        handlers.NewTourHandler(services.NewTourService(db), pdf, excel),
		Bookings:     handlers.NewBookingHandler(services.NewBookingService(db), pdf, excel),
		UserBookings: handlers.NewUserBookingHandler(services.NewUserBookingService(db, pdf, email)),
		Dashboard:    handlers.NewDashboardHandler(services.NewDashboardService(db)),
		Seed:         handlers.NewSeedHandler(services.NewSeederService(db)),
	}

	r := api.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
