package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mentorConnect/config"
	"mentorConnect/database"
	"mentorConnect/database/memoryStore"
	"mentorConnect/emailNotifications"
	"mentorConnect/httpHandlers"
	"mentorConnect/mentorMatching"
	"mentorConnect/mentorship"
	"mentorConnect/routes"
	"mentorConnect/schedulerJobs"
)

const shutdownTimeout = 15 * time.Second

type appStore interface {
	mentorship.Store
	schedulerJobs.JobStore
}

func main() {
	log.Println("Application started")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v\n", err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Error opening %s store: %v\n", cfg.Storage, err)
	}
	defer closeStore()

	var mailer emailNotifications.Sender = emailNotifications.NoopSender{}
	if cfg.SendGridKey != "" {
		mailer = emailNotifications.NewSendGridSender(cfg.SendGridKey, cfg.MailFromName, cfg.MailFromAddress)
	}

	service := mentorship.NewService(store, mailer, mentorMatching.NewRecommender(cfg.OpenAIKey))
	handlers := httpHandlers.NewHandlers(service, cfg.JWTSecret, cfg.TokenTTL)
	limiter := httpHandlers.NewRateLimiter(cfg.BookingRatePerSec, cfg.BookingRateBurst)

	if cfg.RunJobs {
		jobs := schedulerJobs.NewJobs(store, mailer)
		if err := jobs.Start(); err != nil {
			log.Fatalf("Error starting jobs: %v\n", err)
		}
		defer jobs.Stop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(httpHandlers.CorsSettings(cfg.CorsOrigins).Handler)
	routes.ConfigureRoutes(r, handlers, limiter)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	log.Printf("Listening on %s\n", server.Addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v\n", err)
	}
	log.Println("Application stopped")
}

func openStore(cfg *config.Config) (appStore, func(), error) {
	if cfg.Storage == config.StorageMemory {
		log.Println("Using in-memory store, data is lost on restart")
		return memoryStore.New(), func() {}, nil
	}
	store, err := database.ConnectToMongoDB(cfg.DBAddress, cfg.DBName)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := store.EnsureIndexes(ctx); err != nil {
		store.CloseMongoDBConnection()
		return nil, nil, err
	}
	return store, store.CloseMongoDBConnection, nil
}
