package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/graymont-pd/casefilebackend/config"
	"github.com/graymont-pd/casefilebackend/database"
	"github.com/graymont-pd/casefilebackend/handlers"
	"github.com/graymont-pd/casefilebackend/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	logger := config.InitLogger()
	defer logger.Sync()

	handlers.SetExposeErrorDetails(cfg.ExposeErrorDetails)

	db, err := database.InitGormDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}
	if cfg.SeedAdmin {
		if err := database.SeedBootstrapAdmin(db); err != nil {
			log.Fatalf("FATAL: Failed to seed bootstrap admin: %v", err)
		}
	}

	caseNumbers := database.NewCaseNumberGenerator()

	userRepo := repository.NewGormUserRepository(db)
	complaintRepo := repository.NewGormComplaintRepository(db, caseNumbers)
	suspectRepo := repository.NewGormSuspectRepository(db)
	detentionRepo := repository.NewGormDetentionRepository(db)

	authHandler := &handlers.AuthHandler{
		UserRepo:  userRepo,
		JWTSecret: []byte(cfg.JWTSecret),
		TokenTTL:  cfg.TokenTTL,
	}
	userHandler := &handlers.UserHandler{UserRepo: userRepo}
	complaintHandler := &handlers.ComplaintHandler{ComplaintRepo: complaintRepo}
	suspectHandler := &handlers.SuspectHandler{SuspectRepo: suspectRepo}
	detentionHandler := &handlers.DetentionHandler{DetentionRepo: detentionRepo}

	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)
	r.Use(handlers.IdentityMiddleware(userRepo, []byte(cfg.JWTSecret)))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Route("/complaints", func(r chi.Router) {
			r.Get("/", complaintHandler.ListComplaints)
			r.Post("/", complaintHandler.CreateComplaint)
			r.Get("/stats", complaintHandler.GetStats)
			r.Get("/{id}", complaintHandler.GetComplaint)
			r.Put("/{id}/close", complaintHandler.CloseComplaint)
		})

		r.Route("/suspects", func(r chi.Router) {
			r.Get("/", suspectHandler.ListSuspects)
			r.Post("/", suspectHandler.CreateSuspect)
			r.Get("/by-complaint/{complaintId}", suspectHandler.ListSuspectsByComplaint)
			r.Get("/{id}", suspectHandler.GetSuspect)
		})

		r.Route("/detentions", func(r chi.Router) {
			r.Get("/", detentionHandler.ListDetentions)
			r.Post("/", detentionHandler.CreateDetention)
			r.Put("/{id}/release", detentionHandler.ReleaseSuspect)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.CreateUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})
	})

	zap.S().Infow("casefile backend is up and running",
		"port", cfg.Port,
		"driver", cfg.DatabaseDriver,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
