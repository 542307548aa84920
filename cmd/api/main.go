package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"ideagen/cmd/app"
	"ideagen/internal/config"
	"ideagen/internal/handler"
	"ideagen/internal/logger"
	"ideagen/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	l, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer l.Sync()

	db, repo, services := app.App(cfg, l)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg, l)

	// setting up routes
	r := mux.NewRouter()

	r.HandleFunc("/api", handler.Home).Methods(http.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth", handler.GetCurrentUser).Methods(http.MethodGet)

	r.HandleFunc("/api/ideas", handler.GetIdeas).Methods(http.MethodGet)
	r.HandleFunc("/api/ideas", handler.CreateIdea).Methods(http.MethodPost)
	r.HandleFunc("/api/ideas/generate", handler.GenerateIdeas).Methods(http.MethodPost)
	r.HandleFunc("/api/ideas/{id}", handler.GetIdea).Methods(http.MethodGet)
	r.HandleFunc("/api/ideas/{id}", handler.UpdateIdea).Methods(http.MethodPut)
	r.HandleFunc("/api/ideas/{id}", handler.DeleteIdea).Methods(http.MethodDelete)

	// auth runs innermost so CORS preflights never need a token
	handlerChain := middleware.Chain(
		r,
		middleware.AuthMiddleware(services.Auth, l),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(l),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	l.Info("server started",
		zap.String("addr", addr),
		zap.String("database", cfg.DB.DbNAME),
		zap.String("generator", cfg.Generator.Mode),
	)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}
