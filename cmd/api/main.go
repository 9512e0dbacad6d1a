package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/docs" // swagger docs

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/cache"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/config"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/dataset"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/db"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/handler"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/repository"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/service"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/tmdb"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title CineMatch Recommender API
// @version 1.0
// @description API de recomendaciones content-based (matriz de similitud precalculada, matching difuso de títulos)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	mongoDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("[mongo] %v", err)
	}
	redisCache, err := cache.New(cfg)
	if err != nil {
		// sin Redis se sirve igual, solo sin cache
		log.Printf("[redis] deshabilitado: %v", err)
		redisCache = nil
	}

	// ============================
	// Carga única del dataset
	// ============================
	loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cat, sims, err := dataset.LoadFromMongo(loadCtx, mongoDB)
	cancel()
	if err != nil {
		// dataset malformado = no arrancamos a servir
		log.Fatalf("[dataset] %v", err)
	}

	// repos
	userRepo := repository.NewUserRepository(mongoDB)
	historyRepo := repository.NewHistoryRepository(mongoDB)

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(cat, tmdb.New(cfg.TMDBAPIKey), redisCache)
	recSvc := service.NewRecommendService(cat, sims, historyRepo, redisCache)
	adminSvc := service.NewAdminService(cat, sims, historyRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	recH := handler.NewRecommendHandler(recSvc, movieSvc)
	adminH := handler.NewAdminHandler(adminSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/top", movieH.Top)
	r.Get("/movies/{iIdx}", movieH.GetMovie)

	r.Get("/recommendations", recH.GetRecommendations)
	r.Get("/ws/recommendations", recH.GetRecommendationsWS)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(handler.RequireAuth(cfg.JWTSecret))
		r.Use(handler.RequireRole("admin"))

		handler.MountAdminRoutes(r, adminH)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), r))
}
