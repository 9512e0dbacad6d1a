// internal/service/movie_service.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/cache"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/catalog"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/tmdb"
)

const tmdbCacheTTL = time.Hour

type MovieService struct {
	catalog *catalog.Store
	tmdb    *tmdb.Client
	cache   *cache.Cache
}

func NewMovieService(cat *catalog.Store, t *tmdb.Client, c *cache.Cache) *MovieService {
	return &MovieService{catalog: cat, tmdb: t, cache: c}
}

func (s *MovieService) GetMovie(iIdx int) (*models.MovieDoc, error) {
	return s.catalog.ByIndex(iIdx)
}

func (s *MovieService) Search(q, genre string, yearFrom, yearTo, limit, offset int) []models.MovieDoc {
	return s.catalog.Search(q, genre, yearFrom, yearTo, limit, offset)
}

func (s *MovieService) Top(metric string, limit int) []models.MovieDoc {
	return s.catalog.Top(metric, limit)
}

// Details consulta TMDB para una película, con cache Redis de 1 hora por
// título. Nunca devuelve error: si TMDB falla o no encuentra nada, la
// respuesta es ausencia (nil) y el caller sigue sin poster ni detalles.
func (s *MovieService) Details(ctx context.Context, title string, year *int) *models.TMDBDetails {
	key := "tmdb:title:" + title

	var cached models.TMDBDetails
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached
	}

	det, err := s.tmdb.SearchMovie(ctx, title, year)
	if err != nil {
		log.Printf("[tmdb] error buscando %q: %v", title, err)
		return nil
	}
	if det == nil {
		return nil
	}

	if err := s.cache.SetJSON(ctx, key, det, tmdbCacheTTL); err != nil {
		log.Printf("[tmdb] error cacheando %q: %v", title, err)
	}
	return det
}

// Enrich completa Details de cada recomendación. Se hace después de calcular
// el ranking: un fallo del proveedor externo nunca aborta la recomendación.
func (s *MovieService) Enrich(ctx context.Context, movies []models.RecommendedMovie) {
	for i := range movies {
		movies[i].Details = s.Details(ctx, movies[i].Title, movies[i].Year)
	}
}
