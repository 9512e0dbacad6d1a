package service

import (
	"context"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/catalog"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/repository"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/similarity"
)

// AdminService endpoints de solo lectura sobre el dataset cargado.
// El dataset es inmutable en runtime, así que aquí no hay rutas de escritura:
// rebuilds y remapeos se hacen upstream y se aplican con un reinicio.
type AdminService struct {
	catalog *catalog.Store
	sims    *similarity.Matrix
	history *repository.HistoryRepository
}

func NewAdminService(cat *catalog.Store, sims *similarity.Matrix, history *repository.HistoryRepository) *AdminService {
	return &AdminService{catalog: cat, sims: sims, history: history}
}

// DatasetSummary conteos de salud del dataset: duplicados de título y
// películas con metadata incompleta.
func (s *AdminService) DatasetSummary() models.DatasetSummary {
	sum := models.DatasetSummary{
		TotalMovies: s.catalog.Size(),
		MatrixSize:  s.sims.Size(),
		Metric:      s.sims.Metric(),
	}

	seen := make(map[string]int, s.catalog.Size())
	for _, t := range s.catalog.Titles() {
		seen[t]++
	}
	for _, c := range seen {
		if c > 1 {
			sum.DuplicateTitles += c - 1
		}
	}

	for i := 0; i < s.catalog.Size(); i++ {
		m, _ := s.catalog.ByIndex(i)
		if len(m.Genres) == 0 {
			sum.MoviesWithoutGenres++
		}
		if m.Director == "" {
			sum.MoviesWithoutDirector++
		}
		if m.RatingStats != nil {
			sum.MoviesWithRatingStats++
		}
	}
	return sum
}

func (s *AdminService) RecentQueries(ctx context.Context, limit int64) ([]models.RecQuery, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.history.FindRecent(ctx, limit)
}
