// internal/catalog/catalog.go
package catalog

import (
	"errors"
	"sort"
	"strings"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"
)

var (
	// ErrIndexOutOfRange índice fuera de [0, N). Error de programación del
	// caller: los índices válidos siempre salen del propio Store.
	ErrIndexOutOfRange = errors.New("catalog: index out of range")

	// ErrNotFound el título exacto no existe. Recuperable: el caller cae al
	// matching difuso.
	ErrNotFound = errors.New("catalog: title not found")
)

// Store es el catálogo inmutable en memoria. Se construye una vez desde el
// dataset y después solo se lee, así que es seguro compartirlo entre requests
// sin locks.
type Store struct {
	movies []models.MovieDoc
	titles []string
}

// New congela el slice de películas recibido. El caller (dataset.Build) ya
// validó que iIdx sea denso y en orden.
func New(movies []models.MovieDoc) *Store {
	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}
	return &Store{movies: movies, titles: titles}
}

func (s *Store) Size() int { return len(s.movies) }

// ByIndex lookup O(1) por iIdx.
func (s *Store) ByIndex(i int) (*models.MovieDoc, error) {
	if i < 0 || i >= len(s.movies) {
		return nil, ErrIndexOutOfRange
	}
	return &s.movies[i], nil
}

// Titles devuelve todos los títulos en orden de iIdx, para que el matching
// difuso pueda mapear la posición del match de vuelta al índice. El slice es
// compartido: solo lectura.
func (s *Store) Titles() []string { return s.titles }

// IndexOfTitle busca el título exacto (case-sensitive). Scan lineal; si hay
// títulos duplicados gana el primero en orden de carga.
func (s *Store) IndexOfTitle(title string) (int, error) {
	for i, t := range s.titles {
		if t == title {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// Search filtra el catálogo en memoria: substring case-insensitive sobre el
// título, género exacto y rango de años. Mismo contrato que tenía la búsqueda
// paginada en Mongo.
func (s *Store) Search(q, genre string, yearFrom, yearTo, limit, offset int) []models.MovieDoc {
	ql := strings.ToLower(q)

	out := []models.MovieDoc{}
	skipped := 0
	for _, m := range s.movies {
		if q != "" && !strings.Contains(strings.ToLower(m.Title), ql) {
			continue
		}
		if genre != "" && !hasGenre(m.Genres, genre) {
			continue
		}
		if yearFrom > 0 && (m.Year == nil || *m.Year < yearFrom) {
			continue
		}
		if yearTo > 0 && (m.Year == nil || *m.Year > yearTo) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Top ordena por ratingStats congelados: "popular" = count, "rating" = average.
func (s *Store) Top(metric string, limit int) []models.MovieDoc {
	out := make([]models.MovieDoc, len(s.movies))
	copy(out, s.movies)

	key := func(m *models.MovieDoc) float64 {
		if m.RatingStats == nil {
			return 0
		}
		if metric == "rating" {
			return m.RatingStats.Average
		}
		return float64(m.RatingStats.Count)
	}
	sort.SliceStable(out, func(i, j int) bool { return key(&out[i]) > key(&out[j]) })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func hasGenre(genres []string, genre string) bool {
	for _, g := range genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}
