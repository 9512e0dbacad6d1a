package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/cache"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/catalog"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/matcher"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/repository"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/similarity"
)

const (
	DefaultK = 10
	MaxK     = 30 // por seguridad, no deja pedir 1000 ítems

	// cutoff primario para resolver el título, y cutoff bajo para el
	// "¿quisiste decir...?" cuando no hay match
	PrimaryCutoff  = 0.6
	SuggestCutoff  = 0.3
	MaxSuggestions = 5

	recCacheTTL = time.Hour
)

type RecommendService struct {
	catalog *catalog.Store
	sims    *similarity.Matrix
	history *repository.HistoryRepository
	cache   *cache.Cache
}

func NewRecommendService(
	cat *catalog.Store,
	sims *similarity.Matrix,
	history *repository.HistoryRepository,
	c *cache.Cache,
) *RecommendService {
	return &RecommendService{
		catalog: cat,
		sims:    sims,
		history: history,
		cache:   c,
	}
}

type RecRequest struct {
	Title   string
	K       int
	Refresh bool
}

type RecResult struct {
	Query        string                    `json:"query"`
	Found        bool                      `json:"found"`
	MatchedTitle string                    `json:"matchedTitle,omitempty"`
	MatchedIIdx  int                       `json:"matchedIIdx"`
	K            int                       `json:"k"`
	Movies       []models.RecommendedMovie `json:"movies,omitempty"`
	Suggestions  []string                  `json:"suggestions,omitempty"`
}

func cacheKey(matchedTitle string, k int) string {
	// cachea por título ya resuelto, no por la query cruda del usuario
	return fmt.Sprintf("rec:title:%s:k:%d", matchedTitle, k)
}

// RecommendByTitle es el flujo completo: resolver la query a un título del
// catálogo, leer la fila de similitudes y devolver el top-K resuelto contra
// el catálogo. Si no hay match no es un error: Found=false + sugerencias.
func (s *RecommendService) RecommendByTitle(ctx context.Context, req RecRequest) (*RecResult, error) {
	// defaults y límites para K
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}

	idx, matched, ok := s.ResolveTitle(req.Title)
	if !ok {
		res := &RecResult{
			Query:       req.Title,
			Found:       false,
			MatchedIIdx: -1,
			K:           req.K,
			Suggestions: s.Suggestions(req.Title),
		}
		s.saveHistory(ctx, req.Title, res)
		return res, nil
	}

	// cache Redis (solo si refresh = false)
	if !req.Refresh {
		var cached RecResult
		if hit, err := s.cache.GetJSON(ctx, cacheKey(matched, req.K), &cached); err == nil && hit {
			cached.Query = req.Title
			return &cached, nil
		}
	}

	neighbors, err := s.Recommend(idx, req.K)
	if err != nil {
		return nil, err
	}

	movies := make([]models.RecommendedMovie, 0, len(neighbors))
	for rank, n := range neighbors {
		m, err := s.catalog.ByIndex(n.IIdx)
		if err != nil {
			return nil, err
		}
		movies = append(movies, models.RecommendedMovie{
			Rank:     rank + 1,
			IIdx:     m.IIdx,
			MovieID:  m.MovieID,
			Title:    m.Title,
			Year:     m.Year,
			Genres:   m.Genres,
			Director: m.Director,
			Score:    n.Score,
		})
	}

	res := &RecResult{
		Query:        req.Title,
		Found:        true,
		MatchedTitle: matched,
		MatchedIIdx:  idx,
		K:            req.K,
		Movies:       movies,
	}

	s.saveHistory(ctx, req.Title, res)

	if err := s.cache.SetJSON(ctx, cacheKey(matched, req.K), res, recCacheTTL); err != nil {
		log.Printf("[recommend] error cacheando en Redis: %v", err)
	}

	return res, nil
}

// ResolveTitle resuelve la query a un título canónico del catálogo: primero
// match exacto, si no cae al matching difuso con el cutoff primario.
func (s *RecommendService) ResolveTitle(query string) (int, string, bool) {
	if idx, err := s.catalog.IndexOfTitle(query); err == nil {
		return idx, query, true
	} else if !errors.Is(err, catalog.ErrNotFound) {
		return -1, "", false
	}

	matches := matcher.CloseMatches(query, s.catalog.Titles(), PrimaryCutoff, 1)
	if len(matches) == 0 {
		return -1, "", false
	}

	// el título matcheado siempre existe en el catálogo; con duplicados
	// gana el primero en orden de carga
	idx, err := s.catalog.IndexOfTitle(matches[0].Title)
	if err != nil {
		return -1, "", false
	}
	return idx, matches[0].Title, true
}

// Suggestions candidatos con cutoff bajo para el flujo "no encontrado".
func (s *RecommendService) Suggestions(query string) []string {
	matches := matcher.CloseMatches(query, s.catalog.Titles(), SuggestCutoff, MaxSuggestions)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Title
	}
	return out
}

// Recommend es el núcleo: fila completa de la matriz, orden estable por
// score descendente y exclusión del propio ítem. La exclusión es por
// identidad (IIdx == itemIndex), no por posición: con scores máximos
// duplicados asumir "la primera entrada es el propio ítem" sería un bug.
//
// Garantías: len(out) == min(topN, N-1); out nunca contiene itemIndex;
// out está ordenado por score descendente (empates en orden de índice).
func (s *RecommendService) Recommend(itemIndex, topN int) ([]similarity.Neighbor, error) {
	row, err := s.sims.Row(itemIndex)
	if err != nil {
		return nil, err
	}

	if topN < 1 {
		topN = 1
	}
	if max := s.sims.Size() - 1; topN > max {
		topN = max
	}

	sort.SliceStable(row, func(i, j int) bool { return row[i].Score > row[j].Score })

	out := make([]similarity.Neighbor, 0, topN)
	for _, n := range row {
		if n.IIdx == itemIndex {
			continue
		}
		out = append(out, n)
		if len(out) == topN {
			break
		}
	}
	return out, nil
}

func (s *RecommendService) saveHistory(ctx context.Context, query string, res *RecResult) {
	if s.history == nil {
		return
	}

	items := make([]models.RecItem, 0, len(res.Movies))
	for _, m := range res.Movies {
		items = append(items, models.RecItem{
			IIdx:    m.IIdx,
			MovieID: m.MovieID,
			Title:   m.Title,
			Score:   m.Score,
		})
	}

	q := &models.RecQuery{
		Query:        query,
		Found:        res.Found,
		MatchedTitle: res.MatchedTitle,
		MatchedIIdx:  res.MatchedIIdx,
		K:            res.K,
		Suggestions:  res.Suggestions,
		Items:        items,
		CreatedAt:    time.Now(),
	}
	if err := s.history.Insert(ctx, q); err != nil {
		log.Printf("[recommend] error guardando historial en Mongo: %v", err)
	}
}
