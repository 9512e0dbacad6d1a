package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc    *service.RecommendService
	movies *service.MovieService
}

func NewRecommendHandler(s *service.RecommendService, m *service.MovieService) *RecommendHandler {
	return &RecommendHandler{svc: s, movies: m}
}

// @Summary Recomendaciones por título
// @Description Resuelve el título con matching difuso y devuelve el top-K por similitud. Si no hay match devuelve found=false con sugerencias.
// @Tags recommend
// @Produce json
// @Param title query string true "título (admite typos)"
// @Param k query int false "cantidad de recomendaciones (máx 30)"
// @Param enrich query bool false "si true, agrega poster y detalles de TMDB"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} service.RecResult
// @Router /recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		http.Error(w, "title es requerido", http.StatusBadRequest)
		return
	}
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"
	enrich := r.URL.Query().Get("enrich") == "true"

	res, err := h.svc.RecommendByTitle(r.Context(), service.RecRequest{
		Title:   title,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	// enrichment externo después del ranking, nunca antes
	if enrich && res.Found {
		h.movies.Enrich(r.Context(), res.Movies)
	}

	_ = json.NewEncoder(w).Encode(res)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Description Igual que /recommendations pero streaming: match, progreso de enrichment por película y payload final.
// @Tags recommend
// @Produce json
// @Param title query string true "título (admite typos)"
// @Param k query int false "cantidad de recomendaciones (máx 30)"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	title := strings.TrimSpace(r.URL.Query().Get("title"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, buscando coincidencias…",
	})

	res, err := h.svc.RecommendByTitle(r.Context(), service.RecRequest{Title: title, K: k})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	if !res.Found {
		conn.WriteJSON(map[string]any{
			"type":        "not_found",
			"query":       res.Query,
			"suggestions": res.Suggestions,
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":         "match",
		"matchedTitle": res.MatchedTitle,
		"matchedIIdx":  res.MatchedIIdx,
	})

	// enrichment película por película, con progreso
	for i := range res.Movies {
		res.Movies[i].Details = h.movies.Details(r.Context(), res.Movies[i].Title, res.Movies[i].Year)
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"rank":  res.Movies[i].Rank,
			"title": res.Movies[i].Title,
			"done":  i + 1,
			"total": len(res.Movies),
		})
	}

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"result":      res,
		"generatedAt": time.Now(),
	})
}
