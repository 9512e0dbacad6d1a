package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminHandler endpoints de inspección del dataset (solo lectura).
type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// @Summary Resumen del dataset cargado
// @Description Conteos de catálogo y matriz: tamaño, títulos duplicados, metadata faltante.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DatasetSummary
// @Router /admin/dataset/summary [get]
func (h *AdminHandler) GetDatasetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.DatasetSummary())
}

// @Summary Historial de consultas de recomendación
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "cantidad (default 20)"
// @Success 200 {array} models.RecQuery
// @Failure 500 {string} string "error interno"
// @Router /admin/queries [get]
func (h *AdminHandler) GetRecentQueries(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	queries, err := h.svc.RecentQueries(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, queries)
}

// MountAdminRoutes registra las rutas admin en el router recibido.
func MountAdminRoutes(r chi.Router, h *AdminHandler) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/dataset/summary", h.GetDatasetSummary)
		r.Get("/queries", h.GetRecentQueries)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
