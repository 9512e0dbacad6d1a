package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/dataset"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/service"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/tmdb"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func testRouter(t *testing.T) *chi.Mux {
	t.Helper()

	movies := []models.MovieDoc{
		{MovieID: 100, IIdx: 0, Title: "Iron Man", Genres: []string{"Action"},
			RatingStats: &models.RatingStats{Average: 4.2, Count: 900}},
		{MovieID: 101, IIdx: 1, Title: "Iron Man 2", Genres: []string{"Action"},
			RatingStats: &models.RatingStats{Average: 3.8, Count: 700}},
		{MovieID: 102, IIdx: 2, Title: "Avatar", Genres: []string{"Sci-Fi"},
			RatingStats: &models.RatingStats{Average: 4.0, Count: 1200}},
	}
	rows := [][]float64{
		{1.0, 0.8, 0.1},
		{0.8, 1.0, 0.05},
		{0.1, 0.05, 1.0},
	}
	cat, sims, err := dataset.Build(movies, rows, "cosine")
	if err != nil {
		t.Fatalf("dataset.Build: %v", err)
	}

	movieSvc := service.NewMovieService(cat, tmdb.New(""), nil)
	recSvc := service.NewRecommendService(cat, sims, nil, nil)
	adminSvc := service.NewAdminService(cat, sims, nil)

	movieH := NewMovieHandler(movieSvc)
	recH := NewRecommendHandler(recSvc, movieSvc)
	adminH := NewAdminHandler(adminSvc)

	r := chi.NewRouter()
	r.Get("/health", Health)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/top", movieH.Top)
	r.Get("/movies/{iIdx}", movieH.GetMovie)
	r.Get("/recommendations", recH.GetRecommendations)
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(testSecret))
		r.Use(RequireRole("admin"))
		MountAdminRoutes(r, adminH)
	})
	return r
}

func TestHealth(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}

func TestGetRecommendations(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations?title=iron+man&k=2", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res service.RecResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Found || res.MatchedTitle != "Iron Man" {
		t.Fatalf("res = %+v", res)
	}
	if len(res.Movies) != 2 || res.Movies[0].Title != "Iron Man 2" {
		t.Fatalf("movies = %+v", res.Movies)
	}
}

func TestGetRecommendationsNotFound(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations?title=Xyzzyplorp", nil))
	// sin match no es un error HTTP: 200 con found=false y sugerencias
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res service.RecResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Found || len(res.Movies) != 0 {
		t.Fatalf("res = %+v", res)
	}
}

func TestGetRecommendationsMissingTitle(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, se esperaba 400", rec.Code)
	}
}

func TestGetMovie(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/0", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var m models.MovieDoc
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Title != "Iron Man" {
		t.Fatalf("movie = %+v", m)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/99", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, se esperaba 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, se esperaba 400", rec.Code)
	}
}

func TestMovieSearchAndTop(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/search?q=iron", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var found []models.MovieDoc
	if err := json.Unmarshal(rec.Body.Bytes(), &found); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("search devolvió %d películas", len(found))
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies/top?metric=popular&limit=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var top []models.MovieDoc
	if err := json.Unmarshal(rec.Body.Bytes(), &top); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(top) != 1 || top[0].Title != "Avatar" {
		t.Fatalf("top = %+v", top)
	}
}

func signedToken(t *testing.T, role, secret string) string {
	t.Helper()
	claims := service.AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("firmando token: %v", err)
	}
	return s
}

func TestAdminDatasetSummary(t *testing.T) {
	r := testRouter(t)

	// sin token
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dataset/summary", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("sin token: status = %d", rec.Code)
	}

	// token firmado con otro secreto
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dataset/summary", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "admin", "otro-secreto"))
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("firma ajena: status = %d", rec.Code)
	}

	// token sin rol admin
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/dataset/summary", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "user", testSecret))
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("rol user: status = %d", rec.Code)
	}

	// admin OK
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/dataset/summary", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "admin", testSecret))
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var sum models.DatasetSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.TotalMovies != 3 || sum.MatrixSize != 3 || sum.Metric != "cosine" {
		t.Fatalf("summary = %+v", sum)
	}
}
