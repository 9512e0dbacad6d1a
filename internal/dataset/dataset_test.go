package dataset

import (
	"errors"
	"testing"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"
)

func validMovies() []models.MovieDoc {
	return []models.MovieDoc{
		{MovieID: 100, IIdx: 0, Title: "Iron Man"},
		{MovieID: 101, IIdx: 1, Title: "Iron Man 2"},
		{MovieID: 102, IIdx: 2, Title: "Avatar"},
	}
}

func validRows() [][]float64 {
	return [][]float64{
		{1.0, 0.8, 0.1},
		{0.8, 1.0, 0.05},
		{0.1, 0.05, 1.0},
	}
}

func TestBuildOK(t *testing.T) {
	cat, sims, err := Build(validMovies(), validRows(), "cosine")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if cat.Size() != 3 || sims.Size() != 3 {
		t.Fatalf("tamaños = %d, %d", cat.Size(), sims.Size())
	}
	if sims.Metric() != "cosine" {
		t.Fatalf("métrica = %q", sims.Metric())
	}
}

func assertLoadError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("se esperaba *LoadError, err es nil")
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %T (%v), se esperaba *LoadError", err, err)
	}
}

func TestBuildEmptyCatalog(t *testing.T) {
	_, _, err := Build(nil, nil, "")
	assertLoadError(t, err)
}

func TestBuildNonDenseIndex(t *testing.T) {
	movies := validMovies()
	movies[1].IIdx = 5 // hueco en [0, N)
	_, _, err := Build(movies, validRows(), "cosine")
	assertLoadError(t, err)
}

func TestBuildEmptyTitle(t *testing.T) {
	movies := validMovies()
	movies[2].Title = ""
	_, _, err := Build(movies, validRows(), "cosine")
	assertLoadError(t, err)
}

func TestBuildRowCountMismatch(t *testing.T) {
	_, _, err := Build(validMovies(), validRows()[:2], "cosine")
	assertLoadError(t, err)
}

func TestBuildNonSquare(t *testing.T) {
	rows := validRows()
	rows[1] = rows[1][:2]
	_, _, err := Build(validMovies(), rows, "cosine")
	assertLoadError(t, err)
}

func TestBuildScoreOutOfRange(t *testing.T) {
	rows := validRows()
	rows[0][2] = 1.5
	_, _, err := Build(validMovies(), rows, "cosine")
	assertLoadError(t, err)

	rows = validRows()
	rows[2][0] = -1.01
	_, _, err = Build(validMovies(), rows, "cosine")
	assertLoadError(t, err)
}

func validRowDocs() []models.SimilarityRowDoc {
	rows := validRows()
	return []models.SimilarityRowDoc{
		{MovieID: 100, IIdx: 0, Metric: "cosine", Row: rows[0]},
		{MovieID: 101, IIdx: 1, Metric: "cosine", Row: rows[1]},
		{MovieID: 102, IIdx: 2, Metric: "cosine", Row: rows[2]},
	}
}

func TestAssembleRowsOK(t *testing.T) {
	// los documentos no vienen ordenados por iIdx desde Mongo
	docs := validRowDocs()
	docs[0], docs[2] = docs[2], docs[0]

	rows, metric, err := assembleRows(docs, 3)
	if err != nil {
		t.Fatalf("assembleRows: %v", err)
	}
	if metric != "cosine" {
		t.Fatalf("métrica = %q", metric)
	}
	for i, row := range rows {
		if row[i] != 1.0 {
			t.Fatalf("fila %d fuera de lugar: %v", i, row)
		}
	}
}

func TestAssembleRowsIndexOutOfRange(t *testing.T) {
	docs := validRowDocs()
	docs[1].IIdx = 7
	_, _, err := assembleRows(docs, 3)
	assertLoadError(t, err)

	docs = validRowDocs()
	docs[1].IIdx = -1
	_, _, err = assembleRows(docs, 3)
	assertLoadError(t, err)
}

func TestAssembleRowsDuplicate(t *testing.T) {
	docs := validRowDocs()
	docs[2].IIdx = 0 // misma fila dos veces
	_, _, err := assembleRows(docs, 3)
	assertLoadError(t, err)
}

func TestAssembleRowsCountMismatch(t *testing.T) {
	_, _, err := assembleRows(validRowDocs()[:2], 3)
	assertLoadError(t, err)
}

func TestAssembleRowsMetricMismatch(t *testing.T) {
	docs := validRowDocs()
	docs[2].Metric = "pearson"
	_, _, err := assembleRows(docs, 3)
	assertLoadError(t, err)
}
