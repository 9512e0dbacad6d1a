package catalog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"
)

func intPtr(v int) *int { return &v }

func testStore() *Store {
	return New([]models.MovieDoc{
		{MovieID: 100, IIdx: 0, Title: "Iron Man", Year: intPtr(2008), Genres: []string{"Action", "Sci-Fi"},
			Director: "Jon Favreau", RatingStats: &models.RatingStats{Average: 4.2, Count: 900}},
		{MovieID: 101, IIdx: 1, Title: "Iron Man 2", Year: intPtr(2010), Genres: []string{"Action"},
			Director: "Jon Favreau", RatingStats: &models.RatingStats{Average: 3.8, Count: 700}},
		{MovieID: 102, IIdx: 2, Title: "Avatar", Year: intPtr(2009), Genres: []string{"Sci-Fi"},
			Director: "James Cameron", RatingStats: &models.RatingStats{Average: 4.0, Count: 1200}},
		// título duplicado a propósito: gana el primero en orden de carga
		{MovieID: 103, IIdx: 3, Title: "Avatar", Year: intPtr(2022), Genres: []string{"Sci-Fi"}},
	})
}

func TestByIndex(t *testing.T) {
	s := testStore()

	m, err := s.ByIndex(1)
	if err != nil {
		t.Fatalf("ByIndex(1): %v", err)
	}
	if m.Title != "Iron Man 2" || m.MovieID != 101 {
		t.Fatalf("ByIndex(1) = %+v", m)
	}

	for _, idx := range []int{-1, 4, 100} {
		if _, err := s.ByIndex(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("ByIndex(%d): err = %v, se esperaba ErrIndexOutOfRange", idx, err)
		}
	}
}

func TestTitlesOrder(t *testing.T) {
	s := testStore()
	want := []string{"Iron Man", "Iron Man 2", "Avatar", "Avatar"}
	if got := s.Titles(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Titles() = %v, se esperaba %v", got, want)
	}
}

func TestIndexOfTitle(t *testing.T) {
	s := testStore()

	idx, err := s.IndexOfTitle("Iron Man 2")
	if err != nil || idx != 1 {
		t.Fatalf("IndexOfTitle = (%d, %v), se esperaba (1, nil)", idx, err)
	}

	// duplicado: primera ocurrencia
	idx, err = s.IndexOfTitle("Avatar")
	if err != nil || idx != 2 {
		t.Fatalf("IndexOfTitle duplicado = (%d, %v), se esperaba (2, nil)", idx, err)
	}

	// case-sensitive: la variante en minúsculas es NotFound, no un match
	if _, err := s.IndexOfTitle("iron man"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, se esperaba ErrNotFound", err)
	}
	if _, err := s.IndexOfTitle("Matrix"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, se esperaba ErrNotFound", err)
	}
}

func TestSearch(t *testing.T) {
	s := testStore()

	got := s.Search("iron", "", 0, 0, 20, 0)
	if len(got) != 2 {
		t.Fatalf("Search(iron) devolvió %d películas", len(got))
	}

	got = s.Search("", "sci-fi", 0, 0, 20, 0)
	if len(got) != 3 {
		t.Fatalf("Search(genre=sci-fi) devolvió %d películas", len(got))
	}

	got = s.Search("", "", 2009, 2010, 20, 0)
	if len(got) != 2 {
		t.Fatalf("Search(2009..2010) devolvió %d películas", len(got))
	}

	// paginado
	got = s.Search("", "", 0, 0, 2, 2)
	if len(got) != 2 || got[0].IIdx != 2 {
		t.Fatalf("Search paginado = %+v", got)
	}
}

func TestTop(t *testing.T) {
	s := testStore()

	got := s.Top("popular", 2)
	if len(got) != 2 || got[0].Title != "Avatar" || got[1].Title != "Iron Man" {
		t.Fatalf("Top(popular) = %v, %v", got[0].Title, got[1].Title)
	}

	got = s.Top("rating", 1)
	if len(got) != 1 || got[0].Title != "Iron Man" {
		t.Fatalf("Top(rating) = %v", got[0].Title)
	}
}
