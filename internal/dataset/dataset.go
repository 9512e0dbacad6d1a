// internal/dataset/dataset.go
//
// Construcción y validación del dataset precalculado. Toda violación de
// estructura es un *LoadError fatal: el proceso no debe arrancar a servir
// con un catálogo y una matriz que no cuadran.
package dataset

import (
	"fmt"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/catalog"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/similarity"
)

// LoadError dataset malformado o inconsistente (error fatal de arranque).
type LoadError struct {
	Msg string
	Err error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dataset: %s: %v", e.Msg, e.Err)
	}
	return "dataset: " + e.Msg
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErrf(format string, args ...any) *LoadError {
	return &LoadError{Msg: fmt.Sprintf(format, args...)}
}

// Build valida los invariantes del dataset y congela ambos stores:
//   - iIdx denso y en orden: movies[i].IIdx == i
//   - títulos no vacíos
//   - matriz cuadrada N×N, N == len(movies)
//   - scores dentro de [-1, 1] (convención fijada en la carga)
func Build(movies []models.MovieDoc, rows [][]float64, metric string) (*catalog.Store, *similarity.Matrix, error) {
	n := len(movies)
	if n == 0 {
		return nil, nil, loadErrf("catálogo vacío")
	}

	for i, m := range movies {
		if m.IIdx != i {
			return nil, nil, loadErrf("iIdx no es denso: posición %d tiene iIdx=%d (movieId=%d)", i, m.IIdx, m.MovieID)
		}
		if m.Title == "" {
			return nil, nil, loadErrf("película iIdx=%d sin título", i)
		}
	}

	if len(rows) != n {
		return nil, nil, loadErrf("matriz de %d filas para catálogo de %d películas", len(rows), n)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, nil, loadErrf("fila %d tiene %d columnas, se esperaban %d", i, len(row), n)
		}
		for j, s := range row {
			if s < -1 || s > 1 {
				return nil, nil, loadErrf("score fuera de rango en [%d][%d]: %v", i, j, s)
			}
		}
	}

	return catalog.New(movies), similarity.New(rows, metric), nil
}
