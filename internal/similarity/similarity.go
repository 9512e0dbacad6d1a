// internal/similarity/similarity.go
package similarity

import "errors"

// ErrIndexOutOfRange índice fuera de [0, N).
var ErrIndexOutOfRange = errors.New("similarity: index out of range")

// Neighbor es un par (índice, score) de una fila de la matriz.
type Neighbor struct {
	IIdx  int     `json:"iIdx"`
	Score float64 `json:"score"`
}

// Matrix es la matriz N×N de similitudes, inmutable después de la carga.
// Esta capa es un accessor puro de datos: Row devuelve la fila completa,
// incluida la auto-similitud; excluir el propio ítem es responsabilidad
// del motor de recomendación (por identidad, no por posición).
type Matrix struct {
	rows   [][]float64
	metric string
}

// New congela la matriz. El caller (dataset.Build) ya validó que sea cuadrada
// y con scores en rango.
func New(rows [][]float64, metric string) *Matrix {
	return &Matrix{rows: rows, metric: metric}
}

func (m *Matrix) Size() int { return len(m.rows) }

// Metric nombre de la métrica con la que se precalculó la matriz (p.e. "cosine").
func (m *Matrix) Metric() string { return m.metric }

// Row devuelve todos los pares (j, score) de la fila i, en orden de índice.
func (m *Matrix) Row(i int) ([]Neighbor, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, ErrIndexOutOfRange
	}
	row := m.rows[i]
	out := make([]Neighbor, len(row))
	for j, score := range row {
		out[j] = Neighbor{IIdx: j, Score: score}
	}
	return out, nil
}
