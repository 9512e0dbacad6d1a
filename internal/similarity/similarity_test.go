package similarity

import (
	"errors"
	"testing"
)

func TestRow(t *testing.T) {
	m := New([][]float64{
		{1.0, 0.8, 0.1},
		{0.8, 1.0, 0.05},
		{0.1, 0.05, 1.0},
	}, "cosine")

	if m.Size() != 3 {
		t.Fatalf("Size() = %d", m.Size())
	}
	if m.Metric() != "cosine" {
		t.Fatalf("Metric() = %q", m.Metric())
	}

	row, err := m.Row(0)
	if err != nil {
		t.Fatalf("Row(0): %v", err)
	}
	if len(row) != 3 {
		t.Fatalf("Row(0) tiene %d pares", len(row))
	}
	// la fila viene completa y en orden de índice, auto-similitud incluida:
	// excluirla es trabajo del motor, no de esta capa
	for j, n := range row {
		if n.IIdx != j {
			t.Fatalf("Row(0)[%d].IIdx = %d", j, n.IIdx)
		}
	}
	if row[0].Score != 1.0 || row[1].Score != 0.8 || row[2].Score != 0.1 {
		t.Fatalf("Row(0) = %+v", row)
	}
}

func TestRowOutOfRange(t *testing.T) {
	m := New([][]float64{{1.0}}, "cosine")

	for _, idx := range []int{-1, 1, 10} {
		if _, err := m.Row(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Row(%d): err = %v, se esperaba ErrIndexOutOfRange", idx, err)
		}
	}
}
