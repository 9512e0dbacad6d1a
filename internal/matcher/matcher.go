// internal/matcher/matcher.go
//
// Matching difuso de títulos: ratio clásico de bloques coincidentes
// (2*M / T, donde M = caracteres matcheados y T = suma de longitudes).
// Un título idéntico da 1.0; la ausencia de match no es un error, es un
// resultado vacío.
package matcher

import "sort"

// Match es un candidato que superó el cutoff.
type Match struct {
	Title string
	Ratio float64
}

// Ratio calcula la similitud entre a y b en [0, 1]: suma los bloques
// contiguos más largos que comparten y normaliza por la longitud total.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	matched := matchingChars(ra, rb)
	return 2.0 * float64(matched) / float64(total)
}

// CloseMatches devuelve hasta n candidatos con Ratio(query, c) >= cutoff,
// ordenados por ratio descendente. El orden es estable: a igual ratio gana
// el candidato que aparece primero en la lista (o sea, en orden de iIdx
// cuando los candidatos vienen de catalog.Titles).
func CloseMatches(query string, candidates []string, cutoff float64, n int) []Match {
	if n <= 0 {
		return nil
	}

	var matches []Match
	for _, c := range candidates {
		r := Ratio(query, c)
		if r >= cutoff {
			matches = append(matches, Match{Title: c, Ratio: r})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Ratio > matches[j].Ratio
	})

	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// matchingChars suma los tamaños de los bloques coincidentes: encuentra el
// bloque común más largo y recurre sobre lo que queda a cada lado.
func matchingChars(a, b []rune) int {
	// posiciones de cada rune en b, para recorrer solo columnas útiles
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(a), 0, len(b)}}

	total := 0
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		besti, bestj, bestsize := longestMatch(a, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if bestsize == 0 {
			continue
		}
		total += bestsize

		queue = append(queue,
			span{s.alo, besti, s.blo, bestj},
			span{besti + bestsize, s.ahi, bestj + bestsize, s.bhi},
		)
	}
	return total
}

// longestMatch encuentra el bloque común más largo de a[alo:ahi] y b[blo:bhi].
// Programación dinámica por filas: j2len[j] = longitud del bloque que termina
// en a[i-1], b[j].
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	j2len := map[int]int{}

	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
