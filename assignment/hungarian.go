package assignment

import (
	"math"

	"github.com/katalvlaran/graphdiff/matrix"
)

// hungarianInf stands in for a forbidden pairing's +Inf cost inside the
// potential arithmetic, which cannot use a true infinity without poisoning
// every downstream subtraction.
const hungarianInf = math.MaxFloat64 / 4

// solveHungarian finds a minimum-cost perfect matching on a square cost
// matrix using the successive-shortest-augmenting-path form of the
// Hungarian algorithm (Kuhn-Munkres with row/column potentials). Entries
// may be +Inf to forbid a pairing; the returned assignment avoids them
// whenever a finite perfect matching exists.
//
// Complexity: O(m^3) time, O(m) extra memory beyond the m+1-sized potential
// and bookkeeping arrays.
func solveHungarian(cost matrix.Matrix) ([]int, error) {
	m := cost.Rows()
	if cost.Cols() != m {
		return nil, ErrNonSquare
	}
	if m == 0 {
		return []int{}, nil
	}

	get := func(i, j int) float64 {
		v, _ := cost.At(i, j)
		if math.IsInf(v, 1) || v > hungarianInf {
			return hungarianInf
		}

		return v
	}

	u := make([]float64, m+1)
	v := make([]float64, m+1)
	p := make([]int, m+1)
	way := make([]int, m+1)

	for i := 1; i <= m; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := 0; j <= m; j++ {
			minv[j] = hungarianInf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := hungarianInf
			j1 := -1
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := get(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 == -1 {
				// Every open column is reachable only through a forbidden
				// pairing, so no finite perfect matching exists. Take the
				// first open column so the result is still a permutation.
				for j := 1; j <= m; j++ {
					if !used[j] {
						j1 = j
						way[j] = j0
						break
					}
				}
				delta = 0
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignments := make([]int, m)
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			assignments[p[j]-1] = j - 1
		}
	}

	return assignments, nil
}
