package assignment

import (
	"math"

	"github.com/katalvlaran/graphdiff/matrix"
)

// partitionNode is one Murty partition: a set of rows whose column is
// already forced (fixed), a set of (row, col) pairs forbidden within the
// remaining free rows/cols, and the best assignment/cost achievable under
// those constraints.
type partitionNode struct {
	fixed       map[int]int
	forbidden   map[[2]int]struct{}
	assignments []int
	cost        float64
}

// Driver runs the Hungarian algorithm against a pristine cost matrix and,
// on request, enumerates successively costlier assignments via Murty's
// algorithm. working is a copy of pristine made at construction; Execute
// and NextChild neither read nor mutate it, solving instead against
// pristine and against sub-matrices copied out of pristine.
type Driver struct {
	pristine *matrix.Dense
	working  *matrix.Dense
	m        int

	executed    bool
	assignments []int
	candidates  []partitionNode
}

// NewDriver wraps a square cost matrix for Hungarian/Murty solving. pristine
// is used read-only; callers retain ownership and must not mutate it while
// the Driver is in use.
func NewDriver(pristine *matrix.Dense) (*Driver, error) {
	if pristine.Rows() != pristine.Cols() {
		return nil, ErrNonSquare
	}

	working, err := matrix.NewPreparedDense(pristine.Rows(), pristine.Cols(), matrix.WithAllowInfDistances())
	if err != nil {
		return nil, err
	}
	pristine.Do(func(i, j int, val float64) bool {
		_ = working.Set(i, j, val)

		return true
	})

	return &Driver{pristine: pristine, working: working, m: pristine.Rows()}, nil
}

// Execute runs the Hungarian algorithm against the root (unconstrained)
// problem and primes the Murty candidate pool for subsequent NextChild
// calls.
func (d *Driver) Execute() ([]int, error) {
	assignments, err := solveHungarian(d.pristine)
	if err != nil {
		return nil, err
	}

	d.assignments = assignments
	d.executed = true
	d.candidates = nil

	root := partitionNode{
		fixed:       map[int]int{},
		forbidden:   map[[2]int]struct{}{},
		assignments: assignments,
		cost:        d.sumCost(assignments),
	}
	d.pushChildren(root)

	return assignments, nil
}

// FirstRowCost returns cost[0][assignments[0]] for the most recently
// returned assignment (the root solution right after Execute, or the most
// recent NextChild result).
func (d *Driver) FirstRowCost() float64 {
	if len(d.assignments) == 0 {
		return math.Inf(1)
	}
	v, _ := d.pristine.At(0, d.assignments[0])

	return v
}

// NextChild returns the next-best assignment by total cost, using Murty's
// algorithm: each returned partition is further split into children before
// it is handed back, so the candidate pool always holds the full remaining
// search frontier. Returns ErrExhausted once no assignment remains.
func (d *Driver) NextChild() ([]int, error) {
	if !d.executed {
		return nil, ErrNotExecuted
	}
	if len(d.candidates) == 0 {
		return nil, ErrExhausted
	}

	best := 0
	for i := 1; i < len(d.candidates); i++ {
		if d.candidates[i].cost < d.candidates[best].cost {
			best = i
		}
	}

	node := d.candidates[best]
	d.candidates = append(d.candidates[:best], d.candidates[best+1:]...)
	d.pushChildren(node)
	d.assignments = node.assignments

	return node.assignments, nil
}

func (d *Driver) sumCost(assignments []int) float64 {
	total := 0.0
	for i, j := range assignments {
		v, _ := d.pristine.At(i, j)
		total += v
	}

	return total
}

// pushChildren generates the classic Murty children of parent: for each
// unfixed row r, in ascending order, a child that keeps every earlier
// unfixed row bound to parent's solution, forbids r from taking parent's
// column choice, and re-solves the rest. Infeasible children (no finite
// completion) are dropped.
func (d *Driver) pushChildren(parent partitionNode) {
	unfixed := make([]int, 0, d.m)
	for r := 0; r < d.m; r++ {
		if _, ok := parent.fixed[r]; !ok {
			unfixed = append(unfixed, r)
		}
	}

	prefixFixed := make(map[int]int, len(parent.fixed)+len(unfixed))
	for r, c := range parent.fixed {
		prefixFixed[r] = c
	}

	for _, r := range unfixed {
		childFixed := make(map[int]int, len(prefixFixed))
		for k, v := range prefixFixed {
			childFixed[k] = v
		}
		childForbidden := make(map[[2]int]struct{}, len(parent.forbidden)+1)
		for k := range parent.forbidden {
			childForbidden[k] = struct{}{}
		}
		childForbidden[[2]int{r, parent.assignments[r]}] = struct{}{}

		assignments, cost, feasible := d.solveRestricted(childFixed, childForbidden)
		if feasible {
			d.candidates = append(d.candidates, partitionNode{
				fixed:       childFixed,
				forbidden:   childForbidden,
				assignments: assignments,
				cost:        cost,
			})
		}

		prefixFixed[r] = parent.assignments[r]
	}
}

// solveRestricted solves the assignment problem over the rows/cols not in
// fixed, with forbidden pairs masked to +Inf, then splices the fixed rows
// back in. Returns feasible=false if no finite completion exists.
func (d *Driver) solveRestricted(fixed map[int]int, forbidden map[[2]int]struct{}) ([]int, float64, bool) {
	fixedCols := make(map[int]bool, len(fixed))
	for _, c := range fixed {
		fixedCols[c] = true
	}

	rowsIdx := make([]int, 0, d.m-len(fixed))
	for r := 0; r < d.m; r++ {
		if _, ok := fixed[r]; !ok {
			rowsIdx = append(rowsIdx, r)
		}
	}
	colsIdx := make([]int, 0, d.m-len(fixedCols))
	for c := 0; c < d.m; c++ {
		if !fixedCols[c] {
			colsIdx = append(colsIdx, c)
		}
	}

	full := make([]int, d.m)
	total := 0.0
	for r, c := range fixed {
		full[r] = c
		v, _ := d.pristine.At(r, c)
		total += v
	}

	if len(rowsIdx) == 0 {
		return full, total, true
	}

	sub, err := d.pristine.Induced(rowsIdx, colsIdx)
	if err != nil {
		return nil, 0, false
	}
	for pair := range forbidden {
		li := indexOf(rowsIdx, pair[0])
		lj := indexOf(colsIdx, pair[1])
		if li >= 0 && lj >= 0 {
			_ = sub.Set(li, lj, math.Inf(1))
		}
	}

	subAssign, err := solveHungarian(sub)
	if err != nil {
		return nil, 0, false
	}

	feasible := true
	for li, row := range rowsIdx {
		col := colsIdx[subAssign[li]]
		full[row] = col
		v, _ := d.pristine.At(row, col)
		if sv, _ := sub.At(li, subAssign[li]); math.IsInf(sv, 1) {
			feasible = false
		}
		total += v
	}

	return full, total, feasible
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}

	return -1
}
