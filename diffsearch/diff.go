package diffsearch

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/graphdiff/assignment"
	"github.com/katalvlaran/graphdiff/editorial"
	"github.com/katalvlaran/graphdiff/graphmodel"
	"github.com/katalvlaran/graphdiff/lowerbound"
	"github.com/katalvlaran/graphdiff/mapping"
	"github.com/katalvlaran/graphdiff/matrix"
	"github.com/katalvlaran/graphdiff/oracle"
)

// Diff computes the exact graph edit distance between src and tgt, starting
// from start (the empty mapping.New(), or a caller-supplied prefix that
// fixes some vertices in advance). allSources and allTargets must list
// every vertex of src and tgt respectively, in the fixed order the search
// visits them in (see the ordering package for a default); both slices must
// have equal length N, which is the case once src and tgt have been padded
// to equal size via graphmodel.PadIsolated.
//
// pm supplies the pairing oracle (oracle.TypeCompatible is a reasonable
// default), cost the true-cost calculator for a completed or partial
// mapping (editorial.DefaultCalculator), and rc the cancellation hook
// (oracle.ContextRunningCheck{}).
//
// Diff fails fast with ErrInfeasibleMapping if no perfect matching exists
// between allSources and allTargets under pm — searching further would be
// guaranteed wasted work. It returns ErrCancelled if rc aborts the search
// before a complete answer is found; the best mapping discovered so far is
// discarded in that case.
func Diff(
	ctx context.Context,
	src, tgt *graphmodel.Graph,
	start mapping.Mapping,
	allSources, allTargets []graphmodel.Vertex,
	pm oracle.PossibleMappings,
	cost editorial.Calculator,
	rc oracle.RunningCheck,
) (editorial.OptimalEdit, error) {
	n := len(allSources)
	if len(allTargets) != n {
		return editorial.OptimalEdit{}, fmt.Errorf("%w: %d sources vs %d targets", ErrInvariantViolation, n, len(allTargets))
	}

	if !oracle.FeasibilityCheck(pm, allSources, allTargets) {
		return editorial.OptimalEdit{}, ErrInfeasibleMapping
	}

	est := lowerbound.Estimator{PM: pm}
	best := editorial.NewOptimalEdit()

	startCost := cost.CostForMapping(start, src, tgt, nil)
	root := &mappingEntry{
		partial:        start,
		level:          start.Level(),
		lowerBoundCost: float64(startCost),
	}

	pq := &entryPQ{}
	heap.Init(pq)
	heap.Push(pq, root)

	s := &search{
		src: src, tgt: tgt,
		allSources: allSources, allTargets: allTargets,
		est: est, cost: cost,
	}

	for pq.Len() > 0 {
		entry := heap.Pop(pq).(*mappingEntry)

		if err := rc.Check(ctx); err != nil {
			return editorial.OptimalEdit{}, fmt.Errorf("%w: %v", ErrCancelled, err)
		}

		if entry.lowerBoundCost >= float64(best.GED) {
			continue // pruned: admissible bound already worse than the best known
		}

		if entry.level > 0 && entry.hasMoreSiblings() {
			if err := s.pullSibling(entry, pq, &best); err != nil {
				return editorial.OptimalEdit{}, err
			}
		}

		if entry.level < n {
			if err := s.expandChildren(entry, pq, &best); err != nil {
				return editorial.OptimalEdit{}, err
			}
		}
	}

	return best, nil
}

// search bundles the read-only collaborators every expansion step needs, so
// neither expandChildren nor pullSibling has to thread eight parameters
// through every call.
type search struct {
	src, tgt   *graphmodel.Graph
	allSources []graphmodel.Vertex
	allTargets []graphmodel.Vertex
	est        lowerbound.Estimator
	cost       editorial.Calculator
}

// availableTargets returns allTargets minus everything already committed
// under m, preserving allTargets' order.
func (s *search) availableTargets(m mapping.Mapping) []graphmodel.Vertex {
	out := make([]graphmodel.Vertex, 0, len(s.allTargets)-m.Level())
	m.ForEachNonFixedTarget(s.allTargets, func(u graphmodel.VertexID) {
		v, _ := s.tgt.VertexByID(u)
		out = append(out, v)
	})

	return out
}

// completion extends base with (allSources[from+i], avail[assignments[i]])
// for every i, producing a total assignment over the remaining rows.
func (s *search) completion(base mapping.Mapping, from int, assignments []int, avail []graphmodel.Vertex) (mapping.Mapping, error) {
	m := base
	for i, col := range assignments {
		var err error
		m, err = m.Extend(s.allSources[from+i].ID, avail[col].ID)
		if err != nil {
			return mapping.Mapping{}, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}
	}

	return m, nil
}

// considerCompletion computes the true cost of a total mapping and, if it
// beats the current best, replaces it.
func (s *search) considerCompletion(m mapping.Mapping, best *editorial.OptimalEdit) {
	var edits []editorial.EditOperation
	trueCost := s.cost.CostForMapping(m, s.src, s.tgt, &edits)
	if trueCost < best.GED {
		best.Mapping = m
		best.Edits = edits
		best.GED = trueCost
	}
}

// buildCostMatrix fills an m-by-m admissible lower-bound matrix for
// extending M at level k against avail (both in fixed order).
func (s *search) buildCostMatrix(m mapping.Mapping, k int, avail []graphmodel.Vertex) (*matrix.Dense, error) {
	size := len(avail)
	cm, err := matrix.NewPreparedDense(size, size, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, err
	}

	cache := make(map[graphmodel.VertexID]float64)
	for i := 0; i < size; i++ {
		v := s.allSources[k+i]
		for j := 0; j < size; j++ {
			u := avail[j]
			c := s.est.Calc(v, u, m, s.src, s.tgt, cache)
			if err := cm.Set(i, j, c); err != nil {
				return nil, err
			}
		}
	}

	return cm, nil
}

// expandChildren implements child expansion at a search node: build the
// cost matrix for level e.level, solve it via Hungarian, push the best
// child eagerly, and populate the rest of the sibling stream one Murty
// NextChild at a time.
func (s *search) expandChildren(e *mappingEntry, pq *entryPQ, best *editorial.OptimalEdit) error {
	k := e.level
	avail := s.availableTargets(e.partial)
	if len(avail) == 0 {
		return nil
	}

	costMatrix, err := s.buildCostMatrix(e.partial, k, avail)
	if err != nil {
		return err
	}

	driver, err := assignment.NewDriver(costMatrix)
	if err != nil {
		return err
	}

	assignments, err := driver.Execute()
	if err != nil {
		return err
	}

	base := float64(s.cost.CostForMapping(e.partial, s.src, s.tgt, nil))
	sum, err := sumAssigned(costMatrix, assignments)
	if err != nil {
		return err
	}
	f := base + sum
	if f >= float64(best.GED) {
		return nil // pruned: no child or sibling of this node can help
	}

	childMapping, err := e.partial.Extend(s.allSources[k].ID, avail[assignments[0]].ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}

	stream := &siblingStream{}
	child := &mappingEntry{
		partial:          childMapping,
		level:            k + 1,
		lowerBoundCost:   f,
		siblings:         stream,
		assignments:      assignments,
		availableTargets: avail,
	}
	heap.Push(pq, child)

	full, err := s.completion(e.partial, k, assignments, avail)
	if err != nil {
		return err
	}
	s.considerCompletion(full, best)

	// Murty yields whole assignments in nondecreasing cost, so several in a
	// row can share a first-row column; the first one seen for each column is
	// the cheapest assignment with that column in row 0, and is the sibling.
	seen := map[int]bool{assignments[0]: true}
	for len(seen) < len(avail) {
		siblingAssignments, err := driver.NextChild()
		if err != nil {
			break // Murty pool exhausted (assignment.ErrExhausted)
		}

		if math.IsInf(driver.FirstRowCost(), 1) {
			break
		}
		if seen[siblingAssignments[0]] {
			continue
		}
		seen[siblingAssignments[0]] = true

		siblingSum, err := sumAssigned(costMatrix, siblingAssignments)
		if err != nil {
			return err
		}
		fSib := base + siblingSum
		if fSib >= float64(best.GED) {
			break // sibling monotonicity: every later sibling is at least this costly
		}

		siblingPartial, err := e.partial.Extend(s.allSources[k].ID, avail[siblingAssignments[0]].ID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		}

		stream.push(siblingEntry{
			partial:          siblingPartial,
			level:            k + 1,
			lowerBoundCost:   fSib,
			parent:           e.partial,
			assignments:      siblingAssignments,
			availableTargets: avail,
		})
	}
	stream.push(siblingEntry{dummy: true})

	return nil
}

// pullSibling implements sibling expansion at a search node: take one entry
// off e's sibling stream, and if it is real and still promising, queue it
// and score its full completion.
func (s *search) pullSibling(e *mappingEntry, pq *entryPQ, best *editorial.OptimalEdit) error {
	next, ok := e.siblings.pull()
	if !ok {
		return nil
	}

	if next.lowerBoundCost >= float64(best.GED) {
		return nil
	}

	// Responsibility for draining the shared stream transfers to this new
	// entry: whichever entry of the sibling group is popped next is the one
	// that advances e.siblings further.
	heap.Push(pq, &mappingEntry{
		partial:          next.partial,
		level:            next.level,
		lowerBoundCost:   next.lowerBoundCost,
		siblings:         e.siblings,
		assignments:      next.assignments,
		availableTargets: next.availableTargets,
	})

	full, err := s.completion(next.parent, next.level-1, next.assignments, next.availableTargets)
	if err != nil {
		return err
	}
	s.considerCompletion(full, best)

	return nil
}

// sumAssigned sums cost[i][assignments[i]] over every row of cm.
func sumAssigned(cm *matrix.Dense, assignments []int) (float64, error) {
	total := 0.0
	for i, j := range assignments {
		v, err := cm.At(i, j)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}
