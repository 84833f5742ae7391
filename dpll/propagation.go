package dpll

import mapset "github.com/deckarep/golang-set/v2"

// eliminate reduces the clause list under the given assignment: clauses
// containing an assigned literal are dropped as satisfied, falsified
// literals are stripped from the clauses that remain. It is only run
// against propagated assignments, so it cannot empty a clause.
func eliminate(clauses [][]int, assignment mapset.Set[int]) [][]int {
	reduced := make([][]int, 0, len(clauses))
	for _, clause := range clauses {
		satisfied := false
		kept := make([]int, 0, len(clause))
		for _, lit := range clause {
			if assignment.Contains(lit) {
				satisfied = true
				break
			}
			if assignment.Contains(-lit) {
				continue
			}
			kept = append(kept, lit)
		}
		if !satisfied {
			reduced = append(reduced, kept)
		}
	}
	return reduced
}

// propagate eliminates the clause list under the assignment and then
// commits pending unit literals until none remain. Committing a unit
// removes the clauses it satisfies and strips its negation from the
// others; a clause stripped empty is a conflict and fails the branch
// immediately. On failure the returned clause list is meaningless.
//
// The assignment set is extended in place with every committed unit.
func (s *Solver) propagate(clauses [][]int, assignment mapset.Set[int]) (bool, [][]int) {
	reduced := eliminate(clauses, assignment)

	units := mapset.NewSet[int]()
	for _, clause := range reduced {
		if len(clause) == 1 {
			units.Add(clause[0])
		}
	}

	for units.Cardinality() > 0 && len(reduced) > 0 {
		lit, _ := units.Pop()
		s.Stats.Propagations++
		assignment.Add(lit)

		next := make([][]int, 0, len(reduced))
		for _, clause := range reduced {
			if contains(clause, lit) {
				continue
			}
			stripped := remove(clause, -lit)
			if len(stripped) == 0 {
				return false, nil
			}
			if len(stripped) == 1 {
				units.Add(stripped[0])
			}
			next = append(next, stripped)
		}
		reduced = next
	}
	return true, reduced
}

func contains(clause []int, lit int) bool {
	for _, l := range clause {
		if l == lit {
			return true
		}
	}
	return false
}

// remove returns clause without any occurrence of lit.
func remove(clause []int, lit int) []int {
	kept := make([]int, 0, len(clause))
	for _, l := range clause {
		if l != lit {
			kept = append(kept, l)
		}
	}
	return kept
}
