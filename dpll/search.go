package dpll

import mapset "github.com/deckarep/golang-set/v2"

// A frame is one node of the search tree. It owns its assignment set;
// branch records how many polarities of the decision literal have been
// tried (0: not propagated yet, 1: positive branch pushed, 2: both).
type frame struct {
	clauses    [][]int
	assignment mapset.Set[int]
	decision   int
	branch     int
}

// search runs the DPLL loop over an explicit frame stack, one frame per
// decision level, so the depth is bounded by the number of variables
// without consuming call stack.
func (s *Solver) search(clauses [][]int, assignment mapset.Set[int]) bool {
	stack := []*frame{{clauses: clauses, assignment: assignment}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		switch fr.branch {
		case 0:
			ok, reduced := s.propagate(fr.clauses, fr.assignment)
			if !ok {
				// Conflict: this branch is unsatisfiable.
				stack = stack[:len(stack)-1]
				continue
			}
			if len(reduced) == 0 {
				s.model = sortedModel(fr.assignment)
				return true
			}
			fr.clauses = reduced
			fr.decision = chooseLiteral(reduced)
			fr.branch = 1
			s.Stats.Decisions++
			s.logf("decision %d at level %d (%d clauses left)", fr.decision, len(stack), len(reduced))
			stack = append(stack, fr.child(fr.decision))
		case 1:
			fr.branch = 2
			stack = append(stack, fr.child(-fr.decision))
		default:
			// Both polarities exhausted.
			stack = stack[:len(stack)-1]
		}
	}
	return false
}

// child opens the branch deciding lit under fr's assignment.
func (fr *frame) child(lit int) *frame {
	assignment := fr.assignment.Clone()
	assignment.Add(lit)
	return &frame{clauses: fr.clauses, assignment: assignment}
}
