package dpll

import (
	"log"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Stats counts the work done by the last Solve call.
type Stats struct {
	// Decisions is the number of decision literals picked.
	Decisions int
	// Propagations is the number of unit literals committed.
	Propagations int
}

// Solver decides satisfiability of CNF problems.
//
// A Solver can be reused for several problems, one Solve call at a
// time: every call starts from a clean state and leaves no trace in the
// next one.
type Solver struct {
	// Verbose enables trace logging through the logger given to New.
	Verbose bool
	// Stats describes the last Solve call.
	Stats Stats

	logger *log.Logger
	model  []int
}

// New returns a solver. logger may be nil, in which case verbose
// tracing stays disabled.
func New(logger *log.Logger) *Solver {
	return &Solver{logger: logger}
}

func (s *Solver) reinit() {
	s.Stats = Stats{}
	s.model = nil
}

// Solve decides pb and returns Sat or Unsat. On Sat the satisfying
// assignment is available through Model. pb is not modified.
func (s *Solver) Solve(pb *Problem) Status {
	s.reinit()
	s.logf("solving %d clauses", len(pb.Clauses))
	if s.search(pb.Clauses, mapset.NewSet[int]()) {
		s.logf("SAT after %d decisions, %d propagations", s.Stats.Decisions, s.Stats.Propagations)
		return Sat
	}
	s.logf("UNSAT after %d decisions, %d propagations", s.Stats.Decisions, s.Stats.Propagations)
	return Unsat
}

// Model returns the satisfying assignment found by the last Solve call,
// sorted by increasing variable id, or nil if the problem was unsat.
// Ids absent from the model were never assigned; any value satisfies.
func (s *Solver) Model() []int {
	return s.model
}

func (s *Solver) logf(format string, args ...any) {
	if s.Verbose && s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// sortedModel flattens the assignment, ordered by variable id.
func sortedModel(assignment mapset.Set[int]) []int {
	model := assignment.ToSlice()
	sort.Slice(model, func(i, j int) bool {
		return abs(model[i]) < abs(model[j])
	})
	return model
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
