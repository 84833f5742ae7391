// Package dpll implements a plain DPLL decision procedure for CNF
// formulas: clause elimination under a partial assignment, unit
// propagation with immediate conflict detection, and branching on a
// decision literal chosen by clause-occurrence counting with fixed
// tie-break rules.
//
// There is no clause learning, no restarting and no literal watching:
// the solver targets correctness and fully deterministic behavior, not
// throughput. The search runs over an explicit stack, so its depth is
// bounded by the number of variables without growing the call stack.
package dpll
