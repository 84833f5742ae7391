package cnf

import (
	"testing"

	gophersat "github.com/crillab/gophersat/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formsat/dpll"
)

// testFormulas covers the shapes the translator must handle; small
// enough that a truth table is a usable ground truth.
var testFormulas = []string{
	"x1",
	"(not x1)",
	"(and x1 x2)",
	"(and x1 (not x1))",
	"(or x1 (not x1))",
	"(or (and a b) (not c))",
	"(and x1 (or x2 (not x1)))",
	"(or (and a (not b)) (and b (not a)))",
	"(and (or a b) (and (or (not a) b) (and (or a (not b)) (or (not a) (not b)))))",
	"(and (or p (or q r)) (and (or (not p) (not q)) (or (not q) (not r))))",
	"(and (and a (or b c)) (and (not b) (not c)))",
}

// evalPrefix evaluates tokens[*pos:] under the binding, the reference
// semantics for the original (pre-encoding) formula.
func evalPrefix(t *testing.T, tokens []string, pos *int, binding map[string]bool) bool {
	t.Helper()
	tok := tokens[*pos]
	*pos++
	if tok != "(" {
		val, ok := binding[tok]
		require.True(t, ok, "unbound atom %q", tok)
		return val
	}
	op := tokens[*pos]
	*pos++
	var args []bool
	for tokens[*pos] != ")" {
		args = append(args, evalPrefix(t, tokens, pos, binding))
	}
	*pos++
	switch op {
	case "not":
		return !args[0]
	case "and":
		return args[0] && args[1]
	case "or":
		return args[0] || args[1]
	default:
		t.Fatalf("bad operator %q", op)
		return false
	}
}

func atoms(formula string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, tok := range tokenize(formula) {
		if tok == "(" || tok == ")" || isOperator(tok) || seen[tok] {
			continue
		}
		seen[tok] = true
		names = append(names, tok)
	}
	return names
}

// bruteForceSat decides the formula by truth table.
func bruteForceSat(t *testing.T, formula string) bool {
	names := atoms(formula)
	tokens := tokenize(formula)
	for bits := 0; bits < 1<<len(names); bits++ {
		binding := make(map[string]bool, len(names))
		for i, name := range names {
			binding[name] = bits&(1<<i) != 0
		}
		pos := 0
		if evalPrefix(t, tokens, &pos, binding) {
			return true
		}
	}
	return false
}

// oracleSat decides a clause set with gophersat.
func oracleSat(clauses [][]int) bool {
	pb := gophersat.ParseSlice(clauses)
	return gophersat.New(pb).Solve() == gophersat.Sat
}

// modelSatisfies reports whether every clause contains a literal of the
// model.
func modelSatisfies(clauses [][]int, model []int) bool {
	assigned := make(map[int]bool, len(model))
	for _, lit := range model {
		assigned[lit] = true
	}
	for _, clause := range clauses {
		ok := false
		for _, lit := range clause {
			if assigned[lit] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// The whole pipeline must agree with the truth table of the original
// formula and with an independent solver on the encoded clauses, in
// both modes, and left-to-right must never emit more clauses than
// equivalence.
func TestPipelineAgainstOracles(t *testing.T) {
	for _, formula := range testFormulas {
		want := bruteForceSat(t, formula)

		eq, err := New(Equivalence).Translate(formula)
		require.NoError(t, err, "formula %q", formula)
		ltr, err := New(LeftToRight).Translate(formula)
		require.NoError(t, err, "formula %q", formula)
		assert.LessOrEqual(t, len(ltr.Clauses), len(eq.Clauses), "formula %q", formula)

		for _, c := range []*CNF{eq, ltr} {
			assert.Equal(t, want, oracleSat(c.Clauses), "oracle disagrees on %q", formula)

			s := dpll.New(nil)
			status := s.Solve(dpll.ParseSlice(c.Clauses))
			if want {
				require.Equal(t, dpll.Sat, status, "formula %q", formula)
				model := s.Model()
				assert.True(t, modelSatisfies(c.Clauses, model), "model %v does not satisfy %q", model, formula)
				for _, lit := range model {
					assert.NotContains(t, model, -lit, "contradictory model for %q", formula)
				}
			} else {
				require.Equal(t, dpll.Unsat, status, "formula %q", formula)
				assert.Nil(t, s.Model())
			}
		}
	}
}

// Scenario: a conjunction forces both atoms true.
func TestSolveConjunction(t *testing.T) {
	for _, mode := range []Mode{Equivalence, LeftToRight} {
		c, err := New(mode).Translate("(and x1 x2)")
		require.NoError(t, err)
		s := dpll.New(nil)
		require.Equal(t, dpll.Sat, s.Solve(dpll.ParseSlice(c.Clauses)), "mode %v", mode)
		assert.Contains(t, s.Model(), 1, "mode %v", mode)
		assert.Contains(t, s.Model(), 2, "mode %v", mode)
	}
}

// Scenario: a contradiction is unsat in both modes.
func TestSolveContradiction(t *testing.T) {
	for _, mode := range []Mode{Equivalence, LeftToRight} {
		c, err := New(mode).Translate("(and x1 (not x1))")
		require.NoError(t, err)
		s := dpll.New(nil)
		assert.Equal(t, dpll.Unsat, s.Solve(dpll.ParseSlice(c.Clauses)), "mode %v", mode)
	}
}

// Scenario: a tautology is sat; the root unit clause makes it trivial.
func TestSolveTautology(t *testing.T) {
	for _, mode := range []Mode{Equivalence, LeftToRight} {
		c, err := New(mode).Translate("(or x1 (not x1))")
		require.NoError(t, err)
		s := dpll.New(nil)
		assert.Equal(t, dpll.Sat, s.Solve(dpll.ParseSlice(c.Clauses)), "mode %v", mode)
	}
}
