package cnf

import "fmt"

// Mode selects how much of each subformula's definition is emitted.
type Mode uint8

const (
	// Equivalence emits the full biconditional definition of every node:
	// three clauses per node, and the resulting CNF is equivalent to the
	// substituted formula.
	Equivalence = Mode(iota)
	// LeftToRight emits only the forward implications: at most two
	// clauses per node. The encoding is weaker but stays equisatisfiable
	// because the root is separately forced true.
	LeftToRight
)

func (m Mode) String() string {
	switch m {
	case Equivalence:
		return "equivalence"
	case LeftToRight:
		return "left-to-right"
	default:
		panic("invalid mode")
	}
}

// ParseMode parses a mode name as given on the command line.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "eq", "equivalence":
		return Equivalence, nil
	case "ltr", "left-to-right":
		return LeftToRight, nil
	default:
		return 0, fmt.Errorf("invalid encoding mode %q", s)
	}
}
