package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A CNF is the result of a translation: a clause set equisatisfiable
// with the original formula, over the ids assigned while parsing it.
type CNF struct {
	// Clauses holds signed literals without the zero sentinel; the
	// sentinel is a serialization artifact. The first clause is the unit
	// clause forcing the root.
	Clauses [][]int
	// Root is the literal denoting the whole formula. It is negative
	// when the input was a bare negation.
	Root int
	// NbVars is the number of distinct ids, original variables and
	// substitutions together.
	NbVars int

	names map[int]string
	subs  map[int]subformula
}

// Dimacs writes c on w in DIMACS CNF form. The comment header lists the
// substitution table (what each id stands for) and the root id, then
// come the "p cnf" line and one zero-terminated clause per line.
func (c *CNF) Dimacs(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "c")
	fmt.Fprintln(bw, "c Substitutions:")
	for id := 1; id <= c.NbVars; id++ {
		if name, ok := c.names[id]; ok {
			fmt.Fprintf(bw, "c %d = %s\n", id, name)
		} else if sub, ok := c.subs[id]; ok {
			fmt.Fprintf(bw, "c %d = %s\n", id, sub)
		} else {
			panic(fmt.Sprintf("id %d is neither a variable nor a substitution", id))
		}
	}
	fmt.Fprintln(bw, "c")
	fmt.Fprintf(bw, "c Root node is %d\n", c.Root)
	fmt.Fprintln(bw, "c")
	fmt.Fprintf(bw, "p cnf %d %d\n", c.NbVars, len(c.Clauses))
	for _, clause := range c.Clauses {
		strs := make([]string, len(clause))
		for i, lit := range clause {
			strs[i] = strconv.Itoa(lit)
		}
		fmt.Fprintf(bw, "%s 0\n", strings.Join(strs, " "))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write DIMACS output: %v", err)
	}
	return nil
}
