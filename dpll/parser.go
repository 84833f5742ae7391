package dpll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Problem is a clause set to be decided. Literals are signed non-zero
// integers; the magnitude is the variable id, the sign its polarity.
type Problem struct {
	Clauses [][]int
}

// ParseSlice wraps an in-memory clause set as a Problem. Clauses carry
// no zero sentinel. The slices are copied, so the caller may keep
// mutating its own.
func ParseSlice(clauses [][]int) *Problem {
	pb := Problem{Clauses: make([][]int, len(clauses))}
	for i, clause := range clauses {
		pb.Clauses[i] = append([]int(nil), clause...)
	}
	return &pb
}

// ParseCNF reads a problem in DIMACS CNF form. Comment lines and the
// "p" line are skipped; the variable and clause counts announced there
// are not validated against the actual content. Every other non-empty
// line is one clause whose trailing 0 is stripped.
func ParseCNF(r io.Reader) (*Problem, error) {
	var pb Problem
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || line[0] == 'c' || line[0] == 'p' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[len(fields)-1] != "0" {
			return nil, fmt.Errorf("clause %q lacks its terminating 0", line)
		}
		lits := make([]int, 0, len(fields)-1)
		for _, f := range fields[:len(fields)-1] {
			val, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q: %v", f, err)
			}
			if val == 0 {
				return nil, fmt.Errorf("null literal inside clause %q", line)
			}
			lits = append(lits, val)
		}
		pb.Clauses = append(pb.Clauses, lits)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read CNF input: %v", err)
	}
	return &pb, nil
}
