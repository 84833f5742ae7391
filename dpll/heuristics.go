package dpll

// chooseLiteral picks the literal to decide on: per variable, it counts
// the clauses containing it positively and, separately, the clauses
// containing it negatively, then takes the side with the higher count.
// A variable occurring several times in one clause with the same sign
// counts once for that clause.
//
// Tie-breaks, in order: within one side, the smaller id wins; when the
// best positive and best negative counts are equal, the larger of the
// two ids wins, the positive literal being preferred when the positive
// id is at least the negative one.
//
// The search only decides while clauses remain, so calling this with an
// empty clause list is an internal error.
func chooseLiteral(clauses [][]int) int {
	if len(clauses) == 0 {
		panic("chooseLiteral on an empty clause list")
	}
	pos := make(map[int]int)
	neg := make(map[int]int)
	for _, clause := range clauses {
		seen := make(map[int]bool, len(clause))
		for _, lit := range clause {
			if seen[lit] {
				continue
			}
			seen[lit] = true
			if lit > 0 {
				pos[lit]++
			} else {
				neg[-lit]++
			}
		}
	}

	maxPos := best(pos)
	maxNeg := best(neg)

	switch {
	case maxPos == 0 && maxNeg == 0:
		panic("chooseLiteral found no literal")
	case maxNeg == 0:
		return maxPos
	case maxPos == 0:
		return -maxNeg
	case pos[maxPos] > neg[maxNeg]:
		return maxPos
	case pos[maxPos] < neg[maxNeg]:
		return -maxNeg
	case maxPos >= maxNeg:
		return maxPos
	default:
		return -maxNeg
	}
}

// best returns the id with the highest count, the smaller id winning
// ties, or 0 when counts is empty.
func best(counts map[int]int) int {
	id := 0
	for v, c := range counts {
		if id == 0 || c > counts[id] || (c == counts[id] && v < id) {
			id = v
		}
	}
	return id
}
