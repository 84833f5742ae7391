package cnf

// encode emits the definition clauses for every substituted node
// reachable from ref, in pre-order: a node's clauses come before the
// clauses of its left operand, which come before those of its right
// operand. Variables and negated references contribute no clauses and
// terminate the recursion.
func (t *Translator) encode(ref Ref) {
	if ref.neg {
		return
	}
	sub, ok := t.subs[ref.id]
	if !ok {
		return
	}
	p, l, r := ref.id, sub.left.Lit(), sub.right.Lit()
	switch sub.op {
	case OpAnd:
		if t.mode == Equivalence {
			// p <-> l & r
			t.clauses = append(t.clauses, []int{-l, -r, p}, []int{l, -p}, []int{r, -p})
		} else {
			// p -> l, p -> r
			t.clauses = append(t.clauses, []int{-p, l}, []int{-p, r})
		}
	case OpOr:
		if t.mode == Equivalence {
			// p <-> l | r
			t.clauses = append(t.clauses, []int{l, r, -p}, []int{-l, p}, []int{-r, p})
		} else {
			// p -> l | r
			t.clauses = append(t.clauses, []int{-p, l, r})
		}
	}
	t.encode(sub.left)
	t.encode(sub.right)
}
