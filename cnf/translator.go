package cnf

import "fmt"

// Op is the connective of a substituted subformula.
type Op string

const (
	OpAnd = Op("and")
	OpOr  = Op("or")
)

const opNot = "not"

func isOperator(tok string) bool {
	return tok == string(OpAnd) || tok == string(OpOr) || tok == opNot
}

// refKind discriminates what the id of a Ref denotes.
type refKind uint8

const (
	varRef = refKind(iota)
	subRef
)

// A Ref is a resolved operand reference: a registered variable or a
// substituted subformula, possibly negated. A negation never receives
// an id of its own; the sign is folded into the reference.
type Ref struct {
	kind refKind
	id   int
	neg  bool
}

// Lit returns the signed literal denoting r.
func (r Ref) Lit() int {
	if r.neg {
		return -r.id
	}
	return r.id
}

// Negate returns r with the opposite polarity.
func (r Ref) Negate() Ref {
	r.neg = !r.neg
	return r
}

// A subformula is an and/or node substituted by a fresh variable.
// Its operands are already resolved, in source order.
type subformula struct {
	op    Op
	left  Ref
	right Ref
}

func (s subformula) String() string {
	return fmt.Sprintf("%s(%d, %d)", s.op, s.left.Lit(), s.right.Lit())
}

// A Translator converts prefix-notation formulas into CNF. Its whole
// state is reinitialized at the start of every Translate call, so one
// Translator can be reused sequentially for independent formulas.
type Translator struct {
	mode Mode

	names  map[int]string // id -> original variable name
	ids    map[string]int // original variable name -> id
	subs   map[int]subformula
	nextID int // shared monotonic counter for variables and subformulas

	clauses [][]int
	root    Ref
}

// New returns a Translator emitting clauses in the given mode.
func New(mode Mode) *Translator {
	return &Translator{mode: mode}
}

func (t *Translator) reinit() {
	t.names = make(map[int]string)
	t.ids = make(map[string]int)
	t.subs = make(map[int]subformula)
	t.nextID = 1
	t.clauses = nil
	t.root = Ref{}
}

// Translate parses the formula, substitutes a fresh variable for every
// and/or subformula and returns the Tseitin encoding of the whole
// formula, root node forced true.
func (t *Translator) Translate(formula string) (*CNF, error) {
	t.reinit()
	root, err := t.build(tokenize(formula))
	if err != nil {
		return nil, err
	}
	t.root = root
	// The root unit clause comes first. Forcing the root is also what
	// keeps the left-to-right mode equisatisfiable.
	t.clauses = append(t.clauses, []int{root.Lit()})
	t.encode(root)
	return &CNF{
		Clauses: t.clauses,
		Root:    root.Lit(),
		NbVars:  t.nextID - 1,
		names:   t.names,
		subs:    t.subs,
	}, nil
}

// A stack item is either a raw token or a resolved reference. Keeping
// the two apart makes it impossible for a variable whose name spells an
// integer to be captured by an internal id.
type item struct {
	tok      string
	ref      Ref
	resolved bool
}

func (t *Translator) register(name string) Ref {
	if id, ok := t.ids[name]; ok {
		return Ref{kind: varRef, id: id}
	}
	id := t.nextID
	t.nextID++
	t.names[id] = name
	t.ids[name] = id
	return Ref{kind: varRef, id: id}
}

func (t *Translator) resolve(it item) (Ref, error) {
	if it.resolved {
		return it.ref, nil
	}
	// Only misplaced operator keywords can end up here: ordinary atoms
	// were registered the moment they were pushed.
	id, ok := t.ids[it.tok]
	if !ok {
		return Ref{}, fmt.Errorf("unknown identifier %q", it.tok)
	}
	return Ref{kind: varRef, id: id}, nil
}

// build runs the stack machine over the token stream and returns the
// reference left for the whole formula.
func (t *Translator) build(tokens []string) (Ref, error) {
	var stack []item
	for _, tok := range tokens {
		switch tok {
		case "(":
			stack = append(stack, item{tok: "("})
		case ")":
			group, rest, err := popGroup(stack)
			if err != nil {
				return Ref{}, err
			}
			stack = rest
			ref, err := t.reduce(group)
			if err != nil {
				return Ref{}, err
			}
			stack = append(stack, item{ref: ref, resolved: true})
		default:
			it := item{tok: tok}
			if !isOperator(tok) {
				it = item{ref: t.register(tok), resolved: true}
			}
			stack = append(stack, it)
		}
	}
	if len(stack) != 1 {
		return Ref{}, fmt.Errorf("malformed formula: %d items left after parsing", len(stack))
	}
	if !stack[0].resolved {
		return Ref{}, fmt.Errorf("malformed formula: dangling token %q", stack[0].tok)
	}
	return stack[0].ref, nil
}

// popGroup pops the items back to the matching open bracket, keeping
// their source order, and returns them along with the remaining stack.
func popGroup(stack []item) (group, rest []item, err error) {
	i := len(stack) - 1
	for i >= 0 && !(stack[i].tok == "(" && !stack[i].resolved) {
		i--
	}
	if i < 0 {
		return nil, nil, fmt.Errorf("unbalanced closing bracket")
	}
	group = append(group, stack[i+1:]...)
	return group, stack[:i], nil
}

// reduce interprets a bracketed group: a negation folds its sign into
// the operand, an and/or group becomes a substituted subformula with a
// fresh id.
func (t *Translator) reduce(group []item) (Ref, error) {
	if len(group) == 0 {
		return Ref{}, fmt.Errorf("empty group")
	}
	first := group[0]
	if !first.resolved && first.tok == opNot {
		if len(group) != 2 {
			return Ref{}, fmt.Errorf("not takes exactly one operand, got %d", len(group)-1)
		}
		ref, err := t.resolve(group[1])
		if err != nil {
			return Ref{}, err
		}
		return ref.Negate(), nil
	}
	if first.resolved || (first.tok != string(OpAnd) && first.tok != string(OpOr)) {
		return Ref{}, fmt.Errorf("expected operator at start of group")
	}
	if len(group) != 3 {
		return Ref{}, fmt.Errorf("%s takes exactly two operands, got %d", first.tok, len(group)-1)
	}
	left, err := t.resolve(group[1])
	if err != nil {
		return Ref{}, err
	}
	right, err := t.resolve(group[2])
	if err != nil {
		return Ref{}, err
	}
	id := t.nextID
	t.nextID++
	t.subs[id] = subformula{op: Op(first.tok), left: left, right: right}
	return Ref{kind: subRef, id: id}, nil
}
