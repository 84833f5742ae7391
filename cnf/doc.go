// Package cnf translates fully-parenthesized prefix-notation boolean
// formulas into equisatisfiable CNF.
//
// Formulas use the keywords "not", "and" and "or", with whitespace-separated
// atom names, for instance:
//
//	(and x1 (or x2 (not x1)))
//
// Formulas are expected in negation normal form: "not" applies to atoms
// only. A negated atom never gets a substitution of its own; the sign is
// folded into the reference.
//
// Every atom and every and/or subformula receives a unique positive
// integer id from a single counter. The translation then follows Tseitin:
// one fresh variable per subformula, a unit clause forcing the root true,
// and per-node definition clauses. Two encodings are available, see Mode.
//
// The result can be handed directly to the dpll package or serialized in
// DIMACS CNF form with a substitution table in the comment header.
package cnf
