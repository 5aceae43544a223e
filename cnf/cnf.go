// Package cnf defines the plain data model shared by every component of
// gophercount: literals, clauses and the CNF formula they form. Nothing in
// this package depends on the solving machinery in sat, gf2 or xorgen; it
// is the leaf of the dependency graph (component A in the design).
package cnf

import "fmt"

// Lit is a non-zero signed literal: abs(Lit) is the 1-indexed variable
// identifier, and the sign encodes polarity. This mirrors the DIMACS
// convention directly, unlike gophersat's internal zero-indexed, sign-in-
// low-bit Lit encoding: callers build a Formula straight from DIMACS-style
// integers, and the sat package performs its own internal re-encoding at
// the boundary.
type Lit int32

// Var returns the 1-indexed variable identifier of l.
func (l Lit) Var() int { return int(abs32(int32(l))) }

// IsPositive reports whether l is unnegated.
func (l Lit) IsPositive() bool { return l > 0 }

// Negation returns the complementary literal.
func (l Lit) Negation() Lit { return -l }

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Clause is an ordered, non-empty sequence of distinct literals. Clauses
// are not required to be free of tautologies at construction, though a
// clause containing both a literal and its complement is undefined
// behavior per spec (callers are expected to hand over well-formed CNF).
type Clause []Lit

// IsSatisfied reports whether some literal of c is satisfied under m.
func (c Clause) IsSatisfied(m Assignment) bool {
	for _, l := range c {
		if m.status(l) == litSat {
			return true
		}
	}
	return false
}

// String renders c in DIMACS-like form, e.g. "1 -2 3".
func (c Clause) String() string {
	s := ""
	for i, l := range c {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", l)
	}
	return s
}

// Formula is an immutable CNF formula: a variable count and a list of
// clauses. NbVars is authoritative; the set of variables actually
// appearing in Clauses need not be contiguous or complete.
//
// Invariant: every literal l in any clause satisfies 1 <= |l| <= NbVars.
type Formula struct {
	NbVars  int
	Clauses []Clause
}

// New builds a Formula from a variable count and a list of clauses.
// Callers guarantee literal range validity, per spec.md's external
// interface contract: this constructor performs no defensive checks.
func New(nbVars int, clauses []Clause) *Formula {
	return &Formula{NbVars: nbVars, Clauses: clauses}
}

// Clone returns a deep copy of f, safe for independent mutation.
func (f *Formula) Clone() *Formula {
	clauses := make([]Clause, len(f.Clauses))
	for i, c := range f.Clauses {
		cc := make(Clause, len(c))
		copy(cc, c)
		clauses[i] = cc
	}
	return &Formula{NbVars: f.NbVars, Clauses: clauses}
}

// String returns a DIMACS representation of f, mirroring gophersat's
// Problem.CNF/Clause.CNF helpers in solver/problem.go.
func (f *Formula) String() string {
	s := fmt.Sprintf("p cnf %d %d\n", f.NbVars, len(f.Clauses))
	for _, c := range f.Clauses {
		s += c.String() + " 0\n"
	}
	return s
}
