// Package simplify applies a partial assignment to a CNF formula, the
// operation in component D of the design: removing satisfied clauses and
// falsified literals, and detecting derived unsatisfiability or trivial
// truth.
package simplify

import (
	"github.com/crillab/gophercount/cnf"
	"github.com/crillab/gophercount/gf2"
)

// Result is the outcome of applying a partial assignment to a formula.
type Result struct {
	Simplified      *cnf.Formula
	Unsat           bool // A clause became empty: the assignment cannot be extended.
	TriviallyTrue   bool // Every clause was removed.
	ClausesRemoved  int
	LiteralsRemoved int
}

// Apply implements apply_assignment(F, sigma): every clause satisfied by
// sigma is dropped; every other clause is copied with its falsified
// literals removed. If that copy is empty, Result.Unsat is set and no
// further clauses are processed (the caller has its answer). NbVars is
// carried forward unchanged, so free variables remain present in
// Simplified even when they no longer appear in any clause.
func Apply(f *cnf.Formula, sigma cnf.Assignment) Result {
	out := make([]cnf.Clause, 0, len(f.Clauses))
	var res Result
	for _, c := range f.Clauses {
		if c.IsSatisfied(sigma) {
			res.ClausesRemoved++
			continue
		}
		kept := make(cnf.Clause, 0, len(c))
		for _, l := range c {
			if _, bound := sigma.Value(l.Var()); bound {
				// Not satisfied (IsSatisfied would have caught the
				// clause above), so a bound literal here is falsified.
				res.LiteralsRemoved++
				continue
			}
			kept = append(kept, l)
		}
		if len(kept) == 0 {
			res.Unsat = true
			return res
		}
		out = append(out, kept)
	}
	res.Simplified = cnf.New(f.NbVars, out)
	if len(out) == 0 {
		res.TriviallyTrue = true
	}
	return res
}

// ApplyXORSolution implements apply_xor_solution(F, x): if x is Unsat, the
// caller is told so directly; otherwise the formula is simplified using
// only the XOR-fixed variables (x.Free variables are omitted from sigma
// and remain genuinely unassigned in the result).
func ApplyXORSolution(f *cnf.Formula, x gf2.Solution) Result {
	if x.Status == gf2.Unsat {
		return Result{Unsat: true}
	}
	sigma := make(cnf.Assignment, len(x.Fixed))
	for v, b := range x.Fixed {
		sigma[v] = b
	}
	return Apply(f, sigma)
}
