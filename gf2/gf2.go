// Package gf2 solves systems of XOR constraints over GF(2) by Gaussian
// elimination, component C of the design. It depends only on xorgen for
// the Constraint type.
package gf2

import "github.com/crillab/gophercount/xorgen"

// Status is the outcome of solving a GF(2) system: either the system has
// no solution, or it has at least one (possibly an affine family, when
// free variables remain). This mirrors the sat package's own Status enum
// rather than a sentinel boolean, per the tagged-union guidance on
// XORSolutionResult.
type Status int

const (
	// Unsat means the XOR system has no solution.
	Unsat Status = iota
	// Sat means the XOR system has at least one solution.
	Sat
)

func (s Status) String() string {
	if s == Sat {
		return "SAT"
	}
	return "UNSAT"
}

// Solution is the result of solving a system of XOR constraints.
//
// Invariant: dom(Fixed) ∪ Free = {1..NbVars}, dom(Fixed) ∩ Free = ∅. When
// Free is non-empty, Fixed is the canonical point of the affine solution
// set obtained by setting every free variable to 0; callers that need to
// preserve the free variables as genuinely unassigned (e.g. the CNF
// simplifier) must consult Free rather than treat Fixed as exhaustive.
type Solution struct {
	Status Status
	Fixed  map[int]bool
	Free   []int
}

// row is a bit-packed coefficient vector over n variables plus its RHS bit,
// following spec.md's encouragement ("bit-packed rows are an encouraged
// implementation choice") while keeping the algorithm itself a direct,
// textbook reduction to row echelon form.
type row struct {
	words []uint64
	rhs   bool
}

const wordBits = 64

func newRow(nbVars int) row {
	return row{words: make([]uint64, (nbVars+wordBits-1)/wordBits)}
}

func (r row) get(col int) bool {
	return r.words[col/wordBits]&(1<<uint(col%wordBits)) != 0
}

func (r row) set(col int, v bool) {
	w := col / wordBits
	mask := uint64(1) << uint(col%wordBits)
	if v {
		r.words[w] |= mask
	} else {
		r.words[w] &^= mask
	}
}

// xorInto XORs src into dst in place, including the RHS bit. Pointer
// receiver: a value receiver would still mutate dst.words in place (it's
// a slice header copy backed by the same array) but silently drop the
// dst.rhs assignment, since that field lives directly in the copy.
func (dst *row) xorInto(src row) {
	for i := range dst.words {
		dst.words[i] ^= src.words[i]
	}
	dst.rhs = dst.rhs != src.rhs
}

func (r row) isZero() bool {
	for _, w := range r.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Solve reduces the given XOR constraints to reduced row echelon form over
// n variables and returns the resulting solution, following spec.md §4.C
// exactly: left-to-right column pivoting, full reduction (not just
// upper-triangular), pivot rows fix their pivot variable to the row's RHS,
// and any all-zero row with RHS=1 witnesses unsatisfiability.
func Solve(xors []xorgen.Constraint, n int) Solution {
	if n == 0 || len(xors) == 0 {
		return trivialSat(n)
	}
	rows := make([]row, len(xors))
	for i, x := range xors {
		r := newRow(n)
		for _, v := range x.Vars {
			r.set(v-1, true)
		}
		r.rhs = x.Parity
		rows[i] = r
	}

	pivotOfCol := make([]int, n) // pivotOfCol[c] = row index pivoting on c, or -1
	for i := range pivotOfCol {
		pivotOfCol[i] = -1
	}

	r := 0
	for col := 0; col < n && r < len(rows); col++ {
		pivot := -1
		for i := r; i < len(rows); i++ {
			if rows[i].get(col) {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}
		rows[r], rows[pivot] = rows[pivot], rows[r]
		for i := range rows {
			if i != r && rows[i].get(col) {
				rows[i].xorInto(rows[r])
			}
		}
		pivotOfCol[col] = r
		r++
	}

	for i := r; i < len(rows); i++ {
		if rows[i].isZero() && rows[i].rhs {
			return Solution{Status: Unsat}
		}
	}

	fixed := make(map[int]bool, n)
	free := make([]int, 0, n)
	for col := 0; col < n; col++ {
		if pr := pivotOfCol[col]; pr >= 0 {
			fixed[col+1] = rows[pr].rhs
		} else {
			free = append(free, col+1)
		}
	}
	return Solution{Status: Sat, Fixed: fixed, Free: free}
}

func trivialSat(n int) Solution {
	free := make([]int, n)
	for i := range free {
		free[i] = i + 1
	}
	return Solution{Status: Sat, Fixed: map[int]bool{}, Free: free}
}
