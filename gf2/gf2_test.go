package gf2

import (
	"testing"

	"github.com/crillab/gophercount/xorgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveZeroConstraints(t *testing.T) {
	sol := Solve(nil, 3)
	require.Equal(t, Sat, sol.Status)
	assert.Empty(t, sol.Fixed)
	assert.ElementsMatch(t, []int{1, 2, 3}, sol.Free)
}

func TestSolveZeroVariables(t *testing.T) {
	sol := Solve([]xorgen.Constraint{{Vars: nil, Parity: false}}, 0)
	assert.Equal(t, Sat, sol.Status)
}

func TestSolveSimpleParity(t *testing.T) {
	// x1 xor x2 = 1
	sol := Solve([]xorgen.Constraint{{Vars: []int{1, 2}, Parity: true}}, 2)
	require.Equal(t, Sat, sol.Status)
	assert.True(t, sol.Fixed[1] != sol.Fixed[2] || contains(sol.Free, 1) || contains(sol.Free, 2))
	verifySatisfies(t, sol, []xorgen.Constraint{{Vars: []int{1, 2}, Parity: true}})
}

func TestSolveUnsatContradiction(t *testing.T) {
	xors := []xorgen.Constraint{
		{Vars: []int{1}, Parity: true},
		{Vars: []int{1}, Parity: false},
	}
	sol := Solve(xors, 1)
	assert.Equal(t, Unsat, sol.Status)
}

func TestSolveDependentConstraints(t *testing.T) {
	xors := []xorgen.Constraint{
		{Vars: []int{1, 2}, Parity: true},
		{Vars: []int{1, 2}, Parity: true}, // duplicate, linearly dependent
	}
	sol := Solve(xors, 2)
	require.Equal(t, Sat, sol.Status)
	verifySatisfies(t, sol, xors)
}

func TestSolveFreeVariableRemains(t *testing.T) {
	sol := Solve([]xorgen.Constraint{{Vars: []int{1}, Parity: true}}, 3)
	require.Equal(t, Sat, sol.Status)
	assert.ElementsMatch(t, []int{2, 3}, sol.Free)
	assert.True(t, sol.Fixed[1])
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// verifySatisfies checks the GF(2) soundness property from spec.md §8.1:
// substituting Fixed (with any assignment of frees, here 0) satisfies
// every input XOR.
func verifySatisfies(t *testing.T, sol Solution, xors []xorgen.Constraint) {
	t.Helper()
	full := make(map[int]bool, len(sol.Fixed)+len(sol.Free))
	for v, b := range sol.Fixed {
		full[v] = b
	}
	for _, v := range sol.Free {
		full[v] = false
	}
	for _, x := range xors {
		parity := false
		for _, v := range x.Vars {
			parity = parity != full[v]
		}
		assert.Equal(t, x.Parity, parity)
	}
}
