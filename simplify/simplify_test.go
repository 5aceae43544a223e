package simplify

import (
	"testing"

	"github.com/crillab/gophercount/cnf"
	"github.com/crillab/gophercount/gf2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRemovesSatisfiedClauses(t *testing.T) {
	f := cnf.New(2, []cnf.Clause{{1, 2}, {-1, 2}})
	res := Apply(f, cnf.Assignment{1: true})
	require.False(t, res.Unsat)
	assert.Equal(t, 1, res.ClausesRemoved)
	assert.Len(t, res.Simplified.Clauses, 1)
	assert.Equal(t, cnf.Clause{2}, res.Simplified.Clauses[0])
}

func TestApplyDropsFalsifiedLiterals(t *testing.T) {
	f := cnf.New(2, []cnf.Clause{{1, 2}})
	res := Apply(f, cnf.Assignment{1: false})
	require.False(t, res.Unsat)
	assert.Equal(t, 1, res.LiteralsRemoved)
	assert.Equal(t, cnf.Clause{2}, res.Simplified.Clauses[0])
}

func TestApplyDetectsUnsat(t *testing.T) {
	f := cnf.New(1, []cnf.Clause{{1}})
	res := Apply(f, cnf.Assignment{1: false})
	assert.True(t, res.Unsat)
}

func TestApplyTriviallyTrue(t *testing.T) {
	f := cnf.New(2, []cnf.Clause{{1, 2}})
	res := Apply(f, cnf.Assignment{1: true})
	require.False(t, res.Unsat)
	assert.True(t, res.TriviallyTrue)
	assert.Empty(t, res.Simplified.Clauses)
	assert.Equal(t, 2, res.Simplified.NbVars, "NbVars is carried forward unchanged")
}

func TestApplyIsIdempotent(t *testing.T) {
	f := cnf.New(3, []cnf.Clause{{1, 2, 3}, {-1, 2}})
	sigma := cnf.Assignment{1: true}
	once := Apply(f, sigma)
	twice := Apply(once.Simplified, sigma)
	assert.Equal(t, once.Simplified.Clauses, twice.Simplified.Clauses)
}

func TestApplyXORSolutionPropagatesUnsat(t *testing.T) {
	f := cnf.New(1, []cnf.Clause{{1}})
	res := ApplyXORSolution(f, gf2.Solution{Status: gf2.Unsat})
	assert.True(t, res.Unsat)
}

func TestApplyXORSolutionOmitsFreeVars(t *testing.T) {
	f := cnf.New(2, []cnf.Clause{{1, 2}})
	sol := gf2.Solution{Status: gf2.Sat, Fixed: map[int]bool{1: false}, Free: []int{2}}
	res := ApplyXORSolution(f, sol)
	require.False(t, res.Unsat)
	// Variable 2 is free, so the clause {1, 2} survives with only lit 2.
	assert.Equal(t, cnf.Clause{2}, res.Simplified.Clauses[0])
}
