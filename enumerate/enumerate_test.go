package enumerate

import (
	"math"
	"testing"

	"github.com/crillab/gophercount/cnf"
	"github.com/stretchr/testify/assert"
)

func cl(lits ...int32) cnf.Clause {
	c := make(cnf.Clause, len(lits))
	for i, l := range lits {
		c[i] = cnf.Lit(l)
	}
	return c
}

func TestCountSolutionsClauselessSmall(t *testing.T) {
	f := cnf.New(3, nil)
	got := CountSolutions(f, 100)
	assert.Equal(t, uint64(8), got)
}

func TestCountSolutionsClauselessCapped(t *testing.T) {
	f := cnf.New(3, nil)
	got := CountSolutions(f, 5)
	assert.Equal(t, uint64(5), got)
}

func TestCountSolutionsClauselessSaturates(t *testing.T) {
	f := cnf.New(64, nil)
	got := CountSolutions(f, math.MaxUint64)
	assert.Equal(t, uint64(math.MaxUint64), got)
}

func TestCountSolutionsUnsatIsZero(t *testing.T) {
	f := cnf.New(1, []cnf.Clause{cl(1), cl(-1)})
	got := CountSolutions(f, 10)
	assert.Equal(t, uint64(0), got)
}

func TestCountSolutionsExactForSmallFormula(t *testing.T) {
	// x1 v x2 has exactly 3 models out of 4 assignments.
	f := cnf.New(2, []cnf.Clause{cl(1, 2)})
	got := CountSolutions(f, 100)
	assert.Equal(t, uint64(3), got)
}

func TestCountSolutionsRespectsCap(t *testing.T) {
	f := cnf.New(2, []cnf.Clause{cl(1, 2)})
	got := CountSolutions(f, 2)
	assert.Equal(t, uint64(2), got)
}

func TestCountSolutionsSingleModel(t *testing.T) {
	f := cnf.New(2, []cnf.Clause{cl(1), cl(2)})
	got := CountSolutions(f, 100)
	assert.Equal(t, uint64(1), got)
}
