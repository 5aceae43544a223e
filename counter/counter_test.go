package counter

import (
	"testing"

	"github.com/crillab/gophercount/cnf"
	"github.com/crillab/gophercount/xorgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cl(lits ...int32) cnf.Clause {
	c := make(cnf.Clause, len(lits))
	for i, l := range lits {
		c[i] = cnf.Lit(l)
	}
	return c
}

func reproducibleConfig(seed int64) Config {
	return Config{Generator: xorgen.New(seed)}
}

func TestSingleTrialOnUnsatFormula(t *testing.T) {
	f := cnf.New(1, []cnf.Clause{cl(1), cl(-1)})
	r := SingleTrial(f, 0.5, 50, reproducibleConfig(1))
	require.False(t, r.OK, "an unsatisfiable formula has no cell to recount, even at k=0")
}

func TestFinalizeTrialZeroCellFails(t *testing.T) {
	// The loop-exit fallback in SingleTrial computes cell independently of
	// the in-loop checks; finalizeTrial must still refuse to report a zero
	// recount as a successful trial.
	r := finalizeTrial(3, 0, false)
	assert.False(t, r.OK)
	assert.Equal(t, uint64(0), r.CellCount)
}

func TestFinalizeTrialNonZeroCellSucceeds(t *testing.T) {
	r := finalizeTrial(2, 5, true)
	assert.True(t, r.OK)
	assert.Equal(t, uint64(4), r.ScaleFactor)
	assert.Equal(t, uint64(20), r.CellCount)
}

func TestSingleTrialSmallSatFormula(t *testing.T) {
	// 4 variables, no clauses: exactly 16 models.
	f := cnf.New(4, nil)
	r := SingleTrial(f, 0.5, 50, reproducibleConfig(42))
	require.True(t, r.OK)
	assert.Equal(t, r.ScaleFactor, scaleFactor(r.K))
	assert.Equal(t, r.CellCount, r.ScaleFactor*r.Cell)
}

func TestAggregateEmptyIsZero(t *testing.T) {
	estimated, average := Aggregate(nil)
	assert.Equal(t, uint64(0), estimated)
	assert.Equal(t, 0.0, average)
}

func TestAggregateOddMedian(t *testing.T) {
	results := []TrialResult{
		{OK: true, CellCount: 10},
		{OK: true, CellCount: 30},
		{OK: true, CellCount: 20},
	}
	estimated, average := Aggregate(results)
	assert.Equal(t, uint64(20), estimated)
	assert.InDelta(t, 20.0, average, 1e-9)
}

func TestAggregateEvenMedianIsIntegerMean(t *testing.T) {
	results := []TrialResult{
		{OK: true, CellCount: 10},
		{OK: true, CellCount: 21},
	}
	estimated, _ := Aggregate(results)
	assert.Equal(t, uint64(15), estimated) // (10+21)/2 = 15 (integer division)
}

func TestAggregateIgnoresFailedTrials(t *testing.T) {
	results := []TrialResult{
		{OK: false},
		{OK: true, CellCount: 8},
		{OK: false},
	}
	estimated, average := Aggregate(results)
	assert.Equal(t, uint64(8), estimated)
	assert.Equal(t, 8.0, average)
}

func TestApproximateRunsRequestedTrials(t *testing.T) {
	f := cnf.New(3, []cnf.Clause{cl(1, 2, 3)})
	res := Approximate(f, 5, 999, 0.5, reproducibleConfig(7))
	assert.Len(t, res.Trials, 5)
}

func TestScaleFactorSaturates(t *testing.T) {
	assert.Equal(t, uint64(1)<<63, scaleFactor(63))
	assert.Equal(t, ^uint64(0), scaleFactor(64))
	assert.Equal(t, ^uint64(0), scaleFactor(100))
}

func TestSaturatingMulSaturates(t *testing.T) {
	assert.Equal(t, ^uint64(0), saturatingMul(^uint64(0), 2))
	assert.Equal(t, uint64(0), saturatingMul(0, 5))
	assert.Equal(t, uint64(12), saturatingMul(3, 4))
}
