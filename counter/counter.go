// Package counter implements component G of the design, the trial
// controller and aggregator that is the top-level public API of the
// whole system: single_trial, approximate and aggregate from spec.md
// §4.G, composed on top of xorgen (hashing), gf2 (solving the hash),
// simplify (applying it) and enumerate (counting the surviving cell).
//
// There is no teacher file this package is a direct port of — gophersat
// has no approximate-counting notion — so its shape is grounded instead
// on how gophersat's own Solver.CountModels wraps repeated solving behind
// a single public entry point (solver/solver.go), generalized here to
// drive the hash-then-count loop spec.md describes.
package counter

import (
	"math"
	"sort"

	"github.com/crillab/gophercount/cnf"
	"github.com/crillab/gophercount/enumerate"
	"github.com/crillab/gophercount/gf2"
	"github.com/crillab/gophercount/simplify"
	"github.com/crillab/gophercount/xorgen"
	"github.com/go-logr/logr"
)

// singleTrialThreshold is the fixed per-cell threshold approximate uses,
// per spec.md §4.G ("threshold fixed at 50").
const singleTrialThreshold = 50

// Config carries the optional dependencies of a trial run: a structured
// logger (defaulting to logr.Discard()) and the XOR generator backing
// randomness (defaulting to the process-wide shared source via
// xorgen.NewDefault, so callers who want S6-style reproducibility seed
// that source directly via internal/prng.Seed before invoking a trial,
// or hand in their own Generator built with xorgen.New(seed)).
type Config struct {
	Logger    logr.Logger
	Generator *xorgen.Generator
}

func (c Config) logger() logr.Logger {
	if c.Logger.GetSink() == nil {
		return logr.Discard()
	}
	return c.Logger
}

func (c Config) generator() *xorgen.Generator {
	if c.Generator == nil {
		return xorgen.NewDefault()
	}
	return c.Generator
}

// TrialResult is the outcome of one single_trial invocation.
type TrialResult struct {
	OK          bool
	K           int    // Number of XOR constraints hashed with.
	Cell        uint64 // Models found in the hashed cell (capped at threshold+10).
	ScaleFactor uint64 // 2^K, saturating at math.MaxUint64.
	CellCount   uint64 // ScaleFactor * Cell, saturating at math.MaxUint64.
}

// SingleTrial implements single_trial(F, density, threshold) from
// spec.md §4.G: it searches for a number of XOR hashes k that cuts the
// formula's solution space down to a cell of size at most threshold,
// growing k on an oversized cell and rolling back by one on an empty or
// unsatisfiable one, until a usable cell is found or k exhausts the
// variable count.
func SingleTrial(f *cnf.Formula, density float64, threshold uint64, cfg Config) TrialResult {
	gen := cfg.generator()
	log := cfg.logger()
	n := f.NbVars

	k := 0
	for k < n {
		sol := gf2.Solve(gen.Family(n, k, density), n)
		if sol.Status == gf2.Unsat {
			if k == 0 {
				log.V(2).Info("trial failed: xor family unsat at k=0")
				return TrialResult{OK: false}
			}
			k--
			break
		}
		simp := simplify.ApplyXORSolution(f, sol)
		if simp.Unsat {
			if k == 0 {
				log.V(2).Info("trial failed: xor solution unsat at k=0")
				return TrialResult{OK: false}
			}
			k--
			break
		}
		cell := enumerate.CountSolutions(simp.Simplified, threshold+10)
		if cell == 0 {
			if k == 0 {
				log.V(2).Info("trial failed: empty cell at k=0")
				return TrialResult{OK: false}
			}
			k--
			break
		}
		if cell <= threshold {
			log.V(2).Info("trial cell accepted", "k", k, "cell", cell)
			return finalizeTrial(k, cell, true)
		}
		k++
	}

	// Loop exited either because k reached n or because of a rollback
	// above: regenerate once at the retained k, accept whatever cell
	// results, per spec.md's "on loop exit without return" clause. A
	// recount of 0 here still means the trial failed, exactly as the
	// in-loop checks above treat it.
	sol := gf2.Solve(gen.Family(n, k, density), n)
	simp := simplify.ApplyXORSolution(f, sol)
	var cell uint64
	if !simp.Unsat {
		cell = enumerate.CountSolutions(simp.Simplified, threshold+10)
	}
	log.V(2).Info("trial concluded at loop exit", "k", k, "cell", cell)
	return finalizeTrial(k, cell, cell > 0)
}

func finalizeTrial(k int, cell uint64, ok bool) TrialResult {
	scale := scaleFactor(k)
	return TrialResult{
		OK:          ok,
		K:           k,
		Cell:        cell,
		ScaleFactor: scale,
		CellCount:   saturatingMul(scale, cell),
	}
}

func scaleFactor(k int) uint64 {
	if k >= 64 {
		return math.MaxUint64
	}
	return uint64(1) << uint(k)
}

func saturatingMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}

// ApproximationResult is the outcome of approximate(F, trials, _, density).
type ApproximationResult struct {
	Estimated uint64
	Average   float64
	Trials    []TrialResult
}

// Approximate implements approximate(F, trials, numXORs, density) from
// spec.md §4.G. numXORs is accepted but ignored: SPEC_FULL.md's Open
// Question 4 resolution keeps it as a vestigial parameter of the public
// signature, matching spec.md's own DESIGN NOTES ("treat as vestigial").
func Approximate(f *cnf.Formula, trials int, numXORs int, density float64, cfg Config) ApproximationResult {
	_ = numXORs
	log := cfg.logger()

	results := make([]TrialResult, trials)
	for i := 0; i < trials; i++ {
		results[i] = SingleTrial(f, density, singleTrialThreshold, cfg)
		log.V(1).Info("trial done", "index", i, "ok", results[i].OK, "k", results[i].K, "cellCount", results[i].CellCount)
	}
	estimated, average := Aggregate(results)
	return ApproximationResult{Estimated: estimated, Average: average, Trials: results}
}

// Aggregate implements aggregate(results) from spec.md §4.G: the median
// (integer mean of the two middle elements when the successful count is
// even) and the float64 mean of every successful trial's scaled count.
func Aggregate(results []TrialResult) (estimated uint64, average float64) {
	var scaled []uint64
	for _, r := range results {
		if r.OK {
			scaled = append(scaled, r.CellCount)
		}
	}
	if len(scaled) == 0 {
		return 0, 0
	}
	sort.Slice(scaled, func(i, j int) bool { return scaled[i] < scaled[j] })

	mid := len(scaled) / 2
	if len(scaled)%2 == 1 {
		estimated = scaled[mid]
	} else {
		estimated = (scaled[mid-1] + scaled[mid]) / 2
	}

	var sum float64
	for _, c := range scaled {
		sum += float64(c)
	}
	average = sum / float64(len(scaled))
	return estimated, average
}
