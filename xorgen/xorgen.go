// Package xorgen generates random sparse XOR constraints over GF(2),
// component B of the design: the hashing half of the ApproxMC paradigm.
// It depends only on internal/prng for its source of randomness.
package xorgen

import "github.com/crillab/gophercount/internal/prng"

// Constraint is a parity equation over a subset of the n variables:
// XOR_{v in Vars} x_v = Parity, over GF(2).
type Constraint struct {
	Vars   []int // 1-indexed variable identifiers, in increasing order.
	Parity bool  // true means the XOR of Vars must equal 1.
}

// Generator produces independent sparse XOR constraints. The zero value is
// not usable; construct one with New or NewDefault.
type Generator struct {
	rng *prng.Handle
}

// New returns a Generator backed by an independently seeded source.
func New(seed int64) *Generator { return &Generator{rng: prng.New(seed)} }

// NewDefault returns a Generator backed by the process-wide shared source
// (see internal/prng.Seed for reproducibility across runs).
func NewDefault() *Generator { return &Generator{rng: prng.Default()} }

// Sparse generates one sparse XOR constraint over n variables: each
// variable 1..n is included independently with probability p, and the
// parity bit is drawn uniformly.
func (g *Generator) Sparse(n int, p float64) Constraint {
	vars := make([]int, 0, int(float64(n)*p)+1)
	for v := 1; v <= n; v++ {
		if g.rng.Float64() < p {
			vars = append(vars, v)
		}
	}
	return Constraint{Vars: vars, Parity: g.rng.Intn(2) == 1}
}

// Family generates k independent sparse XOR constraints over n variables.
// Successive constraints need not be linearly independent; the GF(2)
// solver (package gf2) handles any dependencies among them.
func (g *Generator) Family(n, k int, p float64) []Constraint {
	fam := make([]Constraint, k)
	for i := range fam {
		fam[i] = g.Sparse(n, p)
	}
	return fam
}

// GenerateSparseXOR is the package-level convenience form backed by the
// process-wide shared PRNG, matching spec.md's generate_sparse_xor(n, p).
func GenerateSparseXOR(n int, p float64) Constraint {
	return NewDefault().Sparse(n, p)
}

// GenerateXORFamily is the package-level convenience form backed by the
// process-wide shared PRNG, matching spec.md's generate_xor_family(n, k, p).
func GenerateXORFamily(n, k int, p float64) []Constraint {
	return NewDefault().Family(n, k, p)
}
