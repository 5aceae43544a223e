package sat

// A Clause is a disjunction of distinct literals. Unlike gophersat's
// solver.Clause, there is no cardinality field here: spec.md's clause
// model (§3) is plain CNF, with no pseudo-boolean/cardinality constraints,
// so that concern from the teacher has no home in this engine (see
// DESIGN.md). There is likewise no activity-based clause deletion: spec.md
// explicitly rules out learned-clause minimization/deletion as a
// Non-goal, so the lbd field below is surfaced only as a diagnostic
// (Stats.AvgLBD), never consulted to decide what to keep.
type Clause struct {
	lits    []Lit
	learned bool
	lbd     int // Literal Block Distance, diagnostics only (see Stats.AvgLBD).
}

// newClause builds an original (non-learned) clause.
func newClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// newLearnedClause builds a clause tagged as learned.
func newLearnedClause(lits []Lit) *Clause {
	return &Clause{lits: lits, learned: true}
}

// Len returns the number of literals in c.
func (c *Clause) Len() int { return len(c.lits) }

// Get returns the i-th literal of c.
func (c *Clause) Get(i int) Lit { return c.lits[i] }

// swap exchanges the i-th and j-th literals of c.
func (c *Clause) swap(i, j int) { c.lits[i], c.lits[j] = c.lits[j], c.lits[i] }

// Lits returns c's literals. The returned slice must not be mutated by
// the caller.
func (c *Clause) Lits() []Lit { return c.lits }

// computeLBD sets c's Literal Block Distance given the current per-var
// decision level array, following gophersat's solver/lbd.go computeLbd:
// the number of distinct decision levels among c's literals.
func (c *Clause) computeLBD(levelOf []int) {
	if len(c.lits) == 0 {
		return
	}
	seen := make(map[int]bool, len(c.lits))
	for _, l := range c.lits {
		seen[levelOf[l.Var()]] = true
	}
	c.lbd = len(seen)
}
