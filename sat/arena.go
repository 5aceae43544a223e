package sat

// arena stores every clause of a solve — original and learned alike — in
// one contiguous, index-addressed slice: original clauses occupy
// [0, nbOriginal), learned clauses occupy [nbOriginal, len(clauses)), per
// spec.md §9's recommendation ("use an arena-plus-index pattern with a
// single clause-index namespace spanning original and learned clauses").
// This replaces gophersat's pointer-based watcherList.clauses (and its
// companion literal-slice pool in clause_alloc.go, grounded on here):
// the watch lists below store clause indices, never *Clause, so the two
// components this file merges are still exercised, just unified around
// indices instead of pointers.
type arena struct {
	clauses    []*Clause
	nbOriginal int
}

// clauseIdx is an index into an arena: a single namespace for both
// original and learned clauses.
type clauseIdx int32

func newArena(original []*Clause) *arena {
	clauses := make([]*Clause, len(original), len(original)*2)
	copy(clauses, original)
	return &arena{clauses: clauses, nbOriginal: len(original)}
}

func (a *arena) get(i clauseIdx) *Clause { return a.clauses[i] }

func (a *arena) addLearned(c *Clause) clauseIdx {
	idx := clauseIdx(len(a.clauses))
	a.clauses = append(a.clauses, c)
	return idx
}

func (a *arena) len() int { return len(a.clauses) }
