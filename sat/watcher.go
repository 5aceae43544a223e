package sat

// watchList maps a literal to the clauses currently watching it, per
// spec.md §3's "Watched-literals index": for a clause of size >= 2, its
// two watched literals are its first two slots (kept physically in
// position 0/1 of the clause's literal slice; propagate swaps a
// replacement into those slots rather than tracking watch positions
// separately, mirroring gophersat's in-place clause.swap in
// solver/watcher.go's simplifyClause). A size-1 clause watches its sole
// literal.
//
// watchList is indexed by the literal whose falsification should trigger
// a look at the clause, i.e. a clause with watched literal w is stored
// under key w.Negation(): assigning w.Negation() true is exactly what
// makes w false.
type watchList struct {
	watches [][]clauseIdx
}

func newWatchList(nbVars int) watchList {
	return watchList{watches: make([][]clauseIdx, nbVars*2)}
}

func (wl *watchList) attach(idx clauseIdx, c *Clause) {
	if c.Len() == 1 {
		k := c.Get(0).Negation()
		wl.watches[k] = append(wl.watches[k], idx)
		return
	}
	for _, w := range [2]Lit{c.Get(0), c.Get(1)} {
		k := w.Negation()
		wl.watches[k] = append(wl.watches[k], idx)
	}
}

// propagate drives unit propagation via the watched-literal scheme from
// spec.md §4.E until a fixed point (returns noReason) or a conflict
// (returns the conflicting clause's index). It consumes the solver's
// trail starting at qHead, so assignments made by decide/backtrack/restart
// before calling propagate are picked up automatically.
//
// The spec's "post-backtrack scan" fallback (a linear scan over every
// clause when the propagation queue would start empty) is not implemented:
// after a conflict this engine assigns a literal before propagating again
// (the unit-clause literal after a unit learning, the asserting literal
// after a non-unit learning), after a restart propagate() finds nothing
// queued and the next decision literal seeds the queue, and backtracking
// only unassigns variables, so the watch state is never stale across a
// backtrack the way it can be in a cardinality-aware watcher
// (gophersat's solver/watcher.go, which shuffles literals between
// >2-watch positions). Implementing the scan here would be dead code;
// see DESIGN.md.
func (s *solver) propagate() clauseIdx {
	for s.qHead < len(s.trail) {
		lit := s.trail[s.qHead]
		s.qHead++
		ws := s.wl.watches[lit]
		keep := ws[:0]
		for i := 0; i < len(ws); i++ {
			idx := ws[i]
			c := s.arena.get(idx)
			if c.Len() == 1 {
				keep = append(keep, idx)
				s.wl.watches[lit] = append(keep, ws[i+1:]...)
				return idx
			}
			falsePos := 0
			switch lit.Negation() {
			case c.Get(0):
				falsePos = 0
			case c.Get(1):
				falsePos = 1
			default:
				// Stale entry: this clause no longer watches lit.Negation().
				keep = append(keep, idx)
				continue
			}
			other := c.Get(1 - falsePos)

			moved := false
			for k := 2; k < c.Len(); k++ {
				cand := c.Get(k)
				if s.litStatus(cand) != Unsat {
					c.swap(falsePos, k)
					newKey := cand.Negation()
					s.wl.watches[newKey] = append(s.wl.watches[newKey], idx)
					moved = true
					break
				}
			}
			if moved {
				continue
			}
			switch s.litStatus(other) {
			case Sat:
				keep = append(keep, idx)
			case Indet:
				s.assign(other, s.currentLevel(), idx)
				keep = append(keep, idx)
			case Unsat:
				keep = append(keep, idx)
				s.wl.watches[lit] = append(keep, ws[i+1:]...)
				return idx
			}
		}
		s.wl.watches[lit] = keep
	}
	return noReason
}
