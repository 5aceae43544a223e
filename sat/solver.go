package sat

import (
	"github.com/crillab/gophercount/cnf"
	"github.com/go-logr/logr"
)

const (
	initRestartThreshold = 100  // Conflicts before the first restart.
	restartGrowth        = 1.5  // Geometric growth factor applied to the threshold after each restart.
	varDecay             = 0.95 // VSIDS increment growth: inc /= varDecay on every conflict.
)

// Stats are statistics about one Solve call. They are informational only,
// mirroring gophersat's solver.Stats, trimmed to what this engine tracks
// (no pseudo-boolean/learned-clause-deletion counters: see DESIGN.md).
type Stats struct {
	NbDecisions     int
	NbConflicts     int
	NbRestarts      int
	NbUnitLearned   int
	NbBinaryLearned int
	NbLearned       int
	AvgLBD          float64 // Running mean LBD of learned clauses; diagnostics only.
}

const noReason = clauseIdx(-1)
const noLevel = -1

// solver is the mutable state of one Solve invocation. Per spec.md §5, no
// instance outlives the call that creates it: watches, learned clauses,
// the trail and VSIDS scores are all owned exclusively here.
type solver struct {
	nbVars int
	arena  *arena
	wl     watchList

	value    []int8     // 0 unassigned, 1 true, -1 false, per var.
	varLevel []int      // Decision level of each var's assignment; noLevel if unassigned.
	reason   []clauseIdx // Antecedent clause of each var's assignment; noReason for decisions/unassigned.

	trail       []Lit
	trailLevels []int // trailLevels[d] = index into trail where level d begins.
	qHead       int   // Index into trail of the next literal to propagate.

	activity []float64
	varInc   float64
	heap     varHeap

	conflictCount    int
	restartThreshold float64

	Stats Stats
	log   logr.Logger
}

// Option configures a Solve call. The zero value of every option is a
// no-op, so Solve(f, hint) with no options behaves exactly as before.
type Option func(*solver)

// WithLogger attaches a structured logger emitting diagnostic events
// (V(1) restarts, V(2) per-conflict detail) during the solve. The
// default, used when no WithLogger option is given, is logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(s *solver) { s.log = log }
}

func newSolver(nbVars int, clauses []Clause, opts []Option) *solver {
	ptrs := make([]*Clause, len(clauses))
	for i := range clauses {
		ptrs[i] = &clauses[i]
	}
	s := &solver{
		nbVars:           nbVars,
		arena:            newArena(ptrs),
		wl:               newWatchList(nbVars),
		value:            make([]int8, nbVars),
		varLevel:         make([]int, nbVars),
		reason:           make([]clauseIdx, nbVars),
		activity:         make([]float64, nbVars),
		varInc:           1.0,
		restartThreshold: initRestartThreshold,
		trailLevels:      []int{0},
		log:              logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	for v := range s.varLevel {
		s.varLevel[v] = noLevel
		s.reason[v] = noReason
	}
	s.heap = newVarHeap(s.activity)
	for i := 0; i < s.arena.nbOriginal; i++ {
		s.wl.attach(clauseIdx(i), s.arena.get(clauseIdx(i)))
	}
	return s
}

func (s *solver) currentLevel() int { return len(s.trailLevels) - 1 }

func (s *solver) litStatus(l Lit) Status {
	v := s.value[l.Var()]
	if v == 0 {
		return Indet
	}
	if (v > 0) == l.IsPositive() {
		return Sat
	}
	return Unsat
}

// assign binds l's variable true at level lvl, recording antecedent r, and
// pushes l onto the trail. The caller is responsible for queuing it for
// propagation.
func (s *solver) assign(l Lit, lvl int, r clauseIdx) {
	v := l.Var()
	if l.IsPositive() {
		s.value[v] = 1
	} else {
		s.value[v] = -1
	}
	s.varLevel[v] = lvl
	s.reason[v] = r
	s.trail = append(s.trail, l)
}

// Solve implements spec.md §4.E's public operation: solve(F, hint) -> bool.
// hint is mutated into a full satisfying assignment on success (pre-bound
// variables in hint are pinned at decision level 0, and remain bound on
// failure too, per the "mutates in place" contract).
func Solve(f *cnf.Formula, hint map[int]bool, opts ...Option) bool {
	clauses := make([]Clause, len(f.Clauses))
	for i, c := range f.Clauses {
		if len(c) == 0 {
			// An empty clause can never be satisfied.
			return false
		}
		lits := make([]Lit, len(c))
		for j, l := range c {
			lits[j] = FromCNF(int(l))
		}
		clauses[i] = *newClause(lits)
	}
	s := newSolver(f.NbVars, clauses, opts)

	conflict := false
	for v, val := range hint {
		idx := Var(v - 1)
		if idx < 0 || int(idx) >= s.nbVars {
			continue
		}
		if !s.forceLevelZero(idx.SignedLit(!val)) {
			conflict = true
		}
	}
	// Original unit clauses are forced the same way as the hint.
	for i := 0; i < s.arena.nbOriginal && !conflict; i++ {
		c := s.arena.get(clauseIdx(i))
		if c.Len() == 1 && !s.forceLevelZero(c.Get(0)) {
			conflict = true
		}
	}
	if conflict {
		return false
	}
	if s.propagate() != noReason {
		return false
	}

	status := s.run()
	if status != Sat {
		return false
	}
	for v := 0; v < s.nbVars; v++ {
		hint[v+1] = s.value[v] > 0
	}
	return true
}

// forceLevelZero binds l at decision level 0, reporting false if l's
// variable was already bound to the opposite polarity.
func (s *solver) forceLevelZero(l Lit) bool {
	if cur := s.value[l.Var()]; cur != 0 {
		return (cur > 0) == l.IsPositive()
	}
	s.assign(l, 0, noReason)
	return true
}

// run is the CDCL main loop described in spec.md §4.E.
func (s *solver) run() Status {
	for {
		if confl := s.propagate(); confl != noReason {
			if s.currentLevel() == 0 {
				return Unsat
			}
			s.Stats.NbConflicts++
			s.conflictCount++
			learned, unitLit, btLevel := s.analyze(confl)
			s.backtrackTo(btLevel)
			if learned == nil {
				s.assign(unitLit, btLevel, noReason)
				s.Stats.NbUnitLearned++
			} else {
				idx := s.arena.addLearned(learned)
				s.wl.attach(idx, learned)
				s.Stats.NbLearned++
				if learned.Len() == 2 {
					s.Stats.NbBinaryLearned++
				}
				s.Stats.AvgLBD = s.Stats.AvgLBD + (float64(learned.lbd)-s.Stats.AvgLBD)/float64(s.Stats.NbLearned)
				assertingLit := learned.Get(0)
				s.reason[assertingLit.Var()] = idx
				s.assign(assertingLit, btLevel, idx)
				s.log.V(2).Info("learned clause", "size", learned.Len(), "lbd", learned.lbd, "backtrackLevel", btLevel)
			}
			s.varInc /= varDecay
			if s.conflictCount >= int(s.restartThreshold) {
				s.restart()
			}
			continue
		}
		if v, ok := s.pickUnassigned(); ok {
			s.Stats.NbDecisions++
			s.trailLevels = append(s.trailLevels, len(s.trail))
			s.assign(Var(v).SignedLit(false), s.currentLevel(), noReason)
			continue
		}
		return Sat
	}
}

// pickUnassigned chooses the unassigned variable with the highest VSIDS
// activity, per spec.md step 5; ties are broken by lowest index, since
// the heap's ordering (varHeap.moreActive) ranks the lower index first
// among equal activities.
func (s *solver) pickUnassigned() (int, bool) {
	for !s.heap.empty() {
		v := s.heap.removeMin()
		if s.value[v] == 0 {
			return v, true
		}
	}
	return 0, false
}

func (s *solver) bumpVarActivity(v Var) {
	s.activity[v] += s.varInc
	if s.activity[v] > 1e100 {
		for i := range s.activity {
			s.activity[i] *= 1e-100
		}
		s.varInc *= 1e-100
	}
	if s.heap.contains(int(v)) {
		s.heap.decrease(int(v))
	}
}

// backtrackTo unassigns every variable bound at a decision level above
// lvl, in trail order from the top, per spec.md step 3.
func (s *solver) backtrackTo(lvl int) {
	cut := len(s.trail)
	if lvl+1 < len(s.trailLevels) {
		cut = s.trailLevels[lvl+1]
	}
	toReinsert := make([]int, 0, len(s.trail)-cut)
	for i := len(s.trail) - 1; i >= cut; i-- {
		v := s.trail[i].Var()
		s.value[v] = 0
		s.varLevel[v] = noLevel
		s.reason[v] = noReason
		toReinsert = append(toReinsert, int(v))
	}
	s.trail = s.trail[:cut]
	if lvl+1 < len(s.trailLevels) {
		s.trailLevels = s.trailLevels[:lvl+1]
	}
	if s.qHead > len(s.trail) {
		s.qHead = len(s.trail)
	}
	for _, v := range toReinsert {
		if !s.heap.contains(v) {
			s.heap.insert(v)
		}
	}
}

// restart unassigns every variable above level 0, clears the trail and
// geometric-scales the restart threshold, per spec.md step 3's restart
// clause. This replaces gophersat's LBD-triggered restart policy (see
// DESIGN.md): spec.md prescribes a fixed geometric schedule instead.
func (s *solver) restart() {
	s.backtrackTo(0)
	s.conflictCount = 0
	s.restartThreshold *= restartGrowth
	s.Stats.NbRestarts++
	s.log.V(1).Info("restart", "nbRestarts", s.Stats.NbRestarts, "nextThreshold", s.restartThreshold)
}
