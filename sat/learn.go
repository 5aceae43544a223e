package sat

// analyze implements 1-UIP conflict analysis, resolving the conflicting
// clause backward along the trail until exactly one literal assigned at
// the current decision level remains, per spec.md §4.E step 4 and
// SPEC_FULL.md's Open Question 1 resolution. It is a direct port of
// gophersat's solver/learn.go learnClause, adapted to this package's
// clauseIdx-addressed arena and to Var/Lit's zero-indexed encoding.
//
// The literal-0-skip below (skipping any variable bound at decision level
// 0) mirrors gophersat's own optimization: such a literal can never be
// unassigned again, so keeping it in the learned clause would only waste
// space.
//
// A single-literal result means the learned "clause" is just the asserting
// literal implied unconditionally; the caller assigns it at level 0
// instead of allocating a unit clause (learned == nil signals this case).
func (s *solver) analyze(confl clauseIdx) (learned *Clause, unitLit Lit, btLevel int) {
	seen := make([]bool, s.nbVars)
	var tail []Lit // Literals resolved to a level below the current one.
	pathC := 0
	var p Lit
	pDefined := false
	index := len(s.trail) - 1

	for {
		c := s.arena.get(confl)
		for i := 0; i < c.Len(); i++ {
			q := c.Get(i)
			if pDefined && q == p {
				continue
			}
			v := q.Var()
			if seen[v] || s.varLevel[v] == 0 {
				continue
			}
			seen[v] = true
			s.bumpVarActivity(v)
			if s.varLevel[v] >= s.currentLevel() {
				pathC++
			} else {
				tail = append(tail, q)
			}
		}

		for !seen[s.trail[index].Var()] {
			index--
		}
		p = s.trail[index]
		pDefined = true
		confl = s.reason[p.Var()]
		seen[p.Var()] = false
		pathC--
		index--

		if pathC <= 0 {
			break
		}
	}

	uip := p.Negation()
	if len(tail) == 0 {
		return nil, uip, 0
	}

	lits := make([]Lit, len(tail)+1)
	lits[0] = uip
	copy(lits[1:], tail)
	s.sortByLevelDesc(lits[1:])

	c := newLearnedClause(lits)
	c.computeLBD(s.varLevel)
	return c, 0, s.varLevel[lits[1].Var()]
}
