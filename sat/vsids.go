package sat

// varHeap orders unassigned variables by decreasing VSIDS activity so the
// solver's decision step (run, in solver.go) can always pop the most
// active one. It is a minimum-heap over the *negation* of activity,
// following the same percolate-up/percolate-down structure as MiniSat's
// mtl/Heap.h (also the basis of gophersat's own solver/queue.go), but
// pared down to the handful of operations the branching loop actually
// calls: insert, removeMin, decrease and contains. Rebuild-from-scratch
// and increase/update, which that operation never needs, are dropped
// rather than carried as unused generality.
type varHeap struct {
	activity []float64 // Owned by the solver; varHeap only ever reads it.
	pos      []int     // pos[v] = index of v in order, or -1 if absent.
	order    []int
}

func newVarHeap(activity []float64) varHeap {
	h := varHeap{activity: activity, pos: make([]int, len(activity))}
	for v := range activity {
		h.pos[v] = -1
	}
	for v := range activity {
		h.insert(v)
	}
	return h
}

// moreActive orders by activity, breaking ties in favor of the lower index.
func (h *varHeap) moreActive(v, w int) bool {
	if h.activity[v] != h.activity[w] {
		return h.activity[v] > h.activity[w]
	}
	return v < w
}

func (h *varHeap) empty() bool { return len(h.order) == 0 }

func (h *varHeap) contains(v int) bool { return v < len(h.pos) && h.pos[v] >= 0 }

func (h *varHeap) set(i, v int) {
	h.order[i] = v
	h.pos[v] = i
}

// siftUp restores the heap invariant above index i after order[i]'s key
// improved (its activity rose relative to its ancestors).
func (h *varHeap) siftUp(i int) {
	v := h.order[i]
	for i > 0 {
		parent := (i - 1) / 2
		if !h.moreActive(v, h.order[parent]) {
			break
		}
		h.set(i, h.order[parent])
		i = parent
	}
	h.set(i, v)
}

// siftDown restores the heap invariant below index i after order[i]'s key
// worsened, or after a fresh value was dropped in from the tail.
func (h *varHeap) siftDown(i int) {
	v := h.order[i]
	n := len(h.order)
	for {
		left, right := 2*i+1, 2*i+2
		best := i
		if left < n && h.moreActive(h.order[left], v) {
			best = left
		}
		if right < n && h.moreActive(h.order[right], h.order[best]) {
			best = right
		}
		if best == i {
			break
		}
		h.set(i, h.order[best])
		i = best
	}
	h.set(i, v)
}

func (h *varHeap) insert(v int) {
	for len(h.pos) <= v {
		h.pos = append(h.pos, -1)
	}
	h.pos[v] = len(h.order)
	h.order = append(h.order, v)
	h.siftUp(h.pos[v])
}

// decrease notifies the heap that v's activity increased (VSIDS bumps
// activity on conflict involvement; the name follows the min-heap
// convention of a "decreasing" key, not the direction activity moved).
func (h *varHeap) decrease(v int) { h.siftUp(h.pos[v]) }

// removeMin pops and returns the variable with the highest activity.
func (h *varHeap) removeMin() int {
	top := h.order[0]
	last := len(h.order) - 1
	h.pos[top] = -1
	if last > 0 {
		h.set(0, h.order[last])
	}
	h.order = h.order[:last]
	if len(h.order) > 1 {
		h.siftDown(0)
	}
	return top
}
