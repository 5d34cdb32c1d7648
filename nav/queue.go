package nav

import "github.com/lixenwraith/navcore/core"

// pqEntry is one slot in PriorityQueue's backing array.
type pqEntry struct {
	prio  float32
	coord core.Coord
}

// PriorityQueue is the min-heap over (Coord, priority) the integration
// builder expands from (spec §4.1). Bounded by R*C (parameter.QueueCapacity),
// so it never needs to grow beyond the chunk's tile count; stable
// ordering of equal-priority entries is not required (spec §4.3's
// tie-break note — cost arithmetic is integer-exact so the resulting
// integration field doesn't depend on pop order among ties).
//
// This is the teacher's navigation/flowfield.go minHeap (array-backed
// binary heap, sift up/down), extended with the linear-probe Contains
// the source's priority queue uses to avoid re-inserting an
// already-queued coordinate — container/heap (the stdlib's heap
// interface) doesn't expose that probe, so the hand-rolled heap stays
// hand-rolled rather than being replaced (see DESIGN.md).
type PriorityQueue struct {
	entries []pqEntry
}

// NewPriorityQueue creates an empty queue with capacity cap.
func NewPriorityQueue(capacity int) *PriorityQueue {
	return &PriorityQueue{entries: make([]pqEntry, 0, capacity)}
}

// Reset empties the queue for reuse across calls, avoiding reallocation.
func (q *PriorityQueue) Reset() {
	q.entries = q.entries[:0]
}

// Size returns the number of queued entries.
func (q *PriorityQueue) Size() int {
	return len(q.entries)
}

// Push inserts c at priority prio.
func (q *PriorityQueue) Push(prio float32, c core.Coord) {
	q.entries = append(q.entries, pqEntry{prio: prio, coord: c})
	q.siftUp(len(q.entries) - 1)
}

// Pop removes and returns the minimum-priority coordinate. Undefined on
// an empty queue; callers check Size() first.
func (q *PriorityQueue) Pop() core.Coord {
	top := q.entries[0]
	last := len(q.entries) - 1
	q.entries[0] = q.entries[last]
	q.entries = q.entries[:last]
	if len(q.entries) > 0 {
		q.siftDown(0)
	}
	return top.coord
}

// Contains reports whether any queued coordinate c2 satisfies
// pred(c2, c). The linear probe is intentional (spec §4.1): queue sizes
// are bounded by R*C (typically 4096), and the "already queued" check
// this supports only needs equality of coordinates, not priorities.
func (q *PriorityQueue) Contains(pred func(a, b core.Coord) bool, c core.Coord) bool {
	for _, e := range q.entries {
		if pred(e.coord, c) {
			return true
		}
	}
	return false
}

// ContainsCoord is the common case of Contains: is c already queued,
// by plain coordinate equality.
func (q *PriorityQueue) ContainsCoord(c core.Coord) bool {
	return q.Contains(coordEqual, c)
}

func coordEqual(a, b core.Coord) bool { return a.Equal(b) }

func (q *PriorityQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.entries[parent].prio <= q.entries[i].prio {
			break
		}
		q.entries[parent], q.entries[i] = q.entries[i], q.entries[parent]
		i = parent
	}
}

func (q *PriorityQueue) siftDown(i int) {
	n := len(q.entries)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && q.entries[right].prio < q.entries[left].prio {
			smallest = right
		}
		if q.entries[i].prio <= q.entries[smallest].prio {
			break
		}
		q.entries[i], q.entries[smallest] = q.entries[smallest], q.entries[i]
		i = smallest
	}
}
