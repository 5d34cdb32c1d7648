package nav

import (
	"testing"

	"github.com/lixenwraith/navcore/core"
)

func TestPriorityQueuePopsInPriorityOrder(t *testing.T) {
	q := NewPriorityQueue(8)
	q.Push(5, core.Coord{R: 5, C: 0})
	q.Push(1, core.Coord{R: 1, C: 0})
	q.Push(3, core.Coord{R: 3, C: 0})
	q.Push(2, core.Coord{R: 2, C: 0})

	var order []uint8
	for q.Size() > 0 {
		order = append(order, q.Pop().R)
	}

	want := []uint8{1, 2, 3, 5}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestPriorityQueueContains(t *testing.T) {
	q := NewPriorityQueue(8)
	c := core.Coord{R: 2, C: 3}
	if q.ContainsCoord(c) {
		t.Fatalf("empty queue should not contain %v", c)
	}
	q.Push(1, c)
	if !q.ContainsCoord(c) {
		t.Fatalf("queue should contain %v after push", c)
	}
	if q.ContainsCoord(core.Coord{R: 9, C: 9}) {
		t.Fatalf("queue should not contain an unpushed coordinate")
	}
}

func TestPriorityQueueResetReusesBacking(t *testing.T) {
	q := NewPriorityQueue(4)
	q.Push(1, core.Coord{R: 0, C: 0})
	q.Push(2, core.Coord{R: 1, C: 0})
	q.Reset()
	if q.Size() != 0 {
		t.Fatalf("Reset should empty the queue, got size %d", q.Size())
	}
	q.Push(1, core.Coord{R: 2, C: 2})
	if q.Size() != 1 {
		t.Fatalf("queue should be usable after Reset")
	}
}
