package nav

import (
	"testing"

	"github.com/lixenwraith/navcore/core"
)

func blockThreeByThree(chunk *NavChunk, centerR, centerC int) {
	for r := centerR - 1; r <= centerR+1; r++ {
		for c := centerC - 1; c <= centerC+1; c++ {
			chunk.Blockers[r][c] = 1
		}
	}
}

func TestUpdateToNearestPathableEscapesBlocker(t *testing.T) {
	chunk := NewNavChunk()
	blockThreeByThree(chunk, 3, 3)

	flow := &FlowField{}
	integ := &IntegrationField{}
	pq := NewPriorityQueue(64)
	start := core.Coord{R: 3, C: 3}

	UpdateToNearestPathable(chunk, start, -1, 0, flow, integ, pq)

	if flow.Dir[3][3] == core.DirNone {
		t.Fatalf("flow at a trapped start should point toward the perimeter, got NONE")
	}

	for _, perimeter := range []core.Coord{{R: 1, C: 3}, {R: 5, C: 3}, {R: 3, C: 1}, {R: 3, C: 5}} {
		if got := integ.Cost[perimeter.R][perimeter.C]; got != 0 {
			t.Errorf("Cost[%v] = %v, want 0 (a seed on the walkable perimeter)", perimeter, got)
		}
	}
}

func TestUpdateToNearestPathableNoOpWhenAlreadyPathable(t *testing.T) {
	chunk := NewNavChunk()
	flow := &FlowField{}
	integ := &IntegrationField{}
	pq := NewPriorityQueue(64)
	start := core.Coord{R: 3, C: 3}

	UpdateToNearestPathable(chunk, start, -1, 0, flow, integ, pq)

	if flow.Dir[3][3] != core.DirNone {
		t.Fatalf("an already-pathable start must leave flow untouched, got %v", flow.Dir[3][3])
	}
}
