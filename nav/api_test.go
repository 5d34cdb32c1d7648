package nav

import (
	"testing"
	"time"

	"github.com/lixenwraith/navcore/core"
)

func TestFlowFieldUpdateResolvesTileTarget(t *testing.T) {
	chunk := NewNavChunk()
	priv := NewNavPrivate(chunk, 64)
	flow := FlowFieldInit(core.ChunkCoord{})

	FlowFieldUpdate(priv, -1, TileTarget{Tile: core.Coord{R: 4, C: 4}}, Deps{}, flow)

	if got := flow.Dir[0][0]; got != core.DirSE {
		t.Errorf("Dir[0][0] = %v, want SE", got)
	}
	if got := flow.Dir[4][4]; got != core.DirNone {
		t.Errorf("Dir[4][4] = %v, want NONE", got)
	}
}

func TestFlowFieldUpdateAsyncCompletesWithoutError(t *testing.T) {
	chunk := NewNavChunk()
	priv := NewNavPrivate(chunk, 64)
	flow := FlowFieldInit(core.ChunkCoord{})

	done := make(chan error, 1)
	FlowFieldUpdateAsync(priv, -1, TileTarget{Tile: core.Coord{R: 4, C: 4}}, Deps{}, flow, func(err error) {
		done <- err
	})

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("FlowFieldUpdateAsync reported an error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("FlowFieldUpdateAsync did not complete in time")
	}

	if got := flow.Dir[0][0]; got != core.DirSE {
		t.Errorf("Dir[0][0] = %v, want SE", got)
	}
}

func TestLOSFieldCreatePanicsWithoutPredecessor(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic when isDestChunk is false and prev is nil")
		}
	}()
	chunk := NewNavChunk()
	pq := NewPriorityQueue(64)
	LOSFieldCreate(chunk, unitMapQuery{}, core.ChunkCoord{}, core.Coord{R: 7, C: 7}, -7, 7, false, nil, pq)
}
