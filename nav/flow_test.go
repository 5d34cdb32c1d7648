package nav

import (
	"testing"

	"github.com/lixenwraith/navcore/core"
)

func buildOpenFieldFlow(t *testing.T, target core.Coord) *FlowField {
	t.Helper()
	chunk := NewNavChunk()
	integ := &IntegrationField{}
	pq := NewPriorityQueue(64)
	BuildIntegration(chunk, []core.Coord{target}, -1, 0, false, integ, pq)
	flow := &FlowField{}
	DeriveFlow(chunk, integ, -1, 0, flow)
	return flow
}

func TestDeriveFlowOpenFieldScenario(t *testing.T) {
	flow := buildOpenFieldFlow(t, core.Coord{R: 4, C: 4})

	cases := []struct {
		tile core.Coord
		want core.FlowDir
	}{
		{core.Coord{R: 0, C: 0}, core.DirSE},
		{core.Coord{R: 4, C: 0}, core.DirE},
		{core.Coord{R: 4, C: 4}, core.DirNone},
	}
	for _, c := range cases {
		if got := flow.Dir[c.tile.R][c.tile.C]; got != c.want {
			t.Errorf("Dir[%v] = %v, want %v", c.tile, got, c.want)
		}
	}
}

func TestDeriveFlowSeedTileIsNone(t *testing.T) {
	target := core.Coord{R: 4, C: 4}
	flow := buildOpenFieldFlow(t, target)
	if got := flow.Dir[target.R][target.C]; got != core.DirNone {
		t.Fatalf("seed tile direction = %v, want NONE", got)
	}
}

func TestDeriveFlowNeverPointsToHigherCost(t *testing.T) {
	chunk := NewNavChunk()
	chunk.CostBase[3][2] = 255
	chunk.CostBase[2][3] = 255

	integ := &IntegrationField{}
	pq := NewPriorityQueue(64)
	target := core.Coord{R: 6, C: 6}
	BuildIntegration(chunk, []core.Coord{target}, -1, 0, false, integ, pq)

	flow := &FlowField{}
	DeriveFlow(chunk, integ, -1, 0, flow)

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			dir := flow.Dir[r][c]
			if dir == core.DirNone {
				continue
			}
			if integ.Cost[r][c] >= CostInfinite {
				continue
			}
			dr, dc := dir.Delta()
			nr, nc := r+dr, c+dc
			if integ.Cost[nr][nc] >= integ.Cost[r][c] {
				t.Errorf("Dir[%d][%d]=%v points to a neighbor with cost %v >= own cost %v",
					r, c, dir, integ.Cost[nr][nc], integ.Cost[r][c])
			}
		}
	}
}

func TestDeriveFlowDiagonalRequiresBothCardinalsOpen(t *testing.T) {
	chunk := NewNavChunk()
	// Block the cardinal tile directly north of (5,4) so a unit there
	// cannot legally cut the NE corner to reach (4,5).
	chunk.CostBase[4][4] = 255

	integ := &IntegrationField{}
	pq := NewPriorityQueue(64)
	target := core.Coord{R: 2, C: 6}
	BuildIntegration(chunk, []core.Coord{target}, -1, 0, false, integ, pq)

	flow := &FlowField{}
	DeriveFlow(chunk, integ, -1, 0, flow)

	dir := flow.Dir[5][4]
	if dir == core.DirNE {
		t.Fatalf("Dir[5][4] picked NE despite a blocked flanking corner")
	}
}

func TestFixupPortalPointsAcrossBoundary(t *testing.T) {
	flow := &FlowField{}
	p := &Portal{
		Chunk:     core.ChunkCoord{R: 1, C: 1},
		Endpoints: [2]core.Coord{{R: 0, C: 3}, {R: 0, C: 5}},
		Connected: &Portal{Chunk: core.ChunkCoord{R: 0, C: 1}},
	}

	if ok := FixupPortal(p, flow); !ok {
		t.Fatalf("FixupPortal returned false for a valid cardinal neighbor")
	}
	for c := 3; c <= 5; c++ {
		if got := flow.Dir[0][c]; got != core.DirN {
			t.Errorf("Dir[0][%d] = %v, want N", c, got)
		}
	}
}
