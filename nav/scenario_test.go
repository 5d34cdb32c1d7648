package nav

import (
	"testing"

	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/parameter"
)

// TestScenarioWallColumnDetour reproduces the wall-column end-to-end
// scenario: an impassable column at c=3 for r=0..4, tile target at
// (2,6). Units west of the wall must detour through the row-5..7
// opening before heading east.
func TestScenarioWallColumnDetour(t *testing.T) {
	chunk := NewNavChunk()
	for r := 0; r <= 4; r++ {
		chunk.CostBase[r][3] = parameter.CostImpassable
	}

	integ := &IntegrationField{}
	pq := NewPriorityQueue(parameter.QueueCapacity)
	target := core.Coord{R: 2, C: 6}
	BuildIntegration(chunk, []core.Coord{target}, -1, 0, false, integ, pq)

	flow := &FlowField{}
	DeriveFlow(chunk, integ, -1, 0, flow)

	cases := []struct {
		tile core.Coord
		want core.FlowDir
	}{
		{core.Coord{R: 2, C: 0}, core.DirS},
		{core.Coord{R: 2, C: 2}, core.DirS},
		{core.Coord{R: 5, C: 2}, core.DirE},
	}
	for _, c := range cases {
		if got := flow.Dir[c.tile.R][c.tile.C]; got != c.want {
			t.Errorf("Dir[%v] = %v, want %v", c.tile, got, c.want)
		}
	}
}

// TestScenarioPortalTargetFixupPointsNorth reproduces the portal-target
// end-to-end scenario: a portal spanning (0,3)-(0,5) connected to the
// chunk above. After fix-up the portal's own tiles point N, and a tile
// directly south of the portal on an otherwise open field also routes N.
func TestScenarioPortalTargetFixupPointsNorth(t *testing.T) {
	chunk := NewNavChunk()
	portal := &Portal{
		Chunk:     core.ChunkCoord{R: 5, C: 5},
		Endpoints: [2]core.Coord{{R: 0, C: 3}, {R: 0, C: 5}},
		Connected: &Portal{Chunk: core.ChunkCoord{R: 4, C: 5}},
	}
	chunk.Portals = []Portal{*portal}

	seeds := ResolveTarget(PortalTarget{Portal: &chunk.Portals[0]}, chunk, -1, false, Deps{}, nil)

	integ := &IntegrationField{}
	pq := NewPriorityQueue(parameter.QueueCapacity)
	BuildIntegration(chunk, seeds, -1, 0, false, integ, pq)

	flow := &FlowField{}
	DeriveFlow(chunk, integ, -1, 0, flow)

	if ok := FixupPortal(&chunk.Portals[0], flow); !ok {
		t.Fatalf("FixupPortal returned false for a portal with a cardinal-adjacent connected chunk")
	}

	for c := 3; c <= 5; c++ {
		if got := flow.Dir[0][c]; got != core.DirN {
			t.Errorf("Dir[0][%d] = %v, want N after fix-up", c, got)
		}
	}
	if got := flow.Dir[7][4]; got != core.DirN {
		t.Errorf("Dir[7][4] = %v, want N", got)
	}
}
