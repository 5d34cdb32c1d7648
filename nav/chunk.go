package nav

import (
	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/parameter"
	"github.com/lixenwraith/navcore/ports"
)

// IslandNone is the sentinel island label for a tile with no
// connectivity assignment yet (spec §3).
const IslandNone uint16 = 0

// Portal is a run of tiles along one chunk edge connected to a matching
// run in a neighbor chunk (spec §3). Portal tiles are always passable in
// CostBase — callers establishing portals must uphold that invariant;
// the core only asserts it (spec §4.2).
type Portal struct {
	Chunk     core.ChunkCoord
	Endpoints [2]core.Coord
	Connected *Portal
}

// Tiles appends every coordinate in the inclusive rectangle spanned by
// Endpoints to out and returns it. Endpoints describe an axis-aligned
// run: either the rows match (a horizontal run along the top or bottom
// edge) or the columns match (a vertical run along the left or right
// edge).
func (p *Portal) Tiles(out []core.Coord) []core.Coord {
	a, b := p.Endpoints[0], p.Endpoints[1]
	r0, r1 := minInt(int(a.R), int(b.R)), maxInt(int(a.R), int(b.R))
	c0, c1 := minInt(int(a.C), int(b.C)), maxInt(int(a.C), int(b.C))
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			out = append(out, core.Coord{R: uint8(r), C: uint8(c)})
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Layer indexes a chunk's per-layer navigation data (e.g. ground, air).
type Layer uint8

// NavChunk is the per-(chunk, layer) static and dynamic navigation data
// (spec §3). Fixed-size R×C arrays, matching the teacher's
// allocation-averse style (engine/spatial_grid.go's fixed-capacity
// Cell) — a chunk's footprint is bounded and known up front, so there is
// no reason to pay for a slice header per row.
type NavChunk struct {
	CostBase     [parameter.FieldResR][parameter.FieldResC]uint8
	Blockers     [parameter.FieldResR][parameter.FieldResC]uint16
	Factions     [parameter.MaxFactions][parameter.FieldResR][parameter.FieldResC]bool
	Islands      [parameter.FieldResR][parameter.FieldResC]uint16
	LocalIslands [parameter.FieldResR][parameter.FieldResC]uint16
	Portals      []Portal
}

// NewNavChunk returns a chunk with every tile at CostMin, no blockers,
// no occupancy, and IslandNone everywhere. Callers overwrite CostBase
// and re-run island labeling (outside this core's scope) after loading
// real terrain.
func NewNavChunk() *NavChunk {
	nc := &NavChunk{}
	for r := 0; r < parameter.FieldResR; r++ {
		for c := 0; c < parameter.FieldResC; c++ {
			nc.CostBase[r][c] = parameter.CostMin
		}
	}
	return nc
}

// Passable reports whether tile t is traversable for factionID (spec
// §4.2): cost_base[t] != IMPASSABLE AND blockers[t] == 0, except that a
// tile occupied only by enemy factions of factionID is passable
// regardless of blockers. factionID < 0 (NONE) skips the enemy carve-out.
func (nc *NavChunk) Passable(t core.Coord, factionID int32, enemies ports.FactionMask) bool {
	r, c := t.R, t.C
	if nc.CostBase[r][c] == parameter.CostImpassable {
		return false
	}
	if nc.Blockers[r][c] == 0 {
		return true
	}
	if factionID < 0 {
		return false
	}
	return nc.onlyEnemyOccupied(t, enemies)
}

// onlyEnemyOccupied reports whether every faction occupying t is a
// member of enemies and at least one faction occupies it.
func (nc *NavChunk) onlyEnemyOccupied(t core.Coord, enemies ports.FactionMask) bool {
	any := false
	for f := 0; f < parameter.MaxFactions; f++ {
		if !nc.Factions[f][t.R][t.C] {
			continue
		}
		any = true
		if enemies&(1<<uint(f)) == 0 {
			return false
		}
	}
	return any
}
