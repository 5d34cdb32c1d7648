package nav

import (
	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/parameter"
	"github.com/lixenwraith/navcore/ports"
)

// FlowField holds one 8-way direction per tile, derived from an
// IntegrationField by steepest descent (spec §4.4). The zero value
// (core.DirNone everywhere) is the field's initialized-but-not-yet-built
// state (spec §6's flow_field_init).
type FlowField struct {
	Dir [parameter.FieldResR][parameter.FieldResC]core.FlowDir
}

// cornerDelta is the pair of cardinal offsets flanking a diagonal move,
// used to veto cutting a blocked corner (spec §4.4's corner-safety
// rule): a diagonal step is only legal if both flanking cardinal tiles
// are themselves passable, so a unit can never clip through the corner
// of a wall.
var cornerDelta = map[core.FlowDir][2]core.FlowDir{
	core.DirNE: {core.DirN, core.DirE},
	core.DirSE: {core.DirS, core.DirE},
	core.DirSW: {core.DirS, core.DirW},
	core.DirNW: {core.DirN, core.DirW},
}

// DeriveFlow fills field by steepest-descent search over integ, tile by
// tile, following the §4.4 tie-break order: cardinals (N, S, E, W)
// before diagonals, diagonals scanned NW, NE, SW, SE. A tile whose
// integration cost is CostInfinite is left untouched (spec §4.4: "they
// may belong to other islands a different update pass has already
// populated"), not forced to core.DirNone — a caller accumulating
// several seed passes into one field must not have an earlier pass's
// directions clobbered by a later pass that doesn't reach those tiles.
// A tile with no strictly-lower passable neighbor is written DirNone.
func DeriveFlow(chunk *NavChunk, integ *IntegrationField, factionID int32, enemies ports.FactionMask, field *FlowField) {
	for r := 0; r < parameter.FieldResR; r++ {
		for c := 0; c < parameter.FieldResC; c++ {
			if integ.Cost[r][c] >= CostInfinite {
				continue
			}
			tile := core.Coord{R: uint8(r), C: uint8(c)}
			field.Dir[r][c] = bestDirection(chunk, integ, tile, factionID, enemies)
		}
	}
}

func bestDirection(chunk *NavChunk, integ *IntegrationField, tile core.Coord, factionID int32, enemies ports.FactionMask) core.FlowDir {
	best := core.DirNone
	bestCost := integ.Cost[tile.R][tile.C]

	for _, d := range core.DiagonalScan {
		dr, dc := d.Delta()
		nr, nc := int(tile.R)+dr, int(tile.C)+dc
		if nr < 0 || nc < 0 || nr >= parameter.FieldResR || nc >= parameter.FieldResC {
			continue
		}
		neighbor := core.Coord{R: uint8(nr), C: uint8(nc)}

		if flanks, diagonal := cornerDelta[d]; diagonal {
			if !cardinalOpen(chunk, tile, flanks[0], factionID, enemies) || !cardinalOpen(chunk, tile, flanks[1], factionID, enemies) {
				continue
			}
		}

		if !chunk.Passable(neighbor, factionID, enemies) {
			continue
		}

		cost := integ.Cost[nr][nc]
		if cost < bestCost {
			bestCost = cost
			best = d
		}
	}
	return best
}

func cardinalOpen(chunk *NavChunk, from core.Coord, d core.FlowDir, factionID int32, enemies ports.FactionMask) bool {
	dr, dc := d.Delta()
	nr, nc := int(from.R)+dr, int(from.C)+dc
	if nr < 0 || nc < 0 || nr >= parameter.FieldResR || nc >= parameter.FieldResC {
		return false
	}
	return chunk.Passable(core.Coord{R: uint8(nr), C: uint8(nc)}, factionID, enemies)
}

// FixupPortal overwrites the flow direction of every tile in p with the
// cardinal direction toward p.Connected's chunk (spec §4.5): once two
// chunks' fields are stitched at a portal, the portal tiles themselves
// should point straight across the boundary rather than following
// whatever the local integration wavefront happened to compute, since
// the wavefront on this side of the boundary has no visibility into the
// neighbor chunk's cost layout.
func FixupPortal(p *Portal, field *FlowField) bool {
	if p.Connected == nil {
		return false
	}
	dir, ok := p.Chunk.CardinalTo(p.Connected.Chunk)
	if !ok {
		return false
	}
	tiles := p.Tiles(nil)
	for _, t := range tiles {
		field.Dir[t.R][t.C] = dir
	}
	return true
}
