package nav

import (
	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/parameter"
	"github.com/lixenwraith/navcore/ports"
)

// CostInfinite marks a tile the integration wavefront never reached
// (spec §4.3): unreachable from any seed tile, either walled off or
// outside the chunk's connected region.
const CostInfinite float32 = 1e9

// IntegrationField holds the accumulated path cost from every tile to
// the nearest seed tile, after Dijkstra relaxation over the chunk's
// 4-connected tile graph (spec §4.3).
type IntegrationField struct {
	Cost [parameter.FieldResR][parameter.FieldResC]float32
}

// neighbors4 are the cardinal offsets the integration wavefront expands
// along — spec §4.3 defines the integration graph as 4-connected,
// leaving diagonal traversal to the flow-derivation pass (spec §4.4).
var neighbors4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// BuildIntegration runs a Dijkstra wavefront from seeds outward over
// chunk, writing the result into field (spec §4.3). Every tile starts
// at CostInfinite; seed tiles start at 0. nonpass, when true, relaxes
// through tiles regardless of passability, entering CostImpassable
// tiles at step cost CostMin and blocked tiles at their CostBase;
// UpdateToNearestPathable uses it to give the tiles of a blocked pocket
// a distance to the pocket's passable border.
//
// field is reset unconditionally; pq is caller-owned scratch reused
// across calls to avoid per-call allocation (mirrors the teacher's
// navigation/flowfield.go reuse of a single heap across frames).
func BuildIntegration(chunk *NavChunk, seeds []core.Coord, factionID int32, enemies ports.FactionMask, nonpass bool, field *IntegrationField, pq *PriorityQueue) {
	for r := 0; r < parameter.FieldResR; r++ {
		for c := 0; c < parameter.FieldResC; c++ {
			field.Cost[r][c] = CostInfinite
		}
	}
	pq.Reset()

	for _, s := range seeds {
		if field.Cost[s.R][s.C] == 0 {
			continue
		}
		field.Cost[s.R][s.C] = 0
		pq.Push(0, s)
	}

	for pq.Size() > 0 {
		cur := pq.Pop()
		curCost := field.Cost[cur.R][cur.C]

		for _, d := range neighbors4 {
			nr := int(cur.R) + d[0]
			nc := int(cur.C) + d[1]
			if nr < 0 || nc < 0 || nr >= parameter.FieldResR || nc >= parameter.FieldResC {
				continue
			}
			next := core.Coord{R: uint8(nr), C: uint8(nc)}

			// Normal mode skips a blocked neighbor outright (leaving it at
			// CostInfinite) rather than relaxing it at step cost 255 as
			// spec §4.3's prose literally describes: a trapped start tile
			// is handled separately by UpdateToNearestPathable, and
			// skipping keeps "fully blocked chunk stays all +∞" (spec §7,
			// §8) true without a magic-cost threshold. This matches the
			// teacher's isBlocked-skip idiom.
			if !nonpass && !chunk.Passable(next, factionID, enemies) {
				continue
			}

			step := float32(chunk.CostBase[nr][nc])
			if step == float32(parameter.CostImpassable) {
				if nonpass {
					step = float32(parameter.CostMin)
				} else {
					continue
				}
			}

			cand := curCost + step
			if cand < field.Cost[nr][nc] {
				field.Cost[nr][nc] = cand
				pq.Push(cand, next)
			}
		}
	}
}
