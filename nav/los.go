package nav

import (
	"fmt"
	"math"

	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/parameter"
	"github.com/lixenwraith/navcore/ports"
)

// LOSCell is one tile's visibility state (spec §3). Both flags start
// false; visible marks a tile reachable from the target by a monotone
// BFS, wavefront_blocked marks a tile on a shadow line cast from a
// detected corner.
type LOSCell struct {
	Visible          bool
	WavefrontBlocked bool
}

// LOSField is the per-chunk visibility result of one LOSPropagator run
// (spec §3). Invariant upheld by PropagateLOS: after padding, no cell
// has both Visible and WavefrontBlocked set.
type LOSField struct {
	Chunk core.ChunkCoord
	Field [parameter.FieldResR][parameter.FieldResC]LOSCell
}

// PropagateLOS computes field for selfChunk (spec §4.6).
//
// Case A — selfChunk is the destination chunk of the path: pass prev as
// nil; the wavefront seeds at targetTile.
//
// Case B — selfChunk is not the destination: prev must be the
// already-computed LOS field of the immediate predecessor chunk on the
// path. Exactly one of N/S/E/W must separate prev.Chunk from selfChunk;
// PropagateLOS copies the shared edge, redraws shadow lines for any
// blocked cell it inherits, and seeds the wavefront at every inherited
// visible cell.
//
// targetWorldX/Z is the destination tile's world-space center (map_pos
// in spec §6), used as the shadow-line anchor regardless of which
// chunk is currently propagating.
func PropagateLOS(
	chunk *NavChunk,
	mq ports.MapQuery,
	selfChunk core.ChunkCoord,
	targetTile core.Coord,
	targetWorldX, targetWorldZ float64,
	isDestChunk bool,
	prev *LOSField,
	field *LOSField,
	pq *PriorityQueue,
) {
	*field = LOSField{Chunk: selfChunk}
	var integ [parameter.FieldResR][parameter.FieldResC]float32
	for r := 0; r < parameter.FieldResR; r++ {
		for c := 0; c < parameter.FieldResC; c++ {
			integ[r][c] = CostInfinite
		}
	}
	pq.Reset()

	if isDestChunk {
		field.Field[targetTile.R][targetTile.C].Visible = true
		integ[targetTile.R][targetTile.C] = 0
		pq.Push(0, targetTile)
	} else {
		if prev == nil {
			panic("nav: PropagateLOS: non-destination chunk requires a predecessor LOS field")
		}
		copySharedEdge(prev, field, selfChunk)
		for r := 0; r < parameter.FieldResR; r++ {
			for c := 0; c < parameter.FieldResC; c++ {
				cell := field.Field[r][c]
				t := core.Coord{R: uint8(r), C: uint8(c)}
				if cell.WavefrontBlocked {
					drawShadowLine(chunk, mq, selfChunk, targetWorldX, targetWorldZ, t, field)
				} else if cell.Visible {
					integ[r][c] = 0
					pq.Push(0, t)
				}
			}
		}
	}

	for pq.Size() > 0 {
		cur := pq.Pop()
		curCost := integ[cur.R][cur.C]

		for _, d := range neighbors4 {
			nr := int(cur.R) + d[0]
			nc := int(cur.C) + d[1]
			if nr < 0 || nc < 0 || nr >= parameter.FieldResR || nc >= parameter.FieldResC {
				continue
			}
			next := core.Coord{R: uint8(nr), C: uint8(nc)}

			if field.Field[nr][nc].WavefrontBlocked {
				continue
			}

			if chunk.CostBase[nr][nc] == parameter.CostImpassable || chunk.Blockers[nr][nc] > 0 {
				if isLOSCorner(chunk, next) {
					drawShadowLine(chunk, mq, selfChunk, targetWorldX, targetWorldZ, next, field)
				}
				continue
			}

			total := curCost + 1
			if total < integ[nr][nc] {
				integ[nr][nc] = total
				field.Field[nr][nc].Visible = true
				pq.Push(total, next)
			}
		}
	}

	padLOS(field)
}

// copySharedEdge copies the single row or column prev and self share
// into field, per spec §4.6 Case B.
func copySharedEdge(prev, field *LOSField, selfChunk core.ChunkCoord) {
	dr := int(selfChunk.R) - int(prev.Chunk.R)
	dc := int(selfChunk.C) - int(prev.Chunk.C)
	const lastR = parameter.FieldResR - 1
	const lastC = parameter.FieldResC - 1

	switch {
	case dr == -1 && dc == 0: // self is north of prev
		for c := 0; c < parameter.FieldResC; c++ {
			field.Field[lastR][c] = prev.Field[0][c]
		}
	case dr == 1 && dc == 0: // self is south of prev
		for c := 0; c < parameter.FieldResC; c++ {
			field.Field[0][c] = prev.Field[lastR][c]
		}
	case dr == 0 && dc == 1: // self is east of prev
		for r := 0; r < parameter.FieldResR; r++ {
			field.Field[r][0] = prev.Field[r][lastC]
		}
	case dr == 0 && dc == -1: // self is west of prev
		for r := 0; r < parameter.FieldResR; r++ {
			field.Field[r][lastC] = prev.Field[r][0]
		}
	default:
		panic(fmt.Sprintf("nav: PropagateLOS: %v is not exactly one chunk step from predecessor %v", selfChunk, prev.Chunk))
	}
}

func isPassableRaw(chunk *NavChunk, r, c int) bool {
	if r < 0 || c < 0 || r >= parameter.FieldResR || c >= parameter.FieldResC {
		return false
	}
	return chunk.CostBase[r][c] != parameter.CostImpassable && chunk.Blockers[r][c] == 0
}

// isLOSCorner reports whether the impassable tile t has open ground on
// at least one side of either axis (spec §4.6): a passable/impassable
// asymmetry between its two row-neighbors, or between its two
// column-neighbors, where "asymmetry" includes both neighbors being
// passable. A strict XOR (one neighbor passable, the other not) finds
// the ends of a wall but misses an isolated single-tile obstacle, whose
// neighbors on both axes are passable on both sides — exactly spec §8
// scenario 5's single blocker, which the spec's own prose says must
// cast a shadow line. Treating "not both impassable" as the corner
// condition on either axis resolves that tension and still finds
// wall-end corners the strict XOR caught.
func isLOSCorner(chunk *NavChunk, t core.Coord) bool {
	r, c := int(t.R), int(t.C)
	horizOpen := (r-1 >= 0 && isPassableRaw(chunk, r-1, c)) || (r+1 < parameter.FieldResR && isPassableRaw(chunk, r+1, c))
	vertOpen := (c-1 >= 0 && isPassableRaw(chunk, r, c-1)) || (c+1 < parameter.FieldResC && isPassableRaw(chunk, r, c+1))
	return horizOpen || vertOpen
}

func signOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// drawShadowLine walks a Bresenham line outward from corner, marking
// every visited tile WavefrontBlocked, per spec §4.6's exact step
// formula (preserved verbatim, including the engine's sign convention
// for row growth vs. +Z).
func drawShadowLine(chunk *NavChunk, mq ports.MapQuery, selfChunk core.ChunkCoord, targetX, targetZ float64, corner core.Coord, field *LOSField) {
	cornerX, cornerZ := mq.TileBounds(selfChunk, corner)
	slopeX := targetX - cornerX
	slopeZ := targetZ - cornerZ

	scale := float64(parameter.BresenhamSlopeScale)
	dx := math.Abs(slopeX) * scale
	dy := -math.Abs(slopeZ) * scale
	sx := signOf(slopeX)
	sy := -signOf(slopeZ)
	err := dx + dy

	r, c := int(corner.R), int(corner.C)
	for r >= 0 && c >= 0 && r < parameter.FieldResR && c < parameter.FieldResC {
		field.Field[r][c].WavefrontBlocked = true
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c += sx
		}
		if e2 <= dx {
			err += dx
			r += sy
		}
		if sx == 0 && sy == 0 {
			break
		}
	}
}

// padLOS clears Visible on the 3x3 neighborhood of every
// WavefrontBlocked cell (spec §4.6), producing a one-tile conservative
// shadow border so visible ∧ wavefront_blocked never holds after
// propagation (spec §3's invariant).
func padLOS(field *LOSField) {
	var blocked [parameter.FieldResR][parameter.FieldResC]bool
	for r := 0; r < parameter.FieldResR; r++ {
		for c := 0; c < parameter.FieldResC; c++ {
			blocked[r][c] = field.Field[r][c].WavefrontBlocked
		}
	}
	for r := 0; r < parameter.FieldResR; r++ {
		for c := 0; c < parameter.FieldResC; c++ {
			if !blocked[r][c] {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					nr, nc := r+dr, c+dc
					if nr < 0 || nc < 0 || nr >= parameter.FieldResR || nc >= parameter.FieldResC {
						continue
					}
					field.Field[nr][nc].Visible = false
				}
			}
		}
	}
}
