package nav

import (
	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/parameter"
	"github.com/lixenwraith/navcore/ports"
)

// UpdateToNearestPathable handles the degenerate case where start is
// impassable (spec §4.7): BFS out from start over 4-neighbors collecting
// every passable tile first encountered, then runs integration in
// nonpass mode seeded from that set, and derives flow only at tiles with
// finite, nonzero integration. A unit trapped inside a dynamic blocker
// is given a flow toward the nearest walkable perimeter.
//
// If start is itself passable, this is a no-op: flow is left untouched,
// matching spec §7's "returns without modifying flow" boundary case for
// an already-pathable start.
func UpdateToNearestPathable(chunk *NavChunk, start core.Coord, factionID int32, enemies ports.FactionMask, flow *FlowField, integ *IntegrationField, pq *PriorityQueue) {
	if chunk.Passable(start, factionID, enemies) {
		return
	}

	seeds := bfsPassableFrontier(chunk, start)
	if len(seeds) == 0 {
		return
	}

	BuildIntegration(chunk, seeds, factionID, enemies, true, integ, pq)

	for r := 0; r < parameter.FieldResR; r++ {
		for c := 0; c < parameter.FieldResC; c++ {
			if integ.Cost[r][c] >= CostInfinite || integ.Cost[r][c] == 0 {
				continue
			}
			best, bestCost := core.DirNone, integ.Cost[r][c]
			for _, d := range core.DiagonalScan {
				dr, dc := d.Delta()
				nr, nc := r+dr, c+dc
				if nr < 0 || nc < 0 || nr >= parameter.FieldResR || nc >= parameter.FieldResC ||
					(d.IsDiagonal() && (integ.Cost[nr][c] >= CostInfinite || integ.Cost[r][nc] >= CostInfinite)) {
					continue
				}
				if integ.Cost[nr][nc] < bestCost {
					best, bestCost = d, integ.Cost[nr][nc]
				}
			}
			flow.Dir[r][c] = best
		}
	}
}

// bfsPassableFrontier walks a 4-connected BFS from start (which may
// itself be impassable) and collects every passable tile first reached,
// without crossing through other passable tiles (it only needs the
// border of the impassable pocket start sits in).
func bfsPassableFrontier(chunk *NavChunk, start core.Coord) []core.Coord {
	var seeds []core.Coord
	visited := make(map[core.Coord]bool)
	queue := []core.Coord{start}
	visited[start] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range neighbors4 {
			nr := int(cur.R) + d[0]
			nc := int(cur.C) + d[1]
			if nr < 0 || nc < 0 || nr >= parameter.FieldResR || nc >= parameter.FieldResC {
				continue
			}
			next := core.Coord{R: uint8(nr), C: uint8(nc)}
			if visited[next] {
				continue
			}
			visited[next] = true

			if chunk.CostBase[nr][nc] == parameter.CostImpassable {
				continue
			}
			if chunk.Blockers[nr][nc] > 0 {
				// Still impassable for this purpose: not recorded as a seed,
				// but expanded through, since a blocker pocket can be wider
				// than one tile.
				queue = append(queue, next)
				continue
			}
			seeds = append(seeds, next)
		}
	}
	return seeds
}

// UpdateIslandToNearest handles a target whose natural seeds do not
// share the caller's local island (spec §4.7): for each natural seed,
// BFS collects tiles in both the caller's local island and the seed's
// global island, keeping only those at minimum Manhattan distance to
// any seed, then runs a normal integration/flow/fix-up pass with the
// reseeded frontier. If that still produces no seeds, target resolution
// is rerun with ignoreBlock = true.
func UpdateIslandToNearest(
	chunk *NavChunk,
	naturalSeeds []core.Coord,
	localIslandID uint16,
	factionID int32,
	enemies ports.FactionMask,
	target FieldTarget,
	deps Deps,
	flow *FlowField,
	integ *IntegrationField,
	pq *PriorityQueue,
) {
	reseed := reseedByIsland(chunk, naturalSeeds, localIslandID)
	if len(reseed) == 0 {
		reseed = ResolveTarget(target, chunk, factionID, true, deps, nil)
	}
	if len(reseed) == 0 {
		return
	}

	BuildIntegration(chunk, reseed, factionID, enemies, false, integ, pq)
	DeriveFlow(chunk, integ, factionID, enemies, flow)

	if pt, ok := target.(PortalTarget); ok {
		FixupPortal(pt.Portal, flow)
	} else if pmt, ok := target.(PortalMaskTarget); ok {
		for i := range chunk.Portals {
			if pmt.Mask&(1<<uint(i)) != 0 {
				FixupPortal(&chunk.Portals[i], flow)
			}
		}
	}
}

// reseedByIsland implements the BFS-with-early-termination search
// described in spec §4.7: each BFS shell strictly increases Manhattan
// distance, so once a shell yields at least one candidate, no later
// (farther) shell can beat it.
func reseedByIsland(chunk *NavChunk, naturalSeeds []core.Coord, localIslandID uint16) []core.Coord {
	var result []core.Coord
	seen := make(map[core.Coord]bool)

	for _, s := range naturalSeeds {
		globalIsland := chunk.Islands[s.R][s.C]
		found := bfsNearestInIsland(chunk, s, localIslandID, globalIsland, seen)
		result = append(result, found...)
	}
	return result
}

func bfsNearestInIsland(chunk *NavChunk, s core.Coord, localIslandID, globalIsland uint16, seen map[core.Coord]bool) []core.Coord {
	type item struct {
		c    core.Coord
		dist int
	}
	visited := map[core.Coord]bool{s: true}
	queue := []item{{s, 0}}

	var shellDist = -1
	var shell []core.Coord

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if chunk.LocalIslands[cur.c.R][cur.c.C] == localIslandID && chunk.Islands[cur.c.R][cur.c.C] == globalIsland {
			if shellDist == -1 {
				shellDist = cur.dist
			}
			if cur.dist == shellDist {
				shell = append(shell, cur.c)
			} else if cur.dist > shellDist {
				break
			}
		}

		if shellDist != -1 && cur.dist >= shellDist {
			continue
		}

		for _, d := range neighbors4 {
			nr := int(cur.c.R) + d[0]
			nc := int(cur.c.C) + d[1]
			if nr < 0 || nc < 0 || nr >= parameter.FieldResR || nc >= parameter.FieldResC {
				continue
			}
			next := core.Coord{R: uint8(nr), C: uint8(nc)}
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, item{next, cur.dist + 1})
		}
	}

	var out []core.Coord
	for _, c := range shell {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
