package nav

import (
	"fmt"

	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/parameter"
	"github.com/lixenwraith/navcore/ports"
)

// FieldTarget is the tagged variant a flow field is computed toward
// (spec §3, §4.2). Per spec §9's design note, this is a closed sum type
// (an unexported marker method) with one concrete struct per variant,
// not a class hierarchy — TargetResolver type-switches over it.
type FieldTarget interface {
	fieldTarget()
}

// TileTarget seeds a single tile.
type TileTarget struct {
	Tile core.Coord
}

// PortalTarget seeds every passable tile spanned by a portal.
type PortalTarget struct {
	Portal *Portal
}

// PortalMaskTarget seeds the union of every portal selected by Mask,
// where bit i selects chunk-local portal i (spec §4.2).
type PortalMaskTarget struct {
	Mask uint64
}

// EnemiesTarget seeds every tile under a hostile, combatable,
// fog-visible entity near chunk (spec §3, §4.2).
type EnemiesTarget struct {
	Chunk     core.ChunkCoord
	MapPos    core.Vec3
	FactionID int32
}

func (TileTarget) fieldTarget()       {}
func (PortalTarget) fieldTarget()     {}
func (PortalMaskTarget) fieldTarget() {}
func (EnemiesTarget) fieldTarget()    {}

// Deps bundles the read-only collaborators TargetResolver consults
// (spec §6). Entities/Diplomacy/Fog are only required when resolving an
// EnemiesTarget.
type Deps struct {
	Entities  ports.EntityIndex
	Diplomacy ports.DiplomacyTable
	Fog       ports.FogIndex
	Map       ports.MapQuery
}

// ResolveTarget converts target into an initial frontier of passable
// seed tiles within chunk, appending to out and returning it (spec
// §4.2). ignoreBlock skips the passability check for TILE, PORTAL and
// PORTAL_MASK targets: a TILE target is emitted even on CostImpassable
// terrain, while a CostImpassable portal tile still panics. ENEMIES
// resolution ignores ignoreBlock.
func ResolveTarget(
	target FieldTarget,
	chunk *NavChunk,
	factionID int32,
	ignoreBlock bool,
	deps Deps,
	out []core.Coord,
) []core.Coord {
	switch t := target.(type) {
	case TileTarget:
		return resolveTile(t.Tile, chunk, factionID, ignoreBlock, deps, out)
	case PortalTarget:
		return resolvePortal(t.Portal, chunk, factionID, ignoreBlock, deps, out)
	case PortalMaskTarget:
		return resolvePortalMask(t.Mask, chunk, factionID, ignoreBlock, deps, out)
	case EnemiesTarget:
		return resolveEnemies(t, chunk, factionID, deps, out)
	default:
		panic(fmt.Sprintf("nav: unknown FieldTarget variant %T", target))
	}
}

func enemyMask(deps Deps, factionID int32) ports.FactionMask {
	if factionID < 0 || deps.Diplomacy == nil {
		return 0
	}
	return deps.Diplomacy.EnemyFactions(factionID)
}

func resolveTile(tile core.Coord, chunk *NavChunk, factionID int32, ignoreBlock bool, deps Deps, out []core.Coord) []core.Coord {
	if ignoreBlock || chunk.Passable(tile, factionID, enemyMask(deps, factionID)) {
		return append(out, tile)
	}
	return out
}

func resolvePortal(p *Portal, chunk *NavChunk, factionID int32, ignoreBlock bool, deps Deps, out []core.Coord) []core.Coord {
	tiles := p.Tiles(nil)
	enemies := enemyMask(deps, factionID)
	for _, t := range tiles {
		if chunk.CostBase[t.R][t.C] == parameter.CostImpassable {
			panic(fmt.Sprintf("nav: portal tile %v is impassable in CostBase (invariant violated)", t))
		}
		if ignoreBlock || chunk.Passable(t, factionID, enemies) {
			out = append(out, t)
		}
	}
	return out
}

func resolvePortalMask(mask uint64, chunk *NavChunk, factionID int32, ignoreBlock bool, deps Deps, out []core.Coord) []core.Coord {
	for i := 0; i < 64 && i < len(chunk.Portals); i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		out = resolvePortal(&chunk.Portals[i], chunk, factionID, ignoreBlock, deps, out)
	}
	return out
}

func resolveEnemies(t EnemiesTarget, chunk *NavChunk, factionID int32, deps Deps, out []core.Coord) []core.Coord {
	if deps.Entities == nil || deps.Map == nil {
		return out
	}

	bounds := deps.Map.ChunkBounds(t.Chunk).Inflate(parameter.SearchBuffer)

	// On-stack-sized scratch buffer (spec §5). No big-stack check is made
	// before this allocation; ports.Scheduler is not consulted.
	var scratch [512]ports.EntityDesc
	n := deps.Entities.EntsInRect(bounds, scratch[:])
	if n > len(scratch) {
		// More candidates than the scratch buffer holds: re-query into a
		// heap-allocated buffer sized to fit. Rare path (spec §5 expects
		// the common case to fit on-stack).
		buf := make([]ports.EntityDesc, n)
		n = deps.Entities.EntsInRect(bounds, buf)
		return resolveEnemiesFrom(buf[:n], t, chunk, factionID, deps, out)
	}
	return resolveEnemiesFrom(scratch[:n], t, chunk, factionID, deps, out)
}

func resolveEnemiesFrom(cands []ports.EntityDesc, t EnemiesTarget, chunk *NavChunk, factionID int32, deps Deps, out []core.Coord) []core.Coord {
	playerMask := deps.Entities.FactionPlayerMask()

	marked := make(map[core.Coord]struct{})
	rows, cols := parameter.FieldResR, parameter.FieldResC

	for _, e := range cands {
		if e.FactionID == factionID {
			continue
		}
		if !e.Combatable {
			continue
		}
		if deps.Diplomacy == nil || deps.Diplomacy.GetDiplomacyState(factionID, e.FactionID) != ports.DiplomacyAtWar {
			continue
		}
		if deps.Fog != nil && !deps.Fog.ObjVisible(ports.FogMask(playerMask), e.OBB) {
			continue
		}

		if e.IsBuilding {
			markOBBTiles(marked, t.Chunk, e.OBB, deps.Map, rows, cols)
		} else {
			x, z, ok := deps.Entities.GetXZ(e.ID)
			if !ok {
				continue
			}
			markDiscTiles(marked, t.Chunk, x, z, e.SelectionRadius, deps.Map, rows, cols)
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coord := core.Coord{R: uint8(r), C: uint8(c)}
			if _, ok := marked[coord]; !ok {
				continue
			}
			if chunk.Passable(coord, factionID, enemyMask(deps, factionID)) {
				out = append(out, coord)
			}
		}
	}
	return out
}

func markOBBTiles(marked map[core.Coord]struct{}, chunk core.ChunkCoord, obb ports.OBB, mq ports.MapQuery, rows, cols int) {
	// Conservative axis-aligned bound of the rotated box; good enough
	// for tile marking since navigation costs are per-tile, not
	// sub-tile precise.
	cos, sin := cosSin(obb.RotationRadians)
	ext := absF(obb.HalfX*cos) + absF(obb.HalfZ*sin)
	extZ := absF(obb.HalfX*sin) + absF(obb.HalfZ*cos)
	markRect(marked, chunk, obb.CenterX-ext, obb.CenterZ-extZ, obb.CenterX+ext, obb.CenterZ+extZ, mq, rows, cols)
}

func markDiscTiles(marked map[core.Coord]struct{}, chunk core.ChunkCoord, cx, cz, radius float64, mq ports.MapQuery, rows, cols int) {
	markRect(marked, chunk, cx-radius, cz-radius, cx+radius, cz+radius, mq, rows, cols)
}

// markRect marks every tile whose center falls in [minX,maxX]x[minZ,maxZ]
// by scanning the chunk's tile grid and querying world centers via mq.
// A production map query would invert this (world rect -> tile rect)
// directly; this keeps the MapQuery surface to the two methods nav/
// calls (TileBounds here, ChunkBounds in resolveEnemies), per
// ports.MapQuery's doc comment.
func markRect(marked map[core.Coord]struct{}, chunk core.ChunkCoord, minX, minZ, maxX, maxZ float64, mq ports.MapQuery, rows, cols int) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coord := core.Coord{R: uint8(r), C: uint8(c)}
			x, z := mq.TileBounds(chunk, coord)
			if x >= minX && x <= maxX && z >= minZ && z <= maxZ {
				marked[coord] = struct{}{}
			}
		}
	}
}

func cosSin(radians float64) (cos, sin float64) {
	return fastCos(radians), fastSin(radians)
}
