// Package ports types the collaborator interfaces the navigation core
// consumes (spec §6) and never implements itself: entity/position index,
// map, scheduler, diplomacy, fog. The core takes these as plain
// interfaces (spec §9: "use a sum type with methods, not inheritance" —
// the same discipline applies to collaborators: accept interfaces,
// don't reach for a concrete engine type).
package ports

import "github.com/lixenwraith/navcore/core"

// EntityID identifies an entity in the collaborating entity system.
type EntityID uint64

// DiplomacyState is the relationship between two factions, queried by
// TargetResolver when filtering an ENEMIES frontier (spec §4.2).
type DiplomacyState uint8

const (
	DiplomacyNeutral DiplomacyState = iota
	DiplomacyAllied
	DiplomacyAtWar
)

// FactionMask is a bitmask over faction IDs 0..63, used both for
// NavChunk.Factions occupancy and for G_GetEnemyFactions results.
type FactionMask uint64

// FogMask is the union of player-controlled fog-of-war visibility masks
// consulted by TargetResolver (spec §4.2).
type FogMask uint64

// OBB is an oriented bounding box in world XZ space: center, half
// extents along its own axes, and a rotation in radians. Buildings use
// it to mark every tile under their footprint during ENEMIES resolution.
type OBB struct {
	CenterX, CenterZ float64
	HalfX, HalfZ     float64
	RotationRadians  float64
}

// EntityDesc is what TargetResolver needs to know about one candidate
// entity returned by EntityIndex.EntsInRect, already filtered enough to
// decide relevance but not yet faction/diplomacy/fog filtered.
type EntityDesc struct {
	ID              EntityID
	FactionID       int32
	Combatable      bool
	IsBuilding      bool
	SelectionRadius float64 // units: used when !IsBuilding
	OBB             OBB     // used when IsBuilding
}

// EntityIndex is the position/selection index collaborator (spec §6).
type EntityIndex interface {
	// EntsInRect writes every entity whose position lies in the AABB
	// bounds into out, up to len(out), and returns the total number of
	// matches, which can exceed len(out).
	EntsInRect(bounds core.Area, out []EntityDesc) int
	// EntsInCircle does the same for every entity within radius of
	// (cx, cz).
	EntsInCircle(cx, cz, radius float64, out []EntityDesc) int
	// GetXZ returns the world XZ position of uid.
	GetXZ(uid EntityID) (x, z float64, ok bool)
	// GetFactionID returns uid's faction, or -1 if uid is unknown.
	GetFactionID(uid EntityID) int32
	// FactionPlayerMask returns the bitmask of player-controlled factions.
	FactionPlayerMask() FactionMask
}

// FogIndex answers fog-of-war visibility queries (spec §6).
type FogIndex interface {
	// ObjVisible reports whether obb is visible under the union of the
	// fog state selected by mask.
	ObjVisible(mask FogMask, obb OBB) bool
}

// DiplomacyTable answers faction relationship queries (spec §6).
type DiplomacyTable interface {
	GetDiplomacyState(a, b int32) DiplomacyState
	// EnemyFactions returns the bitmask of factions at war with f
	// (G_GetEnemyFactions in spec §4.2).
	EnemyFactions(f int32) FactionMask
}

// MapQuery answers tile/chunk geometry queries (spec §6). The
// navigation core itself only needs tile_bounds/chunk_bounds to convert
// between tile coordinates and world space for Bresenham geometry
// (spec §4.6) and AABB construction (spec §4.2). The richer surface
// (tile_desc_for_point_2d, tile_relative_desc, tile_all_under_*) is not
// typed here: TargetResolver marks the tiles under an EntityDesc's
// OBB or SelectionRadius itself, by testing tile centers from
// TileBounds.
type MapQuery interface {
	// TileBounds returns the world-space center of tile within chunk,
	// honoring the engine's column-sign convention (spec §9:
	// x_offset = -(chunk.c * chunk_x_dim)).
	TileBounds(chunk core.ChunkCoord, tile core.Coord) (centerX, centerZ float64)
	// ChunkBounds returns the world-space AABB of chunk.
	ChunkBounds(chunk core.ChunkCoord) core.Area
	// Resolution returns the chunk tile grid dimensions (rows, cols).
	Resolution() (rows, cols int)
}

// Scheduler reports whether the caller runs on a large-stack worker
// (spec §5, §6). Nothing in nav/ calls it: the ENEMIES target path
// allocates its on-stack entity-descriptor buffer (512 entries) without
// checking UsingBigStack.
type Scheduler interface {
	UsingBigStack() bool
}

// RegionEventKind distinguishes the two events a region emits.
type RegionEventKind uint8

const (
	RegionEntered RegionEventKind = iota
	RegionExited
)

// RegionEvent is one ENTERED_REGION/EXITED_REGION occurrence (spec §6),
// carrying an owned payload instead of the source engine's cross-tick
// string arguments (spec §9's design note).
type RegionEvent struct {
	Kind   RegionEventKind
	Region string
	Entity EntityID
}

// RegionService is the region collaborator named in spec §2/§6: named
// 2D areas tracking entity occupancy, emitting enter/exit events each
// tick. Out of scope as a hard problem (its interesting work is the
// same spatial bucketing the entity index already does); typed here at
// contract level so navigation-core callers have something concrete to
// hand events to.
type RegionService interface {
	// AddCircle registers a circular region; false on name collision.
	AddCircle(name string, cx, cz, radius float64) bool
	// AddRectangle registers a rectangular region; false on name collision.
	AddRectangle(name string, cx, cz, xlen, zlen float64) bool
	// Remove deletes a region by name; false if not found.
	Remove(name string) bool
	// SetPos moves a region's center; false if not found.
	SetPos(name string, cx, cz float64) bool
	// GetPos returns a region's center; false if not found.
	GetPos(name string) (cx, cz float64, ok bool)
	// GetEnts returns the entities currently inside a region.
	GetEnts(name string) []EntityID
	// ContainsEnt reports whether e is currently inside region name.
	ContainsEnt(name string, e EntityID) bool
	// Update recomputes occupancy for every region against idx and
	// returns the enter/exit events generated this tick.
	Update(idx EntityIndex) []RegionEvent
}
