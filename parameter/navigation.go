// Package parameter groups the typed tunables the navigation core and
// its collaborators are built against, the way the teacher's
// parameter/navigation.go groups flow-field recompute cadence.
package parameter

// Chunk resolution (spec §2). Typical RTS chunk: 64×64 tiles.
const (
	FieldResR = 64
	FieldResC = 64
)

// Cost encoding (spec §3).
const (
	CostMin        uint8 = 1
	CostImpassable uint8 = 255
)

// MaxFactions bounds the per-tile faction occupancy bitfield
// (NavChunk.factions, spec §3).
const MaxFactions = 16

// MaxPortalsPerChunk bounds NavChunk.Portals (spec §3).
const MaxPortalsPerChunk = 64

// SearchBuffer is the world-unit AABB inflation applied around a chunk
// when resolving an ENEMIES target (spec §4.2).
const SearchBuffer = 64.0

// QueueCapacity bounds the priority queue (spec §4.1): at most one entry
// per tile in a chunk, so R*C is always sufficient.
const QueueCapacity = FieldResR * FieldResC

// BresenhamSlopeScale is the integer quantization factor applied to the
// float corner→target slope before walking the shadow line (spec §4.6).
// Not a contract — any integer-Bresenham variant reproducing the same
// tile set is conformant (spec §9); kept at the value the original
// engine used so the scenario-5 tile set in spec §8 matches exactly.
const BresenhamSlopeScale = 1000
