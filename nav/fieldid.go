package nav

import (
	"fmt"

	"github.com/lixenwraith/navcore/core"
)

// FieldID is the stably-composed 64-bit identity of a (chunk, target,
// layer) triple (spec §4.8), used by a caller-owned flow-field cache
// (out of scope here) as a cache key.
//
// Bit layout, high to low:
//
//	[63:60] layer           (4 bits)
//	[59:56] target tag      (4 bits)
//	[55:16] per-tag payload (40 bits)
//	[15:8]  chunk.r
//	[7:0]   chunk.c
type FieldID uint64

const (
	tagTile uint64 = iota
	tagPortal
	tagPortalMask
	tagEnemies
)

const (
	layerShift   = 60
	tagShift     = 56
	payloadShift = 16
	payloadMask  = (uint64(1) << 40) - 1
)

// ComputeFieldID derives the FieldID for (chunk, target, layer) (spec
// §4.8, the flow_field_id operation of spec §6).
//
// PORTAL_MASK is the one variant that cannot be injectively embedded
// in the 40-bit payload alongside the rest of the ID (a 64-bit mask
// does not fit 40 bits): it is FNV-1a folded into the payload instead.
// This is a deliberate, bounded simplification — spec §4.8 only
// requires the ID serve as a cache key for a caller-owned cache, not a
// mathematically bijective encoding of the full mask space (see
// DESIGN.md).
func ComputeFieldID(chunk core.ChunkCoord, target FieldTarget, layer Layer) FieldID {
	var tag, payload uint64

	switch t := target.(type) {
	case TileTarget:
		tag = tagTile
		payload = (uint64(t.Tile.R) << 32) | (uint64(t.Tile.C) << 24)
	case PortalTarget:
		tag = tagPortal
		payload = portalEndpointPayload(t.Portal)
	case PortalMaskTarget:
		tag = tagPortalMask
		payload = fnv1a64(t.Mask) & payloadMask
	case EnemiesTarget:
		tag = tagEnemies
		payload = (uint64(uint32(t.FactionID)) << 8) & payloadMask
	default:
		panic(fmt.Sprintf("nav: ComputeFieldID: unknown FieldTarget variant %T", target))
	}

	id := uint64(layer&0xF) << layerShift
	id |= (tag & 0xF) << tagShift
	id |= (payload & payloadMask) << payloadShift
	id |= uint64(chunk.R) << 8
	id |= uint64(chunk.C)
	return FieldID(id)
}

func portalEndpointPayload(p *Portal) uint64 {
	a, b := p.Endpoints[0], p.Endpoints[1]
	v := uint64(a.R)<<24 | uint64(a.C)<<16 | uint64(b.R)<<8 | uint64(b.C)
	return v << 8
}

// fnv1a64 hashes mask's 8 bytes, low byte first, with 64-bit FNV-1a,
// used only to spread PORTAL_MASK's 64 bits across the 40-bit payload
// (ComputeFieldID keeps the low 40 bits of the hash).
func fnv1a64(mask uint64) uint64 {
	const (
		offsetBasis = 14695981039346656037
		prime       = 1099511628211
	)
	h := uint64(offsetBasis)
	for i := 0; i < 8; i++ {
		b := byte(mask >> (8 * i))
		h ^= uint64(b)
		h *= prime
	}
	return h
}

// Layer extracts the layer field from an id (flow_field_layer, spec §6).
func (id FieldID) Layer() Layer {
	return Layer(uint64(id) >> layerShift & 0xF)
}

// Chunk extracts the chunk coordinate from an id.
func (id FieldID) Chunk() core.ChunkCoord {
	v := uint64(id)
	return core.ChunkCoord{R: uint8(v >> 8), C: uint8(v)}
}
