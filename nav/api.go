// Package nav implements the chunked flow-field pathfinding and
// line-of-sight core (integration fields, flow derivation, target
// resolution, LOS propagation, and the degenerate-case fallback
// builders) that the rest of an RTS engine drives through the
// collaborator interfaces in ports.
package nav

import (
	"fmt"

	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/ports"
)

// NavPrivate bundles the per-(chunk, layer) state an update call reads
// and writes: the chunk's static/dynamic navigation data, scratch
// buffers reused across calls to avoid per-call allocation, and the
// caller's local island id when a fallback pass needs it.
type NavPrivate struct {
	Chunk         *NavChunk
	Integration   *IntegrationField
	Queue         *PriorityQueue
	LocalIslandID uint16
}

// NewNavPrivate allocates a NavPrivate for chunk, with a queue of
// initial capacity queueCapacity (parameter.QueueCapacity covers a
// chunk's tile count, spec §4.1).
func NewNavPrivate(chunk *NavChunk, queueCapacity int) *NavPrivate {
	return &NavPrivate{
		Chunk:       chunk,
		Integration: &IntegrationField{},
		Queue:       NewPriorityQueue(queueCapacity),
	}
}

// FlowFieldID is flow_field_id (spec §6): the stable cache key for a
// (chunk, target, layer) triple.
func FlowFieldID(chunk core.ChunkCoord, target FieldTarget, layer Layer) FieldID {
	return ComputeFieldID(chunk, target, layer)
}

// FlowFieldLayer is flow_field_layer (spec §6): extracts the layer a
// FieldID was computed for.
func FlowFieldLayer(id FieldID) Layer {
	return id.Layer()
}

// FlowFieldInit is flow_field_init (spec §6): returns a field for chunk
// with every tile at core.DirNone, the documented initial state (spec
// §3). Callers must call this before first use or between
// mutually-exclusive target changes (spec §7): a field left at +∞
// integration keeps whatever direction the buffer held on entry.
func FlowFieldInit(chunk core.ChunkCoord) *FlowField {
	return &FlowField{}
}

// FlowFieldUpdate is flow_field_update (spec §6): resolves target into
// seed tiles, builds the integration field, derives flow, and applies
// the portal fix-up pass. flow is left unmodified at any tile the
// wavefront never reaches.
func FlowFieldUpdate(priv *NavPrivate, factionID int32, target FieldTarget, deps Deps, flow *FlowField) {
	enemies := enemyMask(deps, factionID)

	seeds := ResolveTarget(target, priv.Chunk, factionID, false, deps, nil)
	BuildIntegration(priv.Chunk, seeds, factionID, enemies, false, priv.Integration, priv.Queue)
	DeriveFlow(priv.Chunk, priv.Integration, factionID, enemies, flow)

	switch t := target.(type) {
	case PortalTarget:
		FixupPortal(t.Portal, flow)
	case PortalMaskTarget:
		for i := range priv.Chunk.Portals {
			if t.Mask&(1<<uint(i)) != 0 {
				FixupPortal(&priv.Chunk.Portals[i], flow)
			}
		}
	}
}

// FlowFieldUpdateAsync dispatches FlowFieldUpdate on its own goroutine
// via core.Go, matching spec §5's model of a job scheduler running many
// N_FlowFieldUpdate jobs in parallel on disjoint (chunk, layer, target)
// triples: priv and flow must be exclusive to this call for its
// duration. done is invoked with any recovered panic, or nil on success;
// it is the caller's job-pool responsibility to serialize done across
// jobs if needed.
func FlowFieldUpdateAsync(priv *NavPrivate, factionID int32, target FieldTarget, deps Deps, flow *FlowField, done func(error)) {
	core.Go(func() {
		var jobErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					jobErr = fmt.Errorf("nav: FlowFieldUpdateAsync: %v", r)
					core.HandleCrash(r)
				}
			}()
			FlowFieldUpdate(priv, factionID, target, deps, flow)
		}()
		if done != nil {
			done(jobErr)
		}
	})
}

// FlowFieldUpdateToNearestPathable is
// flow_field_update_to_nearest_pathable (spec §6, §4.7).
func FlowFieldUpdateToNearestPathable(chunk *NavChunk, start core.Coord, factionID int32, enemies ports.FactionMask, flow *FlowField, integ *IntegrationField, pq *PriorityQueue) {
	UpdateToNearestPathable(chunk, start, factionID, enemies, flow, integ, pq)
}

// FlowFieldUpdateIslandToNearest is flow_field_update_island_to_nearest
// (spec §6, §4.7).
func FlowFieldUpdateIslandToNearest(priv *NavPrivate, factionID int32, target FieldTarget, deps Deps, flow *FlowField) {
	enemies := enemyMask(deps, factionID)
	naturalSeeds := ResolveTarget(target, priv.Chunk, factionID, false, deps, nil)
	UpdateIslandToNearest(priv.Chunk, naturalSeeds, priv.LocalIslandID, factionID, enemies, target, deps, flow, priv.Integration, priv.Queue)
}

// LOSFieldCreate is los_field_create (spec §6).
func LOSFieldCreate(
	chunk *NavChunk,
	mq ports.MapQuery,
	selfChunk core.ChunkCoord,
	targetTile core.Coord,
	targetWorldX, targetWorldZ float64,
	isDestChunk bool,
	prev *LOSField,
	pq *PriorityQueue,
) *LOSField {
	if !isDestChunk && prev == nil {
		panic(fmt.Sprintf("nav: LOSFieldCreate: chunk %v is not the destination and no predecessor field was supplied", selfChunk))
	}
	field := &LOSField{}
	PropagateLOS(chunk, mq, selfChunk, targetTile, targetWorldX, targetWorldZ, isDestChunk, prev, field, pq)
	return field
}
