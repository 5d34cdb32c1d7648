package ports

import "github.com/lixenwraith/navcore/core"

// MemEntityIndex is a reference EntityIndex: a dense linear scan over
// two parallel slices (descriptors and positions) grown by append. It
// exists for tests and cmd/navdebug, not as a production spatial index —
// a real one buckets by chunk the way the teacher's
// engine/spatial_grid.go buckets by grid cell, trading an O(1)
// insert/remove for an O(entities-in-chunk) query. It builds neither
// that bucketing nor fixed-size slots: an insert can grow the slices.
type MemEntityIndex struct {
	entities   []EntityDesc
	positions  []xz
	playerMask FactionMask
}

type xz struct{ x, z float64 }

// NewMemEntityIndex creates an empty index.
func NewMemEntityIndex(playerMask FactionMask) *MemEntityIndex {
	return &MemEntityIndex{playerMask: playerMask}
}

// Put inserts or replaces the entity uid at (x, z) with the given
// descriptor. desc.ID is overwritten with uid.
func (m *MemEntityIndex) Put(uid EntityID, x, z float64, desc EntityDesc) {
	desc.ID = uid
	for i := range m.entities {
		if m.entities[i].ID == uid {
			m.entities[i] = desc
			m.positions[i] = xz{x, z}
			return
		}
	}
	m.entities = append(m.entities, desc)
	m.positions = append(m.positions, xz{x, z})
}

// Remove deletes uid from the index, if present.
func (m *MemEntityIndex) Remove(uid EntityID) {
	for i := range m.entities {
		if m.entities[i].ID == uid {
			last := len(m.entities) - 1
			m.entities[i] = m.entities[last]
			m.positions[i] = m.positions[last]
			m.entities = m.entities[:last]
			m.positions = m.positions[:last]
			return
		}
	}
}

func (m *MemEntityIndex) EntsInRect(bounds core.Area, out []EntityDesc) int {
	n := 0
	for i, p := range m.positions {
		if p.x >= bounds.MinX && p.x <= bounds.MaxX && p.z >= bounds.MinZ && p.z <= bounds.MaxZ {
			if n < len(out) {
				out[n] = m.entities[i]
			}
			n++
		}
	}
	return n
}

func (m *MemEntityIndex) EntsInCircle(cx, cz, radius float64, out []EntityDesc) int {
	r2 := radius * radius
	n := 0
	for i, p := range m.positions {
		dx, dz := p.x-cx, p.z-cz
		if dx*dx+dz*dz <= r2 {
			if n < len(out) {
				out[n] = m.entities[i]
			}
			n++
		}
	}
	return n
}

func (m *MemEntityIndex) GetXZ(uid EntityID) (x, z float64, ok bool) {
	for i := range m.entities {
		if m.entities[i].ID == uid {
			return m.positions[i].x, m.positions[i].z, true
		}
	}
	return 0, 0, false
}

func (m *MemEntityIndex) GetFactionID(uid EntityID) int32 {
	for i := range m.entities {
		if m.entities[i].ID == uid {
			return m.entities[i].FactionID
		}
	}
	return -1
}

func (m *MemEntityIndex) FactionPlayerMask() FactionMask {
	return m.playerMask
}
