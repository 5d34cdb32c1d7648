// Package region implements the region subsystem at contract level
// (spec §2, §6): named 2D areas that track which entities currently
// occupy them and emit ENTERED_REGION/EXITED_REGION events once per
// tick. Spec §1 explicitly scopes this out of the hard navigation
// problem ("its interesting work is the same kind of spatial bucketing
// done elsewhere") — this package is the straightforward version good
// enough to exercise ports.RegionService, not the optimized one a real
// engine would bucket by chunk.
package region

import (
	"sort"

	"github.com/lixenwraith/navcore/core"
	"github.com/lixenwraith/navcore/ports"
)

type shape struct {
	isCircle   bool
	cx, cz     float64
	radius     float64 // circle
	xlen, zlen float64 // rectangle
	curr, prev map[ports.EntityID]struct{}
}

// Manager is the reference ports.RegionService implementation. Zero
// value is not usable; use NewManager.
type Manager struct {
	byName map[string]*shape
}

// NewManager creates an empty region registry.
func NewManager() *Manager {
	return &Manager{byName: make(map[string]*shape)}
}

func (m *Manager) AddCircle(name string, cx, cz, radius float64) bool {
	if _, exists := m.byName[name]; exists {
		return false
	}
	m.byName[name] = &shape{
		isCircle: true,
		cx:       cx, cz: cz, radius: radius,
		curr: make(map[ports.EntityID]struct{}),
		prev: make(map[ports.EntityID]struct{}),
	}
	return true
}

func (m *Manager) AddRectangle(name string, cx, cz, xlen, zlen float64) bool {
	if _, exists := m.byName[name]; exists {
		return false
	}
	m.byName[name] = &shape{
		isCircle: false,
		cx:       cx, cz: cz, xlen: xlen, zlen: zlen,
		curr: make(map[ports.EntityID]struct{}),
		prev: make(map[ports.EntityID]struct{}),
	}
	return true
}

func (m *Manager) Remove(name string) bool {
	if _, exists := m.byName[name]; !exists {
		return false
	}
	delete(m.byName, name)
	return true
}

func (m *Manager) SetPos(name string, cx, cz float64) bool {
	s, exists := m.byName[name]
	if !exists {
		return false
	}
	s.cx, s.cz = cx, cz
	return true
}

func (m *Manager) GetPos(name string) (cx, cz float64, ok bool) {
	s, exists := m.byName[name]
	if !exists {
		return 0, 0, false
	}
	return s.cx, s.cz, true
}

func (m *Manager) GetEnts(name string) []ports.EntityID {
	s, exists := m.byName[name]
	if !exists {
		return nil
	}
	out := make([]ports.EntityID, 0, len(s.curr))
	for e := range s.curr {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m *Manager) ContainsEnt(name string, e ports.EntityID) bool {
	s, exists := m.byName[name]
	if !exists {
		return false
	}
	_, ok := s.curr[e]
	return ok
}

func (s *shape) contains(x, z float64) bool {
	if s.isCircle {
		dx, dz := x-s.cx, z-s.cz
		return dx*dx+dz*dz <= s.radius*s.radius
	}
	hx, hz := s.xlen/2, s.zlen/2
	return x >= s.cx-hx && x <= s.cx+hx && z >= s.cz-hz && z <= s.cz+hz
}

// Update re-evaluates occupancy for every region against idx, swaps
// curr into prev, and returns the symmetric-difference events (spec
// §6: "computed via sorted-set symmetric difference between previous
// and current occupancy"). Region names are visited in sorted order,
// and within one region ENTERED events precede EXITED events, each in
// ascending entity id, so event ordering is deterministic across ticks.
func (m *Manager) Update(idx ports.EntityIndex) []ports.RegionEvent {
	names := make([]string, 0, len(m.byName))
	for n := range m.byName {
		names = append(names, n)
	}
	sort.Strings(names)

	var events []ports.RegionEvent
	for _, name := range names {
		s := m.byName[name]

		var radius float64
		if s.isCircle {
			radius = s.radius
		} else {
			hx, hz := s.xlen/2, s.zlen/2
			if hx > hz {
				radius = hx
			} else {
				radius = hz
			}
		}

		buf := make([]ports.EntityDesc, 256)
		n := idx.EntsInRect(core.Area{
			MinX: s.cx - radius, MinZ: s.cz - radius,
			MaxX: s.cx + radius, MaxZ: s.cz + radius,
		}, buf)
		if n > len(buf) {
			buf = make([]ports.EntityDesc, n)
			n = idx.EntsInRect(core.Area{
				MinX: s.cx - radius, MinZ: s.cz - radius,
				MaxX: s.cx + radius, MaxZ: s.cz + radius,
			}, buf)
		}

		s.prev, s.curr = s.curr, make(map[ports.EntityID]struct{}, len(s.prev))
		for i := 0; i < n; i++ {
			x, z, ok := idx.GetXZ(buf[i].ID)
			if !ok || !s.contains(x, z) {
				continue
			}
			s.curr[buf[i].ID] = struct{}{}
		}

		start := len(events)
		for e := range s.curr {
			if _, was := s.prev[e]; !was {
				events = append(events, ports.RegionEvent{Kind: ports.RegionEntered, Region: name, Entity: e})
			}
		}
		for e := range s.prev {
			if _, is := s.curr[e]; !is {
				events = append(events, ports.RegionEvent{Kind: ports.RegionExited, Region: name, Entity: e})
			}
		}
		sub := events[start:]
		sort.Slice(sub, func(i, j int) bool {
			if sub[i].Kind != sub[j].Kind {
				return sub[i].Kind < sub[j].Kind
			}
			return sub[i].Entity < sub[j].Entity
		})
	}
	return events
}
