package region

import (
	"testing"

	"github.com/lixenwraith/navcore/ports"
)

func TestAddDuplicateNameRejected(t *testing.T) {
	m := NewManager()
	if !m.AddCircle("camp", 0, 0, 10) {
		t.Fatalf("first AddCircle should succeed")
	}
	if m.AddCircle("camp", 5, 5, 10) {
		t.Errorf("duplicate name should be rejected")
	}
	if m.AddRectangle("camp", 0, 0, 2, 2) {
		t.Errorf("duplicate name should be rejected across shapes too")
	}
}

func TestAddRemoveLeavesNoResidue(t *testing.T) {
	m := NewManager()
	m.AddCircle("n", 0, 0, 5)
	if !m.Remove("n") {
		t.Fatalf("remove should succeed for existing region")
	}
	if m.Remove("n") {
		t.Errorf("second remove of same name should fail")
	}
	if _, _, ok := m.GetPos("n"); ok {
		t.Errorf("GetPos should fail after removal")
	}
	if ents := m.GetEnts("n"); ents != nil {
		t.Errorf("GetEnts should be nil after removal, got %v", ents)
	}
}

func TestMissingNameOperationsFail(t *testing.T) {
	m := NewManager()
	if m.SetPos("ghost", 1, 1) {
		t.Errorf("SetPos on missing region should fail")
	}
	if m.ContainsEnt("ghost", 1) {
		t.Errorf("ContainsEnt on missing region should be false")
	}
}

func TestUpdateEmitsEnterAndExit(t *testing.T) {
	idx := ports.NewMemEntityIndex(0)
	idx.Put(1, 0, 0, ports.EntityDesc{FactionID: 1})

	m := NewManager()
	m.AddCircle("home", 0, 0, 5)

	evs := m.Update(idx)
	if len(evs) != 1 || evs[0].Kind != ports.RegionEntered || evs[0].Entity != 1 {
		t.Fatalf("expected one ENTERED event, got %+v", evs)
	}
	if !m.ContainsEnt("home", 1) {
		t.Errorf("entity should be inside region after entering")
	}

	// No movement: second tick produces no events.
	if evs := m.Update(idx); len(evs) != 0 {
		t.Errorf("expected no events on stable tick, got %+v", evs)
	}

	// Move entity outside the radius.
	idx.Put(1, 100, 100, ports.EntityDesc{FactionID: 1})
	evs = m.Update(idx)
	if len(evs) != 1 || evs[0].Kind != ports.RegionExited || evs[0].Entity != 1 {
		t.Fatalf("expected one EXITED event, got %+v", evs)
	}
	if m.ContainsEnt("home", 1) {
		t.Errorf("entity should no longer be inside region")
	}
}

func TestRectangleRegionBounds(t *testing.T) {
	idx := ports.NewMemEntityIndex(0)
	idx.Put(1, 3, 3, ports.EntityDesc{})
	idx.Put(2, 10, 10, ports.EntityDesc{})

	m := NewManager()
	m.AddRectangle("box", 0, 0, 8, 8) // spans [-4,4] on each axis

	m.Update(idx)
	if !m.ContainsEnt("box", 1) {
		t.Errorf("entity inside rectangle should be contained")
	}
	if m.ContainsEnt("box", 2) {
		t.Errorf("entity outside rectangle should not be contained")
	}
}
