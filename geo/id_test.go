package geo

import (
	"testing"

	"github.com/larnet/geoid/hier"
)

func TestCryostatIDValidity(t *testing.T) {
	invalid := InvalidCryostatID()
	if invalid.Valid() {
		t.Error("InvalidCryostatID() should not be valid")
	}
	if invalid.Cryostat != InvalidIndex {
		t.Errorf("InvalidCryostatID() index: got %d, want the invalid sentinel", invalid.Cryostat)
	}

	// index 0 is a legitimate element, not a sentinel
	id := NewCryostatID(0)
	if !id.Valid() {
		t.Error("NewCryostatID(0) should be valid")
	}
	if id.Cryostat != 0 {
		t.Errorf("NewCryostatID(0) index: got %d, want 0", id.Cryostat)
	}

	id.MarkInvalid()
	if id.Valid() {
		t.Error("MarkInvalid should clear validity")
	}
	id.MarkValid()
	if !id.Valid() {
		t.Error("MarkValid should set validity")
	}
}

func TestInvalidIDs(t *testing.T) {
	t.Run("OpDetID", func(t *testing.T) {
		id := InvalidOpDetID()
		if id.Valid() || id.Cryostat != InvalidIndex || id.OpDet != InvalidIndex {
			t.Errorf("InvalidOpDetID(): got %+v, want all indices at the sentinel and validity off", id)
		}
	})
	t.Run("TPCID", func(t *testing.T) {
		id := InvalidTPCID()
		if id.Valid() || id.Cryostat != InvalidIndex || id.TPC != InvalidIndex {
			t.Errorf("InvalidTPCID(): got %+v", id)
		}
	})
	t.Run("PlaneID", func(t *testing.T) {
		id := InvalidPlaneID()
		if id.Valid() || id.Cryostat != InvalidIndex || id.TPC != InvalidIndex || id.Plane != InvalidIndex {
			t.Errorf("InvalidPlaneID(): got %+v", id)
		}
	})
	t.Run("WireID", func(t *testing.T) {
		id := InvalidWireID()
		if id.Valid() || id.Cryostat != InvalidIndex || id.TPC != InvalidIndex ||
			id.Plane != InvalidIndex || id.Wire != InvalidIndex {
			t.Errorf("InvalidWireID(): got %+v", id)
		}
	})
}

func TestFirstIDs(t *testing.T) {
	t.Run("package level", func(t *testing.T) {
		firsts := []hier.ID{
			FirstCryostatID(), FirstOpDetID(), FirstTPCID(), FirstPlaneID(), FirstWireID(),
		}
		for _, id := range firsts {
			if !id.Valid() {
				t.Errorf("%T first value should be valid", id)
			}
			for level := hier.Level(0); level <= id.Level(); level++ {
				if ix := id.IndexAt(level); ix != 0 {
					t.Errorf("%T first value, index at level %d: got %d, want 0", id, level, ix)
				}
			}
		}
	})

	t.Run("seeded from parent", func(t *testing.T) {
		cryo := NewCryostatID(2)
		if got := cryo.FirstTPC(); got != NewTPCID(2, 0) {
			t.Errorf("FirstTPC: got %v", got)
		}
		if got := cryo.FirstOpDet(); got != NewOpDetID(2, 0) {
			t.Errorf("FirstOpDet: got %v", got)
		}
		tpc := NewTPCID(1, 3)
		if got := tpc.FirstPlane(); got != NewPlaneID(1, 3, 0) {
			t.Errorf("FirstPlane: got %v", got)
		}
		if got := tpc.FirstWire(); got != NewWireID(1, 3, 0, 0) {
			t.Errorf("TPCID.FirstWire: got %v", got)
		}
		plane := NewPlaneID(0, 1, 2)
		if got := plane.FirstWire(); got != NewWireID(0, 1, 2, 0) {
			t.Errorf("PlaneID.FirstWire: got %v", got)
		}
		if got := cryo.FirstWire(); got != NewWireID(2, 0, 0, 0) {
			t.Errorf("CryostatID.FirstWire: got %v", got)
		}
	})
}

func TestLevels(t *testing.T) {
	tests := []struct {
		id    hier.ID
		level hier.Level
	}{
		{NewCryostatID(0), CryostatLevel},
		{NewOpDetID(0, 1), OpDetLevel},
		{NewTPCID(0, 1), TPCLevel},
		{NewPlaneID(0, 1, 2), PlaneLevel},
		{NewWireID(0, 1, 2, 3), WireLevel},
	}
	for _, tt := range tests {
		if got := tt.id.Level(); got != tt.level {
			t.Errorf("%T.Level(): got %d, want %d", tt.id, got, tt.level)
		}
	}
}

func TestIndexAt(t *testing.T) {
	id := NewWireID(1, 15, 32, 27)

	want := []Index{1, 15, 32, 27}
	for level, ix := range want {
		if got := id.IndexAt(hier.Level(level)); got != ix {
			t.Errorf("IndexAt(%d): got %d, want %d", level, got, ix)
		}
	}
	if id.IndexAt(id.Level()) != id.DeepestIndex() {
		t.Error("IndexAt at the type's own level should equal DeepestIndex")
	}
	if id.IndexAt(0) != id.Cryostat {
		t.Error("IndexAt(0) should be the root cryostat index")
	}
}

func TestIndexAtOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{"cryostat level 1", func() { NewCryostatID(0).IndexAt(1) }},
		{"TPC level 2", func() { NewTPCID(0, 1).IndexAt(2) }},
		{"wire level 4", func() { NewWireID(0, 1, 2, 3).IndexAt(4) }},
		{"wire set level 4", func() { id := NewWireID(0, 1, 2, 3); id.SetIndexAt(4, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic for an out-of-range level")
				}
			}()
			tt.call()
		})
	}
}

func TestSetIndexAt(t *testing.T) {
	id := NewWireID(1, 15, 32, 27)

	id.SetIndexAt(WireLevel, 28)
	if id != NewWireID(1, 15, 32, 28) {
		t.Errorf("SetIndexAt own level: got %v", id)
	}

	// rewriting an ancestor level preserves the rest of the path
	id.SetIndexAt(TPCLevel, 2)
	if id != NewWireID(1, 2, 32, 28) {
		t.Errorf("SetIndexAt ancestor level: got %v", id)
	}

	id.SetDeepestIndex(0)
	if id.Wire != 0 {
		t.Errorf("SetDeepestIndex: got wire %d, want 0", id.Wire)
	}
}

func TestParentID(t *testing.T) {
	tests := []struct {
		name   string
		got    hier.ID
		parent hier.ID
	}{
		{"wire", NewWireID(1, 15, 32, 27).ParentID(), NewPlaneID(1, 15, 32)},
		{"plane", NewPlaneID(1, 15, 32).ParentID(), NewTPCID(1, 15)},
		{"TPC", NewTPCID(1, 15).ParentID(), NewCryostatID(1)},
		{"opdet", NewOpDetID(1, 5).ParentID(), NewCryostatID(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.parent {
				t.Errorf("ParentID(): got %v, want %v", tt.got, tt.parent)
			}
		})
	}
}

func TestCmpOrdering(t *testing.T) {
	t.Run("wire scenarios", func(t *testing.T) {
		tests := []struct {
			name string
			a, b WireID
		}{
			{"wire breaks the tie", NewWireID(1, 15, 32, 27), NewWireID(1, 15, 32, 28)},
			{"plane dominates wire", NewWireID(1, 15, 31, 28), NewWireID(1, 15, 32, 27)},
			{"cryostat dominates everything", NewWireID(0, 15, 32, 28), NewWireID(1, 15, 32, 26)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if !tt.a.Less(tt.b) {
					t.Errorf("%v should sort before %v", tt.a, tt.b)
				}
				if tt.b.Less(tt.a) {
					t.Errorf("%v should not sort before %v", tt.b, tt.a)
				}
				if tt.a.Equal(tt.b) {
					t.Errorf("%v should not equal %v", tt.a, tt.b)
				}
				if tt.a.Cmp(tt.b) >= 0 {
					t.Errorf("Cmp(%v, %v) should be negative", tt.a, tt.b)
				}
				if tt.b.Cmp(tt.a) <= 0 {
					t.Errorf("Cmp(%v, %v) should be positive", tt.b, tt.a)
				}
			})
		}
	})

	t.Run("reflexivity", func(t *testing.T) {
		id := NewPlaneID(0, 1, 2)
		if id.Cmp(id) != 0 || !id.Equal(id) || id.Less(id) {
			t.Errorf("%v should compare equal to itself", id)
		}
	})

	t.Run("sibling cryostats", func(t *testing.T) {
		if !NewCryostatID(0).Less(NewCryostatID(1)) {
			t.Error("C:0 should sort before C:1")
		}
	})

	t.Run("sibling TPCs dominate", func(t *testing.T) {
		// cryostat 0/TPC 5 sorts before cryostat 1/TPC 0
		if !NewTPCID(0, 5).Less(NewTPCID(1, 0)) {
			t.Error("C:0 T:5 should sort before C:1 T:0")
		}
	})

	t.Run("validity is ignored", func(t *testing.T) {
		a := NewTPCID(0, 1)
		b := a
		b.MarkInvalid()
		if !a.Equal(b) {
			t.Error("Equal should ignore the validity flag")
		}
		if a.Cmp(b) != 0 {
			t.Error("Cmp should ignore the validity flag")
		}
	})

	t.Run("transitivity", func(t *testing.T) {
		a, b, c := NewWireID(0, 2, 1, 9), NewWireID(0, 3, 0, 0), NewWireID(1, 0, 0, 0)
		if !a.Less(b) || !b.Less(c) || !a.Less(c) {
			t.Error("ordering should be transitive across ancestor paths")
		}
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		id   hier.ID
		want string
	}{
		{NewCryostatID(1), "C:1"},
		{NewOpDetID(0, 13), "C:0 O:13"},
		{NewTPCID(1, 15), "C:1 T:15"},
		{NewPlaneID(1, 15, 32), "C:1 T:15 P:32"},
		{NewWireID(1, 15, 32, 27), "C:1 T:15 P:32 W:27"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("%T.String(): got %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestMapKey(t *testing.T) {
	counts := map[WireID]int{}
	counts[NewWireID(0, 1, 2, 3)]++
	counts[NewWireID(0, 1, 2, 3)]++
	counts[NewWireID(0, 1, 2, 4)]++
	if counts[NewWireID(0, 1, 2, 3)] != 2 {
		t.Error("identical wire IDs should hash to the same map key")
	}
	if len(counts) != 2 {
		t.Errorf("map size: got %d, want 2", len(counts))
	}
}

func TestUpcast(t *testing.T) {
	wid := NewWireID(1, 15, 32, 27)
	if wid.PlaneID != NewPlaneID(1, 15, 32) {
		t.Errorf("embedded plane: got %v", wid.PlaneID)
	}
	if wid.TPCID != NewTPCID(1, 15) {
		t.Errorf("embedded TPC: got %v", wid.TPCID)
	}
	if wid.CryostatID != NewCryostatID(1) {
		t.Errorf("embedded cryostat: got %v", wid.CryostatID)
	}
	if wid.Cryostat != 1 {
		t.Errorf("promoted cryostat index: got %d", wid.Cryostat)
	}
}
