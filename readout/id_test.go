package readout

import (
	"testing"

	"github.com/larnet/geoid/geo"
	"github.com/larnet/geoid/hier"
)

func TestSharedRoot(t *testing.T) {
	// the readout hierarchy reuses the geometry cryostat ID type verbatim
	var cryo CryostatID = geo.NewCryostatID(3)
	set := TPCsetIDIn(cryo, 1)
	if set.CryostatID != cryo {
		t.Errorf("TPCsetIDIn parent: got %v, want %v", set.CryostatID, cryo)
	}
	if !set.Valid() {
		t.Error("a set built from a valid cryostat should be valid")
	}
}

func TestInvalidAndFirst(t *testing.T) {
	t.Run("TPCsetID", func(t *testing.T) {
		invalid := InvalidTPCsetID()
		if invalid.Valid() || invalid.Cryostat != InvalidIndex || invalid.TPCset != InvalidIndex {
			t.Errorf("InvalidTPCsetID(): got %+v", invalid)
		}
		first := FirstTPCsetID()
		if !first.Valid() || first.Cryostat != 0 || first.TPCset != 0 {
			t.Errorf("FirstTPCsetID(): got %+v", first)
		}
	})
	t.Run("ROPID", func(t *testing.T) {
		invalid := InvalidROPID()
		if invalid.Valid() || invalid.ROP != InvalidIndex {
			t.Errorf("InvalidROPID(): got %+v", invalid)
		}
		first := FirstROPID()
		if !first.Valid() || first.Cryostat != 0 || first.TPCset != 0 || first.ROP != 0 {
			t.Errorf("FirstROPID(): got %+v", first)
		}
	})
	t.Run("seeded from parent", func(t *testing.T) {
		cryo := geo.NewCryostatID(2)
		if got := FirstTPCsetIDIn(cryo); got != NewTPCsetID(2, 0) {
			t.Errorf("FirstTPCsetIDIn: got %v", got)
		}
		if got := FirstROPIDIn(cryo); got != NewROPID(2, 0, 0) {
			t.Errorf("FirstROPIDIn: got %v", got)
		}
		if got := NewTPCsetID(1, 3).FirstROP(); got != NewROPID(1, 3, 0) {
			t.Errorf("TPCsetID.FirstROP: got %v", got)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	if got := NewROPID(1, 2, 3).ParentID(); got != NewTPCsetID(1, 2) {
		t.Errorf("ROPID.ParentID(): got %v, want %v", got, NewTPCsetID(1, 2))
	}
	if got := NewTPCsetID(1, 2).ParentID(); got != geo.NewCryostatID(1) {
		t.Errorf("TPCsetID.ParentID(): got %v, want %v", got, geo.NewCryostatID(1))
	}
}

func TestIndexAt(t *testing.T) {
	id := NewROPID(1, 2, 3)
	want := []Index{1, 2, 3}
	for level, ix := range want {
		if got := id.IndexAt(hier.Level(level)); got != ix {
			t.Errorf("IndexAt(%d): got %d, want %d", level, got, ix)
		}
	}
	if id.IndexAt(ROPLevel) != id.DeepestIndex() {
		t.Error("IndexAt at the type's own level should equal DeepestIndex")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an out-of-range level")
		}
	}()
	id.IndexAt(3)
}

func TestOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b ROPID
	}{
		{"ROP breaks the tie", NewROPID(0, 1, 0), NewROPID(0, 1, 1)},
		{"set dominates ROP", NewROPID(0, 1, 9), NewROPID(0, 2, 0)},
		{"cryostat dominates set", NewROPID(0, 9, 9), NewROPID(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.a.Less(tt.b) || tt.b.Less(tt.a) {
				t.Errorf("%v should sort before %v", tt.a, tt.b)
			}
			if tt.a.Cmp(tt.b) >= 0 || tt.b.Cmp(tt.a) <= 0 {
				t.Error("Cmp should agree with Less")
			}
		})
	}

	id := NewTPCsetID(0, 1)
	if id.Cmp(id) != 0 || !id.Equal(id) || id.Less(id) {
		t.Errorf("%v should compare equal to itself", id)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		id   hier.ID
		want string
	}{
		{NewTPCsetID(1, 3), "C:1 S:3"},
		{NewROPID(1, 3, 0), "C:1 S:3 R:0"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("%T.String(): got %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestSetIndexAt(t *testing.T) {
	id := NewROPID(0, 1, 2)
	id.SetIndexAt(CryostatLevel, 4)
	if id != NewROPID(4, 1, 2) {
		t.Errorf("SetIndexAt root level: got %v", id)
	}
	id.SetDeepestIndex(7)
	if id.ROP != 7 {
		t.Errorf("SetDeepestIndex: got %d, want 7", id.ROP)
	}
}
