// Package readout defines the identifiers of the readout hierarchy: groups
// of detector elements sharing electronics.
//
// The hierarchy runs CryostatID -> TPCsetID -> ROPID. The root is the same
// geo.CryostatID type used by the geometry hierarchy; the branches are
// otherwise independent. In particular a TPC set never decomposes into
// TPCIDs, since a set may coalesce the readout channels of several physical
// TPCs.
package readout

import (
	"cmp"
	"fmt"

	"github.com/larnet/geoid/geo"
	"github.com/larnet/geoid/hier"
)

// Index is the index of a readout element among its siblings.
type Index = hier.Index

// InvalidIndex is the sentinel index meaning "no element".
const InvalidIndex = hier.InvalidIndex

// CryostatID is the root of the readout hierarchy: the identical type used
// by the geometry hierarchy, not a duplicate.
type CryostatID = geo.CryostatID

// Levels of the readout hierarchy.
const (
	CryostatLevel hier.Level = 0
	TPCsetLevel   hier.Level = 1
	ROPLevel      hier.Level = 2

	// NLevels is the number of levels in the readout hierarchy.
	NLevels = 3
)

var (
	_ hier.ID        = TPCsetID{}
	_ hier.ID        = ROPID{}
	_ hier.MutableID = (*TPCsetID)(nil)
	_ hier.MutableID = (*ROPID)(nil)
)

// TPCsetID identifies a set of TPCs sharing readout channels with no TPC
// outside the set.
type TPCsetID struct {
	geo.CryostatID
	TPCset Index // index of the TPC set within its cryostat
}

// NewTPCsetID returns the valid ID of TPC set s in cryostat c.
func NewTPCsetID(c, s Index) TPCsetID {
	return TPCsetID{CryostatID: geo.NewCryostatID(c), TPCset: s}
}

// TPCsetIDIn returns the ID of TPC set s in the given cryostat, inheriting
// the cryostat's validity.
func TPCsetIDIn(cryo CryostatID, s Index) TPCsetID {
	return TPCsetID{CryostatID: cryo, TPCset: s}
}

// InvalidTPCsetID returns the canonical invalid TPC set ID.
func InvalidTPCsetID() TPCsetID {
	return TPCsetID{CryostatID: geo.InvalidCryostatID(), TPCset: InvalidIndex}
}

// FirstTPCsetID returns the smallest valid TPC set ID.
func FirstTPCsetID() TPCsetID { return NewTPCsetID(0, 0) }

// FirstTPCsetIDIn returns the ID of the first TPC set in the given cryostat.
func FirstTPCsetIDIn(cryo CryostatID) TPCsetID { return TPCsetIDIn(cryo, 0) }

// Level reports the depth of the type.
func (TPCsetID) Level() hier.Level { return TPCsetLevel }

// ParentID returns the embedded cryostat ID.
func (id TPCsetID) ParentID() CryostatID { return id.CryostatID }

// DeepestIndex returns the ID's own index, the TPC set number.
func (id TPCsetID) DeepestIndex() Index { return id.TPCset }

// SetDeepestIndex overwrites the ID's own index.
func (id *TPCsetID) SetDeepestIndex(value Index) { id.TPCset = value }

// IndexAt returns the index stored at the given level, walking up the
// ancestor chain. Levels beyond the type's own panic.
func (id TPCsetID) IndexAt(level hier.Level) Index {
	if level > TPCsetLevel {
		panic(fmt.Sprintf("readout: no index at level %d in a TPC set ID", level))
	}
	if level == TPCsetLevel {
		return id.TPCset
	}
	return id.CryostatID.IndexAt(level)
}

// SetIndexAt overwrites the index stored at the given level.
func (id *TPCsetID) SetIndexAt(level hier.Level, value Index) {
	if level > TPCsetLevel {
		panic(fmt.Sprintf("readout: no index at level %d in a TPC set ID", level))
	}
	if level == TPCsetLevel {
		id.TPCset = value
		return
	}
	id.CryostatID.SetIndexAt(level, value)
}

// Cmp orders by cryostat first, then by TPC set. Validity is ignored.
func (id TPCsetID) Cmp(other TPCsetID) int {
	if c := id.CryostatID.Cmp(other.CryostatID); c != 0 {
		return c
	}
	return cmp.Compare(id.TPCset, other.TPCset)
}

// Less reports whether id sorts strictly before other.
func (id TPCsetID) Less(other TPCsetID) bool { return id.Cmp(other) < 0 }

// Equal reports whether the two IDs address the same TPC set, ignoring
// validity.
func (id TPCsetID) Equal(other TPCsetID) bool { return id.Cmp(other) == 0 }

// String renders the ID in its diagnostic form, e.g. "C:1 S:3".
func (id TPCsetID) String() string { return fmt.Sprintf("%s S:%d", id.CryostatID, id.TPCset) }

// FirstROP returns the ID of the first readout plane in this TPC set.
func (id TPCsetID) FirstROP() ROPID { return ROPIDIn(id, 0) }

// ROPID identifies a readout plane: a group of wire planes sharing readout
// channels within a TPC set.
type ROPID struct {
	TPCsetID
	ROP Index // index of the readout plane within its TPC set
}

// NewROPID returns the valid ID of readout plane r in TPC set s of
// cryostat c.
func NewROPID(c, s, r Index) ROPID { return ROPID{TPCsetID: NewTPCsetID(c, s), ROP: r} }

// ROPIDIn returns the ID of readout plane r in the given TPC set, inheriting
// the set's validity.
func ROPIDIn(set TPCsetID, r Index) ROPID { return ROPID{TPCsetID: set, ROP: r} }

// InvalidROPID returns the canonical invalid readout plane ID.
func InvalidROPID() ROPID { return ROPID{TPCsetID: InvalidTPCsetID(), ROP: InvalidIndex} }

// FirstROPID returns the smallest valid readout plane ID.
func FirstROPID() ROPID { return NewROPID(0, 0, 0) }

// FirstROPIDIn returns the ID of the first readout plane of the first TPC
// set in the given cryostat.
func FirstROPIDIn(cryo CryostatID) ROPID { return FirstTPCsetIDIn(cryo).FirstROP() }

// Level reports the depth of the type.
func (ROPID) Level() hier.Level { return ROPLevel }

// ParentID returns the embedded TPC set ID.
func (id ROPID) ParentID() TPCsetID { return id.TPCsetID }

// DeepestIndex returns the ID's own index, the readout plane number.
func (id ROPID) DeepestIndex() Index { return id.ROP }

// SetDeepestIndex overwrites the ID's own index.
func (id *ROPID) SetDeepestIndex(value Index) { id.ROP = value }

// IndexAt returns the index stored at the given level, walking up the
// ancestor chain. Levels beyond the type's own panic.
func (id ROPID) IndexAt(level hier.Level) Index {
	if level > ROPLevel {
		panic(fmt.Sprintf("readout: no index at level %d in a readout plane ID", level))
	}
	if level == ROPLevel {
		return id.ROP
	}
	return id.TPCsetID.IndexAt(level)
}

// SetIndexAt overwrites the index stored at the given level.
func (id *ROPID) SetIndexAt(level hier.Level, value Index) {
	if level > ROPLevel {
		panic(fmt.Sprintf("readout: no index at level %d in a readout plane ID", level))
	}
	if level == ROPLevel {
		id.ROP = value
		return
	}
	id.TPCsetID.SetIndexAt(level, value)
}

// Cmp orders by TPC set first, then by readout plane. Validity is ignored.
func (id ROPID) Cmp(other ROPID) int {
	if c := id.TPCsetID.Cmp(other.TPCsetID); c != 0 {
		return c
	}
	return cmp.Compare(id.ROP, other.ROP)
}

// Less reports whether id sorts strictly before other.
func (id ROPID) Less(other ROPID) bool { return id.Cmp(other) < 0 }

// Equal reports whether the two IDs address the same readout plane, ignoring
// validity.
func (id ROPID) Equal(other ROPID) bool { return id.Cmp(other) == 0 }

// String renders the ID in its diagnostic form, e.g. "C:1 S:3 R:0".
func (id ROPID) String() string { return fmt.Sprintf("%s R:%d", id.TPCsetID, id.ROP) }
