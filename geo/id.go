// Package geo defines the identifiers addressing the physical elements of a
// detector: cryostat, TPC, optical detector, wire plane and wire.
//
// The hierarchy runs CryostatID -> {TPCID, OpDetID} -> PlaneID -> WireID,
// with OpDetID and TPCID independent partitions of the same cryostat. Each
// identifier embeds its parent by value, so a value always carries the full
// path from the root and can be decomposed level by level.
//
// Identifiers are immutable value objects: they are comparable, usable as map
// keys, and compare/copy freely. Note that Go's == on the structs also
// distinguishes the validity flag, while Equal, Less and Cmp follow the
// documented order and ignore it.
package geo

import (
	"cmp"
	"fmt"

	"github.com/larnet/geoid/hier"
)

// Index is the index of a geometry element among its siblings.
type Index = hier.Index

// InvalidIndex is the sentinel index meaning "no element".
const InvalidIndex = hier.InvalidIndex

// Levels of the geometry hierarchy. OpDet and TPC share level 1: they are
// sibling partitions of the cryostat, not a chain.
const (
	CryostatLevel hier.Level = 0
	OpDetLevel    hier.Level = 1
	TPCLevel      hier.Level = 1
	PlaneLevel    hier.Level = 2
	WireLevel     hier.Level = 3

	// NLevels is the number of levels on the TPC branch.
	NLevels = 4
)

var (
	_ hier.ID        = CryostatID{}
	_ hier.ID        = OpDetID{}
	_ hier.ID        = TPCID{}
	_ hier.ID        = PlaneID{}
	_ hier.ID        = WireID{}
	_ hier.MutableID = (*CryostatID)(nil)
	_ hier.MutableID = (*OpDetID)(nil)
	_ hier.MutableID = (*TPCID)(nil)
	_ hier.MutableID = (*PlaneID)(nil)
	_ hier.MutableID = (*WireID)(nil)
)

// CryostatID identifies a cryostat. It is the root of both the geometry and
// the readout hierarchies and the only type carrying the validity flag;
// every derived identifier inherits it.
type CryostatID struct {
	valid    bool
	Cryostat Index // index of the cryostat within the detector
}

// NewCryostatID returns the valid ID of the cryostat with index c.
func NewCryostatID(c Index) CryostatID { return CryostatID{valid: true, Cryostat: c} }

// InvalidCryostatID returns the canonical invalid cryostat ID: validity off,
// index set to the sentinel. It must never be taken as addressing cryostat 0.
func InvalidCryostatID() CryostatID { return CryostatID{Cryostat: InvalidIndex} }

// FirstCryostatID returns the smallest valid cryostat ID.
func FirstCryostatID() CryostatID { return NewCryostatID(0) }

// Valid reports whether the ID addresses a real element.
func (id CryostatID) Valid() bool { return id.valid }

// SetValid overwrites the validity flag.
func (id *CryostatID) SetValid(valid bool) { id.valid = valid }

// MarkValid sets the ID as valid.
func (id *CryostatID) MarkValid() { id.SetValid(true) }

// MarkInvalid sets the ID as invalid.
func (id *CryostatID) MarkInvalid() { id.SetValid(false) }

// Level reports the depth of the type: a cryostat is the root.
func (CryostatID) Level() hier.Level { return CryostatLevel }

// DeepestIndex returns the ID's own index, the cryostat number.
func (id CryostatID) DeepestIndex() Index { return id.Cryostat }

// SetDeepestIndex overwrites the ID's own index.
func (id *CryostatID) SetDeepestIndex(value Index) { id.Cryostat = value }

// IndexAt returns the index stored at the given level. Only level 0 exists
// for a cryostat; anything else panics.
func (id CryostatID) IndexAt(level hier.Level) Index {
	if level != CryostatLevel {
		panic(fmt.Sprintf("geo: no index at level %d in a cryostat ID", level))
	}
	return id.Cryostat
}

// SetIndexAt overwrites the index stored at the given level.
func (id *CryostatID) SetIndexAt(level hier.Level, value Index) {
	if level != CryostatLevel {
		panic(fmt.Sprintf("geo: no index at level %d in a cryostat ID", level))
	}
	id.Cryostat = value
}

// Cmp returns a negative, zero or positive value as id sorts before, equal
// to or after other. Validity is ignored.
func (id CryostatID) Cmp(other CryostatID) int {
	return cmp.Compare(id.Cryostat, other.Cryostat)
}

// Less reports whether id sorts strictly before other.
func (id CryostatID) Less(other CryostatID) bool { return id.Cmp(other) < 0 }

// Equal reports whether the two IDs address the same cryostat, ignoring
// validity.
func (id CryostatID) Equal(other CryostatID) bool { return id.Cmp(other) == 0 }

// String renders the ID in its diagnostic form, e.g. "C:2".
func (id CryostatID) String() string { return fmt.Sprintf("C:%d", id.Cryostat) }

// FirstOpDet returns the ID of the first optical detector in this cryostat.
func (id CryostatID) FirstOpDet() OpDetID { return OpDetIDIn(id, 0) }

// FirstTPC returns the ID of the first TPC in this cryostat.
func (id CryostatID) FirstTPC() TPCID { return TPCIDIn(id, 0) }

// FirstPlane returns the ID of the first plane of the first TPC in this
// cryostat.
func (id CryostatID) FirstPlane() PlaneID { return id.FirstTPC().FirstPlane() }

// FirstWire returns the ID of the first wire of the first plane of the first
// TPC in this cryostat.
func (id CryostatID) FirstWire() WireID { return id.FirstPlane().FirstWire() }

// OpDetID identifies an optical detector within a cryostat. It sits at the
// same level as TPCID: the two are independent partitions of the cryostat.
type OpDetID struct {
	CryostatID
	OpDet Index // index of the optical detector within its cryostat
}

// NewOpDetID returns the valid ID of optical detector o in cryostat c.
func NewOpDetID(c, o Index) OpDetID { return OpDetID{CryostatID: NewCryostatID(c), OpDet: o} }

// OpDetIDIn returns the ID of optical detector o in the given cryostat,
// inheriting the cryostat's validity.
func OpDetIDIn(cryo CryostatID, o Index) OpDetID { return OpDetID{CryostatID: cryo, OpDet: o} }

// InvalidOpDetID returns the canonical invalid optical detector ID.
func InvalidOpDetID() OpDetID {
	return OpDetID{CryostatID: InvalidCryostatID(), OpDet: InvalidIndex}
}

// FirstOpDetID returns the smallest valid optical detector ID.
func FirstOpDetID() OpDetID { return NewOpDetID(0, 0) }

// Level reports the depth of the type.
func (OpDetID) Level() hier.Level { return OpDetLevel }

// ParentID returns the embedded cryostat ID.
func (id OpDetID) ParentID() CryostatID { return id.CryostatID }

// DeepestIndex returns the ID's own index, the optical detector number.
func (id OpDetID) DeepestIndex() Index { return id.OpDet }

// SetDeepestIndex overwrites the ID's own index.
func (id *OpDetID) SetDeepestIndex(value Index) { id.OpDet = value }

// IndexAt returns the index stored at the given level, walking up the
// ancestor chain. Levels beyond the type's own panic.
func (id OpDetID) IndexAt(level hier.Level) Index {
	if level > OpDetLevel {
		panic(fmt.Sprintf("geo: no index at level %d in an optical detector ID", level))
	}
	if level == OpDetLevel {
		return id.OpDet
	}
	return id.CryostatID.IndexAt(level)
}

// SetIndexAt overwrites the index stored at the given level.
func (id *OpDetID) SetIndexAt(level hier.Level, value Index) {
	if level > OpDetLevel {
		panic(fmt.Sprintf("geo: no index at level %d in an optical detector ID", level))
	}
	if level == OpDetLevel {
		id.OpDet = value
		return
	}
	id.CryostatID.SetIndexAt(level, value)
}

// Cmp orders by cryostat first, then by optical detector. Validity is
// ignored.
func (id OpDetID) Cmp(other OpDetID) int {
	if c := id.CryostatID.Cmp(other.CryostatID); c != 0 {
		return c
	}
	return cmp.Compare(id.OpDet, other.OpDet)
}

// Less reports whether id sorts strictly before other.
func (id OpDetID) Less(other OpDetID) bool { return id.Cmp(other) < 0 }

// Equal reports whether the two IDs address the same optical detector,
// ignoring validity.
func (id OpDetID) Equal(other OpDetID) bool { return id.Cmp(other) == 0 }

// String renders the ID in its diagnostic form, e.g. "C:0 O:13".
func (id OpDetID) String() string { return fmt.Sprintf("%s O:%d", id.CryostatID, id.OpDet) }

// TPCID identifies a TPC within a cryostat.
type TPCID struct {
	CryostatID
	TPC Index // index of the TPC within its cryostat
}

// NewTPCID returns the valid ID of TPC t in cryostat c.
func NewTPCID(c, t Index) TPCID { return TPCID{CryostatID: NewCryostatID(c), TPC: t} }

// TPCIDIn returns the ID of TPC t in the given cryostat, inheriting the
// cryostat's validity.
func TPCIDIn(cryo CryostatID, t Index) TPCID { return TPCID{CryostatID: cryo, TPC: t} }

// InvalidTPCID returns the canonical invalid TPC ID.
func InvalidTPCID() TPCID { return TPCID{CryostatID: InvalidCryostatID(), TPC: InvalidIndex} }

// FirstTPCID returns the smallest valid TPC ID.
func FirstTPCID() TPCID { return NewTPCID(0, 0) }

// Level reports the depth of the type.
func (TPCID) Level() hier.Level { return TPCLevel }

// ParentID returns the embedded cryostat ID.
func (id TPCID) ParentID() CryostatID { return id.CryostatID }

// DeepestIndex returns the ID's own index, the TPC number.
func (id TPCID) DeepestIndex() Index { return id.TPC }

// SetDeepestIndex overwrites the ID's own index.
func (id *TPCID) SetDeepestIndex(value Index) { id.TPC = value }

// IndexAt returns the index stored at the given level, walking up the
// ancestor chain. Levels beyond the type's own panic.
func (id TPCID) IndexAt(level hier.Level) Index {
	if level > TPCLevel {
		panic(fmt.Sprintf("geo: no index at level %d in a TPC ID", level))
	}
	if level == TPCLevel {
		return id.TPC
	}
	return id.CryostatID.IndexAt(level)
}

// SetIndexAt overwrites the index stored at the given level.
func (id *TPCID) SetIndexAt(level hier.Level, value Index) {
	if level > TPCLevel {
		panic(fmt.Sprintf("geo: no index at level %d in a TPC ID", level))
	}
	if level == TPCLevel {
		id.TPC = value
		return
	}
	id.CryostatID.SetIndexAt(level, value)
}

// Cmp orders by cryostat first, then by TPC. Validity is ignored.
func (id TPCID) Cmp(other TPCID) int {
	if c := id.CryostatID.Cmp(other.CryostatID); c != 0 {
		return c
	}
	return cmp.Compare(id.TPC, other.TPC)
}

// Less reports whether id sorts strictly before other.
func (id TPCID) Less(other TPCID) bool { return id.Cmp(other) < 0 }

// Equal reports whether the two IDs address the same TPC, ignoring validity.
func (id TPCID) Equal(other TPCID) bool { return id.Cmp(other) == 0 }

// String renders the ID in its diagnostic form, e.g. "C:1 T:15".
func (id TPCID) String() string { return fmt.Sprintf("%s T:%d", id.CryostatID, id.TPC) }

// FirstPlane returns the ID of the first plane in this TPC.
func (id TPCID) FirstPlane() PlaneID { return PlaneIDIn(id, 0) }

// FirstWire returns the ID of the first wire of the first plane in this TPC.
func (id TPCID) FirstWire() WireID { return id.FirstPlane().FirstWire() }

// PlaneID identifies a wire plane within a TPC.
type PlaneID struct {
	TPCID
	Plane Index // index of the plane within its TPC
}

// NewPlaneID returns the valid ID of plane p in TPC t of cryostat c.
func NewPlaneID(c, t, p Index) PlaneID { return PlaneID{TPCID: NewTPCID(c, t), Plane: p} }

// PlaneIDIn returns the ID of plane p in the given TPC, inheriting the TPC's
// validity.
func PlaneIDIn(tpc TPCID, p Index) PlaneID { return PlaneID{TPCID: tpc, Plane: p} }

// InvalidPlaneID returns the canonical invalid plane ID.
func InvalidPlaneID() PlaneID { return PlaneID{TPCID: InvalidTPCID(), Plane: InvalidIndex} }

// FirstPlaneID returns the smallest valid plane ID.
func FirstPlaneID() PlaneID { return NewPlaneID(0, 0, 0) }

// Level reports the depth of the type.
func (PlaneID) Level() hier.Level { return PlaneLevel }

// ParentID returns the embedded TPC ID.
func (id PlaneID) ParentID() TPCID { return id.TPCID }

// DeepestIndex returns the ID's own index, the plane number.
func (id PlaneID) DeepestIndex() Index { return id.Plane }

// SetDeepestIndex overwrites the ID's own index.
func (id *PlaneID) SetDeepestIndex(value Index) { id.Plane = value }

// IndexAt returns the index stored at the given level, walking up the
// ancestor chain. Levels beyond the type's own panic.
func (id PlaneID) IndexAt(level hier.Level) Index {
	if level > PlaneLevel {
		panic(fmt.Sprintf("geo: no index at level %d in a plane ID", level))
	}
	if level == PlaneLevel {
		return id.Plane
	}
	return id.TPCID.IndexAt(level)
}

// SetIndexAt overwrites the index stored at the given level.
func (id *PlaneID) SetIndexAt(level hier.Level, value Index) {
	if level > PlaneLevel {
		panic(fmt.Sprintf("geo: no index at level %d in a plane ID", level))
	}
	if level == PlaneLevel {
		id.Plane = value
		return
	}
	id.TPCID.SetIndexAt(level, value)
}

// Cmp orders by TPC first, then by plane. Validity is ignored.
func (id PlaneID) Cmp(other PlaneID) int {
	if c := id.TPCID.Cmp(other.TPCID); c != 0 {
		return c
	}
	return cmp.Compare(id.Plane, other.Plane)
}

// Less reports whether id sorts strictly before other.
func (id PlaneID) Less(other PlaneID) bool { return id.Cmp(other) < 0 }

// Equal reports whether the two IDs address the same plane, ignoring
// validity.
func (id PlaneID) Equal(other PlaneID) bool { return id.Cmp(other) == 0 }

// String renders the ID in its diagnostic form, e.g. "C:1 T:15 P:2".
func (id PlaneID) String() string { return fmt.Sprintf("%s P:%d", id.TPCID, id.Plane) }

// FirstWire returns the ID of the first wire in this plane.
func (id PlaneID) FirstWire() WireID { return WireIDIn(id, 0) }

// WireID identifies a single sense wire within a plane.
type WireID struct {
	PlaneID
	Wire Index // index of the wire within its plane
}

// NewWireID returns the valid ID of wire w in plane p of TPC t of cryostat c.
func NewWireID(c, t, p, w Index) WireID { return WireID{PlaneID: NewPlaneID(c, t, p), Wire: w} }

// WireIDIn returns the ID of wire w in the given plane, inheriting the
// plane's validity.
func WireIDIn(plane PlaneID, w Index) WireID { return WireID{PlaneID: plane, Wire: w} }

// InvalidWireID returns the canonical invalid wire ID.
func InvalidWireID() WireID { return WireID{PlaneID: InvalidPlaneID(), Wire: InvalidIndex} }

// FirstWireID returns the smallest valid wire ID.
func FirstWireID() WireID { return NewWireID(0, 0, 0, 0) }

// Level reports the depth of the type.
func (WireID) Level() hier.Level { return WireLevel }

// ParentID returns the embedded plane ID.
func (id WireID) ParentID() PlaneID { return id.PlaneID }

// DeepestIndex returns the ID's own index, the wire number.
func (id WireID) DeepestIndex() Index { return id.Wire }

// SetDeepestIndex overwrites the ID's own index.
func (id *WireID) SetDeepestIndex(value Index) { id.Wire = value }

// IndexAt returns the index stored at the given level, walking up the
// ancestor chain. Levels beyond the type's own panic.
func (id WireID) IndexAt(level hier.Level) Index {
	if level > WireLevel {
		panic(fmt.Sprintf("geo: no index at level %d in a wire ID", level))
	}
	if level == WireLevel {
		return id.Wire
	}
	return id.PlaneID.IndexAt(level)
}

// SetIndexAt overwrites the index stored at the given level.
func (id *WireID) SetIndexAt(level hier.Level, value Index) {
	if level > WireLevel {
		panic(fmt.Sprintf("geo: no index at level %d in a wire ID", level))
	}
	if level == WireLevel {
		id.Wire = value
		return
	}
	id.PlaneID.SetIndexAt(level, value)
}

// Cmp orders by plane first, then by wire. Validity is ignored.
func (id WireID) Cmp(other WireID) int {
	if c := id.PlaneID.Cmp(other.PlaneID); c != 0 {
		return c
	}
	return cmp.Compare(id.Wire, other.Wire)
}

// Less reports whether id sorts strictly before other.
func (id WireID) Less(other WireID) bool { return id.Cmp(other) < 0 }

// Equal reports whether the two IDs address the same wire, ignoring
// validity.
func (id WireID) Equal(other WireID) bool { return id.Cmp(other) == 0 }

// String renders the ID in its diagnostic form, e.g. "C:1 T:15 P:32 W:27".
func (id WireID) String() string { return fmt.Sprintf("%s W:%d", id.PlaneID, id.Wire) }
