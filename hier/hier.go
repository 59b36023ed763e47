// Package hier defines the level skeleton shared by the geometry and readout
// identifier hierarchies: the index and level primitives, the interface every
// identifier type implements, and generic comparison helpers built on top of
// them.
//
// The original design resolves ancestor levels at compile time; Go has no
// type-level recursion, so the skeleton stores the ancestor chain structurally
// (each identifier embeds its parent by value) and resolves "index at level"
// as a checked walk up that chain. Requesting a level deeper than the type
// supports is a programming error and panics.
package hier

import (
	"cmp"
	"fmt"
)

// Index is the position of a detector element among its siblings under its
// immediate parent.
type Index uint32

// InvalidIndex is the reserved sentinel meaning "no element". It is the
// maximum representable index, so that index 0 stays a legitimate address.
const InvalidIndex Index = ^Index(0)

// Level is the depth of an identifier type in its hierarchy. The root
// (cryostat) sits at level 0.
type Level int

// ID is implemented by every identifier type in both hierarchies.
type ID interface {
	fmt.Stringer

	// Level reports the depth of the identifier type. It is a constant
	// per type, equal to the number of ancestor hops to the root.
	Level() Level

	// IndexAt returns the index stored by the ancestor at the given level;
	// level Level() returns the identifier's own index. It panics when the
	// level exceeds the type's depth.
	IndexAt(Level) Index

	// DeepestIndex returns the identifier's own index.
	DeepestIndex() Index

	// Valid reports whether the identifier addresses a real element.
	Valid() bool
}

// MutableID is the write side of ID, implemented on pointer receivers. It is
// used by range-building helpers that rewrite one level of the path while
// preserving the rest.
type MutableID interface {
	// SetIndexAt overwrites the index stored at the given level. It panics
	// when the level exceeds the type's depth.
	SetIndexAt(Level, Index)

	// SetValid overwrites the validity flag.
	SetValid(bool)
}

// CompareIndex returns a negative, zero or positive value as a sorts before,
// equal to or after b.
func CompareIndex(a, b Index) int { return cmp.Compare(a, b) }

// IndexAt is a checked form of id.IndexAt, panicking with a uniform message
// when the requested level is out of range for the identifier's depth.
func IndexAt[T ID](id T, level Level) Index {
	if level < 0 || level > id.Level() {
		panic(fmt.Sprintf("hier: no index at level %d in a level-%d identifier", level, id.Level()))
	}
	return id.IndexAt(level)
}

// Compare orders two identifiers of the same type lexicographically over
// their index tuple, root level first. The validity flag is ignored: invalid
// identifiers order by their raw indices, with no guarantee that an invalid
// identifier sorts before or after any valid one.
func Compare[T ID](a, b T) int {
	for level := Level(0); level <= a.Level(); level++ {
		if c := cmp.Compare(a.IndexAt(level), b.IndexAt(level)); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether a sorts strictly before b. See Compare for the order.
func Less[T ID](a, b T) bool { return Compare(a, b) < 0 }

// Equal reports whether a and b carry the same index tuple. Like Compare, it
// ignores the validity flag.
func Equal[T ID](a, b T) bool { return Compare(a, b) == 0 }
