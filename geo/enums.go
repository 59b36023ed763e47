package geo

import "fmt"

// Coordinate labels one of the three detector coordinate axes.
type Coordinate int

const (
	CoordX Coordinate = iota // X coordinate
	CoordY                   // Y coordinate
	CoordZ                   // Z coordinate
)

func (c Coordinate) String() string {
	switch c {
	case CoordX:
		return "X"
	case CoordY:
		return "Y"
	case CoordZ:
		return "Z"
	}
	return fmt.Sprintf("Coordinate(%d)", int(c))
}

// DriftSign is the direction of the drift along its axis: positive or
// negative. It does not distinguish different drift axes.
type DriftSign int

const (
	DriftUnknown  DriftSign = iota // drift direction is unknown
	DriftPositive                  // drift towards positive values
	DriftNegative                  // drift towards negative values
)

func (s DriftSign) String() string {
	switch s {
	case DriftPositive:
		return "+"
	case DriftNegative:
		return "-"
	case DriftUnknown:
		return "?"
	}
	return fmt.Sprintf("DriftSign(%d)", int(s))
}

// DriftAxis is a drift coordinate together with its sign, e.g. "+X".
type DriftAxis struct {
	Coordinate Coordinate
	Sign       DriftSign
}

func (a DriftAxis) String() string { return a.Sign.String() + a.Coordinate.String() }

// View is the measurement direction a wire plane projects onto.
type View int

const (
	ViewU       View = iota // planes which measure U
	ViewV                   // planes which measure V
	ViewW                   // planes which measure W (third view)
	ViewY                   // planes which measure the Y direction
	ViewX                   // planes which measure the X direction
	View3D                  // three-dimensional objects
	ViewUnknown             // unknown view
)

// ViewZ is an alias of ViewW for detectors whose third view is along Z.
const ViewZ = ViewW

func (v View) String() string {
	switch v {
	case ViewU:
		return "U"
	case ViewV:
		return "V"
	case ViewW:
		return "W"
	case ViewY:
		return "Y"
	case ViewX:
		return "X"
	case View3D:
		return "3D"
	case ViewUnknown:
		return "?"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// Orientation is the orientation of a wire plane.
type Orientation int

const (
	Horizontal Orientation = iota // planes lying in the horizontal plane
	Vertical                      // planes lying in a vertical plane
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// SigType classifies the signal read out from a wire plane.
type SigType int

const (
	Induction   SigType = iota // signal from induction planes
	Collection                 // signal from collection planes
	MysteryType                // who knows?
)

// SignalTypeName returns the display name of a signal type. A value outside
// the enumeration indicates a corrupted or mismatched data source upstream
// and panics carrying the offending number; there is no recovery path.
func SignalTypeName(sigType SigType) string {
	switch sigType {
	case Induction:
		return "induction"
	case Collection:
		return "collection"
	case MysteryType:
		return "unknown"
	}
	panic(fmt.Sprintf("geo: unexpected signal type #%d", int(sigType)))
}
