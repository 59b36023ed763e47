// Package physconst collects physical constants used with liquid-argon
// detector data.
//
// The standard units are: energy in GeV, time in ns, space in cm.
package physconst

// Recombination factor coefficients (NIM): R = A/(1 + (dE/dx)*k/E), with
// dE/dx in MeV/cm and the electric field E in kV/cm. k needs to be scaled
// with the electric field.
const (
	RecombA = 0.800  // A constant
	RecombK = 0.0486 // k constant, in g/(MeV cm^2)*kV/cm
)

// Recombination factor coefficients (modified box model, ArgoNeuT JINST).
// ModBoxB needs to be scaled with the electric field.
const (
	ModBoxA = 0.930 // modified box alpha
	ModBoxB = 0.212 // modified box beta, in g/(MeV cm^2)*kV/cm
)

// GeVToElectrons converts energy deposited in GeV to the number of
// ionization electrons produced (23.6 eV per ion pair).
const GeVToElectrons = 4.237e7

// LightSpeed is the speed of light in vacuum in standard units [cm/ns].
const LightSpeed = 29.9792458

// Length conversion factors.
const (
	MeterToCentimeter = 1e2 // 1 m = 100 cm
	CentimeterToMeter = 1 / MeterToCentimeter
	MeterToKilometer  = 1e-3 // 1000 m = 1 km
	KilometerToMeter  = 1 / MeterToKilometer
)

// Energy conversion factors.
const (
	EVToMeV = 1e-6 // 1e6 eV = 1 MeV
	MeVToEV = 1 / EVToMeV
)

// Obviously bogus values, used to mark quantities that were never computed.
const (
	BogusD         = -999.0
	BogusI         = -999
	BogusF float32 = -999.0
)

// Pi is the constant pi to 35 decimal digits.
const Pi = 3.14159265358979323846264338327950288

// DegreesToRadians converts the argument angle from degrees into radians.
func DegreesToRadians[T ~float32 | ~float64](angle T) T { return angle / 180 * Pi }

// RadiansToDegrees converts the argument angle from radians into degrees.
func RadiansToDegrees[T ~float32 | ~float64](angle T) T { return angle / Pi * 180 }
