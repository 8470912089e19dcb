package solver

import (
	"github.com/silicasynth/moscad/bitlane"
	"github.com/silicasynth/moscad/signal"
)

// Kind distinguishes the two transistor types a device can realize.
type Kind int

const (
	// PMOSDevice conducts its power (drain) signal through to its output
	// wherever its gate is low.
	PMOSDevice Kind = iota
	// NMOSDevice conducts its power (drain) signal through to its output
	// wherever its gate is high.
	NMOSDevice
)

// String renders k as "pmos" or "nmos".
func (k Kind) String() string {
	switch k {
	case PMOSDevice:
		return "pmos"
	case NMOSDevice:
		return "nmos"
	default:
		return "unknown"
	}
}

// Device records one transistor placed during a search, in the order it was
// added along the first witnessing path found at a given depth.
type Device[T bitlane.Unsigned] struct {
	// Kind is PMOSDevice or NMOSDevice.
	Kind Kind

	// Gate is the net this device's gate terminal is tied to.
	Gate signal.Signal[T]

	// Power is the net this device's power (drain) terminal is tied to.
	Power signal.Signal[T]

	// Output is the raw signal the transistor produces at its drain,
	// before any merge with an existing free net.
	Output signal.Signal[T]

	// MergedWith is non-nil when Output was wired into an already-built
	// free net rather than standing alone; it holds that prior net.
	MergedWith *signal.Signal[T]

	// Net is the signal actually present in the built set once this device
	// is placed: Output, or Output connected with *MergedWith.
	Net signal.Signal[T]
}
