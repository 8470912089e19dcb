package scenarios

import (
	"fmt"

	"github.com/silicasynth/moscad/query"
	"github.com/silicasynth/moscad/signal"
)

// sig parses a glyph literal known at compile time to be valid. Panicking on
// a bad literal here would indicate a typo in this package, not a caller
// error, so there is no error return to thread through every preset.
func sig(s string) signal.Signal[uint8] {
	v, err := signal.Parse[uint8](s)
	if err != nil {
		panic(fmt.Sprintf("scenarios: invalid literal %q: %v", s, err))
	}
	return v
}

// fullCare builds a CareSignal over target whose care mask covers every
// lane except target's own padding.
func fullCare(target string) signal.CareSignal[uint8] {
	t := sig(target)
	return signal.NewCareSignal(t, t.IgnoredMask().Not())
}

var (
	vcc = sig("11")
	gnd = sig("00")

	vcc4 = sig("1111")
	gnd4 = sig("0000")
)

// SingleNPass targets a bare N-pass transistor: output tracks Gnd wherever
// the gate is high, Z otherwise. Minimal solution: 1 device.
func SingleNPass() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc, gnd},
		[]signal.Signal[uint8]{sig("01")},
		[]signal.CareSignal[uint8]{fullCare("Z0")},
	)
	return q
}

// SinglePPass targets a bare P-pass transistor: output tracks Vcc wherever
// the gate is low, Z otherwise. Minimal solution: 1 device.
func SinglePPass() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc, gnd},
		[]signal.Signal[uint8]{sig("01")},
		[]signal.CareSignal[uint8]{fullCare("1Z")},
	)
	return q
}

// Not targets a CMOS inverter. Minimal solution: 2 devices.
func Not() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc, gnd},
		[]signal.Signal[uint8]{sig("01")},
		[]signal.CareSignal[uint8]{fullCare("10")},
	)
	return q
}

// Buffer targets a non-inverting buffer built from a single input, forcing
// two inverter stages. Minimal solution: 4 devices.
func Buffer() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc, gnd},
		[]signal.Signal[uint8]{sig("01")},
		[]signal.CareSignal[uint8]{fullCare("01")},
	)
	return q
}

// BufferWithInvertedInputGiven targets the same non-inverting buffer, but
// offers both polarities of the input directly — letting the search reuse
// the pre-inverted signal instead of building an inverter stage. Minimal
// solution: 2 devices.
func BufferWithInvertedInputGiven() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc, gnd},
		[]signal.Signal[uint8]{sig("01"), sig("10")},
		[]signal.CareSignal[uint8]{fullCare("01")},
	)
	return q
}

// NAND2 targets a two-input NAND gate. Minimal solution: 4 devices.
func NAND2() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc4, gnd4},
		[]signal.Signal[uint8]{sig("0011"), sig("0101")},
		[]signal.CareSignal[uint8]{fullCare("1110")},
	)
	return q
}

// NOR2 targets a two-input NOR gate. Minimal solution: 4 devices.
func NOR2() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc4, gnd4},
		[]signal.Signal[uint8]{sig("0011"), sig("0101")},
		[]signal.CareSignal[uint8]{fullCare("1000")},
	)
	return q
}

// AND2 targets a two-input AND gate (NAND2 plus an output inverter).
// Minimal solution: 6 devices.
func AND2() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc4, gnd4},
		[]signal.Signal[uint8]{sig("0011"), sig("0101")},
		[]signal.CareSignal[uint8]{fullCare("0001")},
	)
	return q
}

// XOR2 targets a two-input XOR gate.
func XOR2() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc4, gnd4},
		[]signal.Signal[uint8]{sig("0011"), sig("0101")},
		[]signal.CareSignal[uint8]{fullCare("0110")},
	)
	return q
}

// TriStateBuffer targets a tri-state buffer: Z on both data values when
// the second (enable) input is high, otherwise a non-inverting pass of the
// first (data) input.
func TriStateBuffer() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc4, gnd4},
		[]signal.Signal[uint8]{sig("0011"), sig("0101")},
		[]signal.CareSignal[uint8]{fullCare("0Z1Z")},
	)
	return q
}

// HalfAdder targets a half adder: a sum output (XOR2) and a carry output
// (AND2) from the same two inputs, solved jointly so shared intermediate
// nets can be reused across both outputs.
func HalfAdder() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{vcc4, gnd4},
		[]signal.Signal[uint8]{sig("0011"), sig("0101")},
		[]signal.CareSignal[uint8]{fullCare("0110"), fullCare("0001")},
	)
	return q
}

// NAND3 targets a three-input NAND gate over an 8-row truth table.
func NAND3() query.Query[uint8] {
	q := query.New(
		[]signal.Signal[uint8]{sig("1111_1111"), sig("0000_0000")},
		[]signal.Signal[uint8]{sig("0000_1111"), sig("0011_0011"), sig("0101_0101")},
		[]signal.CareSignal[uint8]{fullCare("1111_1110")},
	)
	return q
}
