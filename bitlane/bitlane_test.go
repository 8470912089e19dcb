package bitlane_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/silicasynth/moscad/bitlane"
)

func TestZeroAndAllOnes(t *testing.T) {
	z := bitlane.Zero[uint8]()
	o := bitlane.AllOnes[uint8]()

	assert.True(t, z.IsZero())
	assert.False(t, z.IsAllOnes())
	assert.True(t, o.IsAllOnes())
	assert.False(t, o.IsZero())
	assert.Equal(t, uint8(0), z.Raw())
	assert.Equal(t, uint8(0xFF), o.Raw())
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 8, bitlane.Width[uint8]())
	assert.Equal(t, 16, bitlane.Width[uint16]())
	assert.Equal(t, 32, bitlane.Width[uint32]())
	assert.Equal(t, 64, bitlane.Width[uint64]())
}

func TestBooleanAlgebra(t *testing.T) {
	a := bitlane.FromBits[uint8](0b1010_1010)
	b := bitlane.FromBits[uint8](0b0110_0110)

	assert.Equal(t, uint8(0b0010_0010), a.And(b).Raw())
	assert.Equal(t, uint8(0b1110_1110), a.Or(b).Raw())
	assert.Equal(t, uint8(0b1100_1100), a.Xor(b).Raw())
	assert.Equal(t, uint8(0b0101_0101), a.Not().Raw())
}

func TestEqual(t *testing.T) {
	a := bitlane.FromBits[uint16](42)
	b := bitlane.FromBits[uint16](42)
	c := bitlane.FromBits[uint16](43)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestBitGetSet(t *testing.T) {
	l := bitlane.Zero[uint8]()
	assert.False(t, l.Bit(3))

	l = l.WithBit(3, true)
	assert.True(t, l.Bit(3))
	assert.Equal(t, uint8(0b1000), l.Raw())

	l = l.WithBit(3, false)
	assert.False(t, l.Bit(3))
	assert.True(t, l.IsZero())
}

func TestWithBitDoesNotMutateReceiver(t *testing.T) {
	a := bitlane.Zero[uint8]()
	b := a.WithBit(0, true)

	assert.True(t, a.IsZero(), "WithBit must not mutate the receiver")
	assert.False(t, b.IsZero())
}
