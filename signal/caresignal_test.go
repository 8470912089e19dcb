package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silicasynth/moscad/bitlane"
	"github.com/silicasynth/moscad/signal"
)

func TestNewCareSignalStoresFields(t *testing.T) {
	target, err := signal.Parse[uint8]("10")
	require.NoError(t, err)
	care := bitlane.FromBits[uint8](0b11)

	cs := signal.NewCareSignal(target, care)
	assert.True(t, cs.Target.Equal(target))
	assert.True(t, cs.Care.Equal(care))
}

func TestCareSignalFullCareRequiresExactMatch(t *testing.T) {
	target, err := signal.Parse[uint8]("0110")
	require.NoError(t, err)
	cs := signal.NewCareSignal(target, bitlane.FromBits[uint8](0b1111))

	same, err := signal.Parse[uint8]("0110")
	require.NoError(t, err)
	assert.True(t, cs.Matches(same))

	for _, other := range []string{"0111", "0100", "1110"} {
		o, err := signal.Parse[uint8](other)
		require.NoError(t, err)
		assert.False(t, cs.Matches(o), "candidate %q should not match under full care", other)
	}
}

func TestCareSignalZeroCareMatchesAnything(t *testing.T) {
	target, err := signal.Parse[uint8]("0110")
	require.NoError(t, err)
	cs := signal.NewCareSignal(target, bitlane.Zero[uint8]())

	candidate, err := signal.Parse[uint8]("1001")
	require.NoError(t, err)
	assert.True(t, cs.Matches(candidate), "a zero care mask must match any candidate")
}

func TestCareSignalPartialCareIgnoresUncaredLanes(t *testing.T) {
	target, err := signal.Parse[uint8]("1100")
	require.NoError(t, err)
	// Care only about the two most significant of the four used lanes.
	cs := signal.NewCareSignal(target, bitlane.FromBits[uint8](0b1100))

	matching, err := signal.Parse[uint8]("1111")
	require.NoError(t, err)
	assert.True(t, cs.Matches(matching), "uncared lanes 0 and 1 may differ freely")

	mismatching, err := signal.Parse[uint8]("0011")
	require.NoError(t, err)
	assert.False(t, cs.Matches(mismatching), "cared lanes 2 and 3 differ, must not match")
}
