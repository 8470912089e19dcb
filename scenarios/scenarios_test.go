package scenarios_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silicasynth/moscad/scenarios"
	"github.com/silicasynth/moscad/solver"
)

func TestPresetsAreValid(t *testing.T) {
	presets := map[string]func() (err error){
		"SingleNPass":                 func() error { q := scenarios.SingleNPass(); return q.Check() },
		"SinglePPass":                 func() error { q := scenarios.SinglePPass(); return q.Check() },
		"Not":                         func() error { q := scenarios.Not(); return q.Check() },
		"Buffer":                      func() error { q := scenarios.Buffer(); return q.Check() },
		"BufferWithInvertedInputGiven": func() error { q := scenarios.BufferWithInvertedInputGiven(); return q.Check() },
		"NAND2":                       func() error { q := scenarios.NAND2(); return q.Check() },
		"NOR2":                        func() error { q := scenarios.NOR2(); return q.Check() },
		"AND2":                        func() error { q := scenarios.AND2(); return q.Check() },
		"XOR2":                        func() error { q := scenarios.XOR2(); return q.Check() },
		"TriStateBuffer":              func() error { q := scenarios.TriStateBuffer(); return q.Check() },
		"HalfAdder":                   func() error { q := scenarios.HalfAdder(); return q.Check() },
		"NAND3":                       func() error { q := scenarios.NAND3(); return q.Check() },
	}

	for name, check := range presets {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, check())
		})
	}
}

func TestSingleNPassMinimalDepth(t *testing.T) {
	q := scenarios.SingleNPass()
	res, err := solver.Solve(&q, solver.WithMaxDevices(4))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 1, res.Depth)
}

func TestNotMinimalDepth(t *testing.T) {
	q := scenarios.Not()
	res, err := solver.Solve(&q, solver.WithMaxDevices(4))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 2, res.Depth)
}

func TestBufferMinimalDepth(t *testing.T) {
	q := scenarios.Buffer()
	res, err := solver.Solve(&q, solver.WithMaxDevices(4))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 4, res.Depth)
}

func TestBufferWithInvertedInputGivenMinimalDepth(t *testing.T) {
	q := scenarios.BufferWithInvertedInputGiven()
	res, err := solver.Solve(&q, solver.WithMaxDevices(4))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 2, res.Depth, "offering the pre-inverted input should shortcut past a dedicated inverter stage")
}

func TestNAND2MinimalDepth(t *testing.T) {
	q := scenarios.NAND2()
	res, err := solver.Solve(&q, solver.WithMaxDevices(4))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 4, res.Depth)
}
