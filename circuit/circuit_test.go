package circuit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silicasynth/moscad/circuit"
	"github.com/silicasynth/moscad/query"
	"github.com/silicasynth/moscad/signal"
)

func mustParse(t *testing.T, s string) signal.Signal[uint8] {
	t.Helper()
	sig, err := signal.Parse[uint8](s)
	require.NoError(t, err)
	return sig
}

func singleNPassQuery(t *testing.T) *query.Query[uint8] {
	power := []signal.Signal[uint8]{mustParse(t, "11"), mustParse(t, "00")}
	inputs := []signal.Signal[uint8]{mustParse(t, "01")}
	target := mustParse(t, "Z0")
	cs := signal.NewCareSignal(target, target.IgnoredMask().Not())
	q := query.New(power, inputs, []signal.CareSignal[uint8]{cs})
	require.NoError(t, q.Check())
	return &q
}

func TestReconstructReturnsDeviceList(t *testing.T) {
	q := singleNPassQuery(t)

	devices, err := circuit.Reconstruct(q, 1)
	require.NoError(t, err)
	require.Len(t, devices, 1)
}

func TestReconstructNoWitnessBelowMinimum(t *testing.T) {
	q := singleNPassQuery(t)

	_, err := circuit.Reconstruct(q, 0)
	assert.ErrorIs(t, err, circuit.ErrNoWitnessAtDepth)
}

func TestSummarizeRendersOneLinePerDevice(t *testing.T) {
	q := singleNPassQuery(t)
	devices, err := circuit.Reconstruct(q, 1)
	require.NoError(t, err)

	report := circuit.Summarize(devices)
	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	assert.Len(t, lines, 1)
	assert.Contains(t, report, "gate=")
	assert.Contains(t, report, "power=")
	assert.Contains(t, report, "net=")
}

func TestSummarizeEmptyDeviceList(t *testing.T) {
	assert.Equal(t, "", circuit.Summarize[uint8](nil))
}
