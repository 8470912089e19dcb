package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silicasynth/moscad/bitlane"
	"github.com/silicasynth/moscad/internal/undomap"
	"github.com/silicasynth/moscad/query"
	"github.com/silicasynth/moscad/search"
	"github.com/silicasynth/moscad/signal"
)

func mustParse(t *testing.T, s string) signal.Signal[uint8] {
	t.Helper()
	sig, err := signal.Parse[uint8](s)
	require.NoError(t, err)
	return sig
}

func TestNewDoesNotSeedPowerOrInputsIntoBuilt(t *testing.T) {
	vdd := mustParse(t, "1")
	gnd := mustParse(t, "0")
	a := mustParse(t, "01")
	q := query.New(
		[]signal.Signal[uint8]{vdd, gnd},
		[]signal.Signal[uint8]{a},
		[]signal.CareSignal[uint8]{signal.NewCareSignal(mustParse(t, "10"), bitlane.AllOnes[uint8]())},
	)

	st := search.New(&q)

	// Power and Input nets are read directly from Query by the solver, not
	// entered into Built, so they can never be treated as a free merge
	// target for a newly produced device output.
	assert.False(t, st.Present(vdd))
	assert.False(t, st.Present(gnd))
	assert.False(t, st.Present(a))
	assert.False(t, st.Free(vdd))
	assert.False(t, st.Free(gnd))
	assert.False(t, st.Free(a))
}

func TestPresentFalseForUnbuiltSignal(t *testing.T) {
	q := query.New[uint8](nil, nil, []signal.CareSignal[uint8]{
		signal.NewCareSignal(mustParse(t, "1"), mustParse(t, "1").Strong),
	})
	st := search.New(&q)

	never := mustParse(t, "Z")
	assert.False(t, st.Present(never))
	assert.False(t, st.Free(never))
}

func TestFreeReflectsWithBindingInstall(t *testing.T) {
	q := query.New[uint8](nil, nil, []signal.CareSignal[uint8]{
		signal.NewCareSignal(mustParse(t, "1"), mustParse(t, "1").Strong),
	})
	st := search.New(&q)

	net := mustParse(t, "Z")
	_, ran := undomap.WithBinding(st.Built, net, true, false, func() int {
		assert.True(t, st.Free(net))
		return 0
	})
	assert.True(t, ran)
	assert.False(t, st.Present(net), "binding must be undone once WithBinding returns")
}
