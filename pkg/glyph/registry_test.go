package glyph

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ReturnsKnownMode(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	m := r.Resolve(Powerline)

	assert.Equal(t, Powerline, m.Name)
	assert.Equal(t, "\uE0B0", m.Separator)
	assert.Equal(t, "\uE0B1", m.Thin)
	assert.Equal(t, "\uE0B2", m.RightSeparator)
	assert.Equal(t, "\uE0B3", m.RightThin)
}

func TestResolve_FallsBackToMemoisedDefault(t *testing.T) {
	t.Parallel()

	calls := 0
	r := NewRegistry(WithPicker(func(n int) int {
		calls++
		return calls % n
	}))

	first := r.Resolve("")
	tests := []string{"", "no-such-mode", "POWERLINE", " "}
	for _, name := range tests {
		assert.Equal(t, first, r.Resolve(name), "requested %q", name)
	}
	assert.Equal(t, 1, calls, "default must be chosen once")
}

func TestResolve_ExplicitModeIgnoresDefault(t *testing.T) {
	t.Parallel()

	r := NewRegistry(WithPicker(func(int) int { return 0 }))
	def := r.DefaultMode()
	require.NotEqual(t, Round, def.Name)

	assert.Equal(t, Round, r.Resolve(Round).Name)
	assert.Equal(t, def, r.Resolve("bogus"))
}

func TestDefaultMode_OutOfRangePickClamps(t *testing.T) {
	t.Parallel()

	r := NewRegistry(WithPicker(func(n int) int { return n + 5 }))
	assert.Equal(t, r.Names()[0], r.DefaultMode().Name)
}

func TestDefaultMode_ConcurrentCallersAgree(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	next := 0
	r := NewRegistry(WithPicker(func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		next++
		return next % n
	}))

	const workers = 16
	got := make([]Mode, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = r.DefaultMode()
		}(i)
	}
	wg.Wait()

	want := r.DefaultMode()
	for i, m := range got {
		assert.Equal(t, want, m, "worker %d", i)
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	t.Parallel()

	names := NewRegistry().Names()
	assert.Equal(t, []string{
		Down, Flame, Honeycomb, Lego, Powerline, Round, Ruiny, Squares, Trapezoid, Up,
	}, names)

	names[0] = "mutated"
	assert.Equal(t, Down, NewRegistry().Names()[0])
}

func TestWithModes_CustomSet(t *testing.T) {
	t.Parallel()

	ascii := Mode{Name: "ascii", Separator: ">", Thin: "|", RightSeparator: "<"}
	r := NewRegistry(WithModes(ascii, Mode{}), WithPicker(func(int) int { return 0 }))

	assert.Equal(t, []string{"ascii"}, r.Names())
	assert.Equal(t, ascii, r.Resolve("powerline"))
	_, ok := r.Lookup("")
	assert.False(t, ok)
}

func TestRightThinOrThin(t *testing.T) {
	t.Parallel()

	three := Mode{Name: "three", Separator: ">", Thin: "|", RightSeparator: "<"}
	assert.Equal(t, "|", three.RightThinOrThin())
	assert.Equal(t, "|", three.ThinFor(true))
	assert.Equal(t, "|", three.ThinFor(false))

	four := NewRegistry().Resolve(Flame)
	assert.Equal(t, "\uE0C3", four.ThinFor(true))
	assert.Equal(t, "\uE0C1", four.ThinFor(false))
}
