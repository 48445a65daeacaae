package htmldom

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer(16)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, m.Close()) })

	small := &Element{fontSize: 16}
	large := &Element{fontSize: 32}

	assert.Zero(t, m.Advance(small, ""))
	assert.Greater(t, m.Advance(small, "WW"), m.Advance(small, "ii"))

	base := m.Advance(small, "Hello world")
	assert.InEpsilon(t, 2*base, m.Advance(large, "Hello world"), 0.05)

	assert.Equal(t, base, m.Advance(&Element{}, "Hello world"), "default size is used")
}

func TestFontMeasurer_Concurrent(t *testing.T) {
	m, err := NewFontMeasurer(0)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, m.Close()) })

	want := m.Advance(&Element{fontSize: 12}, "concurrent")

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			el := &Element{fontSize: float64(10 + i%3)}
			_ = m.Advance(el, "concurrent")
			assert.Equal(t, want, m.Advance(&Element{fontSize: 12}, "concurrent"))
		})
	}
	wg.Wait()
}
