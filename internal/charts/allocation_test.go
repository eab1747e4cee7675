package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderAllocationPie(t *testing.T) {
	t.Run("renders_png", func(t *testing.T) {
		img, err := RenderAllocationPie("Allocation", []Slice{
			{Label: "gold", Value: 80000},
			{Label: "stocks", Value: 40000},
			{Label: "crypto", Value: -10},
		})
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(img, pngMagic))
	})

	t.Run("no_positive_values", func(t *testing.T) {
		_, err := RenderAllocationPie("Allocation", []Slice{{Label: "x", Value: 0}})
		assert.ErrorIs(t, err, ErrNoData)

		_, err = RenderAllocationPie("Allocation", nil)
		assert.ErrorIs(t, err, ErrNoData)
	})
}
