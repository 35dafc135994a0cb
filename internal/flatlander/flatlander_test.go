package flatlander_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatland/internal/domain"
	"flatland/internal/flatlander"
)

func TestNew_Bounds(t *testing.T) {
	t.Run("accepts minimum", func(t *testing.T) {
		f, err := flatlander.New(flatlander.MinPosition, flatlander.MinHeight)
		require.NoError(t, err)
		assert.Equal(t, flatlander.MinPosition, f.Position())
		assert.Equal(t, flatlander.MinHeight, f.Height())
	})

	t.Run("accepts maximum", func(t *testing.T) {
		f, err := flatlander.New(flatlander.MaxPosition, flatlander.MaxHeight)
		require.NoError(t, err)
		assert.Equal(t, flatlander.MaxPosition, f.Position())
		assert.Equal(t, flatlander.MaxHeight, f.Height())
	})

	t.Run("accepts interior values", func(t *testing.T) {
		f, err := flatlander.New(12345, 678)
		require.NoError(t, err)
		assert.Equal(t, int32(12345), f.Position())
		assert.Equal(t, uint32(678), f.Height())
	})
}

func TestNew_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		position int32
		height   uint32
	}{
		{"position below min", flatlander.MinPosition - 1, 10},
		{"position above max", flatlander.MaxPosition + 1, 10},
		{"position far negative", math.MinInt32, 10},
		{"height below min", 10, flatlander.MinHeight - 1},
		{"height above max", 10, flatlander.MaxHeight + 1},
		{"height huge", 10, math.MaxUint32},
		{"both out of range", flatlander.MinPosition - 1, flatlander.MaxHeight + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := flatlander.New(tt.position, tt.height)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrOutOfRange))
			assert.Equal(t, flatlander.Flatlander{}, f)
		})
	}
}
