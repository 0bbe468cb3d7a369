package coins

import (
	"bytes"
	"testing"

	"cuaderno-ejercicios/internal/domain/variants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPesos(t *testing.T) {
	svc := NewService(nil)

	tests := []struct {
		coin variants.Variant
		want uint8
	}{
		{coin: Copper, want: 1},
		{coin: Silver, want: 10},
		{coin: Gold, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.coin.String(), func(t *testing.T) {
			got, err := svc.ToPesos(tt.coin)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToPesos_CopperWritesNote(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService(&buf)

	_, err := svc.ToPesos(Copper)
	require.NoError(t, err)
	assert.Equal(t, ":C\n", buf.String())

	buf.Reset()
	_, err = svc.ToPesos(Gold)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestIsMillionaire(t *testing.T) {
	svc := NewService(nil)

	for _, c := range []variants.Variant{Copper, Silver, Gold} {
		got, err := svc.IsMillionaire(c)
		require.NoError(t, err)
		assert.Equal(t, c.Is(KindGold), got, c.String())
	}
}

func TestParse(t *testing.T) {
	c, err := Parse(" Oro ")
	require.NoError(t, err)
	assert.Equal(t, KindGold, c.Kind())

	c, err = Parse("silver")
	require.NoError(t, err)
	assert.Equal(t, Silver, c)

	_, err = Parse("platino")
	require.ErrorIs(t, err, variants.ErrInvalidVariant)
}
