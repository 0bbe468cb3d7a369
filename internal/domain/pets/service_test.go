package pets

import (
	"testing"

	"cuaderno-ejercicios/internal/domain/variants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	s, err := Describe(NoPet)
	require.NoError(t, err)
	assert.Equal(t, "Te conseguiremos un gato", s)

	cat, err := Cat(" Amarillo ")
	require.NoError(t, err)
	s, err = Describe(cat)
	require.NoError(t, err)
	assert.Equal(t, "Tienes un gato Amarillo", s)
}

func TestCat_RequiresColor(t *testing.T) {
	_, err := Cat("")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestColorOf(t *testing.T) {
	cat, _ := Cat("negro")

	c, ok := ColorOf(cat)
	assert.True(t, ok)
	assert.Equal(t, "negro", c)

	_, ok = ColorOf(NoPet)
	assert.False(t, ok)
}

func TestCatWithoutPayloadIsInvalid(t *testing.T) {
	_, err := Pets.New(KindCat, nil)
	require.ErrorIs(t, err, variants.ErrInvalidVariant)
}
