package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	u, err := New(" Juan ", 18)
	require.NoError(t, err)
	assert.True(t, u.Active)
	assert.Equal(t, "Hola soy Juan y tengo 18 años", u.Greeting())

	_, err = New("", 1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestClone_IsIndependent(t *testing.T) {
	u, _ := New("Juan", 18)
	u.Tags = []string{"admin"}

	dup := u.Clone()
	dup.Tags[0] = "guest"
	dup.Age = 30

	assert.Equal(t, []string{"admin"}, u.Tags)
	assert.Equal(t, uint8(18), u.Age)
}

func TestWithUsername_CopiesRest(t *testing.T) {
	u, _ := New("Juan", 18)
	u.Active = false
	u.Tags = []string{"a"}

	jose := u.WithUsername("José")

	assert.Equal(t, "José", jose.Username)
	assert.False(t, jose.Active)
	assert.Equal(t, uint8(18), jose.Age)

	jose.Tags[0] = "b"
	assert.Equal(t, "a", u.Tags[0])
}

func TestRGB(t *testing.T) {
	assert.Equal(t, "Color rgb: r: 0, g: 0, b: 0", RGB{}.String())
}
