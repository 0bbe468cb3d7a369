package basics

import (
	"testing"

	"cuaderno-ejercicios/internal/platform/console"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivisibility(t *testing.T) {
	assert.Equal(t, "6 is divisible by 3", Divisibility(6))
	assert.Equal(t, "8 is divisible by 4", Divisibility(8))
	assert.Equal(t, "10 is divisible by 2", Divisibility(10))
	assert.Equal(t, "7 is not divisible by 4, 3, or 2", Divisibility(7))
}

func TestLoopUntil(t *testing.T) {
	n, word := LoopUntil(5)
	assert.Equal(t, 5, n)
	assert.Equal(t, "Hola", word)
}

func TestCountdown(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, Countdown(3))
	assert.Empty(t, Countdown(0))
	assert.Empty(t, Countdown(-2))
}

func TestStringOps(t *testing.T) {
	assert.Equal(t, []string{"H", "Hola mundo", "Hola mund"}, StringOps())
}

func TestSumDigits_Propagates(t *testing.T) {
	n, err := SumDigits("40", "2")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), n)

	_, err = SumDigits("40", "dos")
	var pe *console.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "dos", pe.Input)
}

func TestGreeting(t *testing.T) {
	users := map[string]string{"1": "Juan"}

	assert.Equal(t, "Hola Juan", Greeting(users, " 1 "))
	assert.Equal(t, "Hola desconocido", Greeting(users, "2"))
}
