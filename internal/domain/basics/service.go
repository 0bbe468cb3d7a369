package basics

import (
	"errors"
	"fmt"
	"strings"

	"cuaderno-ejercicios/internal/platform/console"
	"cuaderno-ejercicios/internal/platform/maybe"
)

var ErrInvalidInput = errors.New("invalid input")

// Divisibility reporta el primer divisor (4, 3, 2) de n, en ese orden.
func Divisibility(n int) string {
	switch {
	case n%4 == 0:
		return fmt.Sprintf("%d is divisible by 4", n)
	case n%3 == 0:
		return fmt.Sprintf("%d is divisible by 3", n)
	case n%2 == 0:
		return fmt.Sprintf("%d is divisible by 2", n)
	default:
		return fmt.Sprintf("%d is not divisible by 4, 3, or 2", n)
	}
}

// LoopUntil cuenta hasta limit y sale del ciclo con un valor.
func LoopUntil(limit int) (int, string) {
	i := 0
	for {
		if i == limit {
			return i, "Hola"
		}
		i++
	}
}

// Countdown devuelve from..1 (el rango invertido).
func Countdown(from int) []int {
	out := make([]int, 0, max(from, 0))
	for n := from; n >= 1; n-- {
		out = append(out, n)
	}
	return out
}

// StringOps reproduce push/push_str/pop sobre un string.
func StringOps() []string {
	var b strings.Builder
	steps := make([]string, 0, 3)

	b.WriteRune('H')
	steps = append(steps, b.String())
	b.WriteString("ola mundo")
	steps = append(steps, b.String())

	r := []rune(b.String())
	steps = append(steps, string(r[:len(r)-1]))
	return steps
}

// SumDigits lee dos números del texto y los suma; cualquier fallo se propaga
// tal cual al que llama.
func SumDigits(a, b string) (uint64, error) {
	x, err := console.ParseUint(a)
	if err != nil {
		return 0, err
	}
	y, err := console.ParseUint(b)
	if err != nil {
		return 0, err
	}
	return x + y, nil
}

// Username busca el nombre de usuario; la ausencia no es un error.
func Username(users map[string]string, id string) maybe.Option[string] {
	v, ok := users[strings.TrimSpace(id)]
	return maybe.FromPair(v, ok)
}

// Greeting encadena la búsqueda con el formateo sin ramificar en cada paso.
func Greeting(users map[string]string, id string) string {
	return maybe.Map(Username(users, id), func(name string) string {
		return "Hola " + name
	}).UnwrapOr("Hola desconocido")
}
