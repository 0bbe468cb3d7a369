package collections

import (
	"cuaderno-ejercicios/internal/platform/fatal"
	"cuaderno-ejercicios/internal/platform/maybe"
)

// Vec es un vector creciente. Get es el acceso seguro; At el que aborta.
type Vec[T any] struct {
	items []T
}

func VecOf[T any](items ...T) *Vec[T] {
	out := make([]T, len(items))
	copy(out, items)
	return &Vec[T]{items: out}
}

func (v *Vec[T]) Push(x T) { v.items = append(v.items, x) }

func (v *Vec[T]) Len() int { return len(v.items) }

func (v *Vec[T]) Get(i int) maybe.Option[T] {
	if i < 0 || i >= len(v.items) {
		return maybe.None[T]()
	}
	return maybe.Some(v.items[i])
}

// At es fatal con un índice fuera de rango.
func (v *Vec[T]) At(i int) T {
	return fatal.At(v.items, i)
}

// Each recorre en orden con índice base 1, como se numeran en pantalla.
func (v *Vec[T]) Each(fn func(n int, x T)) {
	for i, x := range v.items {
		fn(i+1, x)
	}
}

// Apply modifica cada elemento en su lugar.
func (v *Vec[T]) Apply(fn func(x *T)) {
	for i := range v.items {
		fn(&v.items[i])
	}
}

// Slice devuelve una copia de los elementos.
func (v *Vec[T]) Slice() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Grid arma una matriz n×n de ceros (la tabla de votos).
func Grid(n int) [][]uint {
	if n <= 0 {
		return [][]uint{}
	}
	g := make([][]uint, 0, n)
	for range n {
		g = append(g, make([]uint, n))
	}
	return g
}
