package vectors

import (
	"fmt"
	"strings"
)

// Number son los tipos que se pueden sumar componente a componente.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type Vector2 struct {
	X, Y float32
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

type Vector3[T Number] struct {
	X, Y, Z T
}

func NewVector3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return NewVector3(v.X+o.X, v.Y+o.Y, v.Z+o.Z)
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Data envuelve un valor cualquiera; Render sirve para todos.
type Data[T any] struct {
	Value T
}

func (d Data[T]) Render() string {
	return fmt.Sprintf("Dato: %v", d.Value)
}

// Sum solo existe para datos numéricos: un Data[string] no se puede sumar.
func Sum[T Number](d *Data[T], other T) {
	d.Value += other
}

// Join imprime cualquier slice, un elemento por línea.
func Join[T any](items []T) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%v\n", it)
	}
	return b.String()
}
