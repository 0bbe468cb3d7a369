// Package maybe modela la ausencia de valor como resultado explícito:
// quien llama decide entre un valor por defecto, transformar o propagar.
package maybe

import (
	"bufio"
	"fmt"
	"strings"

	"cuaderno-ejercicios/internal/platform/fatal"
)

type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

func None[T any]() Option[T] { return Option[T]{} }

// FromPair adapta el idioma (v, ok) de Go: mapas, type assertions.
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

func (o Option[T]) IsSome() bool { return o.ok }
func (o Option[T]) IsNone() bool { return !o.ok }

func (o Option[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// UnwrapOrElse calcula el valor por defecto solo si hace falta.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// Expect convierte la ausencia en un error fatal.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		fatal.Abort(msg)
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map transforma el valor presente; None se propaga sin tocar fn.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

// AndThen encadena pasos que a su vez pueden no tener valor.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return fn(o.value)
}

func PlusOne(x Option[int]) Option[int] {
	return Map(x, func(i int) int { return i + 1 })
}

// FirstLine devuelve la primera línea del texto, si hay alguna.
func FirstLine(text string) Option[string] {
	sc := bufio.NewScanner(strings.NewReader(text))
	if !sc.Scan() {
		return None[string]()
	}
	return Some(sc.Text())
}

// LastRune devuelve el último carácter de s, si no está vacío.
func LastRune(s string) Option[rune] {
	r := []rune(s)
	if len(r) == 0 {
		return None[rune]()
	}
	return Some(r[len(r)-1])
}

func LastCharOfFirstLine(text string) Option[rune] {
	return AndThen(FirstLine(text), LastRune)
}
