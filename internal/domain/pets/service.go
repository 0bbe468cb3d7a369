package pets

import (
	"errors"
	"fmt"
	"strings"

	"cuaderno-ejercicios/internal/domain/variants"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Cat crea un gato; el color es obligatorio.
func Cat(color string) (variants.Variant, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return variants.Variant{}, ErrInvalidInput
	}
	return Pets.New(KindCat, color)
}

var describe = variants.MustDispatcher(Pets, map[variants.Kind]variants.Handler[string]{
	KindNone: func(variants.Variant) string {
		return "Te conseguiremos un gato"
	},
	KindCat: func(v variants.Variant) string {
		color, _ := variants.PayloadAs[string](v)
		return fmt.Sprintf("Tienes un gato %s", color)
	},
})

func Describe(pet variants.Variant) (string, error) {
	return describe.Dispatch(pet)
}

// ColorOf devuelve el color del gato, si hay gato.
func ColorOf(pet variants.Variant) (string, bool) {
	if !Pets.Owns(pet) || !pet.Is(KindCat) {
		return "", false
	}
	return variants.PayloadAs[string](pet)
}
