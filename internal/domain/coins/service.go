package coins

import (
	"fmt"
	"io"
	"strings"

	"cuaderno-ejercicios/internal/domain/variants"
)

type Service struct {
	toPesos     *variants.Dispatcher[uint8]
	millionaire *variants.Dispatcher[bool]
}

// NewService arma las tablas de despacho. out recibe la nota que imprime la
// conversión del cobre; nil la descarta.
func NewService(out io.Writer) *Service {
	if out == nil {
		out = io.Discard
	}

	return &Service{
		toPesos: variants.MustDispatcher(Coins, map[variants.Kind]variants.Handler[uint8]{
			KindCopper: func(variants.Variant) uint8 {
				fmt.Fprintln(out, ":C")
				return 1
			},
			KindSilver: func(variants.Variant) uint8 { return 10 },
			KindGold:   func(variants.Variant) uint8 { return 100 },
		}),
		millionaire: variants.MustDispatcher(Coins, map[variants.Kind]variants.Handler[bool]{
			KindGold: func(variants.Variant) bool { return true },
		}, variants.WithDefault[bool](func(variants.Variant) bool { return false })),
	}
}

// ToPesos convierte una moneda en su valor: cobre 1, plata 10, oro 100.
func (s *Service) ToPesos(coin variants.Variant) (uint8, error) {
	return s.toPesos.Dispatch(coin)
}

// IsMillionaire solo es cierto para el oro; el resto cae en el comodín.
func (s *Service) IsMillionaire(coin variants.Variant) (bool, error) {
	return s.millionaire.Dispatch(coin)
}

// Parse resuelve el nombre de una moneda ("gold", " Oro ").
func Parse(name string) (variants.Variant, error) {
	k := variants.Kind(strings.ToLower(strings.TrimSpace(name)))
	switch k {
	case "cobre":
		k = KindCopper
	case "plata":
		k = KindSilver
	case "oro":
		k = KindGold
	}
	return Coins.New(k, nil)
}
