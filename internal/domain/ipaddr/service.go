package ipaddr

import (
	"fmt"
	"strings"

	"cuaderno-ejercicios/internal/domain/variants"
)

func V4(a, b, c, d uint8) variants.Variant {
	return Addrs.MustNew(KindV4, [4]uint8{a, b, c, d})
}

// V6 no valida el texto; basta con que no esté vacío.
func V6(addr string) (variants.Variant, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return variants.Variant{}, fmt.Errorf("%w: empty v6 address", variants.ErrInvalidVariant)
	}
	return Addrs.New(KindV6, addr)
}

var format = variants.MustDispatcher(Addrs, map[variants.Kind]variants.Handler[string]{
	KindV4: func(v variants.Variant) string {
		o, _ := variants.PayloadAs[[4]uint8](v)
		return fmt.Sprintf("%d.%d.%d.%d", o[0], o[1], o[2], o[3])
	},
	KindV6: func(v variants.Variant) string {
		s, _ := variants.PayloadAs[string](v)
		return s
	},
})

var route = variants.MustDispatcher(Addrs, map[variants.Kind]variants.Handler[string]{
	KindV4: func(variants.Variant) string { return "ruta v4" },
	KindV6: func(variants.Variant) string { return "ruta v6" },
})

func Format(addr variants.Variant) (string, error) {
	return format.Dispatch(addr)
}

// Route elige la ruta según el tipo de dirección.
func Route(addr variants.Variant) (string, error) {
	return route.Dispatch(addr)
}

func Loopback(kind variants.Kind) (variants.Variant, error) {
	switch kind {
	case KindV4:
		return V4(127, 0, 0, 1), nil
	case KindV6:
		return V6("::1")
	default:
		return variants.Variant{}, fmt.Errorf("%w: ip has no kind %q", variants.ErrInvalidVariant, kind)
	}
}

// Tag separa una dirección en tipo + texto.
func Tag(addr variants.Variant) (Tagged, error) {
	s, err := Format(addr)
	if err != nil {
		return Tagged{}, err
	}
	return Tagged{Kind: addr.Kind(), Addr: s}, nil
}
