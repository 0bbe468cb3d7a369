package ipaddr

import "cuaderno-ejercicios/internal/domain/variants"

const (
	KindV4 variants.Kind = "v4"
	KindV6 variants.Kind = "v6"
)

// Addrs: una IPv4 son cuatro octetos, una IPv6 se guarda como texto.
var Addrs = variants.MustRegistry("ip",
	variants.With[[4]uint8](KindV4),
	variants.With[string](KindV6),
)

// Tagged es la forma previa a meter los datos en la variante: tipo y texto
// por separado.
type Tagged struct {
	Kind variants.Kind
	Addr string
}
