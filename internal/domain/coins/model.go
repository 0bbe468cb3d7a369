package coins

import "cuaderno-ejercicios/internal/domain/variants"

const (
	KindCopper variants.Kind = "copper"
	KindSilver variants.Kind = "silver"
	KindGold   variants.Kind = "gold"
)

// Coins es el conjunto cerrado de monedas. Ninguna carga datos.
var Coins = variants.MustRegistry("monedas",
	variants.Unit(KindCopper),
	variants.Unit(KindSilver),
	variants.Unit(KindGold),
)

var (
	Copper = Coins.MustNew(KindCopper, nil)
	Silver = Coins.MustNew(KindSilver, nil)
	Gold   = Coins.MustNew(KindGold, nil)
)
