package pets

import "cuaderno-ejercicios/internal/domain/variants"

const (
	KindNone variants.Kind = "none"
	KindCat  variants.Kind = "cat"
)

// Pets: o no tienes mascota, o tienes un gato de cierto color.
var Pets = variants.MustRegistry("mascotas",
	variants.Unit(KindNone),
	variants.With[string](KindCat),
)

var NoPet = Pets.MustNew(KindNone, nil)
