package ipaddr

import (
	"context"

	"cuaderno-ejercicios/internal/domain/variants"
	"cuaderno-ejercicios/internal/platform/lesson"
)

func RegisterRoutes(r lesson.Registrar) {
	r.Handle("enums", "Variantes con datos: direcciones IP", enumsLesson)
}

func enumsLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	// Primero tipo y dirección por separado...
	for _, k := range Addrs.Kinds() {
		lo, err := Loopback(k)
		if err != nil {
			return err
		}
		tag, err := Tag(lo)
		if err != nil {
			return err
		}
		c.Printf("loopback %s: %s\n", tag.Kind, tag.Addr)
	}

	// ...después los datos dentro de la variante.
	v6, err := V6("::5")
	if err != nil {
		return err
	}
	for _, addr := range []variants.Variant{V4(192, 168, 1, 0), v6} {
		s, err := Format(addr)
		if err != nil {
			return err
		}
		route, err := Route(addr)
		if err != nil {
			return err
		}
		c.Printf("%s -> %s\n", s, route)
	}
	return nil
}
