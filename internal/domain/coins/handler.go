package coins

import (
	"context"

	"cuaderno-ejercicios/internal/platform/lesson"
	"cuaderno-ejercicios/internal/platform/maybe"
)

func RegisterRoutes(r lesson.Registrar, svc *Service) {
	r.Handle("match", "Match exhaustivo y comodín con monedas", matchLesson(svc))
}

func matchLesson(svc *Service) lesson.Func {
	return func(ctx context.Context, env *lesson.Env) error {
		c := env.Console

		for _, coin := range Coins.Kinds() {
			v := Coins.MustNew(coin, nil)
			pesos, err := svc.ToPesos(v)
			if err != nil {
				return err
			}
			c.Printf("Conversión %s: %d\n", coin, pesos)
		}

		rich, err := svc.IsMillionaire(Copper)
		if err != nil {
			return err
		}
		if rich {
			c.Println("Eres millonario")
		} else {
			c.Println("No eres millonario")
		}

		five := maybe.Some(5)
		c.Printf("plus_one(%s) = %s\n", five, maybe.PlusOne(five))
		return nil
	}
}
