package pets

import (
	"context"

	"cuaderno-ejercicios/internal/domain/variants"
	"cuaderno-ejercicios/internal/platform/lesson"
)

func RegisterRoutes(r lesson.Registrar) {
	r.Handle("mascotas", "Patrones que unen valores", petsLesson)
}

func petsLesson(ctx context.Context, env *lesson.Env) error {
	cat, err := Cat("Amarillo")
	if err != nil {
		return err
	}

	for _, p := range []variants.Variant{cat, NoPet} {
		s, err := Describe(p)
		if err != nil {
			return err
		}
		env.Console.Println(s)
	}
	return nil
}
