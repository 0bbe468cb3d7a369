package birds

import (
	"context"
	"errors"

	"cuaderno-ejercicios/internal/domain/capabilities"
	"cuaderno-ejercicios/internal/platform/lesson"
)

func RegisterRoutes(r lesson.Registrar, svc *Service) {
	r.Handle("traits", "Capacidades: nadar, correr, volar", traitsLesson(svc))
}

func traitsLesson(svc *Service) lesson.Func {
	return func(ctx context.Context, env *lesson.Env) error {
		c := env.Console

		cody, err := svc.Register(ctx, NewPenguin(12.3, 0.30))
		if err != nil {
			return err
		}
		avesota, err := svc.Register(ctx, NewOstrich(40.2, 0.20))
		if err != nil {
			return err
		}
		if _, err := svc.Register(ctx, NewEagle(4.5, 2.1)); err != nil {
			return err
		}

		all, err := svc.List(ctx)
		if err != nil {
			return err
		}
		for _, b := range all {
			for _, line := range Describe(b) {
				c.Println(line)
			}
			c.Println(b.MakeSound())
			c.Printf("Capacidades: %v\n", b.Capabilities().Resolver().Names())
		}

		// carrera solo entre corredores
		if r, ok := avesota.(Runner); ok {
			for _, line := range Race(r, r) {
				c.Println(line)
			}
		}

		for _, b := range []Bird{cody, avesota} {
			msg, err := svc.Perform(ctx, b.ID(), capabilities.Run)
			if errors.Is(err, capabilities.ErrUnsupportedCapability) {
				c.Printf("%s no puede correr\n", b.Name())
				env.Log.Debug("capability rejected", map[string]any{"bird": b.Name(), "error": err.Error()})
				continue
			}
			if err != nil {
				return err
			}
			c.Println(msg)
		}
		return nil
	}
}
