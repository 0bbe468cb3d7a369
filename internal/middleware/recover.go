package middleware

import (
	"context"

	"cuaderno-ejercicios/internal/platform/fatal"
	"cuaderno-ejercicios/internal/platform/lesson"
)

// Recover reporta un aborto fatal y lo devuelve como *fatal.Error.
// No lo recupera: quien ejecuta debe terminar el proceso.
func Recover(name string, next lesson.Func) lesson.Func {
	return func(ctx context.Context, env *lesson.Env) error {
		err := fatal.Catch(func() error { return next(ctx, env) })
		if fatal.Is(err) {
			env.Log.Error("lesson aborted", map[string]any{"error": err.Error()})
		}
		return err
	}
}
