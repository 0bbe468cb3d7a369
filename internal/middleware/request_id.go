package middleware

import (
	"context"

	"cuaderno-ejercicios/internal/platform/lesson"

	"github.com/google/uuid"
)

// RunID asigna un id a cada ejecución y lo agrega al logger.
func RunID(name string, next lesson.Func) lesson.Func {
	return func(ctx context.Context, env *lesson.Env) error {
		if env.RunID == "" {
			env.RunID = uuid.NewString()
		}
		env.Log = env.Log.With(map[string]any{
			"run_id": env.RunID,
			"lesson": name,
		})
		return next(ctx, env)
	}
}
