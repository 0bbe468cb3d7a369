package lesson

import (
	"context"

	"cuaderno-ejercicios/internal/platform/console"
	"cuaderno-ejercicios/internal/platform/logger"
)

// Env es lo que recibe cada lección: consola para narrar/leer y logger.
type Env struct {
	Console *console.Client
	Log     logger.Logger
	RunID   string
}

// Func es una lección. Un error devuelto es recuperable y lo reporta quien
// la ejecuta; las condiciones fatales se señalan con fatal.Abort.
type Func func(ctx context.Context, env *Env) error

type Middleware func(name string, next Func) Func

// Registrar es lo que ven los paquetes de dominio para publicar sus lecciones.
type Registrar interface {
	Handle(name, summary string, fn Func)
}
