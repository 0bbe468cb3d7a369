package router

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"cuaderno-ejercicios/internal/adapters/storage/memory"
	"cuaderno-ejercicios/internal/domain/basics"
	"cuaderno-ejercicios/internal/domain/birds"
	"cuaderno-ejercicios/internal/domain/coins"
	"cuaderno-ejercicios/internal/domain/collections"
	"cuaderno-ejercicios/internal/domain/ipaddr"
	"cuaderno-ejercicios/internal/domain/pets"
	"cuaderno-ejercicios/internal/domain/users"
	"cuaderno-ejercicios/internal/domain/vectors"
	"cuaderno-ejercicios/internal/middleware"
	"cuaderno-ejercicios/internal/platform/console"
	"cuaderno-ejercicios/internal/platform/lesson"
	"cuaderno-ejercicios/internal/platform/logger"
)

var ErrUnknownLesson = errors.New("unknown lesson")

type Options struct {
	Console *console.Client // nil = stdin/stdout
	Logger  logger.Logger   // nil = descartar logs
}

type entry struct {
	summary string
	fn      lesson.Func
}

// Router registra las lecciones por nombre y ejecuta una por vez.
type Router struct {
	console *console.Client
	log     logger.Logger
	mws     []lesson.Middleware
	lessons map[string]entry
}

func NewRouter(opts Options) *Router {
	r := &Router{
		console: opts.Console,
		log:     opts.Logger,
		lessons: map[string]entry{},
	}
	if r.console == nil {
		r.console = console.New()
	}
	if r.log == nil {
		r.log = logger.Nop()
	}

	r.Use(middleware.RunID)
	r.Use(middleware.Recover)

	// Lecciones por módulo, en el orden del cuaderno
	basics.RegisterRoutes(r)
	users.RegisterRoutes(r)
	ipaddr.RegisterRoutes(r)
	coins.RegisterRoutes(r, coins.NewService(r.console.Out()))
	pets.RegisterRoutes(r)
	collections.RegisterRoutes(r)
	birds.RegisterRoutes(r, birds.NewService(memory.NewBirdRepo()))
	vectors.RegisterRoutes(r)

	return r
}

// Use agrega un middleware; el primero registrado es el más externo.
func (r *Router) Use(mw lesson.Middleware) {
	r.mws = append(r.mws, mw)
}

// Handle registra una lección. Nombres duplicados son un error de programación.
func (r *Router) Handle(name, summary string, fn lesson.Func) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || fn == nil {
		panic("router: lesson name and func required")
	}
	if _, dup := r.lessons[name]; dup {
		panic(fmt.Sprintf("router: lesson %q registered twice", name))
	}
	r.lessons[name] = entry{summary: summary, fn: fn}
}

// Names devuelve las lecciones registradas en orden alfabético.
func (r *Router) Names() []string {
	out := make([]string, 0, len(r.lessons))
	for n := range r.lessons {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (r *Router) Summary(name string) (string, bool) {
	e, ok := r.lessons[strings.ToLower(strings.TrimSpace(name))]
	return e.summary, ok
}

// CatalogEntry describe una lección en el índice del cuaderno.
type CatalogEntry struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"`
}

// Catalog devuelve el índice de lecciones ordenado por nombre.
func (r *Router) Catalog() []CatalogEntry {
	names := r.Names()
	out := make([]CatalogEntry, 0, len(names))
	for _, n := range names {
		out = append(out, CatalogEntry{Name: n, Summary: r.lessons[n].summary})
	}
	return out
}

// CatalogYAML serializa el índice como documento YAML.
func (r *Router) CatalogYAML() ([]byte, error) {
	b, err := yaml.Marshal(map[string]any{"lessons": r.Catalog()})
	if err != nil {
		return nil, fmt.Errorf("router: catalog: %w", err)
	}
	return b, nil
}

// Run ejecuta exactamente una lección.
func (r *Router) Run(ctx context.Context, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	e, ok := r.lessons[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLesson, name)
	}

	fn := e.fn
	for i := len(r.mws) - 1; i >= 0; i-- {
		fn = r.mws[i](name, fn)
	}

	env := &lesson.Env{Console: r.console, Log: r.log}
	return fn(ctx, env)
}
