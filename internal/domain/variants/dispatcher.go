package variants

import (
	"fmt"
	"strings"
)

// Handler produce el resultado para una variante concreta.
type Handler[R any] func(v Variant) R

// Dispatcher selecciona exactamente un handler por variante.
// Se construye exhaustivo: cada kind tiene handler, o hay un comodín.
type Dispatcher[R any] struct {
	reg      *Registry
	handlers map[Kind]Handler[R]
	fallback Handler[R]
}

type Option[R any] func(*Dispatcher[R])

// WithDefault declara el comodín (el "_ =>" de un match).
func WithDefault[R any](h Handler[R]) Option[R] {
	return func(d *Dispatcher[R]) {
		d.fallback = h
	}
}

// NewDispatcher valida exhaustividad al construir. Handlers para kinds que el
// registro no declara son ErrInvalidVariant; kinds sin handler y sin comodín
// son ErrNonExhaustiveMatch.
func NewDispatcher[R any](reg *Registry, handlers map[Kind]Handler[R], opts ...Option[R]) (*Dispatcher[R], error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrInvalidDecl)
	}

	d := &Dispatcher[R]{
		reg:      reg,
		handlers: make(map[Kind]Handler[R], len(handlers)),
	}
	for _, opt := range opts {
		opt(d)
	}

	for k, h := range handlers {
		if !reg.Has(k) {
			return nil, fmt.Errorf("%w: %s has no kind %q", ErrInvalidVariant, reg.name, k)
		}
		if h == nil {
			continue
		}
		d.handlers[k] = h
	}

	if d.fallback == nil {
		missing := make([]string, 0)
		for _, k := range reg.order {
			if _, ok := d.handlers[k]; !ok {
				missing = append(missing, string(k))
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s missing %s", ErrNonExhaustiveMatch, reg.name, strings.Join(missing, ", "))
		}
	}

	return d, nil
}

// MustDispatcher es NewDispatcher para tablas a nivel de paquete.
func MustDispatcher[R any](reg *Registry, handlers map[Kind]Handler[R], opts ...Option[R]) *Dispatcher[R] {
	d, err := NewDispatcher(reg, handlers, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Dispatch ejecuta el handler de la variante activa.
func (d *Dispatcher[R]) Dispatch(v Variant) (R, error) {
	var zero R
	if !d.reg.Owns(v) {
		return zero, fmt.Errorf("%w: %s is not a %s variant", ErrInvalidVariant, v, d.reg.name)
	}
	if h, ok := d.handlers[v.kind]; ok {
		return h(v), nil
	}
	// construcción exhaustiva: si no hay handler, hay comodín
	return d.fallback(v), nil
}

// MustDispatch es Dispatch para variantes que ya se sabe que son del registro.
func (d *Dispatcher[R]) MustDispatch(v Variant) R {
	out, err := d.Dispatch(v)
	if err != nil {
		panic(err)
	}
	return out
}
