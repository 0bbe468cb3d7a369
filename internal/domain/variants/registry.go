package variants

import (
	"fmt"
	"reflect"
	"strings"
)

// Registry es el conjunto cerrado de variantes de un tipo.
// Se define una vez (normalmente a nivel de paquete) y no cambia después.
type Registry struct {
	name   string
	order  []Kind
	shapes map[Kind]reflect.Type
}

// NewRegistry valida las declaraciones: kind no vacío y sin duplicados.
func NewRegistry(name string, decls ...Decl) (*Registry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: registry name required", ErrInvalidDecl)
	}
	if len(decls) == 0 {
		return nil, fmt.Errorf("%w: %s declares no kinds", ErrInvalidDecl, name)
	}

	r := &Registry{
		name:   name,
		order:  make([]Kind, 0, len(decls)),
		shapes: make(map[Kind]reflect.Type, len(decls)),
	}
	for _, d := range decls {
		k := Kind(strings.TrimSpace(string(d.Kind)))
		if k == "" {
			return nil, fmt.Errorf("%w: %s has an empty kind", ErrInvalidDecl, name)
		}
		if _, dup := r.shapes[k]; dup {
			return nil, fmt.Errorf("%w: %s declares %q twice", ErrInvalidDecl, name, k)
		}
		r.shapes[k] = d.Shape
		r.order = append(r.order, k)
	}
	return r, nil
}

// MustRegistry es NewRegistry para declaraciones a nivel de paquete.
func MustRegistry(name string, decls ...Decl) *Registry {
	r, err := NewRegistry(name, decls...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Name() string { return r.name }

// Kinds devuelve las variantes en orden de declaración.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Has(kind Kind) bool {
	_, ok := r.shapes[kind]
	return ok
}

// Shape devuelve el tipo de payload declarado (nil para variantes unitarias).
func (r *Registry) Shape(kind Kind) (reflect.Type, bool) {
	s, ok := r.shapes[kind]
	return s, ok
}

// New construye una variante. Falla con ErrInvalidVariant si el kind no existe
// o si el payload no coincide con la forma declarada.
func (r *Registry) New(kind Kind, payload any) (Variant, error) {
	shape, ok := r.shapes[kind]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %s has no kind %q", ErrInvalidVariant, r.name, kind)
	}

	if shape == nil {
		if payload != nil {
			return Variant{}, fmt.Errorf("%w: %s.%s takes no payload, got %T", ErrInvalidVariant, r.name, kind, payload)
		}
		return Variant{reg: r, kind: kind}, nil
	}

	if payload == nil {
		return Variant{}, fmt.Errorf("%w: %s.%s requires a %s payload", ErrInvalidVariant, r.name, kind, shape)
	}
	if !reflect.TypeOf(payload).AssignableTo(shape) {
		return Variant{}, fmt.Errorf("%w: %s.%s requires a %s payload, got %T", ErrInvalidVariant, r.name, kind, shape, payload)
	}
	return Variant{reg: r, kind: kind, payload: payload}, nil
}

// MustNew es New para fixtures; entra en pánico si la variante no es válida.
func (r *Registry) MustNew(kind Kind, payload any) Variant {
	v, err := r.New(kind, payload)
	if err != nil {
		panic(err)
	}
	return v
}

// Owns indica si la variante fue construida por este registro.
func (r *Registry) Owns(v Variant) bool {
	return v.reg == r
}
