package capabilities

import (
	"errors"
	"sort"
	"strings"

	port "cuaderno-ejercicios/internal/ports/capabilities"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnsupportedCapability = errors.New("unsupported capability")
)

// Capability nombra un conjunto de operaciones opcional (nadar, correr, volar).
type Capability string

const (
	Swim Capability = "swim"
	Run  Capability = "run"
	Fly  Capability = "fly"
)

// Known devuelve las capacidades admitidas, en orden estable.
func Known() []Capability {
	return []Capability{Swim, Run, Fly}
}

// Set es el conjunto de capacidades de una entidad. Se fija al construir y no
// expone mutadores.
type Set struct {
	items []Capability
}

// NewSet normaliza estricto: recorta, ignora vacíos, deduplica y rechaza
// nombres desconocidos.
func NewSet(in ...Capability) (Set, error) {
	allowed := map[Capability]struct{}{}
	for _, c := range Known() {
		allowed[c] = struct{}{}
	}

	seen := map[Capability]struct{}{}
	out := make([]Capability, 0, len(in))

	for _, raw := range in {
		c := Capability(strings.ToLower(strings.TrimSpace(string(raw))))
		if c == "" {
			continue
		}
		if _, ok := allowed[c]; !ok {
			return Set{}, ErrInvalidInput
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return Set{items: out}, nil
}

// MustSet es NewSet para constructores de entidades con capacidades fijas.
func MustSet(in ...Capability) Set {
	s, err := NewSet(in...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Set) Has(c Capability) bool {
	for _, it := range s.items {
		if it == c {
			return true
		}
	}
	return false
}

// List devuelve una copia; modificarla no altera el set.
func (s Set) List() []Capability {
	out := make([]Capability, len(s.items))
	copy(out, s.items)
	return out
}

func (s Set) Len() int { return len(s.items) }

// Resolver adapta el Set al puerto de solo lectura.
func (s Set) Resolver() port.Resolver {
	return resolver{set: s}
}

type resolver struct {
	set Set
}

func (r resolver) Has(name string) bool {
	return r.set.Has(Capability(strings.ToLower(strings.TrimSpace(name))))
}

func (r resolver) Names() []string {
	out := make([]string, 0, r.set.Len())
	for _, c := range r.set.items {
		out = append(out, string(c))
	}
	return out
}
