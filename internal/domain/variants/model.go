package variants

import (
	"fmt"
	"reflect"
)

// Kind es el tag de una variante.
type Kind string

// Decl declara una variante y la forma de su payload.
// Shape nil = variante unitaria (sin datos).
type Decl struct {
	Kind  Kind
	Shape reflect.Type
}

// Unit declara una variante sin payload (p.ej. una moneda de cobre).
func Unit(kind Kind) Decl {
	return Decl{Kind: kind}
}

// With declara una variante que carga un payload de tipo T.
func With[T any](kind Kind) Decl {
	return Decl{Kind: kind, Shape: reflect.TypeFor[T]()}
}

// Variant es un valor etiquetado: exactamente un Kind activo y su payload.
// Es inmutable; solo se construye vía Registry.New.
type Variant struct {
	reg     *Registry
	kind    Kind
	payload any
}

func (v Variant) Kind() Kind   { return v.kind }
func (v Variant) Payload() any { return v.payload }

func (v Variant) Is(kind Kind) bool {
	return v.kind == kind
}

// Registry devuelve el registro que construyó la variante (nil si es zero value).
func (v Variant) Registry() *Registry {
	return v.reg
}

func (v Variant) String() string {
	if v.payload == nil {
		return string(v.kind)
	}
	return fmt.Sprintf("%s(%v)", v.kind, v.payload)
}

// PayloadAs devuelve el payload tipado si coincide con T.
func PayloadAs[T any](v Variant) (T, bool) {
	p, ok := v.payload.(T)
	return p, ok
}
