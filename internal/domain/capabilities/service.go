package capabilities

import "fmt"

// Entity es cualquier valor que declara capacidades.
type Entity interface {
	Name() string
	Capabilities() Set
}

// Require falla con ErrUnsupportedCapability si la entidad no declara c.
func Require(e Entity, c Capability) error {
	if e == nil {
		return ErrInvalidInput
	}
	if !e.Capabilities().Has(c) {
		return fmt.Errorf("%w: %s cannot %s", ErrUnsupportedCapability, e.Name(), c)
	}
	return nil
}

// Lookup devuelve la entidad vista como la interfaz T de la capacidad c.
// La entidad debe declarar c y además implementar T.
func Lookup[T any](e Entity, c Capability) (T, error) {
	var zero T
	if err := Require(e, c); err != nil {
		return zero, err
	}
	impl, ok := e.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s declares %s but does not implement it", ErrUnsupportedCapability, e.Name(), c)
	}
	return impl, nil
}
