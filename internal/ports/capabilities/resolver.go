package capabilities

// Resolver es la vista de solo lectura de las capacidades de una entidad.
// Lo implementa domain/capabilities.Set; las lecciones solo dependen de esto.
type Resolver interface {
	Has(name string) bool
	Names() []string
}
