package birds

import (
	"fmt"

	"cuaderno-ejercicios/internal/domain/capabilities"

	"github.com/google/uuid"
)

// Bird son los datos que toda ave expone, más su conjunto de capacidades.
type Bird interface {
	ID() string
	Name() string
	ScientificName() string
	Weight() float32   // kg
	Wingspan() float32 // m
	Capabilities() capabilities.Set

	MakeSound() string
}

type Swimmer interface {
	Swim() string
	DryOff() string
}

type Runner interface {
	RunFast() string
}

type Flyer interface {
	Fly(speedKmh float32) string
	Land() string
}

// base guarda los campos comunes y da el sonido por defecto.
// Cada especie la embebe y puede sombrear MakeSound.
type base struct {
	id             string
	name           string
	scientificName string
	weight         float32
	wingspan       float32
	caps           capabilities.Set
}

func newBase(name, scientific string, weight, wingspan float32, caps ...capabilities.Capability) base {
	return base{
		id:             uuid.NewString(),
		name:           name,
		scientificName: scientific,
		weight:         weight,
		wingspan:       wingspan,
		caps:           capabilities.MustSet(caps...),
	}
}

func (b *base) ID() string                     { return b.id }
func (b *base) Name() string                   { return b.name }
func (b *base) ScientificName() string         { return b.scientificName }
func (b *base) Weight() float32                { return b.weight }
func (b *base) Wingspan() float32              { return b.wingspan }
func (b *base) Capabilities() capabilities.Set { return b.caps }

func (b *base) MakeSound() string {
	return fmt.Sprintf("%s Hace sonido", b.name)
}

type Penguin struct {
	base
}

func NewPenguin(weight, wingspan float32) *Penguin {
	return &Penguin{base: newBase("Pingüino", "Spheniscidae", weight, wingspan, capabilities.Swim)}
}

// MakeSound sombrea el sonido por defecto solo para el pingüino.
func (p *Penguin) MakeSound() string { return "Sonido Pinguino" }

func (p *Penguin) Swim() string   { return fmt.Sprintf("%s está nadando", p.name) }
func (p *Penguin) DryOff() string { return fmt.Sprintf("%s se está secando", p.name) }

type Ostrich struct {
	base
}

func NewOstrich(weight, wingspan float32) *Ostrich {
	return &Ostrich{base: newBase("Avestruz", "Struthio camelus", weight, wingspan, capabilities.Run)}
}

func (o *Ostrich) RunFast() string { return fmt.Sprintf("%s corre rápidamente", o.name) }

type Eagle struct {
	base
}

func NewEagle(weight, wingspan float32) *Eagle {
	return &Eagle{base: newBase("Águila real", "Aquila chrysaetos", weight, wingspan, capabilities.Fly)}
}

func (e *Eagle) Fly(speedKmh float32) string {
	return fmt.Sprintf("%s vuela a %g km/h", e.name, speedKmh)
}

func (e *Eagle) Land() string { return fmt.Sprintf("%s aterriza", e.name) }
