package birds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cuaderno-ejercicios/internal/domain/capabilities"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// DefaultFlightSpeed es la velocidad usada por Perform para volar.
const DefaultFlightSpeed float32 = 12

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, b Bird) (Bird, error) {
	if b == nil || strings.TrimSpace(b.ID()) == "" {
		return nil, ErrInvalidInput
	}
	if b.Weight() <= 0 || b.Wingspan() <= 0 {
		return nil, ErrInvalidInput
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Bird, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Bird, error) {
	return s.repo.List(ctx)
}

// Perform invoca la capacidad c sobre el ave id. Si el ave no la declara,
// devuelve capabilities.ErrUnsupportedCapability.
func (s *Service) Perform(ctx context.Context, id string, c capabilities.Capability) (string, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return Perform(b, c)
}

func Perform(b Bird, c capabilities.Capability) (string, error) {
	switch c {
	case capabilities.Swim:
		sw, err := capabilities.Lookup[Swimmer](b, c)
		if err != nil {
			return "", err
		}
		return sw.Swim(), nil
	case capabilities.Run:
		r, err := capabilities.Lookup[Runner](b, c)
		if err != nil {
			return "", err
		}
		return r.RunFast(), nil
	case capabilities.Fly:
		f, err := capabilities.Lookup[Flyer](b, c)
		if err != nil {
			return "", err
		}
		return f.Fly(DefaultFlightSpeed), nil
	default:
		return "", fmt.Errorf("%w: %q", capabilities.ErrInvalidInput, c)
	}
}

// Describe devuelve la ficha del ave, una línea por dato.
func Describe(b Bird) []string {
	return []string{
		fmt.Sprintf("Nombre: %s", b.Name()),
		fmt.Sprintf("Nombre cientifico: %s", b.ScientificName()),
		fmt.Sprintf("Peso: %g, Tamaño alas: %g", b.Weight(), b.Wingspan()),
	}
}

// Race hace correr a ambos corredores, en orden.
func Race(a, b Runner) []string {
	return []string{a.RunFast(), b.RunFast()}
}
