package capabilities

import (
	"errors"
	"testing"
)

// -------------------------
// Entidades de prueba
// -------------------------

type swimmer interface {
	Swim() string
}

type duck struct {
	caps Set
}

func (d duck) Name() string      { return "Pato" }
func (d duck) Capabilities() Set { return d.caps }
func (d duck) Swim() string      { return "Pato está nadando" }

type liar struct{}

func (liar) Name() string      { return "Mentiroso" }
func (liar) Capabilities() Set { return MustSet(Swim) }

// -------------------------
// Tests
// -------------------------

func TestNewSet_Normalizes(t *testing.T) {
	s, err := NewSet(" Swim ", "run", "", "swim")
	if err != nil {
		t.Fatalf("NewSet returned error: %v", err)
	}
	got := s.List()
	if len(got) != 2 || got[0] != Run || got[1] != Swim {
		t.Fatalf("expected [run swim], got %#v", got)
	}
}

func TestNewSet_StrictRejectsUnknown(t *testing.T) {
	_, err := NewSet(Swim, Capability("dig"))
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSet_ListIsACopy(t *testing.T) {
	s := MustSet(Fly)
	l := s.List()
	l[0] = Run

	if !s.Has(Fly) || s.Has(Run) {
		t.Fatalf("set mutated through List(): %#v", s.List())
	}
}

func TestRequire_Unsupported(t *testing.T) {
	d := duck{caps: MustSet(Swim)}

	if err := Require(d, Swim); err != nil {
		t.Fatalf("expected swim supported, got %v", err)
	}

	err := Require(d, Run)
	if !errors.Is(err, ErrUnsupportedCapability) {
		t.Fatalf("expected ErrUnsupportedCapability, got %v", err)
	}
	if err.Error() != "unsupported capability: Pato cannot run" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestRequire_NilEntity(t *testing.T) {
	if err := Require(nil, Swim); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLookup_Typed(t *testing.T) {
	d := duck{caps: MustSet(Swim)}

	sw, err := Lookup[swimmer](d, Swim)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if sw.Swim() != "Pato está nadando" {
		t.Fatalf("unexpected message %q", sw.Swim())
	}
}

func TestLookup_DeclaredButNotImplemented(t *testing.T) {
	_, err := Lookup[swimmer](liar{}, Swim)
	if !errors.Is(err, ErrUnsupportedCapability) {
		t.Fatalf("expected ErrUnsupportedCapability, got %v", err)
	}
}

func TestLookup_NotDeclaredEvenIfImplemented(t *testing.T) {
	// Implementar el método no basta: la membresía se declara al construir.
	d := duck{caps: MustSet()}

	_, err := Lookup[swimmer](d, Swim)
	if !errors.Is(err, ErrUnsupportedCapability) {
		t.Fatalf("expected ErrUnsupportedCapability, got %v", err)
	}
}

func TestResolver_Port(t *testing.T) {
	r := MustSet(Run, Swim).Resolver()

	if !r.Has(" RUN ") || r.Has("fly") {
		t.Fatalf("unexpected membership for %v", r.Names())
	}
	if names := r.Names(); len(names) != 2 || names[0] != "run" {
		t.Fatalf("unexpected names %v", names)
	}
}
