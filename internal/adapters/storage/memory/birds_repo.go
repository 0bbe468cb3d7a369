package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cuaderno-ejercicios/internal/domain/birds"
)

// birdRepo vive lo que dura una ejecución; no hay persistencia ni concurrencia.
type birdRepo struct {
	byID  map[string]birds.Bird
	order []string
}

func NewBirdRepo() birds.Repository {
	return &birdRepo{
		byID: make(map[string]birds.Bird),
	}
}

func (r *birdRepo) Create(ctx context.Context, b birds.Bird) error {
	if b == nil || strings.TrimSpace(b.ID()) == "" {
		return errors.New("bird id required")
	}
	if _, exists := r.byID[b.ID()]; exists {
		return errors.New("bird already exists")
	}
	r.byID[b.ID()] = b
	r.order = append(r.order, b.ID())
	return nil
}

func (r *birdRepo) GetByID(ctx context.Context, id string) (birds.Bird, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, birds.ErrNotFound
	}
	return b, nil
}

func (r *birdRepo) List(ctx context.Context) ([]birds.Bird, error) {
	out := make([]birds.Bird, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}

	// Orden estable por nombre; a igual nombre, orden de alta
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})

	return out, nil
}
