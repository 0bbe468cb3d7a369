package birds

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Repository guarda las aves creadas durante una ejecución.
type Repository interface {
	Create(ctx context.Context, b Bird) error
	GetByID(ctx context.Context, id string) (Bird, error)
	List(ctx context.Context) ([]Bird, error)
}
