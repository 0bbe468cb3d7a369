package variants

import "errors"

var (
	ErrInvalidVariant     = errors.New("invalid variant")
	ErrNonExhaustiveMatch = errors.New("non-exhaustive match")
	ErrInvalidDecl        = errors.New("invalid variant declaration")
)
