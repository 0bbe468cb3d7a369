package fatal

import (
	"errors"
	"fmt"
)

// ExitCode es el código con el que el entrypoint termina tras un error fatal.
const ExitCode = 101

// Error es una condición irrecuperable: se reporta y el programa termina.
// Nunca se convierte en un error recuperable.
type Error struct {
	Reason string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return "fatal: " + e.Reason
	}
	return fmt.Sprintf("fatal: %s: %v", e.Reason, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Abort detiene la ejecución (el panic! del cuaderno).
func Abort(reason string) {
	panic(&Error{Reason: reason})
}

func Abortf(format string, args ...any) {
	panic(&Error{Reason: fmt.Sprintf(format, args...)})
}

// Check aborta si err != nil (el expect de un Result).
func Check(err error, reason string) {
	if err != nil {
		panic(&Error{Reason: reason, Cause: err})
	}
}

// At accede por índice; un índice inválido es fatal.
func At[T any](items []T, i int) T {
	if i < 0 || i >= len(items) {
		panic(&Error{Reason: fmt.Sprintf("index out of bounds: the len is %d but the index is %d", len(items), i)})
	}
	return items[i]
}

// Catch ejecuta fn y devuelve el *Error si fn abortó. Cualquier otro panic
// se relanza tal cual. Quien llama debe terminar el proceso con el error.
func Catch(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if fe, ok := r.(*Error); ok {
			err = fe
			return
		}
		panic(r)
	}()
	return fn()
}

// Is indica si err es (o envuelve) un error fatal.
func Is(err error) bool {
	var fe *Error
	return errors.As(err, &fe)
}
