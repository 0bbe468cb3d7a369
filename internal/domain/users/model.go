package users

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// User tiene un único dueño: asignarlo copia el struct, y Clone es la copia
// explícita cuando se quiere un duplicado independiente.
type User struct {
	Active   bool
	Username string
	Age      uint8
	Tags     []string
}

func New(username string, age uint8) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, ErrInvalidInput
	}
	return User{Active: true, Username: username, Age: age}, nil
}

// WithUsername es la actualización de struct: el resto de campos se copian.
func (u User) WithUsername(username string) User {
	out := u.Clone()
	out.Username = username
	return out
}

// Clone copia en profundidad (incluye Tags).
func (u User) Clone() User {
	out := u
	if u.Tags != nil {
		out.Tags = make([]string, len(u.Tags))
		copy(out.Tags, u.Tags)
	}
	return out
}

func (u User) Greeting() string {
	return fmt.Sprintf("Hola soy %s y tengo %d años", u.Username, u.Age)
}

// RGB es un struct tupla: los campos valen por posición.
type RGB [3]int32

func (c RGB) String() string {
	return fmt.Sprintf("Color rgb: r: %d, g: %d, b: %d", c[0], c[1], c[2])
}
