package users

import (
	"context"

	"cuaderno-ejercicios/internal/platform/lesson"
)

func RegisterRoutes(r lesson.Registrar) {
	r.Handle("ownership", "Dueño único, préstamo y copia explícita", ownershipLesson)
	r.Handle("structs", "Structs, actualización y structs tupla", structsLesson)
}

func ownershipLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	juan, err := New("Juan", 18)
	if err != nil {
		return err
	}
	juan.Tags = []string{"admin"}

	// Prestar: la función solo lee, el dueño sigue siendo juan.
	for range 3 {
		show(env, &juan)
	}

	dup := juan.Clone()
	dup.Tags[0] = "invitado"
	c.Printf("original: %v, copia: %v\n", juan.Tags, dup.Tags)
	return nil
}

func show(env *lesson.Env, u *User) {
	env.Console.Println(u.Username)
}

func structsLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	u, err := New("Juan", 18)
	if err != nil {
		return err
	}
	if u.Active {
		c.Println(u.Greeting())
		u.Active = false
	}

	jose := u.WithUsername("José")
	c.Printf("%s activo=%t edad=%d\n", jose.Username, jose.Active, jose.Age)

	c.Println(RGB{0, 0, 0}.String())
	return nil
}
