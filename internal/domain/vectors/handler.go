package vectors

import (
	"context"

	"cuaderno-ejercicios/internal/platform/lesson"
)

func RegisterRoutes(r lesson.Registrar) {
	r.Handle("generics", "Tipos y funciones genéricas", genericsLesson)
}

func genericsLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	c.Printf("%s", Join([]uint32{1, 3, 4}))
	c.Printf("%s", Join([]float32{1.2, 7.5, 6.2}))

	sum := NewVector3(1, 2, 3).Add(NewVector3(2, -1, 3))
	c.Printf("Vector resultante: %s\n", sum)

	v2 := Vector2{X: 1, Y: 2}.Add(Vector2{X: 2, Y: 0})
	c.Printf("Suma: %v, %v\n", v2.X, v2.Y)

	n := Data[uint32]{Value: 2}
	Sum(&n, 12)
	c.Println(n.Render())
	c.Println(Data[string]{Value: "Hola"}.Render())
	return nil
}
