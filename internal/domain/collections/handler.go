package collections

import (
	"context"

	"cuaderno-ejercicios/internal/domain/variants"
	"cuaderno-ejercicios/internal/platform/lesson"
)

func RegisterRoutes(r lesson.Registrar) {
	r.Handle("collections", "Vectores y datos de varios tipos", vectorsLesson)
	r.Handle("hashmaps", "Mapas: insertar, buscar y entry", hashmapsLesson)
}

func vectorsLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	v := VecOf(1, 2, 3)
	c.Printf("The third element is %d\n", v.At(2))
	if x, ok := v.Get(3).Get(); ok {
		c.Printf("The fourth element is %d\n", x)
	} else {
		c.Println("There is no fourth element.")
	}

	nums := VecOf(12, 23, 1)
	nums.Apply(func(x *int) { *x += 50 })
	nums.Each(func(n, x int) {
		c.Printf("Elemento %d: %d\n", n, x)
	})

	for _, cell := range []variants.Variant{Int(3), Float(3.1416), Text("Hola")} {
		s, err := DescribeCell(cell)
		if err != nil {
			return err
		}
		c.Println(s)
	}

	votes := Grid(10)
	c.Printf("Tabla de votos: %d municipios x %d candidatos\n", len(votes), len(votes[0]))
	return nil
}

func hashmapsLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	scores := NewScores()
	scores.Insert("Blue", 10)
	scores.Insert("Yellow", 50)

	if v, ok := scores.Get("Blue").Get(); ok {
		c.Printf("Dato: %d\n", v)
	} else {
		c.Println("No existe dato con ese hash")
	}
	c.Printf("Red: %d\n", scores.GetOr("Red", 0))

	for _, k := range scores.Keys() {
		c.Printf("%s: %d\n", k, scores.GetOr(k, 0))
	}

	scores.Insert("Blue", 25)
	scores.InsertIfAbsent("Yellow", 50)
	scores.InsertIfAbsent("Green", 5)
	c.Printf("%v\n", scores.Snapshot())

	c.Printf("%v\n", WordCount("hello world wonderful world", 0))
	env.Log.Debug("scores", map[string]any{"len": scores.Len()})
	return nil
}
