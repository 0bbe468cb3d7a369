package basics

import (
	"context"
	"errors"

	"cuaderno-ejercicios/internal/platform/console"
	"cuaderno-ejercicios/internal/platform/fatal"
	"cuaderno-ejercicios/internal/platform/lesson"
	"cuaderno-ejercicios/internal/platform/maybe"
)

func RegisterRoutes(r lesson.Registrar) {
	r.Handle("tipos", "Tipos de datos, constantes y strings", typesLesson)
	r.Handle("consola", "Leer un número desde la consola", consoleLesson)
	r.Handle("control", "Funciones, if, loop, while y for", controlLesson)
	r.Handle("option", "Valores que pueden no estar", optionLesson)
	r.Handle("errores", "Errores recuperables y propagación", errorsLesson)
	r.Handle("panico", "Errores irrecuperables", panicLesson)
}

func typesLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	guess, err := console.ParseUint("42")
	fatal.Check(err, "Not a number!")
	c.Printf("Guess: %d\n", guess)

	for i, label := range []string{"push", "push str", "eliminar caracteres con pop"} {
		c.Printf("%s: %s\n", label, StringOps()[i])
	}
	c.Printf("Flotante: %.2f\n", 3.0)
	return nil
}

func consoleLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	c.Prompt("Ingresa un número: ")
	n, err := c.ReadUint()
	if err != nil {
		var pe *console.ParseError
		if errors.As(err, &pe) {
			fatal.Abort(pe.Error())
		}
		fatal.Check(err, "Failed to read line")
	}
	c.Printf("Entrada: %d\n", n)
	env.Log.Debug("number read", map[string]any{"value": n})
	return nil
}

func controlLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	c.Println("FUNCIONES")
	c.Printf("Suma de arg1 y arg2: %d\n", 2+3)
	c.Printf("Multiplicar: %d\n", 3*9)

	c.Println("EXPRESIÓN IF")
	c.Println(Divisibility(6))

	c.Println("BUCLE LOOP")
	_, word := LoopUntil(5)
	c.Println(word)

	c.Println("BUCLE WHILE")
	arr := []int{50, 40, 30, 20, 10}
	i := 0
	for i < len(arr) {
		c.Printf("Iteracion %d: %d\n", i, arr[i])
		i++
	}

	c.Println("BUCLE FOR")
	for _, n := range Countdown(3) {
		c.Println(n)
	}
	return nil
}

func optionLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	five := maybe.Some(5)
	c.Printf("five: %s, six: %s, none: %s\n", five, maybe.PlusOne(five), maybe.PlusOne(maybe.None[int]()))

	result := maybe.None[int]().UnwrapOrElse(func() int {
		c.Println("No hay valor, proporcionando uno predeterminado")
		return 32
	})
	c.Printf("Resultado: %d\n", result)

	last := maybe.LastCharOfFirstLine("Hola\nmundo")
	c.Printf("Último carácter de la primera línea: %s\n", maybe.Map(last, func(r rune) string { return string(r) }))
	return nil
}

func errorsLesson(ctx context.Context, env *lesson.Env) error {
	c := env.Console

	users := map[string]string{"1": "Juan"}
	c.Println(Greeting(users, "1"))
	c.Println(Greeting(users, "2"))

	total, err := SumDigits("40", "2")
	if err != nil {
		return err
	}
	c.Printf("Suma: %d\n", total)

	if _, err := SumDigits("40", "dos"); err != nil {
		c.Printf("Error propagado: %v\n", err)
	}
	return nil
}

func panicLesson(ctx context.Context, env *lesson.Env) error {
	v := []int{1, 2, 3}
	env.Console.Println("Accediendo al índice 10 de un vector de 3 elementos")
	_ = fatal.At(v, 10)
	return nil
}
