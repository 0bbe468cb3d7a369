package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"cuaderno-ejercicios/internal/platform/console"
	"cuaderno-ejercicios/internal/platform/fatal"
	"cuaderno-ejercicios/internal/platform/logger"
	"cuaderno-ejercicios/internal/router"
)

// defaultLesson es la que corre si no se pide ninguna (la última del cuaderno).
const defaultLesson = "hashmaps"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("cuaderno", flag.ContinueOnError)
	list := fs.Bool("list", false, "list the available lessons and exit")
	format := fs.String("format", "text", "output format for -list: text or yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logger.NewFromEnv()
	r := router.NewRouter(router.Options{
		Console: console.New(),
		Logger:  log,
	})

	if *list && *format == "yaml" {
		b, err := r.CatalogYAML()
		if err != nil {
			log.Error("catalog failed", map[string]any{"error": err.Error()})
			return 1
		}
		os.Stdout.Write(b)
		return 0
	}
	if *list {
		for _, name := range r.Names() {
			summary, _ := r.Summary(name)
			fmt.Printf("%-12s %s\n", name, summary)
		}
		return 0
	}

	name := defaultLesson
	if v := strings.TrimSpace(os.Getenv("LESSON")); v != "" {
		name = v
	}
	if fs.NArg() > 0 {
		name = fs.Arg(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Debug("running lesson", map[string]any{"lesson": name})

	if err := r.Run(ctx, name); err != nil {
		switch {
		case fatal.Is(err):
			// ya reportado por el middleware; terminar sin más
			fmt.Fprintln(os.Stderr, err)
			return fatal.ExitCode
		case errors.Is(err, router.ErrUnknownLesson):
			fmt.Fprintf(os.Stderr, "%v\navailable: %s\n", err, strings.Join(r.Names(), ", "))
			return 2
		default:
			log.Error("lesson failed", map[string]any{"lesson": name, "error": err.Error()})
			return 1
		}
	}
	return 0
}
