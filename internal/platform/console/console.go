package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxLineBytes limita una línea leída de la entrada.
const MaxLineBytes = 1 << 16

var ErrNoInput = errors.New("console: no input")

// Client envuelve la entrada y salida estándar con helpers comunes para lecciones.
type Client struct {
	in      *bufio.Reader
	out     io.Writer
	printer *message.Printer
}

// New crea un Client sobre stdin/stdout.
func New() *Client {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO permite inyectar entrada/salida (p.ej. para tests).
func NewWithIO(in io.Reader, out io.Writer) *Client {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	return &Client{
		in:      bufio.NewReaderSize(in, 4096),
		out:     out,
		printer: message.NewPrinter(language.Spanish),
	}
}

func (c *Client) Out() io.Writer { return c.out }

// ParseError representa una entrada que no es un número sin signo.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ERROR: El dato ingresado no es un número: %q", e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseUint recorta espacios y parsea un entero sin signo.
func ParseUint(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return n, nil
}

// FormatUint es la inversa de ParseUint: ParseUint(FormatUint(n)) == n.
func FormatUint(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// ReadLine lee una línea y la devuelve sin espacios alrededor.
func (c *Client) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if len(line) > MaxLineBytes {
		return "", fmt.Errorf("console: line longer than %d bytes", MaxLineBytes)
	}
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("console: read line: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ReadUint lee una línea y la parsea como entero sin signo.
func (c *Client) ReadUint() (uint64, error) {
	line, err := c.ReadLine()
	if err != nil {
		return 0, err
	}
	return ParseUint(line)
}

// Prompt escribe sin salto de línea y vacía el buffer si lo hay.
func (c *Client) Prompt(msg string) {
	_, _ = io.WriteString(c.out, msg)
	if f, ok := c.out.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}

// Printf formatea con convenciones del español (p.ej. 12,3 para decimales).
func (c *Client) Printf(format string, args ...any) {
	_, _ = c.printer.Fprintf(c.out, format, args...)
}

func (c *Client) Println(args ...any) {
	_, _ = c.printer.Fprintln(c.out, args...)
}
