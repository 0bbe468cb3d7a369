package collections

import (
	"fmt"

	"cuaderno-ejercicios/internal/domain/variants"
)

const (
	KindInt   variants.Kind = "int"
	KindFloat variants.Kind = "float"
	KindText  variants.Kind = "text"
)

// Cells permite guardar datos de distinto tipo en un mismo vector.
var Cells = variants.MustRegistry("celdas",
	variants.With[int32](KindInt),
	variants.With[float32](KindFloat),
	variants.With[string](KindText),
)

func Int(n int32) variants.Variant     { return Cells.MustNew(KindInt, n) }
func Float(f float32) variants.Variant { return Cells.MustNew(KindFloat, f) }
func Text(s string) variants.Variant   { return Cells.MustNew(KindText, s) }

var describeCell = variants.MustDispatcher(Cells, map[variants.Kind]variants.Handler[string]{
	KindInt: func(v variants.Variant) string {
		return fmt.Sprintf("El entero almacenado es: %v", v.Payload())
	},
	KindFloat: func(v variants.Variant) string {
		return fmt.Sprintf("El flotante almacenado es: %v", v.Payload())
	},
	KindText: func(v variants.Variant) string {
		return fmt.Sprintf("El texto almacenado es: %v", v.Payload())
	},
})

func DescribeCell(c variants.Variant) (string, error) {
	return describeCell.Dispatch(c)
}
