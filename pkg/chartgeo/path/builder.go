// Package path synthesizes path strings in the M/L/Q/A/Z mini-language.
package path

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
)

// Precision is the number of decimals kept in emitted coordinates.
const Precision = 3

// Builder accumulates path commands. The zero value is ready to use.
type Builder struct {
	sb strings.Builder
}

// MoveTo emits "M x y".
func (b *Builder) MoveTo(p models.Point) *Builder {
	return b.cmd("M", p.X, p.Y)
}

// LineTo emits "L x y".
func (b *Builder) LineTo(p models.Point) *Builder {
	return b.cmd("L", p.X, p.Y)
}

// QuadTo emits "Q cx cy x y".
func (b *Builder) QuadTo(ctrl, end models.Point) *Builder {
	return b.cmd("Q", ctrl.X, ctrl.Y, end.X, end.Y)
}

// ArcTo emits "A rx ry rot large sweep x y".
func (b *Builder) ArcTo(rx, ry, rotation float64, large, sweep bool, end models.Point) *Builder {
	b.cmd("A", rx, ry, rotation)
	b.sb.WriteByte(' ')
	b.sb.WriteString(flag(large))
	b.sb.WriteByte(' ')
	b.sb.WriteString(flag(sweep))
	b.sb.WriteByte(' ')
	b.sb.WriteString(Num(end.X))
	b.sb.WriteByte(' ')
	b.sb.WriteString(Num(end.Y))
	return b
}

// Close emits "Z".
func (b *Builder) Close() *Builder {
	return b.cmd("Z")
}

// Len returns the length of the path built so far.
func (b *Builder) Len() int {
	return b.sb.Len()
}

// String returns the path text.
func (b *Builder) String() string {
	return b.sb.String()
}

// Command returns the path as a PathCommand.
func (b *Builder) Command() models.PathCommand {
	return models.PathCommand(b.sb.String())
}

func (b *Builder) cmd(name string, args ...float64) *Builder {
	if b.sb.Len() > 0 {
		b.sb.WriteByte(' ')
	}
	b.sb.WriteString(name)
	for _, a := range args {
		b.sb.WriteByte(' ')
		b.sb.WriteString(Num(a))
	}
	return b
}

// Num formats a coordinate with at most Precision decimals and no
// trailing zeros. Negative zero and non-finite values print as "0".
func Num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	scale := math.Pow10(Precision)
	v = math.Round(v*scale) / scale
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
