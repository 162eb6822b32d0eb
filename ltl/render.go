package ltl

import (
	"fmt"
	"strconv"
	"strings"
)

// Render produces the canonical surface syntax for f: x_i for atoms
// (or names[i] when names is supplied and long enough), ¬(·)/X(·)/G(·)/F(·)
// for unary operators, and (·)∧(·), (·)∨(·), (·)→(·), (·)U(·), (·)R(·) for
// binary operators. Parentheses are always emitted around operands, so no
// precedence table is required to read the result unambiguously.
func Render(f *Formula, names ...string) string {
	var b strings.Builder
	render(&b, f, names)
	return b.String()
}

func render(b *strings.Builder, f *Formula, names []string) {
	switch f.kind {
	case KindAtom:
		if f.atom < len(names) {
			b.WriteString(names[f.atom])
		} else {
			b.WriteString("x")
			b.WriteString(strconv.Itoa(f.atom))
		}
	case KindNot, KindNext, KindGlobally, KindFinally:
		b.WriteString(f.kind.String())
		b.WriteByte('(')
		render(b, f.left, names)
		b.WriteByte(')')
	default:
		b.WriteByte('(')
		render(b, f.left, names)
		b.WriteByte(')')
		b.WriteString(f.kind.String())
		b.WriteByte('(')
		render(b, f.right, names)
		b.WriteByte(')')
	}
}

// String implements fmt.Stringer, rendering with default x_i atom names.
func (f *Formula) String() string { return Render(f) }

var _ fmt.Stringer = (*Formula)(nil)
