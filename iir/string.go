package iir

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-filter/internal/num"
)

// String returns a human-readable dump of the filter coefficients: a
// form header, then the numerator and denominator rows (normal form) or
// one row pair per section (SOS form).
func (f *Filter[T]) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "iir filter [%v]:\n", f.form)

	if f.form == FormSOS {
		for i := range f.sections {
			c := &f.sections[i].Coefficients
			fmt.Fprintf(&sb, "  section %d:\n", i)
			fmt.Fprintf(&sb, "    b :%s\n", formatRow([]T{c.B0, c.B1, c.B2}))
			fmt.Fprintf(&sb, "    a :%s\n", formatRow([]T{num.FromFloat[T](1), c.A1, c.A2}))
		}

		return sb.String()
	}

	fmt.Fprintf(&sb, "  b :%s\n", formatRow(f.b))
	fmt.Fprintf(&sb, "  a :%s\n", formatRow(f.a))

	return sb.String()
}

func formatRow[T Sample](c []T) string {
	var sb strings.Builder

	for _, v := range c {
		switch x := any(v).(type) {
		case float32:
			fmt.Fprintf(&sb, " %12.8f", x)
		case float64:
			fmt.Fprintf(&sb, " %12.8f", x)
		case complex64:
			fmt.Fprintf(&sb, " %12.8f%+.8fi", real(x), imag(x))
		case complex128:
			fmt.Fprintf(&sb, " %12.8f%+.8fi", real(x), imag(x))
		}
	}

	return sb.String()
}
