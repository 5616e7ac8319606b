package serdefmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	noneToken = "None"
	unitToken = "()"
)

// formatFloat renders v the way debug text shows floats: shortest round-trip
// digits, always with a fractional part, switching to exponent form outside
// [1e-4, 1e16). The bounds are taken at the value's own precision.
func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	lo, hi := 1e-4, 1e16
	if bitSize == 32 {
		lo, hi = float64(float32(1e-4)), float64(float32(1e16))
	}
	abs := math.Abs(v)
	if abs == 0 || (abs >= lo && abs < hi) {
		s := strconv.FormatFloat(v, 'f', -1, bitSize)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(v, 'e', -1, bitSize)
	mant, exp, _ := strings.Cut(s, "e")
	sign := ""
	if exp[0] == '-' {
		sign = "-"
	}
	return mant + "e" + sign + strings.TrimLeft(exp[1:], "0")
}

// quoteString wraps s in double quotes, escaping as debug text does.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\x%02x`, s[i])
			i++
			continue
		}
		writeEscaped(&b, r, '"')
		i += size
	}
	b.WriteByte('"')
	return b.String()
}

// quoteChar wraps r in single quotes.
func quoteChar(r rune) string {
	var b strings.Builder
	b.WriteByte('\'')
	writeEscaped(&b, r, '\'')
	b.WriteByte('\'')
	return b.String()
}

func writeEscaped(b *strings.Builder, r rune, quote rune) {
	switch r {
	case 0:
		b.WriteString(`\0`)
	case '\t':
		b.WriteString(`\t`)
	case '\r':
		b.WriteString(`\r`)
	case '\n':
		b.WriteString(`\n`)
	case '\\':
		b.WriteString(`\\`)
	case quote:
		b.WriteByte('\\')
		b.WriteRune(r)
	default:
		if utf8.ValidRune(r) && strconv.IsPrint(r) && !graphemeExtend(r) {
			b.WriteRune(r)
			return
		}
		fmt.Fprintf(b, `\u{%x}`, r)
	}
}

// graphemeExtend reports whether r only makes sense attached to the
// preceding character, such as a combining accent.
func graphemeExtend(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Other_Grapheme_Extend)
}

func writeBytes(f *Formatter, v []byte) error {
	l := f.DebugList()
	for _, c := range v {
		if err := l.Entry(func(f *Formatter) error {
			return f.WriteString(strconv.FormatUint(uint64(c), 10))
		}); err != nil {
			return err
		}
	}
	return l.Finish()
}
