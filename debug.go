package serdefmt

import (
	"bytes"
	"fmt"
	"log/slog"
)

// Debug renders a value as debug text wherever Go expects something
// printable. Create one with [ToDebug].
//
// With the fmt package, %v and %s give the compact layout and %+v or %#v
// the pretty one. Other verbs are reported the way fmt reports a bad verb,
// e.g. `%!d(serdefmt.Debug=Some(1))`. Output is built in a scratch buffer,
// so a failed render prints `%!v(serdefmt: format error)` instead of a
// fragment.
type Debug struct {
	v Serializable
}

// ToDebug wraps v so it can be handed to fmt, log/slog or zap. Values that
// do not implement [Serializable] are described through [Of].
func ToDebug(v any) Debug {
	return Debug{v: Of(v)}
}

// Format implements [fmt.Formatter].
func (d Debug) Format(st fmt.State, verb rune) {
	var buf bytes.Buffer
	switch verb {
	case 'v', 's':
		f := NewFormatter(&buf, st.Flag('+') || st.Flag('#'))
		if err := ToFormatter(d.v, f); err != nil {
			fmt.Fprintf(st, "%%!%c(%v)", verb, err)
			return
		}
		_, _ = st.Write(buf.Bytes())
	default:
		if err := ToFormatter(d.v, NewFormatter(&buf, false)); err != nil {
			fmt.Fprintf(st, "%%!%c(%v)", verb, err)
			return
		}
		fmt.Fprintf(st, "%%!%c(serdefmt.Debug=%s)", verb, buf.Bytes())
	}
}

// String returns the compact rendering.
func (d Debug) String() string {
	return fmt.Sprint(d)
}

// LogValue implements [slog.LogValuer].
func (d Debug) LogValue() slog.Value {
	return slog.StringValue(d.String())
}
