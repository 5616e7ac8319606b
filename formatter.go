package serdefmt

import (
	"bytes"
	"io"
)

// Formatter is the output sink debug text is written to. It wraps an
// [io.Writer] and carries the alternate flag that selects the pretty layout.
//
// Nested values are written through the builders returned by
// [Formatter.DebugTuple], [Formatter.DebugStruct], [Formatter.DebugList] and
// [Formatter.DebugMap]. Each child is handed a Formatter of its own, so
// pretty output is indented however deep the value goes.
type Formatter struct {
	w         io.Writer
	alternate bool
	indent    string
}

// NewFormatter returns a Formatter writing to w. When alternate is true,
// nested values are laid out one child per line.
func NewFormatter(w io.Writer, alternate bool) *Formatter {
	return &Formatter{w: w, alternate: alternate, indent: defaultIndent}
}

// WriteString writes s verbatim. Any write failure is reported as [ErrFormat].
func (f *Formatter) WriteString(s string) error {
	if _, err := io.WriteString(f.w, s); err != nil {
		return ErrFormat
	}
	return nil
}

// Alternate reports whether the pretty layout was requested.
func (f *Formatter) Alternate() bool { return f.alternate }

// padded returns a Formatter that indents every line written through it.
// Callers that write several pieces into one logical child share onNewline.
func (f *Formatter) padded(onNewline *bool) *Formatter {
	return &Formatter{
		w:         &padWriter{w: f.w, indent: f.indent, onNewline: onNewline},
		alternate: f.alternate,
		indent:    f.indent,
	}
}

// buffered returns a Formatter with the same settings as f that writes to buf.
func (f *Formatter) buffered(buf *bytes.Buffer) *Formatter {
	return &Formatter{w: buf, alternate: f.alternate, indent: f.indent}
}

// padWriter prefixes each line with indent.
type padWriter struct {
	w         io.Writer
	indent    string
	onNewline *bool
}

func (p *padWriter) Write(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line = b[:i+1]
		}
		if *p.onNewline {
			if _, err := io.WriteString(p.w, p.indent); err != nil {
				return n, err
			}
		}
		*p.onNewline = line[len(line)-1] == '\n'
		m, err := p.w.Write(line)
		n += m
		if err != nil {
			return n, err
		}
		b = b[len(line):]
	}
	return n, nil
}
