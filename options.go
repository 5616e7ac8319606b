package serdefmt

import "io"

const defaultIndent = "    "

// WriteOption configures [Write], [Marshal], [WriteIter] and [WriteChan].
type WriteOption func(c *config)

type config struct {
	pretty bool
	indent string
}

// WithPretty selects the multi-line layout, one child per line.
func WithPretty(pretty bool) WriteOption {
	return func(c *config) {
		c.pretty = pretty
	}
}

// WithIndent sets the string used for each nesting level in the pretty
// layout. Default: four spaces.
func WithIndent(indent string) WriteOption {
	return func(c *config) {
		c.indent = indent
	}
}

func newConfig(opts []WriteOption) config {
	c := config{indent: defaultIndent}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) formatter(w io.Writer) *Formatter {
	return &Formatter{w: w, alternate: c.pretty, indent: c.indent}
}
