package serdefmt

import (
	"io"
	"iter"
)

// WriteIter renders each item from seq as debug text on its own line,
// writing as items arrive. It stops at the first failure.
func WriteIter[T any](w io.Writer, seq iter.Seq[T], opts ...WriteOption) error {
	cfg := newConfig(opts)
	var streamErr error
	seq(func(item T) bool {
		f := cfg.formatter(w)
		if err := ToFormatter(Of(item), f); err != nil {
			streamErr = err
			return false
		}
		if err := f.WriteString("\n"); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan renders each value received from ch on its own line until ch is
// closed or a render fails. Values are written as they are received.
func WriteChan[T any](w io.Writer, ch <-chan T, opts ...WriteOption) error {
	return WriteIter(w, received(ch), opts...)
}

// received yields values from ch until it is closed.
func received[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}
