package serdefmt

import "bytes"

type mapState uint8

const (
	mapIdle mapState = iota
	mapKeyPending
	mapClosed
)

// mapBuilder bridges the two ways a map may be populated. [DebugMap] only
// accepts a key together with its value, so a key submitted on its own is
// rendered into a buffer and held until its value arrives.
type mapBuilder struct {
	m     *DebugMap
	f     *Formatter
	state mapState
	key   bytes.Buffer
}

func newMapBuilder(f *Formatter) (*mapBuilder, error) {
	m := f.DebugMap()
	if m.err != nil {
		return nil, m.err
	}
	return &mapBuilder{m: m, f: f}, nil
}

func (b *mapBuilder) SerializeEntry(k, v Serializable) error {
	if b.state != mapIdle {
		return ErrFormat
	}
	return b.m.Entry(render(k), render(v))
}

func (b *mapBuilder) SerializeKey(k Serializable) error {
	if b.state != mapIdle {
		return ErrFormat
	}
	b.key.Reset()
	if err := render(k)(b.f.buffered(&b.key)); err != nil {
		return err
	}
	b.state = mapKeyPending
	return nil
}

func (b *mapBuilder) SerializeValue(v Serializable) error {
	if b.state != mapKeyPending {
		return ErrFormat
	}
	b.state = mapIdle
	return b.m.Entry(b.writeKey, render(v))
}

func (b *mapBuilder) writeKey(f *Formatter) error {
	return f.WriteString(b.key.String())
}

// End closes the map. A key still waiting for its value is dropped without
// error.
func (b *mapBuilder) End() error {
	if b.state == mapClosed {
		return ErrFormat
	}
	b.state = mapClosed
	b.key.Reset()
	return b.m.Finish()
}
