package serdefmt

// Children of every compound are rendered by running them back through a
// fresh serializer, so nesting depth follows the value.

type seqBuilder struct {
	l *DebugList
}

func (b *seqBuilder) SerializeElement(v Serializable) error { return b.l.Entry(render(v)) }
func (b *seqBuilder) End() error                            { return b.l.Finish() }

// tupleBuilder serves tuples, tuple structs and tuple variants.
type tupleBuilder struct {
	t *DebugTuple
}

func (b *tupleBuilder) SerializeElement(v Serializable) error { return b.t.Field(render(v)) }
func (b *tupleBuilder) SerializeField(v Serializable) error   { return b.t.Field(render(v)) }
func (b *tupleBuilder) End() error                            { return b.t.Finish() }

// structBuilder serves structs and struct variants.
type structBuilder struct {
	s *DebugStruct
}

func (b *structBuilder) SerializeField(name string, v Serializable) error {
	return b.s.Field(name, render(v))
}

func (b *structBuilder) End() error { return b.s.Finish() }
