package serdefmt

// A builder stops writing after its first failure and keeps returning it.
// Using a builder after Finish returns ErrFormat.

// DebugTuple writes `Name(a, b)`.
type DebugTuple struct {
	f         *Formatter
	fields    int
	emptyName bool
	done      bool
	err       error
}

// DebugTuple writes name and returns a builder for the fields that follow.
func (f *Formatter) DebugTuple(name string) *DebugTuple {
	return &DebugTuple{f: f, emptyName: name == "", err: f.WriteString(name)}
}

// Field writes one field, rendered by fn.
func (t *DebugTuple) Field(fn func(*Formatter) error) error {
	if t.done {
		return ErrFormat
	}
	if t.err == nil {
		t.err = t.field(fn)
	}
	return t.err
}

func (t *DebugTuple) field(fn func(*Formatter) error) error {
	defer func() { t.fields++ }()
	if t.f.alternate {
		if t.fields == 0 {
			if err := t.f.WriteString("(\n"); err != nil {
				return err
			}
		}
		onNewline := true
		pf := t.f.padded(&onNewline)
		if err := fn(pf); err != nil {
			return err
		}
		return pf.WriteString(",\n")
	}
	prefix := ", "
	if t.fields == 0 {
		prefix = "("
	}
	if err := t.f.WriteString(prefix); err != nil {
		return err
	}
	return fn(t.f)
}

// Finish closes the parentheses. A lone field of an unnamed tuple gets a
// trailing comma in the compact layout.
func (t *DebugTuple) Finish() error {
	if t.done {
		return ErrFormat
	}
	t.done = true
	if t.err != nil || t.fields == 0 {
		return t.err
	}
	if t.fields == 1 && t.emptyName && !t.f.alternate {
		if t.err = t.f.WriteString(","); t.err != nil {
			return t.err
		}
	}
	t.err = t.f.WriteString(")")
	return t.err
}

// DebugStruct writes `Name { a: 1, b: 2 }`.
type DebugStruct struct {
	f      *Formatter
	fields int
	done   bool
	err    error
}

// DebugStruct writes name and returns a builder for the named fields.
func (f *Formatter) DebugStruct(name string) *DebugStruct {
	return &DebugStruct{f: f, err: f.WriteString(name)}
}

// Field writes `name: value`, the value rendered by fn.
func (s *DebugStruct) Field(name string, fn func(*Formatter) error) error {
	if s.done {
		return ErrFormat
	}
	if s.err == nil {
		s.err = s.field(name, fn)
	}
	return s.err
}

func (s *DebugStruct) field(name string, fn func(*Formatter) error) error {
	defer func() { s.fields++ }()
	if s.f.alternate {
		if s.fields == 0 {
			if err := s.f.WriteString(" {\n"); err != nil {
				return err
			}
		}
		onNewline := true
		pf := s.f.padded(&onNewline)
		if err := pf.WriteString(name + ": "); err != nil {
			return err
		}
		if err := fn(pf); err != nil {
			return err
		}
		return pf.WriteString(",\n")
	}
	prefix := ", "
	if s.fields == 0 {
		prefix = " { "
	}
	if err := s.f.WriteString(prefix + name + ": "); err != nil {
		return err
	}
	return fn(s.f)
}

// Finish closes the braces, if any field was written.
func (s *DebugStruct) Finish() error {
	if s.done {
		return ErrFormat
	}
	s.done = true
	if s.err != nil || s.fields == 0 {
		return s.err
	}
	closing := " }"
	if s.f.alternate {
		closing = "}"
	}
	s.err = s.f.WriteString(closing)
	return s.err
}

// DebugList writes `[a, b]`.
type DebugList struct {
	f       *Formatter
	entries int
	done    bool
	err     error
}

// DebugList opens a bracketed list.
func (f *Formatter) DebugList() *DebugList {
	return &DebugList{f: f, err: f.WriteString("[")}
}

// Entry writes one element, rendered by fn.
func (l *DebugList) Entry(fn func(*Formatter) error) error {
	if l.done {
		return ErrFormat
	}
	if l.err == nil {
		l.err = l.entry(fn)
	}
	return l.err
}

func (l *DebugList) entry(fn func(*Formatter) error) error {
	defer func() { l.entries++ }()
	if l.f.alternate {
		if l.entries == 0 {
			if err := l.f.WriteString("\n"); err != nil {
				return err
			}
		}
		onNewline := true
		pf := l.f.padded(&onNewline)
		if err := fn(pf); err != nil {
			return err
		}
		return pf.WriteString(",\n")
	}
	if l.entries > 0 {
		if err := l.f.WriteString(", "); err != nil {
			return err
		}
	}
	return fn(l.f)
}

// Finish closes the brackets.
func (l *DebugList) Finish() error {
	if l.done {
		return ErrFormat
	}
	l.done = true
	if l.err == nil {
		l.err = l.f.WriteString("]")
	}
	return l.err
}

// DebugMap writes `{k: v}`. Keys and values are always supplied together.
type DebugMap struct {
	f       *Formatter
	entries int
	done    bool
	err     error
}

// DebugMap opens a braced map.
func (f *Formatter) DebugMap() *DebugMap {
	return &DebugMap{f: f, err: f.WriteString("{")}
}

// Entry writes `key: value`, each rendered by its function.
func (m *DebugMap) Entry(key, value func(*Formatter) error) error {
	if m.done {
		return ErrFormat
	}
	if m.err == nil {
		m.err = m.entry(key, value)
	}
	return m.err
}

func (m *DebugMap) entry(key, value func(*Formatter) error) error {
	defer func() { m.entries++ }()
	if m.f.alternate {
		if m.entries == 0 {
			if err := m.f.WriteString("\n"); err != nil {
				return err
			}
		}
		onNewline := true
		pf := m.f.padded(&onNewline)
		if err := key(pf); err != nil {
			return err
		}
		if err := pf.WriteString(": "); err != nil {
			return err
		}
		if err := value(pf); err != nil {
			return err
		}
		return pf.WriteString(",\n")
	}
	if m.entries > 0 {
		if err := m.f.WriteString(", "); err != nil {
			return err
		}
	}
	if err := key(m.f); err != nil {
		return err
	}
	if err := m.f.WriteString(": "); err != nil {
		return err
	}
	return value(m.f)
}

// Finish closes the braces.
func (m *DebugMap) Finish() error {
	if m.done {
		return ErrFormat
	}
	m.done = true
	if m.err == nil {
		m.err = m.f.WriteString("}")
	}
	return m.err
}
