package serdefmt

import (
	"fmt"
	"strconv"
)

// serializer is the debug-text [Serializer]. Each one is bound to a single
// Formatter and used for exactly one top-level event.
//
// Enum variants are written like standalone types named after the variant;
// the enum's own name and the variant index never appear.
type serializer struct {
	f *Formatter
}

func (s *serializer) SerializeBool(v bool) error {
	return s.f.WriteString(strconv.FormatBool(v))
}

func (s *serializer) SerializeInt8(v int8) error   { return s.SerializeInt64(int64(v)) }
func (s *serializer) SerializeInt16(v int16) error { return s.SerializeInt64(int64(v)) }
func (s *serializer) SerializeInt32(v int32) error { return s.SerializeInt64(int64(v)) }

func (s *serializer) SerializeInt64(v int64) error {
	return s.f.WriteString(strconv.FormatInt(v, 10))
}

func (s *serializer) SerializeUint8(v uint8) error   { return s.SerializeUint64(uint64(v)) }
func (s *serializer) SerializeUint16(v uint16) error { return s.SerializeUint64(uint64(v)) }
func (s *serializer) SerializeUint32(v uint32) error { return s.SerializeUint64(uint64(v)) }

func (s *serializer) SerializeUint64(v uint64) error {
	return s.f.WriteString(strconv.FormatUint(v, 10))
}

func (s *serializer) SerializeFloat32(v float32) error {
	return s.f.WriteString(formatFloat(float64(v), 32))
}

func (s *serializer) SerializeFloat64(v float64) error {
	return s.f.WriteString(formatFloat(v, 64))
}

func (s *serializer) SerializeChar(v rune) error {
	return s.f.WriteString(quoteChar(v))
}

func (s *serializer) SerializeStr(v string) error {
	return s.f.WriteString(quoteString(v))
}

func (s *serializer) SerializeBytes(v []byte) error {
	return writeBytes(s.f, v)
}

func (s *serializer) CollectStr(v fmt.Stringer) error {
	return s.f.WriteString(v.String())
}

func (s *serializer) SerializeNone() error {
	return s.f.WriteString(noneToken)
}

func (s *serializer) SerializeSome(v Serializable) error {
	return s.SerializeNewtypeStruct("Some", v)
}

func (s *serializer) SerializeUnit() error {
	return s.f.WriteString(unitToken)
}

func (s *serializer) SerializeUnitStruct(name string) error {
	t, err := s.SerializeTupleStruct(name, 0)
	if err != nil {
		return err
	}
	return t.End()
}

func (s *serializer) SerializeUnitVariant(_ string, _ uint32, variant string) error {
	return s.SerializeUnitStruct(variant)
}

func (s *serializer) SerializeNewtypeStruct(name string, v Serializable) error {
	t, err := s.SerializeTupleStruct(name, 1)
	if err != nil {
		return err
	}
	if err := t.SerializeField(v); err != nil {
		return err
	}
	return t.End()
}

func (s *serializer) SerializeNewtypeVariant(_ string, _ uint32, variant string, v Serializable) error {
	return s.SerializeNewtypeStruct(variant, v)
}

func (s *serializer) SerializeSeq(int) (SeqSerializer, error) {
	l := s.f.DebugList()
	if l.err != nil {
		return nil, l.err
	}
	return &seqBuilder{l: l}, nil
}

func (s *serializer) SerializeTuple(int) (TupleSerializer, error) {
	t, err := s.tuple("")
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *serializer) SerializeTupleStruct(name string, _ int) (TupleStructSerializer, error) {
	t, err := s.tuple(name)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *serializer) SerializeTupleVariant(_ string, _ uint32, variant string, _ int) (TupleVariantSerializer, error) {
	t, err := s.tuple(variant)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *serializer) SerializeMap(int) (MapSerializer, error) {
	m, err := newMapBuilder(s.f)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *serializer) SerializeStruct(name string, _ int) (StructSerializer, error) {
	st, err := s.strukt(name)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *serializer) SerializeStructVariant(_ string, _ uint32, variant string, _ int) (StructVariantSerializer, error) {
	st, err := s.strukt(variant)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *serializer) tuple(name string) (*tupleBuilder, error) {
	t := s.f.DebugTuple(name)
	if t.err != nil {
		return nil, t.err
	}
	return &tupleBuilder{t: t}, nil
}

func (s *serializer) strukt(name string) (*structBuilder, error) {
	st := s.f.DebugStruct(name)
	if st.err != nil {
		return nil, st.err
	}
	return &structBuilder{s: st}, nil
}
