package serdefmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// ErrFormat is the only error the package produces. Sink write failures,
// map protocol violations and [Custom] errors all collapse into it.
var ErrFormat = errors.New("serdefmt: format error")

// Custom builds the error a [Serializable] returns when it cannot describe
// itself. The message is discarded: a debug formatter has nowhere to put it.
func Custom(any) error {
	return ErrFormat
}

// Serializable is a value that announces its shape to a [Serializer].
// Serialize must emit exactly one top-level event.
type Serializable interface {
	Serialize(Serializer) error
}

// SerializableFunc adapts a function to [Serializable].
type SerializableFunc func(Serializer) error

// Serialize calls fn(s).
func (fn SerializableFunc) Serialize(s Serializer) error { return fn(s) }

// Serializer receives shape events. Compound events return a builder that the
// caller feeds with children and then closes with End. Lengths are hints;
// a negative length means unknown.
type Serializer interface {
	SerializeBool(v bool) error
	SerializeInt8(v int8) error
	SerializeInt16(v int16) error
	SerializeInt32(v int32) error
	SerializeInt64(v int64) error
	SerializeUint8(v uint8) error
	SerializeUint16(v uint16) error
	SerializeUint32(v uint32) error
	SerializeUint64(v uint64) error
	SerializeFloat32(v float32) error
	SerializeFloat64(v float64) error
	SerializeChar(v rune) error
	SerializeStr(v string) error
	SerializeBytes(v []byte) error

	// CollectStr writes the display text of v without quoting.
	CollectStr(v fmt.Stringer) error

	SerializeNone() error
	SerializeSome(v Serializable) error
	SerializeUnit() error
	SerializeUnitStruct(name string) error
	SerializeUnitVariant(name string, index uint32, variant string) error
	SerializeNewtypeStruct(name string, v Serializable) error
	SerializeNewtypeVariant(name string, index uint32, variant string, v Serializable) error

	SerializeSeq(length int) (SeqSerializer, error)
	SerializeTuple(length int) (TupleSerializer, error)
	SerializeTupleStruct(name string, length int) (TupleStructSerializer, error)
	SerializeTupleVariant(name string, index uint32, variant string, length int) (TupleVariantSerializer, error)
	SerializeMap(length int) (MapSerializer, error)
	SerializeStruct(name string, length int) (StructSerializer, error)
	SerializeStructVariant(name string, index uint32, variant string, length int) (StructVariantSerializer, error)
}

// SeqSerializer receives the elements of a sequence.
type SeqSerializer interface {
	SerializeElement(v Serializable) error
	End() error
}

// TupleSerializer receives the elements of an anonymous tuple.
type TupleSerializer interface {
	SerializeElement(v Serializable) error
	End() error
}

// TupleStructSerializer receives the fields of a named tuple.
type TupleStructSerializer interface {
	SerializeField(v Serializable) error
	End() error
}

// TupleVariantSerializer receives the fields of a tuple-shaped enum variant.
type TupleVariantSerializer interface {
	SerializeField(v Serializable) error
	End() error
}

// MapSerializer receives map entries, either as whole entries or as a key
// followed by its value.
type MapSerializer interface {
	SerializeKey(k Serializable) error
	SerializeValue(v Serializable) error
	SerializeEntry(k, v Serializable) error
	End() error
}

// StructSerializer receives the named fields of a struct.
type StructSerializer interface {
	SerializeField(name string, v Serializable) error
	End() error
}

// StructVariantSerializer receives the named fields of a struct-shaped enum
// variant.
type StructVariantSerializer interface {
	SerializeField(name string, v Serializable) error
	End() error
}

// ToFormatter renders v as debug text into f.
func ToFormatter(v Serializable, f *Formatter) error {
	return render(v)(f)
}

// Write renders v as debug text and writes it to w. Values that do not
// implement [Serializable] are described through [Of].
func Write(w io.Writer, v any, opts ...WriteOption) error {
	cfg := newConfig(opts)
	return ToFormatter(Of(v), cfg.formatter(w))
}

// Marshal renders v as debug text and returns the bytes.
func Marshal(v any, opts ...WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, v, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// render returns the function that runs v through a fresh serializer bound to
// whichever formatter the caller supplies. Nil values, including nil pointers
// and functions behind a non-nil interface, render as None.
func render(v Serializable) func(*Formatter) error {
	return func(f *Formatter) error {
		if isNil(v) {
			return f.WriteString(noneToken)
		}
		return v.Serialize(&serializer{f: f})
	}
}

func isNil(v Serializable) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func:
		return rv.IsNil()
	}
	return false
}
