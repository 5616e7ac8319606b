package serdefmt

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Of returns a [Serializable] for any Go value. Values that already
// implement Serializable are returned unchanged, and render as None when they
// are nil pointers; everything else is described by reflection:
//
//   - nil, nil pointers and nil interfaces → None
//   - non-nil pointers and interfaces → the value they point to
//   - [fmt.Stringer] → its String text, unquoted
//   - bool, integers, floats, strings → scalars
//   - []byte → bytes
//   - slices and arrays → sequence
//   - maps → map, entries sorted by key
//   - structs → struct named after the type, exported fields only; a struct
//     with no exported fields renders as its bare type name
//
// Struct fields honor a `debug` tag: `debug:"name"` renames the field and
// `debug:"-"` omits it. Channels, functions and unsafe pointers fail with
// [ErrFormat].
func Of(v any) Serializable {
	if s, ok := v.(Serializable); ok {
		return s
	}
	return reflected{v: reflect.ValueOf(v)}
}

// Char is a rune that serializes as a character rather than an int32.
type Char rune

// Serialize emits a char event.
func (c Char) Serialize(s Serializer) error { return s.SerializeChar(rune(c)) }

type reflected struct {
	v reflect.Value
}

func (r reflected) Serialize(s Serializer) error { return serializeValue(s, r.v) }

type text string

func (t text) String() string { return string(t) }

func serializeValue(s Serializer, v reflect.Value) error {
	if !v.IsValid() {
		return s.SerializeNone()
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return s.SerializeNone()
		}
	}
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case Serializable:
			if isNil(x) {
				return s.SerializeNone()
			}
			return x.Serialize(s)
		case fmt.Stringer:
			return s.CollectStr(x)
		}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return serializeValue(s, v.Elem())
	case reflect.Bool:
		return s.SerializeBool(v.Bool())
	case reflect.Int8:
		return s.SerializeInt8(int8(v.Int()))
	case reflect.Int16:
		return s.SerializeInt16(int16(v.Int()))
	case reflect.Int32:
		return s.SerializeInt32(int32(v.Int()))
	case reflect.Int, reflect.Int64:
		return s.SerializeInt64(v.Int())
	case reflect.Uint8:
		return s.SerializeUint8(uint8(v.Uint()))
	case reflect.Uint16:
		return s.SerializeUint16(uint16(v.Uint()))
	case reflect.Uint32:
		return s.SerializeUint32(uint32(v.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return s.SerializeUint64(v.Uint())
	case reflect.Float32:
		return s.SerializeFloat32(float32(v.Float()))
	case reflect.Float64:
		return s.SerializeFloat64(v.Float())
	case reflect.Complex64, reflect.Complex128:
		return s.CollectStr(text(fmt.Sprint(v.Complex())))
	case reflect.String:
		return s.SerializeStr(v.String())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return s.SerializeBytes(v.Bytes())
		}
		return serializeSeq(s, v)
	case reflect.Array:
		return serializeSeq(s, v)
	case reflect.Map:
		return serializeMap(s, v)
	case reflect.Struct:
		return serializeStruct(s, v)
	default:
		return Custom(fmt.Sprintf("unsupported kind %s", v.Kind()))
	}
}

func serializeSeq(s Serializer, v reflect.Value) error {
	seq, err := s.SerializeSeq(v.Len())
	if err != nil {
		return err
	}
	for i := range v.Len() {
		if err := seq.SerializeElement(reflected{v: v.Index(i)}); err != nil {
			return err
		}
	}
	return seq.End()
}

func serializeMap(s Serializer, v reflect.Value) error {
	keys := v.MapKeys()
	slices.SortFunc(keys, compareKeys)
	m, err := s.SerializeMap(len(keys))
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := m.SerializeEntry(reflected{v: k}, reflected{v: v.MapIndex(k)}); err != nil {
			return err
		}
	}
	return m.End()
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case b.Bool():
			return -1
		default:
			return 1
		}
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

type structField struct {
	name  string
	index int
}

func serializeStruct(s Serializer, v reflect.Value) error {
	t := v.Type()
	var fields []structField
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("debug"); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, structField{name: name, index: i})
	}
	if len(fields) == 0 {
		return s.SerializeUnitStruct(t.Name())
	}
	st, err := s.SerializeStruct(t.Name(), len(fields))
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := st.SerializeField(f.name, reflected{v: v.Field(f.index)}); err != nil {
			return err
		}
	}
	return st.End()
}
