package serdefmt_test

import (
	"testing"

	"github.com/bjaus/serdefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
}

type account struct {
	ID      int      `debug:"id"`
	Name    string   `debug:"name,omitempty"`
	Secret  string   `debug:"-"`
	Tags    []string `debug:"tags"`
	Owner   *person  `debug:"owner"`
	balance int
}

type marker struct{}

type opaque struct {
	hidden int
}

type holder struct {
	V any
}

type level int

func (l level) String() string {
	switch l {
	case 1:
		return "warn"
	default:
		return "info"
	}
}

type withOptional struct {
	Limit serdefmt.Optional[int] `debug:"limit"`
	Sep   serdefmt.Char          `debug:"sep"`
	Level level                  `debug:"level"`
}

type withFunc struct {
	Fn func()
}

func TestOfStruct(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    any
		want string
	}{
		"tags and skips": {
			v:    account{ID: 7, Name: "ops", Secret: "s3cret", Tags: []string{"a", "b"}, balance: 10},
			want: `account { id: 7, name: "ops", tags: ["a", "b"], owner: None }`,
		},
		"pointer field": {
			v:    account{ID: 1, Owner: &person{Name: "Ann"}},
			want: `account { id: 1, name: "", tags: [], owner: person { Name: "Ann" } }`,
		},
		"pointer to struct": {
			v:    &person{Name: "Bo"},
			want: `person { Name: "Bo" }`,
		},
		"empty struct":           {v: marker{}, want: "marker"},
		"only unexported fields": {v: opaque{hidden: 1}, want: "opaque"},
		"interface holding int":  {v: holder{V: 1}, want: "holder { V: 1 }"},
		"interface nil":          {v: holder{}, want: "holder { V: None }"},
		"nested serializables": {
			v:    withOptional{Limit: serdefmt.Some(3), Sep: ',', Level: 1},
			want: "withOptional { limit: Some(3), sep: ',', level: warn }",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, marshal(t, tt.v))
		})
	}
}

func TestOfStructPretty(t *testing.T) {
	t.Parallel()
	v := account{ID: 7, Tags: []string{"a"}, Owner: &person{Name: "Ann"}}
	want := `account {
    id: 7,
    name: "",
    tags: [
        "a",
    ],
    owner: person {
        Name: "Ann",
    },
}`
	assert.Equal(t, want, marshal(t, v, pretty))
}

func TestOfCollections(t *testing.T) {
	t.Parallel()
	n := 5
	var nilPtr *int
	tests := map[string]struct {
		v    any
		want string
	}{
		"map sorted string keys": {v: map[string]int{"b": 2, "a": 1, "c": 3}, want: `{"a": 1, "b": 2, "c": 3}`},
		"map sorted int keys":    {v: map[int]bool{2: true, 1: false, -3: true}, want: "{-3: true, 1: false, 2: true}"},
		"map bool keys":          {v: map[bool]string{true: "y", false: "n"}, want: `{false: "n", true: "y"}`},
		"map float keys":         {v: map[float64]int{2.5: 1, 0.5: 2}, want: "{0.5: 2, 2.5: 1}"},
		"map struct values":      {v: map[string]point{"p": {X: 1, Y: 2}}, want: `{"p": point { x: 1, y: 2 }}`},
		"map nil":                {v: map[string]int(nil), want: "{}"},
		"slice nil":              {v: []string(nil), want: "[]"},
		"array":                  {v: [2]int8{1, -1}, want: "[1, -1]"},
		"byte array":             {v: [3]byte{1, 2, 3}, want: "[1, 2, 3]"},
		"slice of bytes":         {v: [][]byte{{1}, {}}, want: "[[1], []]"},
		"pointer":                {v: &n, want: "5"},
		"nil pointer":            {v: nilPtr, want: "None"},
		"uint":                   {v: uint(9), want: "9"},
		"uintptr":                {v: uintptr(3), want: "3"},
		"complex":                {v: complex(1, 2), want: "(1+2i)"},
		"stringer":               {v: level(1), want: "warn"},
		"any slice":              {v: []any{1, "a", nil, serdefmt.Char('c')}, want: `[1, "a", None, 'c']`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, marshal(t, tt.v))
		})
	}
}

func TestOfReturnsSerializableUnchanged(t *testing.T) {
	t.Parallel()
	o := serdefmt.Some(1)
	assert.Equal(t, o, serdefmt.Of(o))
}

type order struct {
	id int
}

func (o *order) Serialize(s serdefmt.Serializer) error {
	return s.SerializeNewtypeStruct("Order", serdefmt.Of(o.id))
}

func TestOfTypedNilSerializable(t *testing.T) {
	t.Parallel()
	var missing *order
	var fn serdefmt.SerializableFunc
	tests := map[string]struct {
		v    any
		want string
	}{
		"nil pointer":      {v: missing, want: "None"},
		"nil func":         {v: fn, want: "None"},
		"set pointer":      {v: &order{id: 7}, want: "Order(7)"},
		"nil in tuple":     {v: tuple{missing, 1}, want: "(None, 1)"},
		"nil in slice":     {v: []*order{{id: 1}, nil}, want: "[Order(1), None]"},
		"nil in some":      {v: serdefmt.Some(missing), want: "Some(None)"},
		"nil in interface": {v: holder{V: missing}, want: "holder { V: None }"},
		"nil func field":   {v: holder{V: fn}, want: "holder { V: None }"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, marshal(t, tt.v))
		})
	}
	assert.Equal(t, "None", serdefmt.ToDebug(missing).String())
}

func TestOfUnsupportedKinds(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v any
	}{
		"chan":          {v: make(chan int)},
		"func":          {v: func() {}},
		"func in field": {v: withFunc{Fn: func() {}}},
		"chan in slice": {v: []any{1, make(chan int)}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := serdefmt.Marshal(tt.v)
			require.ErrorIs(t, err, serdefmt.ErrFormat)
		})
	}
}
