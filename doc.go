// Package serdefmt renders any value that can describe its own shape as
// human-readable debug text.
//
// A value opts in by implementing [Serializable]: its Serialize method emits
// exactly one shape event to a [Serializer] (a scalar, an optional, a unit,
// a sequence, a tuple, a map, a struct or an enum variant). The package
// supplies a Serializer that turns those events into nested text, so the
// value's type never needs a formatting method of its own.
//
// # Entry Points
//
// [ToFormatter] renders into a [Formatter], the output sink. [Write] and
// [Marshal] wrap that for an [io.Writer] or a byte slice, and accept any Go
// value, routing non-Serializable values through [Of]:
//
//	serdefmt.Write(os.Stdout, order)
//	b, err := serdefmt.Marshal(order, serdefmt.WithPretty(true))
//
// [ToDebug] wraps a value for use anywhere fmt expects something printable:
//
//	fmt.Printf("%v\n", serdefmt.ToDebug(order))  // compact
//	fmt.Printf("%+v\n", serdefmt.ToDebug(order)) // pretty
//
// [WriteIter] and [WriteChan] render a stream of values, one per line.
//
// # Output
//
//   - bool, integers: `true`, `-42`
//   - floats: `42.0`, `0.1`, `1e16`, `NaN`, `inf`
//   - char: `'a'`; string: `"a string"`, with escapes
//   - bytes and sequences: `[1, 2, 3]`
//   - none: `None`; some: `Some(42)`; unit: `()`
//   - tuples: `(42, 17)`; tuple structs and variants: `Name(a, b)`
//   - unit structs and unit variants: `Name`
//   - structs and struct variants: `Name { a: 1, b: 2 }`
//   - maps: `{"k": "v"}`
//
// Enum variants render like standalone types named after the variant; the
// enum's name and the variant index never appear.
//
// The pretty layout puts each child on its own line with a trailing comma,
// indented by four spaces per level (see [WithIndent]).
//
// # Maps
//
// A [MapSerializer] takes entries either whole, through SerializeEntry, or
// as a key followed by its value. A key submitted on its own is rendered
// immediately and held until the value arrives. Submitting a value with no
// pending key, a second key before the value, or a whole entry while a key
// is pending fails with [ErrFormat] before anything of that entry is written.
// Closing a map with a pending key drops the key.
//
// # Adapters
//
//   - [Of] describes arbitrary Go values by reflection.
//   - [YAML] describes a decoded gopkg.in/yaml.v3 node tree.
//   - [JSON] and [JSONBytes] describe github.com/tidwall/gjson results.
//   - [ZapField] logs a value as debug text through go.uber.org/zap.
//   - [Optional] is a ready-made Some/None value.
//
// # Errors
//
// Every failure is [ErrFormat]: a write to the sink failed, the map protocol
// was misused, or a Serializable returned [Custom]. It carries no detail.
package serdefmt
