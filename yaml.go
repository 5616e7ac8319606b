package serdefmt

import (
	"encoding/base64"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML returns a [Serializable] describing a decoded YAML tree.
//
// Mappings become maps and sequences become lists. Scalars are resolved by
// tag: null, bool, int, float and binary get their own events, anything else
// is a string. Aliases are followed and documents are unwrapped.
//
// A local tag names the node: `!Point {x: 1}` renders as `Point { x: 1 }`,
// `!Pair [1, 2]` as `Pair(1, 2)` and `!Id 7` as `Id("7")`. A tagged mapping
// whose keys are not all strings stays a map.
func YAML(node *yaml.Node) Serializable {
	return yamlNode{n: node}
}

type yamlNode struct {
	n *yaml.Node
}

func (y yamlNode) Serialize(s Serializer) error {
	n := y.n
	if n == nil {
		return s.SerializeNone()
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return s.SerializeUnit()
		}
		return YAML(n.Content[0]).Serialize(s)
	case yaml.AliasNode:
		return YAML(n.Alias).Serialize(s)
	case yaml.SequenceNode:
		if name, ok := localTag(n); ok {
			return serializeYAMLTuple(s, name, n)
		}
		return serializeYAMLSeq(s, n)
	case yaml.MappingNode:
		if name, ok := localTag(n); ok && stringKeys(n) {
			return serializeYAMLStruct(s, name, n)
		}
		return serializeYAMLMap(s, n)
	case yaml.ScalarNode:
		if name, ok := localTag(n); ok {
			return s.SerializeNewtypeStruct(name, SerializableFunc(func(s Serializer) error {
				return s.SerializeStr(n.Value)
			}))
		}
		return serializeYAMLScalar(s, n)
	default:
		return Custom(fmt.Sprintf("yaml: unknown node kind %d", n.Kind))
	}
}

func localTag(n *yaml.Node) (string, bool) {
	if len(n.Tag) < 2 || n.Tag[0] != '!' || n.Tag[1] == '!' {
		return "", false
	}
	return n.Tag[1:], true
}

func stringKeys(n *yaml.Node) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind != yaml.ScalarNode || k.ShortTag() != "!!str" {
			return false
		}
	}
	return true
}

func serializeYAMLSeq(s Serializer, n *yaml.Node) error {
	seq, err := s.SerializeSeq(len(n.Content))
	if err != nil {
		return err
	}
	for _, c := range n.Content {
		if err := seq.SerializeElement(YAML(c)); err != nil {
			return err
		}
	}
	return seq.End()
}

func serializeYAMLTuple(s Serializer, name string, n *yaml.Node) error {
	t, err := s.SerializeTupleStruct(name, len(n.Content))
	if err != nil {
		return err
	}
	for _, c := range n.Content {
		if err := t.SerializeField(YAML(c)); err != nil {
			return err
		}
	}
	return t.End()
}

func serializeYAMLMap(s Serializer, n *yaml.Node) error {
	m, err := s.SerializeMap(len(n.Content) / 2)
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := m.SerializeEntry(YAML(n.Content[i]), YAML(n.Content[i+1])); err != nil {
			return err
		}
	}
	return m.End()
}

func serializeYAMLStruct(s Serializer, name string, n *yaml.Node) error {
	st, err := s.SerializeStruct(name, len(n.Content)/2)
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := st.SerializeField(n.Content[i].Value, YAML(n.Content[i+1])); err != nil {
			return err
		}
	}
	return st.End()
}

func serializeYAMLScalar(s Serializer, n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!null":
		return s.SerializeNone()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Custom(err)
		}
		return s.SerializeBool(b)
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return s.SerializeInt64(i)
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return Custom(err)
		}
		return s.SerializeUint64(u)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Custom(err)
		}
		return s.SerializeFloat64(f)
	case "!!binary":
		data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return Custom(err)
		}
		return s.SerializeBytes(data)
	default:
		return s.SerializeStr(n.Value)
	}
}
