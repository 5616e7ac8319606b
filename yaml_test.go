package serdefmt_test

import (
	"testing"

	"github.com/bjaus/serdefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parseYAML(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	return &doc
}

func TestYAML(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		src  string
		want string
	}{
		"scalars": {
			src:  "name: app\nreplicas: 3\nratio: 0.5\nenabled: true\nmissing: null\n",
			want: `{"name": "app", "replicas": 3, "ratio": 0.5, "enabled": true, "missing": None}`,
		},
		"sequence": {
			src:  "tags: [a, b]\n",
			want: `{"tags": ["a", "b"]}`,
		},
		"top-level sequence": {
			src:  "- 1\n- two\n- ~\n",
			want: `[1, "two", None]`,
		},
		"quoted number stays string": {
			src:  "v: \"42\"\n",
			want: `{"v": "42"}`,
		},
		"non-string keys": {
			src:  "1: one\ntrue: ok\n",
			want: `{1: "one", true: "ok"}`,
		},
		"local tags": {
			src:  "point: !Point {x: 1, y: 2}\npair: !Pair [1, 2]\nid: !Id 7\n",
			want: `{"point": Point { x: 1, y: 2 }, "pair": Pair(1, 2), "id": Id("7")}`,
		},
		"tagged mapping with int keys": {
			src:  "!Lookup {1: a}\n",
			want: `{1: "a"}`,
		},
		"aliases": {
			src:  "base: &b {a: 1}\ncopy: *b\n",
			want: `{"base": {"a": 1}, "copy": {"a": 1}}`,
		},
		"binary": {
			src:  "data: !!binary AQID\n",
			want: `{"data": [1, 2, 3]}`,
		},
		"large unsigned": {
			src:  "n: 18446744073709551615\n",
			want: `{"n": 18446744073709551615}`,
		},
		"hex int": {
			src:  "n: 0x1F\n",
			want: `{"n": 31}`,
		},
		"infinity": {
			src:  "f: .inf\n",
			want: `{"f": inf}`,
		},
		"empty mapping": {
			src:  "{}\n",
			want: "{}",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, marshal(t, serdefmt.YAML(parseYAML(t, tt.src))))
		})
	}
}

func TestYAMLPretty(t *testing.T) {
	t.Parallel()
	doc := parseYAML(t, "server: !Server {port: 8080, hosts: [a]}\n")
	want := `{
    "server": Server {
        port: 8080,
        hosts: [
            "a",
        ],
    },
}`
	assert.Equal(t, want, marshal(t, serdefmt.YAML(doc), pretty))
}

func TestYAMLNilNode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "None", marshal(t, serdefmt.YAML(nil)))
}

func TestYAMLEmptyDocument(t *testing.T) {
	t.Parallel()
	doc := &yaml.Node{Kind: yaml.DocumentNode}
	assert.Equal(t, "()", marshal(t, serdefmt.YAML(doc)))
}

func TestYAMLInvalidBinary(t *testing.T) {
	t.Parallel()
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!binary", Value: "not base64!"}
	_, err := serdefmt.Marshal(serdefmt.YAML(node))
	require.ErrorIs(t, err, serdefmt.ErrFormat)
}

func TestYAMLUnknownKind(t *testing.T) {
	t.Parallel()
	_, err := serdefmt.Marshal(serdefmt.YAML(&yaml.Node{Kind: 0}))
	require.ErrorIs(t, err, serdefmt.ErrFormat)
}
