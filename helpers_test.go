package dotpath

import (
	"testing"

	gyaml "github.com/goccy/go-yaml"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// m builds an ordered map from alternating keys and values.
func m(kv ...interface{}) gyaml.MapSlice {
	out := gyaml.MapSlice{}
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, gyaml.MapItem{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

// l builds a list.
func l(vs ...interface{}) []interface{} {
	if vs == nil {
		return []interface{}{}
	}
	return vs
}

func member(name string, age int) gyaml.MapSlice {
	return m("username", name, "profile", m("age", age))
}

func sampleData() gyaml.MapSlice {
	return m(
		"tags", l(
			m("id", 1, "tag", "tag1"),
			m("id", 2, "tag", "tag2"),
		),
		"nested", m(
			"deep", l(
				m("members", l(member("tsuyoshiwada", 24), member("nestuser", 30), member("foobarbaz", 33))),
				m("members", l(member("testuser", 19), member("sample", 33), member("hogefuga", 40))),
			),
		),
	)
}

// floatKeyDoc decodes a mapping whose first key is the float 1.5.
func floatKeyDoc(t *testing.T) gyaml.MapSlice {
	t.Helper()
	var n yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("1.5:\n  a: 1\nb: 2\n"), &n))
	v, err := FromNode(&n)
	require.NoError(t, err)
	require.Equal(t, m(1.5, m("a", 1), "b", 2), v)
	return v.(gyaml.MapSlice)
}

// requireSameTree fails with a unified diff of both trees rendered as YAML.
func requireSameTree(t *testing.T, want, got interface{}) {
	t.Helper()
	if Equal(want, got) {
		return
	}
	a, err := EncodeYAML(want)
	if err != nil {
		t.Fatalf("encode want: %v", err)
	}
	b, err := EncodeYAML(got)
	if err != nil {
		t.Fatalf("encode got: %v", err)
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	t.Fatalf("trees differ:\n%s", diff)
}
