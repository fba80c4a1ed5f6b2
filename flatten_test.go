package dotpath

import (
	"testing"

	gyaml "github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestFlatten(t *testing.T) {
	cases := map[string]struct {
		in   interface{}
		want gyaml.MapSlice
	}{
		"Nil":        {in: nil, want: m()},
		"EmptyMap":   {in: m(), want: m()},
		"EmptyList":  {in: l(), want: m()},
		"Scalar":     {in: 42, want: m()},
		"NestedMap":  {in: m("foo", m("bar", "baz")), want: m("foo.bar", "baz")},
		"RootList":   {in: l(m("key", "value1"), m("key", "value2")), want: m("0.key", "value1", "1.key", "value2")},
		"ListOfMaps": {in: m("tags", l(m("id", 1), m("id", 2))), want: m("tags.0.id", 1, "tags.1.id", 2)},
		"EscapedKeys": {
			in:   m("a.b", m("c[0]", 1, "", 2)),
			want: m(`a\.b.['c[0]']`, 1, `a\.b.['']`, 2),
		},
		"EmptyContainers": {
			in:   m("list", l(), "map", m(), "x", nil),
			want: m("list", l(), "x", nil),
		},
		"Sample": {
			in: sampleData(),
			want: m(
				"tags.0.id", 1,
				"tags.0.tag", "tag1",
				"tags.1.id", 2,
				"tags.1.tag", "tag2",
				"nested.deep.0.members.0.username", "tsuyoshiwada",
				"nested.deep.0.members.0.profile.age", 24,
				"nested.deep.0.members.1.username", "nestuser",
				"nested.deep.0.members.1.profile.age", 30,
				"nested.deep.0.members.2.username", "foobarbaz",
				"nested.deep.0.members.2.profile.age", 33,
				"nested.deep.1.members.0.username", "testuser",
				"nested.deep.1.members.0.profile.age", 19,
				"nested.deep.1.members.1.username", "sample",
				"nested.deep.1.members.1.profile.age", 33,
				"nested.deep.1.members.2.username", "hogefuga",
				"nested.deep.1.members.2.profile.age", 40,
			),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Flatten(tc.in)); diff != "" {
				t.Errorf("Flatten(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	cases := map[string]struct {
		in   interface{}
		want interface{}
	}{
		"Nil":    {in: nil, want: m()},
		"Simple": {in: m("foo.bar", "baz"), want: m("foo", m("bar", "baz"))},
		"RootList": {
			in:   m("0.id", m("user", 1), "1.id", m("user", 2), "2.id", m("user", 3)),
			want: l(m("id", m("user", 1)), m("id", m("user", 2)), m("id", m("user", 3))),
		},
		"Sparse": {
			in:   m("0", "a", "2", "c"),
			want: l("a", nil, "c"),
		},
		"PlainMapSortedKeys": {
			in:   map[string]interface{}{"b.0": 1, "a": 2},
			want: m("a", 2, "b", l(1)),
		},
		"MergesSiblings": {
			in:   m("a", m("x", 1), "a.y", 2),
			want: m("a", m("x", 1, "y", 2)),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Expand(tc.in)); diff != "" {
				t.Errorf("Expand(...): -want, +got:\n%s", diff)
			}
		})
	}
}

func TestFlattenExpandRoundTrip(t *testing.T) {
	for name, in := range map[string]interface{}{
		"Sample":      sampleData(),
		"RootList":    l(m("a", l(1, 2)), m("b", "x")),
		"WeirdKeys":   m("a.b", m("c[0]", l(true, nil)), `back\slash`, 1.5, "", "empty"),
		"NestedLists": l(l(l(1), l(2, 3))),
		"EmptyList":   m("tags", l(), "name", "x"),
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(in, Expand(Flatten(in))); diff != "" {
				t.Errorf("Expand(Flatten(...)): -want, +got:\n%s", diff)
			}
		})
	}
}
