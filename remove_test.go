package dotpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	t1 := m("foo", m("bar", "baz"))
	assert.Equal(t, m("foo", m("bar", "baz")), Remove(t1, "notfound"))
	assert.Equal(t, m(), Remove(t1, "foo"))
	assert.Equal(t, m("foo", m()), Remove(t1, "foo.bar"))
	assert.Equal(t, m("foo", m("bar", "baz")), t1)

	assert.Equal(t, m(), Remove(m("foo.bar", "baz"), `foo\.bar`))
	assert.Equal(t, t1, Remove(t1, ""))
}

func nestedList() []interface{} {
	return l(
		m("nest", l(m("deep", m("name", "foo")))),
		m("nest", l(m("deep", m("name", "bar")))),
		m("nest", l(m("deep", m("name", "baz")))),
	)
}

func TestRemoveList(t *testing.T) {
	t2 := nestedList()
	defer func() { assert.Equal(t, nestedList(), t2) }()

	res := Remove(t2, "*")
	require.IsType(t, l(), res)
	assert.Len(t, res, 0)

	assert.Equal(t, l(
		m("nest", l(m("deep", m("name", "bar")))),
		m("nest", l(m("deep", m("name", "baz")))),
	), Remove(t2, "0"))

	assert.Equal(t, l(
		m(),
		m("nest", l(m("deep", m("name", "bar")))),
		m("nest", l(m("deep", m("name", "baz")))),
	), Remove(t2, "0.nest"))

	assert.Equal(t, l(
		m("nest", l(m("deep", m("name", "foo")))),
		m("nest", l(m("deep", m("name", "bar")))),
		m("nest", l(m("deep", m()))),
	), Remove(t2, "2.nest.0.deep.name"))

	assert.Equal(t, l(
		m("nest", l(m())),
		m("nest", l(m())),
		m("nest", l(m())),
	), Remove(t2, "*.nest.*.deep"))

	assert.Equal(t, l(
		m("nest", l(m("deep", m()))),
		m("nest", l(m("deep", m()))),
		m("nest", l(m("deep", m()))),
	), Remove(t2, "*.nest.*.deep.name"))

	assert.Equal(t, nestedList(), Remove(t2, "*.nest.*.deep.name.hoge"))
}

func TestRemoveWildcardShiftsIndexes(t *testing.T) {
	assert.Equal(t, l(), Remove(l(1, 2, 3, 4, 5), "*"))

	values := l(m("nest", l(1, 2, 3)), m("nest", l(1, 2, 3)))
	assert.Equal(t, l(m("nest", l(2, 3)), m("nest", l(1, 2, 3))), Remove(values, "0.nest.0"))
	assert.Equal(t, l(m("nest", l(1, 3)), m("nest", l(1, 3))), Remove(values, "*.nest.1"))

	grid := func() []interface{} {
		return l(
			l(l(1, 2, 3), l(1, 2, 3), l(1, 2, 3)),
			l(l(1, 2, 3), l(1, 2, 3), l(1, 2, 3)),
		)
	}
	assert.Equal(t, l(
		l(l(1, 2, 3), l(1, 2, 3)),
		l(l(1, 2, 3), l(1, 2, 3)),
	), Remove(grid(), "*.0"))
	assert.Equal(t, l(
		l(l(1, 2), l(1, 2), l(1, 2)),
		l(l(1, 2), l(1, 2), l(1, 2)),
	), Remove(grid(), "*.*.2"))
	assert.Equal(t, grid(), Remove(grid(), "*.*.3"))
}

func TestRemoveWildcardOnMap(t *testing.T) {
	data := m("a", m("x", 1, "y", 2), "b", m("x", 3), "c", "scalar")
	assert.Equal(t, m("a", m("y", 2), "b", m(), "c", "scalar"), Remove(data, "*.x"))
	assert.Equal(t, m(), Remove(data, "*"))
}

func TestRemoveKeepsEmptiedParents(t *testing.T) {
	data := m("a", m("b", m("c", 1)))
	assert.Equal(t, m("a", m("b", m())), Remove(data, "a.b.c"))
}

func TestRemoveThroughScalarIsNoop(t *testing.T) {
	data := m("a", "str")
	assert.Equal(t, data, Remove(data, "a.b.c"))
	assert.Equal(t, "str", Remove("str", "a"))
}

func TestRemoveIndexes(t *testing.T) {
	assert.Equal(t, l(3, 4), removeIndexes(l(0, 1, 2, 3, 4), []int{0, 1, 2}))
	assert.Equal(t, l(1, 3), removeIndexes(l(0, 1, 2, 3, 4), []int{0, 2, 4}))
}

func TestRemoveFloatKeys(t *testing.T) {
	doc := floatKeyDoc(t)

	assert.Equal(t, m(), Remove(doc, "*"))
	assert.Equal(t, m("b", 2), Remove(doc, `1\.5`))
	assert.Equal(t, m(1.5, m(), "b", 2), Remove(doc, "*.a"))
	assert.Equal(t, m(1.5, m("a", 1), "b", 2), doc)
}

func TestRemoveQuotedStarIsLiteral(t *testing.T) {
	data := m("*", 1, "x", 2)
	assert.Equal(t, m("x", 2), Remove(data, "['*']"))
	assert.Equal(t, m(), Remove(data, "*"))
}

func TestRemoveOversizedIndex(t *testing.T) {
	data := m("a", l(1, 2))
	assert.Equal(t, data, Remove(data, "a.1099511627776"))
}
