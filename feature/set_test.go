package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	a := NewSet("A", "B")
	b := NewSet("A", "C", "D")

	assert.True(t, a.Has("A"))
	assert.False(t, a.Has("C"))
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 1, a.IntersectionLen(b))
	assert.Equal(t, 1, b.IntersectionLen(a))
	assert.Equal(t, 4, a.UnionLen(b))
	assert.Equal(t, []string{"A", "C", "D"}, b.Names())

	empty := NewSet()
	assert.Equal(t, 0, empty.IntersectionLen(a))
	assert.Equal(t, 2, empty.UnionLen(a))
	assert.Equal(t, 0, empty.UnionLen(NewSet()))
}
