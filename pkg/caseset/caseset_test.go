package caseset

import (
	"testing"

	"github.com/function61/gokit/testing/assert"
)

func TestHas(t *testing.T) {
	cases := New("3c4-a", "3c4-b")

	assert.Assert(t, cases.Has("3c4-a"))
	assert.Assert(t, cases.Has("3c4-b"))
	assert.Assert(t, !cases.Has("3c4-c"))
	assert.Assert(t, !cases.Has(""))
}

func TestAdd(t *testing.T) {
	cases := New()

	assert.Assert(t, !cases.Has("3c4-a"))

	cases.Add("3c4-a")

	assert.Assert(t, cases.Has("3c4-a"))
}

func TestLen(t *testing.T) {
	assert.Assert(t, New().Len() == 0)
	assert.Assert(t, New("a", "b", "a").Len() == 2)
}
