package engine_test

import (
	"testing"

	"go.llib.dev/sequential/pkg/tag"
	"go.llib.dev/sequential/port/engine"
	"go.llib.dev/sequential/port/engine/enginecontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestList(t *testing.T) {
	enginecontract.Engine(func(tb testing.TB) engine.Engine[string] {
		return &engine.List[string]{}
	}).Test(t)

	enginecontract.Engine(func(tb testing.TB) engine.Engine[int] {
		return &engine.List[int]{}
	}, enginecontract.Config[int]{
		MakeElem: func(tb testing.TB) int {
			return testcase.ToT(&tb).Random.IntBetween(-100, 100)
		},
	}).Test(t)
}

func TestList_Supports(t *testing.T) {
	var l engine.List[string]
	for _, tg := range []tag.Tag{tag.Append, tag.Prepend, tag.Before, tag.After, tag.Replace, tag.Index} {
		assert.True(t, l.Supports(tg))
	}
	for _, tg := range []tag.Tag{tag.KeyVal, tag.Send, tag.Push, tag.Key, tag.Pop, tag.Recv} {
		assert.False(t, l.Supports(tg))
	}
}

func TestList_slotReuse(t *testing.T) {
	var l engine.List[string]
	l.Append("a")
	l.Append("b")
	l.Append("c")

	v, ok := l.Delete(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	l.Prepend("x")
	assert.True(t, l.InsertAfter(2, "y"))
	assert.True(t, l.InsertBefore(0, "w"))
	assert.Equal(t, []string{"w", "x", "a", "c", "y"}, l.Slice())
	assert.Equal(t, 5, l.Len())

	for l.Len() != 0 {
		_, ok := l.Delete(l.Len() - 1)
		assert.True(t, ok)
	}
	assert.Empty(t, l.Slice())

	l.Append("z")
	assert.Equal(t, []string{"z"}, l.Slice())
}

func TestList_lookupFromBothEnds(t *testing.T) {
	var l engine.List[int]
	for i := 0; i < 11; i++ {
		l.Append(i)
	}
	for i := 0; i < 11; i++ {
		got, ok := l.Lookup(i)
		assert.True(t, ok)
		assert.Equal(t, i, got)
	}
}
