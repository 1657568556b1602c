package sequential_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"go.llib.dev/sequential"
	"go.llib.dev/sequential/pkg/tag"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// makeWords returns n unique payloads.
func makeWords(t *testcase.T, n int) []string {
	return random.Slice(n, func() string {
		return randomdata.SillyName() + "-" + t.Random.StringNWithCharset(4, "abcdef")
	}, random.UniqueValues)
}

func makeSequence(t *testcase.T, opts ...sequential.Option[string]) *sequential.Sequence[string] {
	seq, err := sequential.Create[string](tag.List, opts...)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = seq.Close() })
	return seq
}

func appendAll(t *testcase.T, seq *sequential.Sequence[string], vs ...string) {
	for _, v := range vs {
		assert.NoError(t, seq.Add(tag.Append, v))
	}
}

func TestCreate(t *testing.T) {
	s := testcase.NewSpec(t)

	typ := let.Var(s, func(t *testcase.T) tag.Tag { return tag.List })
	act := let.Act2(func(t *testcase.T) (*sequential.Sequence[string], error) {
		return sequential.Create[string](typ.Get(t))
	})

	s.Then("a list sequence is created empty", func(t *testcase.T) {
		seq, err := act(t)
		assert.NoError(t, err)
		assert.NotNil(t, seq)
		assert.Equal(t, 0, seq.Size())
		assert.Equal(t, tag.List, seq.Type())
		assert.NotEqual(t, uuid.Nil, seq.ID())
	})

	s.Then("every sequence gets its own identity", func(t *testcase.T) {
		a, err := act(t)
		assert.NoError(t, err)
		b, err := act(t)
		assert.NoError(t, err)
		assert.NotEqual(t, a.ID(), b.ID())
	})

	s.When("the type has no storage engine", func(s *testcase.Spec) {
		typ.Let(s, func(t *testcase.T) tag.Tag {
			return random.Pick(t.Random, tag.Map, tag.Ring, tag.Queue, tag.Stack, tag.Array)
		})

		s.Then("construction fails without a handle", func(t *testcase.T) {
			seq, err := act(t)
			assert.ErrorIs(t, sequential.ErrUnsupportedType, err)
			assert.Nil(t, seq)
		})
	})

	s.When("the tag is not a type", func(s *testcase.Spec) {
		typ.Let(s, func(t *testcase.T) tag.Tag {
			return random.Pick(t.Random, tag.Append, tag.Index, tag.Trace, tag.Tag(0))
		})

		s.Then("construction fails with a category error", func(t *testcase.T) {
			seq, err := act(t)
			assert.ErrorIs(t, sequential.ErrCategory, err)
			assert.Nil(t, seq)
		})
	})

	s.Test("an invalid debug level in the options fails construction", func(t *testcase.T) {
		_, err := sequential.Create[string](tag.List, sequential.Config[string]{DebugLevel: tag.Append})
		assert.Error(t, err)
	})
}

func TestSequence_Close(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		removed = let.Var(s, func(t *testcase.T) []string { return nil })
		values  = let.Var(s, func(t *testcase.T) []string { return makeWords(t, t.Random.IntBetween(1, 7)) })
		seq     = let.Var(s, func(t *testcase.T) *sequential.Sequence[string] {
			seq := makeSequence(t, sequential.WithOnRemove[string](func(v string) {
				removed.Set(t, append(removed.Get(t), v))
			}))
			appendAll(t, seq, values.Get(t)...)
			return seq
		})
	)
	act := let.Act(func(t *testcase.T) error { return seq.Get(t).Close() })

	s.Then("every payload is cleaned up once from head to tail", func(t *testcase.T) {
		assert.NoError(t, act(t))
		assert.Equal(t, values.Get(t), removed.Get(t))
		assert.Equal(t, 0, seq.Get(t).Size())
	})

	s.Then("closing twice is a no-op", func(t *testcase.T) {
		assert.NoError(t, act(t))
		assert.NoError(t, act(t))
		assert.Equal(t, len(values.Get(t)), len(removed.Get(t)))
	})

	s.Then("later operations report the closed handle", func(t *testcase.T) {
		assert.NoError(t, act(t))

		assert.ErrorIs(t, sequential.ErrClosed, seq.Get(t).Add(tag.Append, "x"))
		assert.ErrorIs(t, sequential.ErrClosed, seq.Get(t).Remove(tag.Index, 0))
		assert.ErrorIs(t, sequential.ErrClosed, seq.Get(t).Set(tag.DebugStdout))
		_, ok := seq.Get(t).Get(tag.Index, 0)
		assert.False(t, ok)
		_, err := seq.Get(t).Iterator()
		assert.ErrorIs(t, sequential.ErrClosed, err)
		assert.Empty(t, seq.Get(t).Slice())
	})
}

func TestSequence_Iter(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		values = let.Var(s, func(t *testcase.T) []string { return makeWords(t, t.Random.IntBetween(3, 7)) })
		seq    = let.Var(s, func(t *testcase.T) *sequential.Sequence[string] {
			seq := makeSequence(t)
			appendAll(t, seq, values.Get(t)...)
			return seq
		})
	)

	s.Then("elements are yielded with their index in order", func(t *testcase.T) {
		var n int
		for i, v := range seq.Get(t).Iter() {
			assert.Equal(t, n, i)
			assert.Equal(t, values.Get(t)[i], v)
			n++
		}
		assert.Equal(t, len(values.Get(t)), n)
		assert.Equal(t, values.Get(t), seq.Get(t).Slice())
	})

	s.Then("a structural change from within the loop stops the iteration", func(t *testcase.T) {
		var n int
		for range seq.Get(t).Iter() {
			n++
			assert.NoError(t, seq.Get(t).Remove(tag.Index, -1))
		}
		assert.Equal(t, 1, n)
		assert.Equal(t, len(values.Get(t))-1, seq.Get(t).Size())
	})
}
