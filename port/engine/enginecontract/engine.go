package enginecontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/slicekit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/sequential/pkg/tag"
	"go.llib.dev/sequential/port/engine"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

type Config[T any] struct {
	MakeElem func(tb testing.TB) T
}

func (c Config[T]) Configure(o *Config[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return testcase.ToT(&tb).Random.Make(reflectkit.TypeOf[T]()).(T)
}

type Option[T any] option.Option[Config[T]]

var _ Option[any] = Config[any]{}

// Engine is the behaviour a sequence expects from its storage engine.
// The subject returned by make must be empty.
func Engine[T any](make contract.Make[engine.Engine[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	var (
		subject = let.Var(s, func(t *testcase.T) engine.Engine[T] {
			return make(t)
		})
		values = let.Var(s, func(t *testcase.T) []T {
			return random.Slice(t.Random.IntBetween(3, 7), func() T {
				return c.makeElem(t)
			})
		})
	)

	populated := func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) engine.Engine[T] {
			e := subject.Super(t)
			for _, v := range values.Get(t) {
				e.Append(v)
			}
			return e
		})
	}

	s.Test("starts empty", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Len())
		assert.Empty(t, collect(subject.Get(t)))
	})

	s.Test("positional operations are supported on the list surface", func(t *testcase.T) {
		assert.True(t, subject.Get(t).Supports(tag.Append))
		assert.True(t, subject.Get(t).Supports(tag.Index))
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		s.Then("values keep their insertion order", func(t *testcase.T) {
			e := subject.Get(t)
			for i, v := range values.Get(t) {
				assert.Equal(t, i, e.Len())
				e.Append(v)
			}
			assert.Equal(t, values.Get(t), collect(e))
		})
	})

	s.Describe("#Prepend", func(s *testcase.Spec) {
		s.Then("values come out in reverse order", func(t *testcase.T) {
			e := subject.Get(t)
			for _, v := range values.Get(t) {
				e.Prepend(v)
			}
			exp := slicekit.Clone(values.Get(t))
			for i, j := 0, len(exp)-1; i < j; i, j = i+1, j-1 {
				exp[i], exp[j] = exp[j], exp[i]
			}
			assert.Equal(t, exp, collect(e))
		})
	})

	s.Describe("#Lookup", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, bool) {
			return subject.Get(t).Lookup(index.Get(t))
		})

		s.When("engine is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int { return t.Random.IntBetween(0, 42) })

			s.Then("nothing is found", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		})

		s.When("engine contains values", func(s *testcase.Spec) {
			populated(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int { return t.Random.IntN(len(values.Get(t))) })

				s.Then("the value at the index is returned", func(t *testcase.T) {
					got, ok := act(t)
					assert.True(t, ok)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int { return -1 * t.Random.IntBetween(1, 42) })

				s.Then("it is rejected since indexes reach the engine resolved", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int { return len(values.Get(t)) + t.Random.IntBetween(0, 42) })

				s.Then("nothing is found", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
				})
			})
		})
	})

	s.Describe("#InsertBefore", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T { return c.makeElem(t) })
		)
		act := let.Act(func(t *testcase.T) bool {
			return subject.Get(t).InsertBefore(index.Get(t), value.Get(t))
		})

		s.When("engine is empty", func(s *testcase.Spec) {
			index.LetValue(s, 0)

			s.Then("there is no element to insert before", func(t *testcase.T) {
				assert.False(t, act(t))
				assert.Equal(t, 0, subject.Get(t).Len())
			})
		})

		s.When("engine contains values", func(s *testcase.Spec) {
			populated(s)
			index.Let(s, func(t *testcase.T) int { return t.Random.IntN(len(values.Get(t))) })

			s.Then("the new value takes the index and the rest shifts by one", func(t *testcase.T) {
				assert.True(t, act(t))

				exp := slicekit.Clone(values.Get(t))
				exp = append(exp[:index.Get(t)], append([]T{value.Get(t)}, exp[index.Get(t):]...)...)
				assert.Equal(t, exp, collect(subject.Get(t)))
				assert.Equal(t, len(exp), subject.Get(t).Len())
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int { return len(values.Get(t)) + t.Random.IntBetween(0, 42) })

				s.Then("it fails without mutation", func(t *testcase.T) {
					assert.False(t, act(t))
					assert.Equal(t, values.Get(t), collect(subject.Get(t)))
				})
			})
		})
	})

	s.Describe("#InsertAfter", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T { return c.makeElem(t) })
		)
		act := let.Act(func(t *testcase.T) bool {
			return subject.Get(t).InsertAfter(index.Get(t), value.Get(t))
		})

		s.When("engine contains values", func(s *testcase.Spec) {
			populated(s)
			index.Let(s, func(t *testcase.T) int { return t.Random.IntN(len(values.Get(t))) })

			s.Then("the new value lands right behind the index", func(t *testcase.T) {
				assert.True(t, act(t))

				at := index.Get(t) + 1
				exp := slicekit.Clone(values.Get(t))
				exp = append(exp[:at], append([]T{value.Get(t)}, exp[at:]...)...)
				assert.Equal(t, exp, collect(subject.Get(t)))
			})

			s.And("index points to the last element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int { return len(values.Get(t)) - 1 })

				s.Then("the new value becomes the last element", func(t *testcase.T) {
					assert.True(t, act(t))
					got, ok := subject.Get(t).Lookup(subject.Get(t).Len() - 1)
					assert.True(t, ok)
					assert.Equal(t, value.Get(t), got)
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int { return len(values.Get(t)) + t.Random.IntBetween(0, 42) })

				s.Then("it fails without mutation", func(t *testcase.T) {
					assert.False(t, act(t))
					assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
				})
			})
		})
	})

	s.Describe("#Swap", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T { return c.makeElem(t) })
		)
		act := let.Act2(func(t *testcase.T) (T, bool) {
			return subject.Get(t).Swap(index.Get(t), value.Get(t))
		})

		s.When("engine contains values", func(s *testcase.Spec) {
			populated(s)
			index.Let(s, func(t *testcase.T) int { return t.Random.IntN(len(values.Get(t))) })

			s.Then("the displaced value is returned and the length is unchanged", func(t *testcase.T) {
				old, ok := act(t)
				assert.True(t, ok)
				assert.Equal(t, values.Get(t)[index.Get(t)], old)
				assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())

				got, ok := subject.Get(t).Lookup(index.Get(t))
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int { return len(values.Get(t)) + t.Random.IntBetween(0, 42) })

				s.Then("nothing is swapped", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
					assert.Equal(t, values.Get(t), collect(subject.Get(t)))
				})
			})
		})
	})

	s.Describe("#Delete", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, bool) {
			return subject.Get(t).Delete(index.Get(t))
		})

		s.When("engine is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int { return t.Random.IntBetween(0, 42) })

			s.Then("it reports that it was not possible", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		})

		s.When("engine contains values", func(s *testcase.Spec) {
			populated(s)
			index.Let(s, func(t *testcase.T) int { return t.Random.IntN(len(values.Get(t))) })

			s.Then("the removed value is returned and the gap is closed", func(t *testcase.T) {
				exp := slicekit.Clone(values.Get(t))
				assert.True(t, slicekit.Delete(&exp, index.Get(t)))

				got, ok := act(t)
				assert.True(t, ok)
				assert.Equal(t, values.Get(t)[index.Get(t)], got)
				assert.Equal(t, len(exp), subject.Get(t).Len())
				assert.Equal(t, exp, collect(subject.Get(t)))
			})

			s.Then("every value can be deleted one after the other", func(t *testcase.T) {
				e := subject.Get(t)
				for e.Len() != 0 {
					_, ok := e.Delete(t.Random.IntN(e.Len()))
					assert.True(t, ok)
				}
				assert.Empty(t, collect(e))
			})

			s.Then("freed positions can be filled again", func(t *testcase.T) {
				e := subject.Get(t)
				_, ok := act(t)
				assert.True(t, ok)

				v := c.makeElem(t)
				e.Append(v)
				got, ok := e.Lookup(e.Len() - 1)
				assert.True(t, ok)
				assert.Equal(t, v, got)
				assert.Equal(t, len(values.Get(t)), len(collect(e)))
			})
		})
	})

	s.Describe("#Iter", func(s *testcase.Spec) {
		populated(s)

		s.Then("length always equals the number of reachable values", func(t *testcase.T) {
			var (
				e   = subject.Get(t)
				exp = 0
			)
			for i := range e.Iter() {
				assert.Equal(t, exp, i)
				exp++
			}
			assert.Equal(t, e.Len(), exp)
		})

		s.Then("iteration can be stopped early", func(t *testcase.T) {
			var n int
			for range subject.Get(t).Iter() {
				n++
				break
			}
			assert.Equal(t, 1, n)
		})
	})

	return s.AsSuite(fmt.Sprintf("Engine[%s]", reflectkit.TypeOf[T]().String()))
}

func collect[T any](e engine.Engine[T]) []T {
	var vs []T
	for _, v := range e.Iter() {
		vs = append(vs, v)
	}
	return vs
}
