package operand_test

import (
	"math"
	"testing"

	"go.llib.dev/sequential/pkg/operand"
	"go.llib.dev/sequential/pkg/tag"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestArgs(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var[[]any](s, nil)
	args := let.Var(s, func(t *testcase.T) *operand.Args {
		return operand.New(values.Get(t)...)
	})

	s.Describe("#Next", func(s *testcase.Spec) {
		s.When("operands are read in the order they were given", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []any {
				return []any{tag.Before, 42, "foo"}
			})

			s.Then("each one is returned with its own type", func(t *testcase.T) {
				tg, err := operand.Tag(args.Get(t))
				assert.NoError(t, err)
				assert.Equal(t, tag.Before, tg)

				n, err := operand.Int(args.Get(t))
				assert.NoError(t, err)
				assert.Equal(t, 42, n)

				str, err := operand.Next[string](args.Get(t))
				assert.NoError(t, err)
				assert.Equal(t, "foo", str)

				assert.NoError(t, operand.Done(args.Get(t)))
			})
		})

		s.When("the operand has a different type", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []any {
				return []any{t.Random.String()}
			})

			s.Then("a type error is returned", func(t *testcase.T) {
				_, err := operand.Next[int](args.Get(t))
				assert.ErrorIs(t, operand.ErrType, err)
			})

			s.Then("the cursor still moves on", func(t *testcase.T) {
				_, _ = operand.Next[int](args.Get(t))
				assert.Equal(t, 0, args.Get(t).Remaining())
			})
		})

		s.When("the operand is nil", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []any {
				return []any{nil}
			})

			s.Then("it does not satisfy a concrete type", func(t *testcase.T) {
				_, err := operand.Next[string](args.Get(t))
				assert.ErrorIs(t, operand.ErrType, err)
			})
		})

		s.When("the list is exhausted", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []any {
				return nil
			})

			s.Then("a missing operand error is returned", func(t *testcase.T) {
				_, err := operand.Next[string](args.Get(t))
				assert.ErrorIs(t, operand.ErrMissing, err)
			})
		})
	})

	s.Describe("#Int", func(s *testcase.Spec) {
		s.Test("every integer kind is accepted", func(t *testcase.T) {
			a := operand.New(int8(-1), int16(2), int32(-3), int64(4), uint(5), uint8(6), uint16(7), uint32(8), uint64(9))
			var got []int
			for a.Remaining() > 0 {
				n, err := operand.Int(a)
				assert.NoError(t, err)
				got = append(got, n)
			}
			assert.Equal(t, []int{-1, 2, -3, 4, 5, 6, 7, 8, 9}, got)
		})

		s.Test("values beyond the int range are rejected", func(t *testcase.T) {
			v := random.Pick[any](t.Random, uint64(math.MaxUint64), uint(math.MaxUint), uint64(math.MaxInt)+1)
			a := operand.New(v)
			_, err := operand.Int(a)
			assert.ErrorIs(t, operand.ErrType, err)
			assert.Equal(t, 0, a.Remaining())
		})

		s.Test("error messages stay on a single line", func(t *testcase.T) {
			_, err := operand.Int(operand.New("1"))
			assert.Error(t, err)
			assert.NotContains(t, err.Error(), "\n")
		})

		s.Test("floats are rejected", func(t *testcase.T) {
			_, err := operand.Int(operand.New(1.5))
			assert.ErrorIs(t, operand.ErrType, err)
		})
	})

	s.Describe("#Rest", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []any {
			return []any{1, 2, 3}
		})

		s.Then("it consumes what is left", func(t *testcase.T) {
			_, err := operand.Int(args.Get(t))
			assert.NoError(t, err)
			assert.Equal(t, []any{2, 3}, args.Get(t).Rest())
			assert.Equal(t, 0, args.Get(t).Remaining())
			assert.Equal(t, 3, args.Get(t).Len())
			assert.Nil(t, args.Get(t).Rest())
		})
	})

	s.Describe("#Peek", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []any {
			return []any{tag.Index, 1}
		})

		s.Then("it does not move the cursor", func(t *testcase.T) {
			v, ok := args.Get(t).Peek()
			assert.True(t, ok)
			assert.Equal(t, any(tag.Index), v)
			assert.Equal(t, 2, args.Get(t).Remaining())
		})
	})

	s.Describe("#Done", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []any {
			return []any{t.Random.Int()}
		})

		s.Then("unread operands are reported", func(t *testcase.T) {
			assert.ErrorIs(t, operand.ErrTrailing, operand.Done(args.Get(t)))
		})
	})
}
