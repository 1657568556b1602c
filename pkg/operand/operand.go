// Package operand carries a variable, heterogeneously typed operand list into an operation call.
//
// The producer lays operands out in the order the operation's tag prescribes,
// and the consumer reads them back in the same order.
// Every read is type checked, so a shape mismatch surfaces as an error instead of a garbage value.
package operand

import (
	"math"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/sequential/pkg/tag"
)

const (
	ErrMissing  errorkit.Error = "missing operand"
	ErrType     errorkit.Error = "operand type mismatch"
	ErrTrailing errorkit.Error = "unexpected trailing operands"
)

// Args is an ordered operand list with a read cursor.
type Args struct {
	vs  []any
	pos int
}

func New(vs ...any) *Args {
	return &Args{vs: vs}
}

// Len is the total number of operands, consumed or not.
func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return len(a.vs)
}

func (a *Args) Remaining() int {
	if a == nil {
		return 0
	}
	return len(a.vs) - a.pos
}

// Peek returns the next operand without consuming it.
func (a *Args) Peek() (any, bool) {
	if a.Remaining() == 0 {
		return nil, false
	}
	return a.vs[a.pos], true
}

// Rest consumes and returns every operand left on the list.
func (a *Args) Rest() []any {
	if a.Remaining() == 0 {
		return nil
	}
	rest := append([]any{}, a.vs[a.pos:]...)
	a.pos = len(a.vs)
	return rest
}

func (a *Args) next() (any, int, error) {
	if a.Remaining() == 0 {
		return nil, a.Len(), errorF(ErrMissing, "operand #%d", a.Len())
	}
	v, at := a.vs[a.pos], a.pos
	a.pos++
	return v, at, nil
}

// Next consumes the next operand as a T.
// The cursor moves forward even when the type does not match.
func Next[T any](a *Args) (T, error) {
	v, at, err := a.next()
	if err != nil {
		var zero T
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		var zero T
		return zero, errorF(ErrType, "operand #%d: expected %s but got %T", at, reflectkit.TypeOf[T]().String(), v)
	}
	return out, nil
}

// Int consumes the next operand as an int, accepting any Go integer type.
// A value that does not fit into an int is a type mismatch.
func Int(a *Args) (int, error) {
	v, at, err := a.next()
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return fromInt64(at, int64(n))
	case int64:
		return fromInt64(at, n)
	case uint:
		return fromUint64(at, uint64(n))
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return fromUint64(at, uint64(n))
	case uint64:
		return fromUint64(at, n)
	default:
		return 0, errorF(ErrType, "operand #%d: expected an integer but got %T", at, v)
	}
}

func fromInt64(at int, n int64) (int, error) {
	if n < math.MinInt || math.MaxInt < n {
		return 0, errorF(ErrType, "operand #%d: %d overflows int", at, n)
	}
	return int(n), nil
}

func fromUint64(at int, n uint64) (int, error) {
	if math.MaxInt < n {
		return 0, errorF(ErrType, "operand #%d: %d overflows int", at, n)
	}
	return int(n), nil
}

func Tag(a *Args) (tag.Tag, error) {
	return Next[tag.Tag](a)
}

// Done verifies that every operand has been consumed.
func Done(a *Args) error {
	if n := a.Remaining(); 0 < n {
		return errorF(ErrTrailing, "%d operand(s) left unread", n)
	}
	return nil
}

// errorF details err while keeping its message on a single line.
func errorF(err errorkit.Error, format string, a ...any) error {
	return errorkit.WithoutTrace(err.F(format, a...))
}
