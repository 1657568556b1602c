package sequential

import (
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/slicekit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/sequential/pkg/operand"
	"go.llib.dev/sequential/pkg/tag"
)

// Iterator is a pull style cursor over a Sequence.
//
// It starts in tag.Ready. The first Next positions the cursor on the start index,
// every later Next moves it by the step. While the cursor stays inside the range
// and inside the sequence the state is tag.Active, otherwise it turns tag.Stop for good.
//
// The iterator remembers the sequence generation it was created at.
// Once an element is added or removed, or the sequence is closed,
// every call reports ErrStale.
type Iterator[T any] struct {
	seq        *Sequence[T]
	generation uint64

	state  tag.Tag
	cursor int
	start  int
	step   int
	lo, hi int

	err    error
	closed bool
}

var _ iterkit.PullIter[any] = (*Iterator[any])(nil)

type IteratorOption option.Option[IteratorConfig]

// IteratorConfig holds the unresolved iterator setup. Nil fields fall back to the defaults:
// step 1, the whole sequence as range, and the range end matching the step direction as start.
type IteratorConfig struct {
	Start *int
	Step  *int
	Range *IndexRange
}

// IndexRange is an inclusive pair of indexes. Negative values count from the end.
type IndexRange struct{ Lo, Hi int }

var _ IteratorOption = IteratorConfig{}

func (c IteratorConfig) Configure(o *IteratorConfig) {
	if c.Start != nil {
		o.Start = c.Start
	}
	if c.Step != nil {
		o.Step = c.Step
	}
	if c.Range != nil {
		o.Range = c.Range
	}
}

func Start(i int) IteratorOption {
	return option.Func[IteratorConfig](func(c *IteratorConfig) { c.Start = &i })
}

// Step sets the cursor increment. A negative step walks backwards.
func Step(n int) IteratorOption {
	return option.Func[IteratorConfig](func(c *IteratorConfig) { c.Step = &n })
}

func Range(lo, hi int) IteratorOption {
	return option.Func[IteratorConfig](func(c *IteratorConfig) { c.Range = &IndexRange{Lo: lo, Hi: hi} })
}

// IteratorOptions decodes the tag form of the iterator setup:
//
//	tag.Start, index
//	tag.Inc, step
//	tag.Range, lo, hi
func IteratorOptions(operands ...any) ([]IteratorOption, error) {
	var (
		args = operand.New(operands...)
		opts []IteratorOption
	)
	for 0 < args.Remaining() {
		t, err := operand.Tag(args)
		if err != nil {
			return nil, err
		}
		switch t {
		case tag.Start:
			i, err := operand.Int(args)
			if err != nil {
				return nil, err
			}
			opts = append(opts, Start(i))
		case tag.Inc:
			n, err := operand.Int(args)
			if err != nil {
				return nil, err
			}
			opts = append(opts, Step(n))
		case tag.Range:
			lo, err := operand.Int(args)
			if err != nil {
				return nil, err
			}
			hi, err := operand.Int(args)
			if err != nil {
				return nil, err
			}
			opts = append(opts, Range(lo, hi))
		default:
			return nil, errorF(ErrCategory, "%s is not an iterator option", t)
		}
	}
	return opts, nil
}

// Iterator creates a cursor bound to the sequence.
// Start and range are resolved against the size at this moment.
func (s *Sequence[T]) Iterator(opts ...IteratorOption) (*Iterator[T], error) {
	if s.closed {
		return nil, s.fail("iterator", tag.Ready, ErrClosed)
	}
	var (
		c = option.ToConfig(opts)
		n = s.engine.Len()
		i = &Iterator[T]{
			seq:        s,
			generation: s.generation,
			state:      tag.Ready,
			step:       1,
			lo:         0,
			hi:         n - 1,
		}
	)
	if c.Step != nil {
		if *c.Step == 0 {
			return nil, s.fail("iterator", tag.Inc, ErrStep)
		}
		i.step = *c.Step
	}
	if c.Range != nil {
		lo, okLo := slicekit.ResolveIndex(n, c.Range.Lo)
		hi, okHi := slicekit.ResolveIndex(n, c.Range.Hi)
		if !okLo || !okHi {
			return nil, s.fail("iterator", tag.Range, errorF(ErrIndexOutOfRange, "range [%d, %d] with size %d", c.Range.Lo, c.Range.Hi, n))
		}
		if hi < lo {
			return nil, s.fail("iterator", tag.Range, errorF(ErrRange, "[%d, %d]", lo, hi))
		}
		i.lo, i.hi = lo, hi
	}
	i.start = i.lo
	if i.step < 0 {
		i.start = i.hi
	}
	if c.Start != nil {
		start, ok := slicekit.ResolveIndex(n, *c.Start)
		if !ok {
			return nil, s.fail("iterator", tag.Start, errorF(ErrIndexOutOfRange, "start %d with size %d", *c.Start, n))
		}
		i.start = start
	}
	s.debug.Info("iterator start=%d step=%d range=[%d, %d]", i.start, i.step, i.lo, i.hi)
	return i, nil
}

// Next advances the cursor and reports whether it points at an element.
func (i *Iterator[T]) Next() bool {
	if i.closed || i.state == tag.Stop {
		return false
	}
	if err := i.check(); err != nil {
		i.err = err
		i.state = tag.Stop
		return false
	}
	switch i.state {
	case tag.Ready:
		i.cursor = i.start
	case tag.Active:
		i.cursor += i.step
	}
	if i.lo <= i.cursor && i.cursor <= i.hi && 0 <= i.cursor && i.cursor < i.seq.Size() {
		i.state = tag.Active
		return true
	}
	i.state = tag.Stop
	return false
}

// Get returns the element under the cursor. Both tag.Data and tag.Index yield the full Entry.
func (i *Iterator[T]) Get(t tag.Tag) (Entry[T], bool) {
	if t != tag.Data && t != tag.Index {
		if i.seq != nil {
			_ = i.seq.fail("iterator get", t, errorF(ErrCategory, "%s is not an iterator getter", t))
		}
		return Entry[T]{}, false
	}
	if err := i.active(); err != nil {
		return Entry[T]{}, false
	}
	ent, err := i.seq.GetOp(Index{At: i.cursor})
	return ent, err == nil
}

func (i *Iterator[T]) Value() T {
	ent, _ := i.Get(tag.Data)
	return ent.Data
}

// Index is the absolute position of the cursor, or -1 when the iterator is not tag.Active.
func (i *Iterator[T]) Index() int {
	if i.state != tag.Active {
		return -1
	}
	return i.cursor
}

// Set replaces the payload under the cursor.
//
//	tag.Replace, payload...
//	tag.Data, payload...
func (i *Iterator[T]) Set(t tag.Tag, operands ...any) error {
	if t != tag.Replace && t != tag.Data {
		err := errorF(ErrCategory, "%s is not an iterator setter", t)
		if i.seq != nil {
			return i.seq.fail("iterator set", t, err)
		}
		return err
	}
	if err := i.active(); err != nil {
		return err
	}
	return i.seq.AddOp(Replace{At: i.cursor, Operands: operands})
}

func (i *Iterator[T]) State() tag.Tag { return i.state }

func (i *Iterator[T]) Err() error { return i.err }

// Close releases the iterator. The sequence is left untouched.
func (i *Iterator[T]) Close() error {
	i.closed = true
	i.state = tag.Stop
	i.seq = nil
	return nil
}

func (i *Iterator[T]) check() error {
	if i.seq == nil || i.seq.closed || i.seq.generation != i.generation {
		return ErrStale
	}
	return nil
}

func (i *Iterator[T]) active() error {
	if i.closed {
		return ErrStale
	}
	if err := i.check(); err != nil {
		i.err = err
		i.state = tag.Stop
		return err
	}
	if i.state != tag.Active {
		return ErrNotActive
	}
	return nil
}
