// Package sequential is a generic container with one uniform add/remove/get/set surface.
//
// The collection type is picked at construction with a TYPE tag,
// and every operation is selected either by a tag followed by its operands
// or by one of the typed operation values such as Append or Index.
// Both forms run through the same code path.
//
// Only tag.List has a storage engine.
// The MAP, RING, QUEUE, STACK and ARRAY types are declared in the tag registry,
// and Create rejects them with ErrUnsupportedType.
//
// A Sequence is not safe for concurrent use.
package sequential

import (
	"io"
	"iter"

	"github.com/google/uuid"
	"go.llib.dev/frameless/pkg/slicekit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/sequential/pkg/debugkit"
	"go.llib.dev/sequential/pkg/tag"
	"go.llib.dev/sequential/port/engine"
)

type Sequence[T any] struct {
	id     uuid.UUID
	typ    tag.Tag
	engine engine.Engine[T]

	onAdd    AddFunc[T]
	onRemove RemoveFunc[T]
	debug    debugkit.Channel

	// generation changes on every structural mutation.
	generation uint64
	closed     bool
}

// Entry is a payload together with the absolute index it was found at.
type Entry[T any] struct {
	Data  T
	Index int
}

func Create[T any](t tag.Tag, opts ...Option[T]) (*Sequence[T], error) {
	if !tag.Belongs(t, tag.TypeCategory) {
		return nil, errorF(ErrCategory, "%s is not a sequence type", t)
	}
	var e engine.Engine[T]
	switch t {
	case tag.List:
		e = &engine.List[T]{}
	default:
		return nil, errorF(ErrUnsupportedType, "%s", t)
	}
	c := option.ToConfig(opts)
	seq := &Sequence[T]{
		id:       uuid.Must(uuid.NewV7()),
		typ:      t,
		engine:   e,
		onAdd:    c.OnAdd,
		onRemove: c.OnRemove,
	}
	if err := c.apply(&seq.debug); err != nil {
		return nil, err
	}
	seq.debug.Info("create %s %s", t, seq.id)
	return seq, nil
}

// Close removes every element from head to tail, handing each payload to the remove callback.
// After Close every operation fails with ErrClosed and bound iterators turn stale.
// Calling Close again is a no-op.
func (s *Sequence[T]) Close() error {
	if s.closed {
		return nil
	}
	s.debug.TraceBegin("destroy %s size=%d", s.id, s.engine.Len())
	for 0 < s.engine.Len() {
		v, _ := s.engine.Delete(0)
		s.cleanup(v)
	}
	s.closed = true
	s.mutated()
	s.debug.TraceEnd("destroy %s", s.id)
	return nil
}

func (s *Sequence[T]) Size() int {
	if s.closed {
		return 0
	}
	return s.engine.Len()
}

func (s *Sequence[T]) Type() tag.Tag { return s.typ }

// ID identifies the sequence in debug output.
func (s *Sequence[T]) ID() uuid.UUID { return s.id }

func (s *Sequence[T]) Slice() []T {
	var vs []T
	for _, v := range s.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Iter yields the elements with their index.
// Iteration stops when the sequence is structurally changed from within the loop.
func (s *Sequence[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s.closed {
			return
		}
		gen := s.generation
		for i, v := range s.engine.Iter() {
			if gen != s.generation {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

func (s *Sequence[T]) mutated() { s.generation++ }

func (s *Sequence[T]) resolve(i int) (int, error) {
	abs, ok := slicekit.ResolveIndex(s.engine.Len(), i)
	if !ok {
		return 0, errorF(ErrIndexOutOfRange, "index %d with size %d", i, s.engine.Len())
	}
	return abs, nil
}

func (s *Sequence[T]) cleanup(v T) {
	if s.onRemove != nil {
		s.onRemove(v)
	}
}

// release is the built-in remove callback that closes io.Closer payloads.
func (s *Sequence[T]) release(v T) {
	c, ok := any(v).(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		s.debug.Error("release %T: %v", v, oneLine(err))
	}
}

// fail reports err on the debug channel and returns it.
func (s *Sequence[T]) fail(op string, t tag.Tag, err error) error {
	s.debug.Error("%s %s: %v", op, t, oneLine(err))
	return err
}
