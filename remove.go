package sequential

import (
	"go.llib.dev/sequential/pkg/operand"
	"go.llib.dev/sequential/pkg/tag"
)

// Remove deletes one element and hands its payload to the remove callback.
//
//	tag.Index, index
//	tag.Key, key
//	tag.Pop
//	tag.Recv
func (s *Sequence[T]) Remove(t tag.Tag, operands ...any) error {
	args := operand.New(operands...)
	op, err := decodeAddress(args, t)
	if err != nil {
		return s.fail("remove", t, err)
	}
	rop, ok := op.(RemoveOp)
	if !ok {
		return s.fail("remove", t, errorF(ErrNotSupported, "%s does not remove", t))
	}
	if err := operand.Done(args); err != nil {
		return s.fail("remove", t, err)
	}
	return s.RemoveOp(rop)
}

func (s *Sequence[T]) RemoveOp(op RemoveOp) (rErr error) {
	if op == nil {
		return s.fail("remove", 0, errorF(ErrCategory, "nil operation"))
	}
	t := op.Tag()
	if s.closed {
		return s.fail("remove", t, ErrClosed)
	}
	if !s.engine.Supports(t) {
		return s.fail("remove", t, errorF(ErrNotSupported, "%s on %s", t, s.typ))
	}
	s.debug.TraceBegin("remove %s", t)
	defer func() {
		if rErr != nil {
			s.debug.Error("remove %s: %v", t, oneLine(rErr))
		}
		s.debug.TraceEnd("remove %s", t)
	}()

	switch op := op.(type) {
	case Index:
		i, err := s.resolve(op.At)
		if err != nil {
			return err
		}
		v, _ := s.engine.Delete(i)
		s.mutated()
		s.cleanup(v)
		return nil
	default:
		return errorF(ErrNotSupported, "%s on %s", t, s.typ)
	}
}

// Get looks up one element without changing the sequence.
// The returned Entry carries the resolved absolute index.
// On failure it returns the zero Entry and false.
func (s *Sequence[T]) Get(t tag.Tag, operands ...any) (Entry[T], bool) {
	args := operand.New(operands...)
	op, err := decodeAddress(args, t)
	if err == nil {
		err = operand.Done(args)
	}
	if err != nil {
		_ = s.fail("get", t, err)
		return Entry[T]{}, false
	}
	ent, err := s.GetOp(op)
	return ent, err == nil
}

func (s *Sequence[T]) GetOp(op GetOp) (Entry[T], error) {
	if op == nil {
		return Entry[T]{}, s.fail("get", 0, errorF(ErrCategory, "nil operation"))
	}
	t := op.Tag()
	if s.closed {
		return Entry[T]{}, s.fail("get", t, ErrClosed)
	}
	if !s.engine.Supports(t) {
		return Entry[T]{}, s.fail("get", t, errorF(ErrNotSupported, "%s on %s", t, s.typ))
	}
	switch op := op.(type) {
	case Index:
		i, err := s.resolve(op.At)
		if err != nil {
			return Entry[T]{}, s.fail("get", t, err)
		}
		v, _ := s.engine.Lookup(i)
		return Entry[T]{Data: v, Index: i}, nil
	default:
		return Entry[T]{}, s.fail("get", t, errorF(ErrNotSupported, "%s on %s", t, s.typ))
	}
}

// decodeAddress reads the element address shared by Remove and Get.
func decodeAddress(args *operand.Args, t tag.Tag) (GetOp, error) {
	if !tag.Belongs(t, tag.GetCategory) {
		return nil, errorF(ErrCategory, "%s does not address an element", t)
	}
	switch t {
	case tag.Index:
		at, err := operand.Int(args)
		if err != nil {
			return nil, err
		}
		return Index{At: at}, nil
	case tag.Key:
		key, err := operand.Next[any](args)
		if err != nil {
			return nil, err
		}
		return Key{Key: key}, nil
	case tag.Pop:
		return Pop{}, nil
	case tag.Recv:
		return Recv{}, nil
	case tag.Data:
		return Data{}, nil
	default:
		return nil, errorF(ErrCategory, "%s does not address an element", t)
	}
}
