package sequential

import (
	"go.llib.dev/sequential/pkg/operand"
	"go.llib.dev/sequential/pkg/tag"
)

// Add inserts or replaces an element. The operand layout depends on the tag:
//
//	tag.Append, payload...
//	tag.Prepend, payload...
//	tag.Before, [tag.Index], index, payload...
//	tag.After, [tag.Index], index, payload...
//	tag.Replace, [tag.Index], index, payload...
//	tag.KeyVal, key, payload...
//	tag.Send, payload...
//	tag.Push, payload...
//
// On failure the sequence is left unchanged.
func (s *Sequence[T]) Add(t tag.Tag, operands ...any) error {
	op, err := decodeAdd(operand.New(operands...), t)
	if err != nil {
		return s.fail("add", t, err)
	}
	return s.AddOp(op)
}

func decodeAdd(args *operand.Args, t tag.Tag) (AddOp, error) {
	if !tag.Belongs(t, tag.AddCategory) {
		return nil, errorF(ErrCategory, "%s is not an add operation", t)
	}
	switch t {
	case tag.Append:
		return Append{Operands: args.Rest()}, nil
	case tag.Prepend:
		return Prepend{Operands: args.Rest()}, nil
	case tag.Before, tag.After, tag.Replace:
		at, err := position(args)
		if err != nil {
			return nil, err
		}
		switch t {
		case tag.Before:
			return Before{At: at, Operands: args.Rest()}, nil
		case tag.After:
			return After{At: at, Operands: args.Rest()}, nil
		default:
			return Replace{At: at, Operands: args.Rest()}, nil
		}
	case tag.KeyVal:
		key, err := operand.Next[any](args)
		if err != nil {
			return nil, err
		}
		return KeyVal{Key: key, Operands: args.Rest()}, nil
	case tag.Send:
		return Send{Operands: args.Rest()}, nil
	case tag.Push:
		return Push{Operands: args.Rest()}, nil
	default:
		return nil, errorF(ErrCategory, "%s is not an add operation", t)
	}
}

// position reads an index operand, optionally preceded by a tag.Index marker.
func position(args *operand.Args) (int, error) {
	if v, ok := args.Peek(); ok {
		if marker, isTag := v.(tag.Tag); isTag {
			_, _ = operand.Tag(args)
			switch marker {
			case tag.Index:
			case tag.Key:
				return 0, errorF(ErrNotSupported, "%s addressing", marker)
			default:
				return 0, errorF(ErrCategory, "%s does not address an element", marker)
			}
		}
	}
	return operand.Int(args)
}

func (s *Sequence[T]) AddOp(op AddOp) (rErr error) {
	if op == nil {
		return s.fail("add", 0, errorF(ErrCategory, "nil operation"))
	}
	t := op.Tag()
	if s.closed {
		return s.fail("add", t, ErrClosed)
	}
	if !s.engine.Supports(t) {
		return s.fail("add", t, errorF(ErrNotSupported, "%s on %s", t, s.typ))
	}
	s.debug.TraceBegin("add %s", t)
	defer func() {
		if rErr != nil {
			s.debug.Error("add %s: %v", t, oneLine(rErr))
		}
		s.debug.TraceEnd("add %s", t)
	}()

	switch op := op.(type) {
	case Append:
		v, err := s.payload(op.Operands)
		if err != nil {
			return err
		}
		s.engine.Append(v)
		s.mutated()
	case Prepend:
		v, err := s.payload(op.Operands)
		if err != nil {
			return err
		}
		s.engine.Prepend(v)
		s.mutated()
	case Before:
		i, err := s.resolve(op.At)
		if err != nil {
			return err
		}
		v, err := s.payload(op.Operands)
		if err != nil {
			return err
		}
		s.engine.InsertBefore(i, v)
		s.mutated()
	case After:
		i, err := s.resolve(op.At)
		if err != nil {
			return err
		}
		v, err := s.payload(op.Operands)
		if err != nil {
			return err
		}
		s.engine.InsertAfter(i, v)
		s.mutated()
	case Replace:
		return s.replace(op.At, op.Operands)
	default:
		return errorF(ErrNotSupported, "%s on %s", t, s.typ)
	}
	return nil
}

// replace resolves the index and computes the new payload before anything is touched,
// then the displaced payload is cleaned up strictly before the new one is installed.
func (s *Sequence[T]) replace(at int, operands []any) error {
	i, err := s.resolve(at)
	if err != nil {
		return err
	}
	v, err := s.payload(operands)
	if err != nil {
		return err
	}
	old, _ := s.engine.Lookup(i)
	s.cleanup(old)
	s.engine.Swap(i, v)
	return nil
}

// payload computes the value to store from the raw add operands.
func (s *Sequence[T]) payload(operands []any) (T, error) {
	args := operand.New(operands...)
	if s.onAdd != nil {
		return s.onAdd(args)
	}
	var zero T
	if v, ok := args.Peek(); ok && v == nil {
		return zero, ErrNilPayload
	}
	v, err := operand.Next[T](args)
	if err != nil {
		return zero, err
	}
	if err := operand.Done(args); err != nil {
		return zero, err
	}
	return v, nil
}
