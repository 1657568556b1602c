package sequential

import (
	"io"

	"go.llib.dev/sequential/pkg/debugkit"
	"go.llib.dev/sequential/pkg/operand"
	"go.llib.dev/sequential/pkg/tag"
)

// Set configures callbacks and the debug channel. It never touches the stored elements.
//
//	tag.CBAdd, AddFunc[T] | func(*operand.Args) (T, error)
//	tag.CBRemove, RemoveFunc[T] | func(T)
//	tag.CBRemoveFree
//	tag.CBDebug, debugkit.SinkFunc | func(tag.Tag, string, any), [data]
//	tag.DebugStdout
//	tag.DebugStderr
//	tag.DebugFwrite, io.Writer
//	tag.DebugPrefix, string
//	tag.DebugPostfix, string
//	tag.DebugLevel, tag.Error | tag.Info | tag.Trace
func (s *Sequence[T]) Set(t tag.Tag, operands ...any) error {
	args := operand.New(operands...)
	op, err := decodeSet[T](args, t)
	if err == nil {
		err = operand.Done(args)
	}
	if err != nil {
		return s.fail("set", t, err)
	}
	return s.SetOp(op)
}

func decodeSet[T any](args *operand.Args, t tag.Tag) (SetOp, error) {
	if !tag.Belongs(t, tag.SetCategory) {
		return nil, errorF(ErrCategory, "%s is not a set operation", t)
	}
	switch t {
	case tag.CBAdd:
		v, err := operand.Next[any](args)
		if err != nil {
			return nil, err
		}
		switch fn := v.(type) {
		case AddFunc[T]:
			return OnAdd[T]{Func: fn}, nil
		case func(*operand.Args) (T, error):
			return OnAdd[T]{Func: fn}, nil
		default:
			return nil, errorF(ErrCallback, "add callback: %T", v)
		}
	case tag.CBRemove:
		v, err := operand.Next[any](args)
		if err != nil {
			return nil, err
		}
		switch fn := v.(type) {
		case RemoveFunc[T]:
			return OnRemove[T]{Func: fn}, nil
		case func(T):
			return OnRemove[T]{Func: fn}, nil
		default:
			return nil, errorF(ErrCallback, "remove callback: %T", v)
		}
	case tag.CBRemoveFree:
		return OnRemoveRelease{}, nil
	case tag.CBDebug:
		v, err := operand.Next[any](args)
		if err != nil {
			return nil, err
		}
		var op DebugSink
		switch fn := v.(type) {
		case debugkit.SinkFunc:
			op.Sink = fn
		case func(tag.Tag, string, any):
			op.Sink = fn
		default:
			return nil, errorF(ErrCallback, "debug callback: %T", v)
		}
		if 0 < args.Remaining() {
			op.Data, _ = operand.Next[any](args)
		}
		return op, nil
	case tag.DebugStdout:
		return DebugStdout{}, nil
	case tag.DebugStderr:
		return DebugStderr{}, nil
	case tag.DebugFwrite:
		w, err := operand.Next[io.Writer](args)
		if err != nil {
			return nil, err
		}
		return DebugWriter{W: w}, nil
	case tag.DebugPrefix:
		prefix, err := operand.Next[string](args)
		if err != nil {
			return nil, err
		}
		return DebugPrefix{Prefix: prefix}, nil
	case tag.DebugPostfix:
		postfix, err := operand.Next[string](args)
		if err != nil {
			return nil, err
		}
		return DebugPostfix{Postfix: postfix}, nil
	case tag.DebugLevel:
		level, err := operand.Tag(args)
		if err != nil {
			return nil, err
		}
		return DebugLevel{Level: level}, nil
	default:
		return nil, errorF(ErrCategory, "%s is not a set operation", t)
	}
}

func (s *Sequence[T]) SetOp(op SetOp) error {
	if op == nil {
		return s.fail("set", 0, errorF(ErrCategory, "nil operation"))
	}
	t := op.Tag()
	if s.closed {
		return s.fail("set", t, ErrClosed)
	}
	switch op := op.(type) {
	case OnAdd[T]:
		s.onAdd = op.Func
	case OnRemove[T]:
		s.onRemove = op.Func
	case OnRemoveRelease:
		s.onRemove = s.release
	case DebugSink:
		s.debug.SetSink(op.Sink, op.Data)
	case DebugStdout:
		s.debug.SetSink(debugkit.Stdout, nil)
	case DebugStderr:
		s.debug.SetSink(debugkit.Stderr, nil)
	case DebugWriter:
		if op.W == nil {
			return s.fail("set", t, errorF(ErrCallback, "nil writer"))
		}
		s.debug.SetSink(debugkit.Writer, op.W)
	case DebugPrefix:
		s.debug.Prefix = op.Prefix
	case DebugPostfix:
		s.debug.Postfix = op.Postfix
	case DebugLevel:
		if err := s.debug.SetLevel(op.Level); err != nil {
			return s.fail("set", t, err)
		}
	default:
		return s.fail("set", t, errorF(ErrCallback, "%T does not match %T", op, s))
	}
	s.debug.Info("set %s", t)
	return nil
}
