package sequential

import (
	"io"

	"go.llib.dev/sequential/pkg/debugkit"
	"go.llib.dev/sequential/pkg/tag"
)

// AddOp is one of Append, Prepend, Before, After, Replace, KeyVal, Send or Push.
type AddOp interface {
	Tag() tag.Tag
	addOp()
}

// RemoveOp is one of Index, Key, Pop or Recv.
type RemoveOp interface {
	Tag() tag.Tag
	removeOp()
}

// GetOp is one of Index, Key, Pop, Recv or Data.
type GetOp interface {
	Tag() tag.Tag
	getOp()
}

// SetOp configures the callbacks and the debug channel of a sequence.
type SetOp interface {
	Tag() tag.Tag
	setOp()
}

// Operands are the raw payload operands of an add operation.
// Without an add transform, exactly one operand is expected and it is stored as is.
type Operands = []any

type Append struct{ Operands Operands }

type Prepend struct{ Operands Operands }

// Before inserts in front of the element at index At.
type Before struct {
	At       int
	Operands Operands
}

// After inserts behind the element at index At.
type After struct {
	At       int
	Operands Operands
}

// Replace installs a new payload at index At.
// The displaced payload goes through the remove callback before the new one is installed.
type Replace struct {
	At       int
	Operands Operands
}

type KeyVal struct {
	Key      any
	Operands Operands
}

type Send struct{ Operands Operands }

type Push struct{ Operands Operands }

func (Append) Tag() tag.Tag  { return tag.Append }
func (Prepend) Tag() tag.Tag { return tag.Prepend }
func (Before) Tag() tag.Tag  { return tag.Before }
func (After) Tag() tag.Tag   { return tag.After }
func (Replace) Tag() tag.Tag { return tag.Replace }
func (KeyVal) Tag() tag.Tag  { return tag.KeyVal }
func (Send) Tag() tag.Tag    { return tag.Send }
func (Push) Tag() tag.Tag    { return tag.Push }

func (Append) addOp()  {}
func (Prepend) addOp() {}
func (Before) addOp()  {}
func (After) addOp()   {}
func (Replace) addOp() {}
func (KeyVal) addOp()  {}
func (Send) addOp()    {}
func (Push) addOp()    {}

// Index addresses an element by position. Negative values count from the end.
type Index struct{ At int }

type Key struct{ Key any }

type Pop struct{}

type Recv struct{}

// Data addresses the payload under an iterator's cursor.
type Data struct{}

func (Index) Tag() tag.Tag { return tag.Index }
func (Key) Tag() tag.Tag   { return tag.Key }
func (Pop) Tag() tag.Tag   { return tag.Pop }
func (Recv) Tag() tag.Tag  { return tag.Recv }
func (Data) Tag() tag.Tag  { return tag.Data }

func (Index) removeOp() {}
func (Key) removeOp()   {}
func (Pop) removeOp()   {}
func (Recv) removeOp()  {}

func (Index) getOp() {}
func (Key) getOp()   {}
func (Pop) getOp()   {}
func (Recv) getOp()  {}
func (Data) getOp()  {}

type OnAdd[T any] struct{ Func AddFunc[T] }

type OnRemove[T any] struct{ Func RemoveFunc[T] }

// OnRemoveRelease closes every removed payload that implements io.Closer.
type OnRemoveRelease struct{}

type DebugSink struct {
	Sink debugkit.SinkFunc
	Data any
}

type DebugStdout struct{}

type DebugStderr struct{}

type DebugWriter struct{ W io.Writer }

type DebugPrefix struct{ Prefix string }

type DebugPostfix struct{ Postfix string }

type DebugLevel struct{ Level tag.Tag }

func (OnAdd[T]) Tag() tag.Tag        { return tag.CBAdd }
func (OnRemove[T]) Tag() tag.Tag     { return tag.CBRemove }
func (OnRemoveRelease) Tag() tag.Tag { return tag.CBRemoveFree }
func (DebugSink) Tag() tag.Tag       { return tag.CBDebug }
func (DebugStdout) Tag() tag.Tag     { return tag.DebugStdout }
func (DebugStderr) Tag() tag.Tag     { return tag.DebugStderr }
func (DebugWriter) Tag() tag.Tag     { return tag.DebugFwrite }
func (DebugPrefix) Tag() tag.Tag     { return tag.DebugPrefix }
func (DebugPostfix) Tag() tag.Tag    { return tag.DebugPostfix }
func (DebugLevel) Tag() tag.Tag      { return tag.DebugLevel }

func (OnAdd[T]) setOp()        {}
func (OnRemove[T]) setOp()     {}
func (OnRemoveRelease) setOp() {}
func (DebugSink) setOp()       {}
func (DebugStdout) setOp()     {}
func (DebugStderr) setOp()     {}
func (DebugWriter) setOp()     {}
func (DebugPrefix) setOp()     {}
func (DebugPostfix) setOp()    {}
func (DebugLevel) setOp()      {}
