// Package tag holds the namespaced operation codes that select behaviour on a sequential container.
//
// A Tag packs its Category into the high 16 bits and an ordinal into the low 16 bits,
// so membership can be checked with a mask and an upper bound.
package tag

import "fmt"

type Category uint32

const (
	TypeCategory  Category = 0x11110000
	AddCategory   Category = 0x22220000
	GetCategory   Category = 0x33330000
	SetCategory   Category = 0x44440000
	IterCategory  Category = 0x55550000
	LevelCategory Category = 0x66660000
)

type Tag uint32

// TYPE
const (
	List  = Tag(TypeCategory) | 0x0001
	Map   = Tag(TypeCategory) | 0x0002
	Ring  = Tag(TypeCategory) | 0x0003
	Queue = Tag(TypeCategory) | 0x0004
	Stack = Tag(TypeCategory) | 0x0005
	Array = Tag(TypeCategory) | 0x0006
)

// ADD
const (
	Append  = Tag(AddCategory) | 0x0001
	Prepend = Tag(AddCategory) | 0x0002
	Before  = Tag(AddCategory) | 0x0003
	After   = Tag(AddCategory) | 0x0004
	Replace = Tag(AddCategory) | 0x0005
	KeyVal  = Tag(AddCategory) | 0x0006
	Send    = Tag(AddCategory) | 0x0007
	Push    = Tag(AddCategory) | 0x0008
)

// GET
const (
	Index = Tag(GetCategory) | 0x0001
	Key   = Tag(GetCategory) | 0x0002
	Recv  = Tag(GetCategory) | 0x0003
	Pop   = Tag(GetCategory) | 0x0004
	Data  = Tag(GetCategory) | 0x0005
)

// SET
const (
	CBAdd        = Tag(SetCategory) | 0x0001
	CBRemove     = Tag(SetCategory) | 0x0002
	CBRemoveFree = Tag(SetCategory) | 0x0003
	CBDebug      = Tag(SetCategory) | 0x0004
	DebugStdout  = Tag(SetCategory) | 0x0005
	DebugStderr  = Tag(SetCategory) | 0x0006
	DebugFwrite  = Tag(SetCategory) | 0x0007
	DebugPrefix  = Tag(SetCategory) | 0x0008
	DebugPostfix = Tag(SetCategory) | 0x0009
	DebugLevel   = Tag(SetCategory) | 0x000A
)

// ITER
const (
	Ready  = Tag(IterCategory) | 0x0001
	Active = Tag(IterCategory) | 0x0002
	Stop   = Tag(IterCategory) | 0x0003
	Range  = Tag(IterCategory) | 0x0004
	Inc    = Tag(IterCategory) | 0x0005
	Start  = Tag(IterCategory) | 0x0006
)

// LEVEL
//
// The ordinal doubles as verbosity: a message passes a threshold when its ordinal is not greater
// than the threshold's ordinal, which makes Trace the most permissive threshold.
const (
	Error = Tag(LevelCategory) | 0x0001
	Info  = Tag(LevelCategory) | 0x0002
	Trace = Tag(LevelCategory) | 0x0003
)

var categoryMax = map[Category]Tag{
	TypeCategory:  Array,
	AddCategory:   Push,
	GetCategory:   Data,
	SetCategory:   DebugLevel,
	IterCategory:  Start,
	LevelCategory: Trace,
}

// Belongs reports whether the tag is a member of the given category.
func Belongs(t Tag, c Category) bool {
	max, ok := categoryMax[c]
	if !ok {
		return false
	}
	return t <= max && Category(t)&c == c
}

// Category returns the category the tag is registered under.
func (t Tag) Category() (Category, bool) {
	c := Category(t & 0xFFFF0000)
	if !Belongs(t, c) || t.Ordinal() == 0 {
		return 0, false
	}
	return c, true
}

// Ordinal is the position of the tag inside its category.
func (t Tag) Ordinal() uint16 { return uint16(t & 0x0000FFFF) }

func (t Tag) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%#08x)", uint32(t))
}

func (c Category) String() string {
	switch c {
	case TypeCategory:
		return "TYPE"
	case AddCategory:
		return "ADD"
	case GetCategory:
		return "GET"
	case SetCategory:
		return "SET"
	case IterCategory:
		return "ITER"
	case LevelCategory:
		return "LEVEL"
	default:
		return fmt.Sprintf("UNKNOWN(%#08x)", uint32(c))
	}
}

var names = map[Tag]string{
	List:  "LIST",
	Map:   "MAP",
	Ring:  "RING",
	Queue: "QUEUE",
	Stack: "STACK",
	Array: "ARRAY",

	Append:  "APPEND",
	Prepend: "PREPEND",
	Before:  "BEFORE",
	After:   "AFTER",
	Replace: "REPLACE",
	KeyVal:  "KEYVAL",
	Send:    "SEND",
	Push:    "PUSH",

	Index: "INDEX",
	Key:   "KEY",
	Recv:  "RECV",
	Pop:   "POP",
	Data:  "DATA",

	CBAdd:        "CB_ADD",
	CBRemove:     "CB_REMOVE",
	CBRemoveFree: "CB_REMOVE_FREE",
	CBDebug:      "CB_DEBUG",
	DebugStdout:  "DEBUG_STDOUT",
	DebugStderr:  "DEBUG_STDERR",
	DebugFwrite:  "DEBUG_FWRITE",
	DebugPrefix:  "DEBUG_PREFIX",
	DebugPostfix: "DEBUG_POSTFIX",
	DebugLevel:   "DEBUG_LEVEL",

	Ready:  "READY",
	Active: "ACTIVE",
	Stop:   "STOP",
	Range:  "RANGE",
	Inc:    "INC",
	Start:  "START",

	Error: "ERROR",
	Info:  "INFO",
	Trace: "TRACE",
}
