package object

import (
	"fmt"
	"hash/fnv"
	"strconv"
)

type ObjectType string

const (
	NIL_OBJ           = "NIL"
	INTEGER_OBJ       = "INTEGER"
	BOOLEAN_OBJ       = "BOOLEAN"
	STRING_OBJ        = "STRING"
	BUILTIN_OBJ       = "BUILTIN"
	BOUND_METHOD_OBJ  = "BOUND_METHOD"
	CLASS_OBJ         = "CLASS"
	INSTANCE_OBJ      = "INSTANCE"
	EXTENSION_SET_OBJ = "EXTENSION_SET"
)

type Object interface {
	Type() ObjectType
	Inspect() string
	Hash() uint32
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "nil" }
func (n *Nil) Hash() uint32     { return hashString("nil") }

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Hash() uint32     { return uint32(i.Value) ^ uint32(i.Value>>32) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }
func (b *Boolean) Hash() uint32 {
	if b.Value {
		return hashString("true")
	}
	return hashString("false")
}

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }
func (s *String) Hash() uint32     { return hashString(s.Value) }

// BuiltinFunction is the Go signature of a host-provided callable.
// When dispatched as an extension method, the receiver arrives as args[0].
type BuiltinFunction func(args ...Object) (Object, error)

// Builtin is a named host callable. Identity is the *Builtin pointer:
// two Builtins sharing a Name (or even a Fn) are still distinct handlers.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return fmt.Sprintf("builtin function %s", b.Name) }
func (b *Builtin) Hash() uint32     { return hashString("builtin:" + b.Name) }

func (b *Builtin) Call(args ...Object) (Object, error) {
	return b.Fn(args...)
}

// BoundMethod represents a callable bound to a receiver object.
// Calling it prepends the receiver to the argument list.
type BoundMethod struct {
	Receiver Object
	Function *Builtin
}

func (bm *BoundMethod) Type() ObjectType { return BOUND_METHOD_OBJ }
func (bm *BoundMethod) Inspect() string  { return fmt.Sprintf("bound method %s", bm.Function.Inspect()) }
func (bm *BoundMethod) Hash() uint32 {
	return bm.Receiver.Hash() ^ bm.Function.Hash()
}

func (bm *BoundMethod) Call(args ...Object) (Object, error) {
	return bm.Function.Call(append([]Object{bm.Receiver}, args...)...)
}
