// Package funext is the public embedding surface: aliases and
// constructors for the object model, the scope machinery, and the
// extension dispatcher, so hosts depend on one import path.
package funext

import (
	"github.com/funvibe/funext/internal/extend"
	"github.com/funvibe/funext/internal/object"
	"github.com/funvibe/funext/internal/scope"
)

// Object model aliases
type Object = object.Object
type ObjectType = object.ObjectType
type Nil = object.Nil
type Integer = object.Integer
type Boolean = object.Boolean
type String = object.String
type Builtin = object.Builtin
type BuiltinFunction = object.BuiltinFunction
type BoundMethod = object.BoundMethod
type Class = object.Class
type Instance = object.Instance
type Resolver = object.Resolver

// Scope aliases
type Environment = scope.Environment
type Module = scope.Module
type Frame = scope.Frame

// Dispatcher aliases
type Registration = extend.Registration
type ExtensionSet = extend.ExtensionSet

// ErrNoAttribute is the not-found signal of attribute resolution.
var ErrNoAttribute = object.ErrNoAttribute

func NewClass(name string) *Class { return object.NewClass(name) }

func NewModule(name string) *Module { return scope.NewModule(name) }

func NewEnvironment() *Environment { return scope.NewEnvironment() }

func NewBuiltin(name string, fn BuiltinFunction) *Builtin {
	return &Builtin{Name: name, Fn: fn}
}

func NewExtensionSet(name string) *ExtensionSet { return extend.NewExtensionSet(name) }

// Register installs a scope-checked extension method on cls.
func Register(cls *Class, name string, handler *Builtin) (Registration, error) {
	return extend.Register(cls, name, handler)
}

// Registrations lists the live extension layers on cls, newest first.
func Registrations(cls *Class) []Registration { return extend.Registrations(cls) }

// Monkey patches handler onto cls globally, with no scope check.
func Monkey(cls *Class, name string, handler *Builtin) error {
	return extend.Monkey(cls, name, handler)
}

// Install hooks an extension set into cls's resolver chain.
func Install(cls *Class, set *ExtensionSet) error { return extend.Install(cls, set) }
