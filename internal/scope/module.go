package scope

import "github.com/funvibe/funext/internal/object"

// Module is a compilation unit with its own global scope. Its Name is
// the unit tag carried by every frame it pushes, which is what call-site
// discovery filters on.
type Module struct {
	Name    string
	Globals *Environment
}

func NewModule(name string) *Module {
	return &Module{Name: name, Globals: NewEnvironment()}
}

// Bind sets a module-level (global) binding.
func (m *Module) Bind(name string, val object.Object) {
	m.Globals.Set(name, val)
}

// Call runs body inside a fresh frame for this module on the current
// goroutine's call stack. The frame is popped when body returns, so the
// call site it represents exists only for the duration of the call.
func (m *Module) Call(function string, body func(f *Frame)) {
	f := &Frame{
		Unit:     m.Name,
		Function: function,
		Locals:   NewEnvironment(),
		globals:  m.Globals,
	}
	push(f)
	defer pop()
	body(f)
}

// Frame is one entry of a goroutine's call stack: the local scope of a
// function activation plus a reference to its module's globals.
type Frame struct {
	Unit     string
	Function string
	Locals   *Environment
	globals  *Environment
}

// Bind sets a binding in the frame's local scope.
func (f *Frame) Bind(name string, val object.Object) {
	f.Locals.Set(name, val)
}

// Unbind removes a local binding.
func (f *Frame) Unbind(name string) {
	f.Locals.Unset(name)
}

// Lookup resolves name in the frame's effective scope: locals first,
// then module globals.
func (f *Frame) Lookup(name string) (object.Object, bool) {
	if val, ok := f.Locals.Get(name); ok {
		return val, true
	}
	if f.globals == nil {
		return nil, false
	}
	return f.globals.Get(name)
}
