package scope

import (
	"sync"

	"github.com/funvibe/funext/internal/object"
)

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Environment is a chained name→value store. Get walks outward, so an
// inner binding shadows an outer one of the same name.
type Environment struct {
	mu    sync.RWMutex
	store map[string]object.Object
	outer *Environment
}

func (e *Environment) Get(name string) (object.Object, bool) {
	e.mu.RLock()
	obj, ok := e.store[name]
	e.mu.RUnlock()
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

func (e *Environment) Set(name string, val object.Object) object.Object {
	e.mu.Lock()
	e.store[name] = val
	e.mu.Unlock()
	return val
}

// Unset removes a binding from this environment only; outer bindings of
// the same name become visible again.
func (e *Environment) Unset(name string) {
	e.mu.Lock()
	delete(e.store, name)
	e.mu.Unlock()
}

func (e *Environment) Update(name string, val object.Object) bool {
	e.mu.Lock()
	_, ok := e.store[name]
	if ok {
		e.store[name] = val
		e.mu.Unlock()
		return true
	}
	e.mu.Unlock()
	if e.outer != nil {
		return e.outer.Update(name, val)
	}
	return false
}

// Snapshot returns a copy of this environment's own bindings.
func (e *Environment) Snapshot() map[string]object.Object {
	e.mu.RLock()
	defer e.mu.RUnlock()
	copy := make(map[string]object.Object, len(e.store))
	for k, v := range e.store {
		copy[k] = v
	}
	return copy
}
