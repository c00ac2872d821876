// Package extend implements scope-checked extension methods: free
// functions callable with method syntax on instances of a dynamic
// class, visible only at call sites whose own scope binds the
// function's name to the function itself.
//
// Registration installs a fallback resolver on the class — shared,
// process-wide state. Scoping is reconstructed per call by walking the
// calling goroutine's frame stack to the first frame of user code and
// checking its local-then-global bindings, so a registered extension
// behaves as if it were lexically scoped even though the object model
// resolves attributes dynamically.
package extend

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/funvibe/funext/internal/object"
	"github.com/funvibe/funext/internal/scope"
)

// Unit tags every frame the dispatcher pushes while resolving. Call-site
// discovery skips frames carrying it, so however deeply the dispatch
// chain nests, the caller it sees is always the first frame of user code.
const Unit = "funext/extend"

// Registration records one installed extension layer on a class.
type Registration struct {
	ID      uuid.UUID
	Name    string
	Handler *object.Builtin
}

// registry keeps the live chain per class, newest first, for
// introspection. Resolution itself never consults it: the chain of
// captured predecessors is the source of truth.
var registry = struct {
	mu sync.RWMutex
	m  map[*object.Class][]Registration
}{
	m: make(map[*object.Class][]Registration),
}

// Register installs handler as a scope-checked extension method name on
// cls. The class's current fallback resolver is captured as the new
// layer's predecessor; registering the same name again composes another
// layer rather than replacing the first. The installation is observable
// process-wide by anything resolving attributes on instances of cls.
func Register(cls *object.Class, name string, handler *object.Builtin) (Registration, error) {
	if cls == nil {
		return Registration{}, errors.New("extend: nil class")
	}
	if name == "" {
		return Registration{}, errors.New("extend: empty extension name")
	}
	if handler == nil {
		return Registration{}, errors.New("extend: nil handler")
	}

	reg := Registration{ID: uuid.New(), Name: name, Handler: handler}

	cls.SwapGetattr(func(prev object.Resolver) object.Resolver {
		return func(inst *object.Instance, requested string) (object.Object, error) {
			defer scope.Enter(Unit, "resolve")()
			if requested == name && InScope(name, handler) {
				return &object.BoundMethod{Receiver: inst, Function: handler}, nil
			}
			return delegate(prev, inst, requested)
		}
	})

	registry.mu.Lock()
	registry.m[cls] = append([]Registration{reg}, registry.m[cls]...)
	registry.mu.Unlock()

	return reg, nil
}

// Registrations lists the extension layers installed on cls, newest
// first — the order their scope checks run in.
func Registrations(cls *object.Class) []Registration {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	regs := registry.m[cls]
	out := make([]Registration, len(regs))
	copy(out, regs)
	return out
}

// delegate hands resolution to the captured predecessor. A nil
// predecessor is the bottom of the chain. Whatever the predecessor
// reports — a value, a miss, or an unrelated failure — passes through
// unchanged.
func delegate(prev object.Resolver, inst *object.Instance, name string) (object.Object, error) {
	if prev == nil {
		return nil, object.NoAttribute(name)
	}
	return prev(inst, name)
}
