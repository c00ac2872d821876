package extend

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/funvibe/funext/internal/object"
	"github.com/funvibe/funext/internal/scope"
)

// ExtensionSet bundles several handlers behind a single scope-checked
// name: the set's own. Call sites activate the whole bundle by binding
// the set's name to the set value; the individual method names are never
// looked up in caller scope, so rebinding "draw" locally cannot shadow a
// draw that arrived through a set.
type ExtensionSet struct {
	Name string

	mu      sync.RWMutex
	methods map[string]*object.Builtin
}

func NewExtensionSet(name string) *ExtensionSet {
	return &ExtensionSet{Name: name, methods: make(map[string]*object.Builtin)}
}

func (s *ExtensionSet) Type() object.ObjectType { return object.EXTENSION_SET_OBJ }
func (s *ExtensionSet) Inspect() string         { return fmt.Sprintf("extension set %s", s.Name) }
func (s *ExtensionSet) Hash() uint32 {
	h := fnv.New32a()
	h.Write([]byte("extset:" + s.Name))
	return h.Sum32()
}

// Define adds a handler to the set under name.
func (s *ExtensionSet) Define(name string, handler *object.Builtin) {
	s.mu.Lock()
	s.methods[name] = handler
	s.mu.Unlock()
}

func (s *ExtensionSet) Method(name string) (*object.Builtin, bool) {
	s.mu.RLock()
	fn, ok := s.methods[name]
	s.mu.RUnlock()
	return fn, ok
}

// Install hooks the set into cls's fallback-resolver chain. On a miss
// the installed layer checks the set for the requested method, then
// checks that the call site binds the SET's name to this exact set, and
// only then binds the method to the instance. Earlier layers and any
// pre-existing hook remain reachable through the captured predecessor.
func Install(cls *object.Class, set *ExtensionSet) error {
	if cls == nil {
		return errors.New("extend: nil class")
	}
	if set == nil {
		return errors.New("extend: nil extension set")
	}

	cls.SwapGetattr(func(prev object.Resolver) object.Resolver {
		return func(inst *object.Instance, requested string) (object.Object, error) {
			defer scope.Enter(Unit, "resolve")()
			if handler, ok := set.Method(requested); ok && InScope(set.Name, set) {
				return &object.BoundMethod{Receiver: inst, Function: handler}, nil
			}
			return delegate(prev, inst, requested)
		}
	})
	return nil
}
