package object

import (
	"fmt"
	"sync"
)

// Resolver is a fallback attribute resolver. It is consulted only after
// field and method lookup on an instance has failed, and either returns
// a value or an error wrapping ErrNoAttribute. Any other error means a
// genuine failure and is passed through resolution unchanged.
type Resolver func(inst *Instance, name string) (Object, error)

// Class is a dynamic type: a name, a method table, and a single
// fallback-resolver slot shared by every instance of the class.
type Class struct {
	Name string

	mu      sync.RWMutex
	methods map[string]Object
	getattr Resolver
}

func NewClass(name string) *Class {
	return &Class{Name: name, methods: make(map[string]Object)}
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }
func (c *Class) Inspect() string  { return fmt.Sprintf("class %s", c.Name) }
func (c *Class) Hash() uint32     { return hashString("class:" + c.Name) }

// SetMethod defines name as a genuine member of the class. Genuine
// members are always resolved before any fallback resolver runs.
func (c *Class) SetMethod(name string, fn Object) {
	c.mu.Lock()
	c.methods[name] = fn
	c.mu.Unlock()
}

func (c *Class) Method(name string) (Object, bool) {
	c.mu.RLock()
	fn, ok := c.methods[name]
	c.mu.RUnlock()
	return fn, ok
}

// Getattr returns the currently installed fallback resolver, or nil.
func (c *Class) Getattr() Resolver {
	c.mu.RLock()
	r := c.getattr
	c.mu.RUnlock()
	return r
}

// SwapGetattr atomically replaces the fallback resolver with
// wrap(previous). Capture and install happen under one lock so two
// concurrent registrations cannot both capture the same predecessor
// and lose one layer of the chain.
func (c *Class) SwapGetattr(wrap func(prev Resolver) Resolver) {
	c.mu.Lock()
	c.getattr = wrap(c.getattr)
	c.mu.Unlock()
}

// New creates an instance of the class with the given fields.
func (c *Class) New(fields map[string]Object) *Instance {
	if fields == nil {
		fields = make(map[string]Object)
	}
	return &Instance{Class: c, Fields: fields}
}
