package object

import (
	"errors"
	"fmt"
)

// Instance is a value of a dynamic Class. The extension machinery never
// adds fields to it: everything beyond Fields and the method table is
// synthesized at access time by the class's fallback resolver.
type Instance struct {
	Class  *Class
	Fields map[string]Object
}

func (i *Instance) Type() ObjectType { return INSTANCE_OBJ }
func (i *Instance) Inspect() string  { return fmt.Sprintf("%s instance", i.Class.Name) }
func (i *Instance) Hash() uint32 {
	h := hashString("instance:" + i.Class.Name)
	for k, v := range i.Fields {
		h ^= hashString(k) ^ v.Hash()
	}
	return h
}

// GetAttr resolves name on the instance: own fields first, then class
// methods (returned bound to the receiver), then the class's fallback
// resolver. A miss at every layer reports ErrNoAttribute naming the
// attribute; a resolver failure that is not a miss propagates unchanged.
func (i *Instance) GetAttr(name string) (Object, error) {
	if val, ok := i.Fields[name]; ok {
		return val, nil
	}

	if fn, ok := i.Class.Method(name); ok {
		if builtin, ok := fn.(*Builtin); ok {
			return &BoundMethod{Receiver: i, Function: builtin}, nil
		}
		return fn, nil
	}

	if getattr := i.Class.Getattr(); getattr != nil {
		val, err := getattr(i, name)
		if err == nil {
			return val, nil
		}
		if !errors.Is(err, ErrNoAttribute) {
			return nil, err
		}
	}

	return nil, NoAttribute(name)
}
