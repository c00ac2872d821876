package extend

import (
	"errors"

	"github.com/funvibe/funext/internal/object"
)

// Monkey patches handler onto cls as a genuine method under name. No
// scope check: once installed, every call site everywhere sees it. Kept
// as the contrast case to Register — use it only when global visibility
// is actually what you want.
func Monkey(cls *object.Class, name string, handler *object.Builtin) error {
	if cls == nil {
		return errors.New("extend: nil class")
	}
	if name == "" {
		return errors.New("extend: empty method name")
	}
	if handler == nil {
		return errors.New("extend: nil handler")
	}
	cls.SetMethod(name, handler)
	return nil
}
