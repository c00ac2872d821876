package extend

import (
	"github.com/funvibe/funext/internal/object"
	"github.com/funvibe/funext/internal/scope"
)

// InScope reports whether the call site binds name to exactly value.
//
// The call site is the first frame on the current goroutine's stack,
// walking from the innermost outward, that does not belong to the
// dispatcher's own unit. Its effective scope is frame locals chained
// over module globals, locals winning. The comparison is identity, not
// equality: a distinct value that merely looks the same — another
// handler with the same name, say — does not match, which is what makes
// rebinding a name shadow the extension exactly as lexical scoping
// would.
//
// With no frame outside the dispatcher's unit there is no call site,
// and nothing is in scope.
func InScope(name string, value object.Object) bool {
	caller, ok := scope.CallerOutside(Unit)
	if !ok {
		return false
	}
	bound, ok := caller.Lookup(name)
	if !ok {
		return false
	}
	return bound == value
}
