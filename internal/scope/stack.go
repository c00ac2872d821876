package scope

import (
	"sync"

	"github.com/petermattis/goid"
)

// callStacks keys each goroutine's frame stack by goroutine id. Frames
// pushed on one goroutine are invisible to call-site discovery on
// another.
var callStacks = struct {
	mu sync.RWMutex
	m  map[int64][]*Frame
}{
	m: make(map[int64][]*Frame),
}

func push(f *Frame) {
	gid := goid.Get()
	callStacks.mu.Lock()
	callStacks.m[gid] = append(callStacks.m[gid], f)
	callStacks.mu.Unlock()
}

func pop() {
	gid := goid.Get()
	callStacks.mu.Lock()
	stack := callStacks.m[gid]
	if n := len(stack); n > 0 {
		if n == 1 {
			delete(callStacks.m, gid)
		} else {
			callStacks.m[gid] = stack[:n-1]
		}
	}
	callStacks.mu.Unlock()
}

// Enter pushes a frame for unit on the current goroutine's stack and
// returns the matching pop. Used by machinery that must appear on the
// stack without belonging to any user module:
//
//	defer scope.Enter(unit, "resolve")()
func Enter(unit, function string) func() {
	push(&Frame{Unit: unit, Function: function, Locals: NewEnvironment()})
	return pop
}

// Current returns the innermost frame of the current goroutine's stack.
func Current() (*Frame, bool) {
	gid := goid.Get()
	callStacks.mu.RLock()
	defer callStacks.mu.RUnlock()
	stack := callStacks.m[gid]
	if len(stack) == 0 {
		return nil, false
	}
	return stack[len(stack)-1], true
}

// CallerOutside walks the current goroutine's stack from the innermost
// frame outward and returns the first frame whose Unit differs from
// unit. It reports false when every frame belongs to unit or the stack
// is empty.
func CallerOutside(unit string) (*Frame, bool) {
	gid := goid.Get()
	callStacks.mu.RLock()
	defer callStacks.mu.RUnlock()
	stack := callStacks.m[gid]
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Unit != unit {
			return stack[i], true
		}
	}
	return nil, false
}

// Depth returns the current goroutine's stack depth.
func Depth() int {
	gid := goid.Get()
	callStacks.mu.RLock()
	defer callStacks.mu.RUnlock()
	return len(callStacks.m[gid])
}
