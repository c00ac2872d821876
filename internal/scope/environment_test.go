package scope

import (
	"testing"

	"github.com/funvibe/funext/internal/object"
)

func TestEnclosedEnvironmentShadowsOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &object.Integer{Value: 1})
	outer.Set("y", &object.Integer{Value: 2})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("x", &object.Integer{Value: 10})

	x, ok := inner.Get("x")
	if !ok {
		t.Fatalf("x not found")
	}
	if x.(*object.Integer).Value != 10 {
		t.Errorf("inner binding should shadow outer, got %s", x.Inspect())
	}

	y, ok := inner.Get("y")
	if !ok {
		t.Fatalf("y not found through outer")
	}
	if y.(*object.Integer).Value != 2 {
		t.Errorf("expected outer y=2, got %s", y.Inspect())
	}
}

func TestUpdateWalksOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &object.Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	if !inner.Update("x", &object.Integer{Value: 5}) {
		t.Fatalf("Update should find x in outer")
	}
	x, _ := outer.Get("x")
	if x.(*object.Integer).Value != 5 {
		t.Errorf("outer x should be updated to 5, got %s", x.Inspect())
	}

	if inner.Update("missing", &object.Nil{}) {
		t.Errorf("Update of unbound name should report false")
	}
}

func TestUnsetRevealsOuterBinding(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &object.Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)
	inner.Set("x", &object.Integer{Value: 10})

	inner.Unset("x")

	x, ok := inner.Get("x")
	if !ok {
		t.Fatalf("outer x should be visible after Unset")
	}
	if x.(*object.Integer).Value != 1 {
		t.Errorf("expected outer x=1, got %s", x.Inspect())
	}
}

func TestSnapshotCopiesOwnBindingsOnly(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("a", &object.Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)
	inner.Set("b", &object.Integer{Value: 2})

	snap := inner.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 own binding, got %d", len(snap))
	}
	if _, ok := snap["b"]; !ok {
		t.Errorf("snapshot should contain b")
	}

	// Mutating the snapshot must not touch the environment.
	snap["b"] = &object.Nil{}
	b, _ := inner.Get("b")
	if b.(*object.Integer).Value != 2 {
		t.Errorf("environment mutated through snapshot")
	}
}
