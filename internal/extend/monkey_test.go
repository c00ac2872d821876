package extend

import (
	"testing"

	"github.com/funvibe/funext/internal/object"
	"github.com/funvibe/funext/internal/scope"
)

func TestMonkeyPatchIsVisibleEverywhere(t *testing.T) {
	cls := object.NewClass("Square")
	handler := marker("patched")
	if err := Monkey(cls, "draw", handler); err != nil {
		t.Fatalf("monkey: %v", err)
	}

	// No binding, no frame: the patch is a genuine member and needs
	// neither.
	val, err := cls.New(nil).GetAttr("draw")
	if err != nil {
		t.Fatalf("patched method should resolve anywhere: %v", err)
	}
	if got := callResult(t, val); got != "patched" {
		t.Errorf("expected patched, got %s", got)
	}

	// Scope contents are irrelevant to a monkey patch.
	mod := scope.NewModule("app")
	mod.Call("main", func(f *scope.Frame) {
		f.Bind("draw", &object.Boolean{Value: true})
		if _, err := cls.New(nil).GetAttr("draw"); err != nil {
			t.Errorf("shadowing must not affect a genuine member: %v", err)
		}
	})
}

func TestMonkeyValidation(t *testing.T) {
	h := marker("h")
	if err := Monkey(nil, "draw", h); err == nil {
		t.Errorf("nil class should be rejected")
	}
	if err := Monkey(object.NewClass("Square"), "", h); err == nil {
		t.Errorf("empty name should be rejected")
	}
	if err := Monkey(object.NewClass("Square"), "draw", nil); err == nil {
		t.Errorf("nil handler should be rejected")
	}
}
