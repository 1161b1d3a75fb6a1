package modules

import (
	"testing"

	"glint/geom"
)

func testModule(name string, aliases ...string) Module {
	return Module{
		Name:    name,
		Aliases: aliases,
		Arity:   2,
		Make: func(comps []float64) (any, error) {
			return geom.V(comps[0], comps[1]), nil
		},
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testModule("vec2", "v2")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, ok := r.Lookup("vec2"); !ok {
		t.Fatalf("lookup by name failed")
	}
	m, ok := r.Lookup("v2")
	if !ok || m.Name != "vec2" {
		t.Fatalf("lookup by alias: %v %v", m.Name, ok)
	}
	if _, ok := r.Lookup("vec3"); ok {
		t.Fatalf("lookup of unregistered name succeeded")
	}
}

func TestRegisterRejectsBadModules(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Module{Name: "  "}); err == nil {
		t.Fatalf("empty name accepted")
	}
	if err := r.Register(Module{Name: "x"}); err == nil {
		t.Fatalf("nil constructor accepted")
	}
	if err := r.Register(testModule("vec2", "v2")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(testModule("vec2")); err == nil {
		t.Fatalf("duplicate name accepted")
	}
	if err := r.Register(testModule("other", "v2")); err == nil {
		t.Fatalf("duplicate alias accepted")
	}
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(testModule(name)); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	got := r.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("names: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names not sorted: %v", got)
		}
	}
}

func TestMake(t *testing.T) {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		t.Fatalf("builtins: %v", err)
	}

	v, err := r.Make("v2", 3, 4)
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	if got, ok := v.(geom.Vec2); !ok || got != geom.V(3, 4) {
		t.Fatalf("make: got %#v", v)
	}

	if _, err := r.Make("vec2", 1); err == nil {
		t.Fatalf("wrong arity accepted")
	}
	if _, err := r.Make("nope", 1, 2); err == nil {
		t.Fatalf("unknown module accepted")
	}
}
