package registry

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	r := New[int]("widget")

	if err := r.Register("one", 1); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	got, err := r.Lookup("one")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Lookup() = %d, want 1", got)
	}
	if !r.Has("one") {
		t.Error("Has(one) = false")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := New[int]("validator")
	r.MustRegister("required", 1)

	err := r.Register("required", 2)
	var dup *AlreadyRegisteredError
	if !errors.As(err, &dup) {
		t.Fatalf("Register() error = %v, want AlreadyRegisteredError", err)
	}
	if dup.Name != "required" || dup.Kind != "validator" {
		t.Errorf("unexpected error fields: %+v", dup)
	}

	got, _ := r.Lookup("required")
	if got != 1 {
		t.Errorf("duplicate registration overwrote the entry: got %d", got)
	}
}

func TestRegisterEmptyName(t *testing.T) {
	r := New[string]("theme")
	if err := r.Register("", "x"); err == nil {
		t.Error("Register(\"\") should fail")
	}
}

func TestLookupUnknown(t *testing.T) {
	r := New[string]("question type")
	_, err := r.Lookup("nope")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Lookup() error = %v, want NotFoundError", err)
	}
	if err.Error() != `unknown question type "nope"` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNamesSorted(t *testing.T) {
	r := New[int]("x")
	r.MustRegister("b", 1)
	r.MustRegister("c", 2)
	r.MustRegister("a", 3)

	want := []string{"a", "b", "c"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
