package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"":          RoleStandard,
		"standard":  RoleStandard,
		"Elevated":  RoleElevated,
		" elevated": RoleElevated,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseRole("admin"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown role, got %v", err)
	}
}

func TestRole_IsElevated(t *testing.T) {
	if RoleStandard.IsElevated() {
		t.Fatalf("standard role must not be elevated")
	}
	if !RoleElevated.IsElevated() {
		t.Fatalf("elevated role must be elevated")
	}
	if Role("").IsElevated() {
		t.Fatalf("empty role must not be elevated")
	}
}
