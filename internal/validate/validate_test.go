package validate_test

import (
	"testing"

	"craftpress/internal/validate"
)

func TestHandle(t *testing.T) {
	good := []string{"rooster-mug", "mug", "a1-b2-c3"}
	for _, s := range good {
		if _, ok := validate.Handle(s); !ok {
			t.Fatalf("%q rejected", s)
		}
	}
	bad := []string{"", "Rooster-Mug", "mug_", "-mug", "mug--", "../etc", "a b"}
	for _, s := range bad {
		if _, ok := validate.Handle(s); ok {
			t.Fatalf("%q accepted", s)
		}
	}
}

func TestID(t *testing.T) {
	if _, ok := validate.ID("var_rooster_11oz_white"); !ok {
		t.Fatal("valid id rejected")
	}
	for _, s := range []string{"", "a/b", "x y", "id;drop"} {
		if _, ok := validate.ID(s); ok {
			t.Fatalf("%q accepted", s)
		}
	}
}

func TestCanvasSize(t *testing.T) {
	cases := map[string]int{
		"":     500,
		"junk": 500,
		"-5":   500,
		"50":   100,
		"500":  500,
		"9000": 2000,
	}
	for in, want := range cases {
		if got := validate.CanvasSize(in); got != want {
			t.Fatalf("CanvasSize(%q) = %d, want %d", in, got, want)
		}
	}
}
