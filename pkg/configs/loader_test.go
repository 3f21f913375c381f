package configs

import (
	"errors"
	"testing"
)

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bfi.cue",
		"testdata/system.cue",
	}, schema)

	var pointer string
	if err := loader.AssignFirst("pointer", &pointer); err != nil {
		t.Fatal(err)
	}
	if pointer != "wrap" {
		t.Fatalf("got %q", pointer)
	}

	var cancel bool
	if err := loader.AssignFirst("optimize.cancel", &cancel); err != nil {
		t.Fatal(err)
	}
	if cancel {
		t.Fatal("expected cancel from system.cue to be false")
	}

	err := loader.AssignFirst("not", &pointer)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bfi.cue",
		"testdata/system.cue",
	}, schema)

	var pointers []string
	for value, err := range loader.IterCueValues("pointer") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		pointers = append(pointers, s)
	}
	if len(pointers) != 2 || pointers[0] != "wrap" || pointers[1] != "clamp" {
		t.Fatalf("got %v", pointers)
	}
}

func TestLoaderSchemaRejects(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, schema)
	if err := loader.Err(); err == nil {
		t.Fatal("expected schema validation error")
	}
	if _, err := Load(loader); err == nil {
		t.Fatal("expected Load to fail")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/nope.cue"}, schema)
	if err := loader.Err(); err == nil {
		t.Fatal("expected error")
	}
}
