package toolrun

import (
	"errors"
	"testing"
)

func TestNewRequestValid(t *testing.T) {
	req, err := NewRequest([]string{"/data/in.las", "/data/out.dep", "2.5"})
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	if req.InputPath != "/data/in.las" || req.OutputPath != "/data/out.dep" {
		t.Fatalf("unexpected paths: %+v", req)
	}
	if req.Resolution != 2.5 {
		t.Fatalf("expected resolution 2.5, got %v", req.Resolution)
	}
	if req.Palette != DefaultPalette {
		t.Fatalf("expected default palette, got %q", req.Palette)
	}
	if !req.Verbose {
		t.Fatal("expected verbose to default to true")
	}
}

func TestNewRequestArgumentCount(t *testing.T) {
	for _, raw := range [][]string{nil, {"a"}, {"a", "b"}, {"a", "b", "1", "extra"}} {
		_, err := NewRequest(raw)
		if !errors.Is(err, ErrArgumentCount) {
			t.Fatalf("expected ErrArgumentCount for %d args, got %v", len(raw), err)
		}
	}
}

func TestNewRequestEmptyPaths(t *testing.T) {
	if _, err := NewRequest([]string{"  ", "/out.dep", "1"}); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath for blank input, got %v", err)
	}
	if _, err := NewRequest([]string{"/in.las", "", "1"}); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath for blank output, got %v", err)
	}
}

func TestNewRequestResolution(t *testing.T) {
	for _, value := range []string{"abc", "", "0", "-1", "NaN", "+Inf", "-Inf"} {
		_, err := NewRequest([]string{"/in.las", "/out.dep", value})
		if !errors.Is(err, ErrResolution) {
			t.Fatalf("expected ErrResolution for %q, got %v", value, err)
		}
	}
}
