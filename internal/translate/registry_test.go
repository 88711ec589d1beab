package translate

import (
	"reflect"
	"strings"
	"testing"
)

func TestRegistry_ResolveByName(t *testing.T) {
	registry := NewRegistry("ollama")

	ollama := newFakeBackend()
	ollama.name = "ollama"
	openai := newFakeBackend()
	openai.name = "openai"

	if err := registry.Register(ollama); err != nil {
		t.Fatal(err)
	}
	if err := registry.Register(openai); err != nil {
		t.Fatal(err)
	}

	backend, err := registry.Backend("openai")
	if err != nil {
		t.Fatalf("Backend() unexpected error: %v", err)
	}
	if backend.Name() != "openai" {
		t.Errorf("Expected openai backend, got %s", backend.Name())
	}
}

func TestRegistry_EmptyNameUsesDefault(t *testing.T) {
	registry := NewRegistry("ollama")
	ollama := newFakeBackend()
	ollama.name = "ollama"
	if err := registry.Register(ollama); err != nil {
		t.Fatal(err)
	}

	backend, err := registry.Backend("")
	if err != nil {
		t.Fatalf("Backend() unexpected error: %v", err)
	}
	if backend.Name() != "ollama" {
		t.Errorf("Expected default ollama backend, got %s", backend.Name())
	}
}

func TestRegistry_PassthroughResolvesToNil(t *testing.T) {
	registry := NewRegistry("none")

	backend, err := registry.Backend("")
	if err != nil {
		t.Fatalf("Backend() unexpected error: %v", err)
	}
	if backend != nil {
		t.Errorf("Expected nil backend for passthrough, got %v", backend)
	}

	backend, err = registry.Backend("none")
	if err != nil || backend != nil {
		t.Errorf("Expected nil backend for explicit passthrough, got %v, %v", backend, err)
	}
}

func TestRegistry_UnknownBackend(t *testing.T) {
	registry := NewRegistry("ollama")
	ollama := newFakeBackend()
	ollama.name = "ollama"
	_ = registry.Register(ollama)

	_, err := registry.Backend("deepl")
	if err == nil {
		t.Fatal("Expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "ollama") {
		t.Errorf("Error should list available backends: %v", err)
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	registry := NewRegistry("")
	for _, name := range []string{"openai", "gemini", "ollama"} {
		b := newFakeBackend()
		b.name = name
		_ = registry.Register(b)
	}

	want := []string{"gemini", "ollama", "openai"}
	if got := registry.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistry_RegisterNil(t *testing.T) {
	registry := NewRegistry("")
	if err := registry.Register(nil); err == nil {
		t.Error("Expected error when registering a nil backend")
	}
}
