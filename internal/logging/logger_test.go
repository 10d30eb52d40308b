package logging

import "testing"

func TestGet_NopByDefault(t *testing.T) {
	InitializeNop()
	l := Get(CategoryDialogue)
	if l == nil {
		t.Fatal("Get returned nil logger")
	}
	// Must not panic or write anywhere.
	l.Infow("dispatch", "cycle", 1)
}

func TestGet_SameCategorySameLogger(t *testing.T) {
	InitializeNop()
	if Get(CategoryEngine) != Get(CategoryEngine) {
		t.Fatal("category loggers are not cached")
	}
}

func TestInitialize_ReplacesCache(t *testing.T) {
	InitializeNop()
	before := Get(CategoryBoot)
	if err := Initialize(true); err != nil {
		t.Fatalf("Initialize() = %v", err)
	}
	t.Cleanup(InitializeNop)
	after := Get(CategoryBoot)
	if before == after {
		t.Fatal("Initialize did not replace cached loggers")
	}
	Sync()
}
