package registry

import (
	"testing"

	"github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
)

func TestRegisterAndCreate(t *testing.T) {
	kind := core.Kind("test-crate")
	Register(kind, "Test Crate", core.NewItemRules)

	if !Exists(kind) {
		t.Fatal("registered kind should exist")
	}

	a, err := Create(kind)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := Create(kind)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a == b {
		t.Error("Create should return fresh rules every call")
	}

	found := false
	for _, info := range List() {
		if info.Kind == kind && info.Title == "Test Crate" {
			found = true
		}
	}
	if !found {
		t.Error("List should include the registered kind")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	kind := core.Kind("test-duplicate")
	Register(kind, "Duplicate", core.NewWallRules)

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register(kind, "Duplicate", core.NewWallRules)
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create(core.Kind("no-such-kind")); err == nil {
		t.Error("Create should fail for unknown kinds")
	}
}
