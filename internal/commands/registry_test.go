package commands

import "testing"

func TestRegistry_DuplicateAlias(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&RmCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&RmCmd{}); err == nil {
		t.Fatal("expected error for duplicate registration")
	}
}

func TestRegistry_FindByAlias(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&AddCmd{})

	cmd, ok := r.Find("create")
	if !ok {
		t.Fatal("expected alias to resolve")
	}
	if cmd.Name() != "add" {
		t.Errorf("expected add, got %s", cmd.Name())
	}
}

func TestRegistry_AllSortedUnique(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&VersionCmd{})
	_ = r.Register(&AddCmd{})
	_ = r.Register(&RmCmd{})

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(all))
	}
	if all[0].Name() != "add" || all[1].Name() != "rm" || all[2].Name() != "version" {
		t.Errorf("unexpected order: %s %s %s", all[0].Name(), all[1].Name(), all[2].Name())
	}
}
