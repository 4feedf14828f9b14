package tasks

import "testing"

func TestAddEditRemove(t *testing.T) {
	list := NewList()

	if err := list.Add("write report"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := list.Add("review patches"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("len = %d, want 2", list.Len())
	}

	if err := list.Edit(1, "review pull requests"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	items := list.Items()
	if items[1] != "review pull requests" {
		t.Errorf("items[1] = %q", items[1])
	}

	if err := list.Remove(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items = list.Items()
	if len(items) != 1 || items[0] != "review pull requests" {
		t.Errorf("items = %v after remove", items)
	}
}

func TestRejectsBlankAndOutOfRange(t *testing.T) {
	list := NewList()

	if err := list.Add("   "); err == nil {
		t.Error("add accepted blank text")
	}
	if err := list.Edit(0, "anything"); err == nil {
		t.Error("edit accepted out-of-range index")
	}
	if err := list.Remove(-1); err == nil {
		t.Error("remove accepted negative index")
	}

	if err := list.Add("task"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := list.Edit(0, ""); err == nil {
		t.Error("edit accepted blank text")
	}
	if got := list.Items()[0]; got != "task" {
		t.Errorf("task mutated to %q by rejected edit", got)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	list := NewList()
	if err := list.Add("original"); err != nil {
		t.Fatalf("add: %v", err)
	}

	items := list.Items()
	items[0] = "mutated"
	if list.Items()[0] != "original" {
		t.Error("Items exposed internal slice")
	}
}
