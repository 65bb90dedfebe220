package menu

import "testing"

func TestHasSubMenuDistinguishesNilFromEmpty(t *testing.T) {
	if (Item{ID: "leaf"}).HasSubMenu() {
		t.Fatalf("expected nil submenu to be a leaf")
	}
	if !(Item{ID: "empty", SubMenu: []Item{}}).HasSubMenu() {
		t.Fatalf("expected empty submenu to open a panel")
	}
}

func TestDisplayLabelFallsBackToID(t *testing.T) {
	if got := (Item{ID: "open-recent_files"}).DisplayLabel(); got != "Open Recent Files" {
		t.Fatalf("expected prettified label, got %q", got)
	}
	if got := (Item{ID: "x", Label: "Custom"}).DisplayLabel(); got != "Custom" {
		t.Fatalf("expected explicit label, got %q", got)
	}
}

func TestCloneItemsIsDeep(t *testing.T) {
	items := DefaultItems()
	clone := CloneItems(items)
	clone[0].SubMenu[0].Label = "changed"
	if items[0].SubMenu[0].Label == "changed" {
		t.Fatalf("expected clone to not share submenu storage")
	}
	if CloneItems(nil) != nil {
		t.Fatalf("expected nil clone for nil input")
	}
	if empty := CloneItems([]Item{}); empty == nil {
		t.Fatalf("expected empty clone to stay non-nil")
	}
}

func TestDefaultItemsIndexCleanly(t *testing.T) {
	if _, err := BuildIndex(DefaultItems()); err != nil {
		t.Fatalf("expected default tree to be valid, got %v", err)
	}
}
