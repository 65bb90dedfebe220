package menu

import (
	"reflect"
	"strings"
	"testing"
)

func sampleTree() []Item {
	return []Item{
		{ID: "a", Label: "Alpha"},
		{ID: "b", Label: "Bravo", SubMenu: []Item{
			{ID: "b1", Label: "Bravo One"},
			{ID: "b2", Label: "Bravo Two", SubMenu: []Item{
				{ID: "b2x", Label: "Deep"},
			}},
		}},
		{ID: "c", Label: "Charlie", SubMenu: []Item{}},
	}
}

func TestBuildIndexFindsNestedItems(t *testing.T) {
	idx, err := BuildIndex(sampleTree())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item, ok := idx.Find("b2x")
	if !ok || item.Label != "Deep" {
		t.Fatalf("expected to find b2x, got %#v (ok=%v)", item, ok)
	}
	if parent, ok := idx.Parent("b2x"); !ok || parent != "b2" {
		t.Fatalf("expected parent b2, got %q (ok=%v)", parent, ok)
	}
	if _, ok := idx.Parent("a"); ok {
		t.Fatalf("expected root item to have no parent")
	}
	if got := idx.Ancestors("b2x"); !reflect.DeepEqual(got, []string{"b", "b2"}) {
		t.Fatalf("expected ancestors [b b2], got %v", got)
	}
}

func TestBuildIndexRejectsDuplicates(t *testing.T) {
	tree := []Item{{ID: "x"}, {ID: "y", SubMenu: []Item{{ID: "x"}}}, {Label: "nameless"}}
	_, err := BuildIndex(tree)
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if !strings.Contains(err.Error(), `duplicate id "x"`) {
		t.Fatalf("expected duplicate id in error, got %v", err)
	}
	if !strings.Contains(err.Error(), "empty id") {
		t.Fatalf("expected empty id in error, got %v", err)
	}
}

func TestWalkVisitsDepthFirst(t *testing.T) {
	idx, _ := BuildIndex(sampleTree())
	var visited []string
	idx.Walk(func(item Item, depth int) {
		visited = append(visited, strings.Repeat(">", depth)+item.ID)
	})
	want := []string{"a", "b", ">b1", ">b2", ">>b2x", "c"}
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("expected %v, got %v", want, visited)
	}
}

func TestResolveAcceptsIDsLabelsAndFuzzyMatches(t *testing.T) {
	idx, _ := BuildIndex(sampleTree())
	cases := []struct {
		name  string
		query []string
		want  []string
	}{
		{"ids", []string{"b", "b2"}, []string{"b", "b2"}},
		{"labels", []string{"bravo", "Bravo Two"}, []string{"b", "b2"}},
		{"fuzzy", []string{"brv", "two"}, []string{"b", "b2"}},
		{"blank segments skipped", []string{" ", "b"}, []string{"b"}},
		{"empty submenu counts", []string{"c"}, []string{"c"}},
	}
	for _, tc := range cases {
		got, err := idx.Resolve(tc.query)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestResolveRejectsLeavesAndUnknownSegments(t *testing.T) {
	idx, _ := BuildIndex(sampleTree())
	if _, err := idx.Resolve([]string{"a"}); err == nil {
		t.Fatalf("expected error for item without submenu")
	}
	if _, err := idx.Resolve([]string{"zzz"}); err == nil {
		t.Fatalf("expected error for unknown segment")
	}
}
