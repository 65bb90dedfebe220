package menu

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Index exposes lookup utilities over an item tree.
type Index struct {
	roots   []Item
	items   map[string]Item
	parents map[string]string
	order   []string
}

// BuildIndex walks the tree and records every item by id. Duplicate or empty
// ids are reported as an error; the first occurrence wins in the index.
func BuildIndex(roots []Item) (*Index, error) {
	idx := &Index{
		roots:   roots,
		items:   make(map[string]Item),
		parents: make(map[string]string),
	}
	var problems []string
	var visit func(parent string, items []Item)
	visit = func(parent string, items []Item) {
		for _, item := range items {
			if strings.TrimSpace(item.ID) == "" {
				problems = append(problems, fmt.Sprintf("item %q has an empty id", item.Label))
				continue
			}
			if _, dup := idx.items[item.ID]; dup {
				problems = append(problems, fmt.Sprintf("duplicate id %q", item.ID))
				continue
			}
			idx.items[item.ID] = item
			idx.order = append(idx.order, item.ID)
			if parent != "" {
				idx.parents[item.ID] = parent
			}
			visit(item.ID, item.SubMenu)
		}
	}
	visit("", roots)
	if len(problems) > 0 {
		return idx, fmt.Errorf("invalid menu tree: %s", strings.Join(problems, "; "))
	}
	return idx, nil
}

// Roots returns the top-level items.
func (x *Index) Roots() []Item {
	return x.roots
}

// Find locates an item by id.
func (x *Index) Find(id string) (Item, bool) {
	item, ok := x.items[id]
	return item, ok
}

// Parent returns the id of the item whose submenu contains id.
func (x *Index) Parent(id string) (string, bool) {
	parent, ok := x.parents[id]
	return parent, ok
}

// Ancestors lists the ids above id, root first.
func (x *Index) Ancestors(id string) []string {
	var chain []string
	for {
		parent, ok := x.parents[id]
		if !ok {
			break
		}
		chain = append([]string{parent}, chain...)
		id = parent
	}
	return chain
}

// Walk visits every item in depth-first order.
func (x *Index) Walk(fn func(item Item, depth int)) {
	for _, id := range x.order {
		fn(x.items[id], len(x.Ancestors(id)))
	}
}

// Resolve maps a path written as ids or labels onto item ids, one level at a
// time. Every resolved segment must open a submenu.
func (x *Index) Resolve(query []string) ([]string, error) {
	level := x.roots
	resolved := make([]string, 0, len(query))
	for _, segment := range query {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			continue
		}
		item, ok := matchSegment(level, trimmed)
		if !ok {
			return nil, fmt.Errorf("no menu entry matches %q", trimmed)
		}
		if !item.HasSubMenu() {
			return nil, fmt.Errorf("menu entry %q has no submenu", item.ID)
		}
		resolved = append(resolved, item.ID)
		level = item.SubMenu
	}
	return resolved, nil
}

func matchSegment(items []Item, query string) (Item, bool) {
	for _, item := range items {
		if item.ID == query {
			return item, true
		}
	}
	for _, item := range items {
		if strings.EqualFold(item.DisplayLabel(), query) {
			return item, true
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.DisplayLabel()
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return Item{}, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return items[best.OriginalIndex], true
}
