package lifetrack

import "testing"

func TestBuiltinCatalog(t *testing.T) {
	cats := BuiltinCategories()
	if len(cats) != 18 {
		t.Fatalf("catalog has %d categories, want 18", len(cats))
	}
	byID := make(map[string]Category, len(cats))
	for _, c := range cats {
		if c.ID == "" || c.Name == "" {
			t.Errorf("incomplete builtin category: %+v", c)
		}
		if _, dup := byID[c.ID]; dup {
			t.Errorf("duplicate builtin id %q", c.ID)
		}
		byID[c.ID] = c
	}
	if c := byID["food"]; c.Type != Expense {
		t.Errorf("food = %+v, want an expense category", c)
	}
	if c := byID["salary"]; c.Type != Income {
		t.Errorf("salary = %+v, want an income category", c)
	}
}

func TestCategoryByID(t *testing.T) {
	d := DefaultData()
	d.CustomCategories = []Category{{ID: "cat-1", Name: "Pets", Type: Expense, IsCustom: true}}

	if got := CategoryByID(d, "food"); got.Name != "Food" {
		t.Errorf("builtin lookup = %+v", got)
	}
	if got := CategoryByID(d, "cat-1"); !got.IsCustom {
		t.Errorf("custom lookup = %+v", got)
	}
	if got := CategoryByID(d, "deleted"); got.ID != Uncategorized.ID {
		t.Errorf("dangling lookup = %+v, want the placeholder", got)
	}
}

func TestCategoriesMergesCustomAfterBuiltins(t *testing.T) {
	d := DefaultData()
	d.CustomCategories = []Category{{ID: "cat-1", Name: "Pets", Type: Expense, IsCustom: true}}

	all := Categories(d)
	if len(all) != 19 {
		t.Fatalf("merged catalog has %d entries, want 19", len(all))
	}
	if !all[len(all)-1].IsCustom {
		t.Errorf("custom category not appended last: %+v", all[len(all)-1])
	}
}
