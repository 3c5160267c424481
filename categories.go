package lifetrack

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Category labels a transaction. Built-in categories form a fixed catalog
// compiled into the binary; user-defined ones live in the aggregate's
// customCategories collection and carry IsCustom.
type Category struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Emoji    string          `json:"emoji" yaml:"emoji"`
	Color    string          `json:"color" yaml:"color"`
	Type     TransactionType `json:"type" yaml:"type"`
	IsCustom bool            `json:"isCustom,omitempty" yaml:"-"`
}

// MarshalJSON implements the json.Marshaler interface for Category with a
// stable field order.
func (c Category) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Append("emoji", c.Emoji)
	w.Append("color", c.Color)
	w.Append("type", c.Type)
	w.Optional("isCustom", c.IsCustom)
	return w.MarshalJSON()
}

//go:embed builtin_categories.yaml
var builtinCategoriesYAML []byte

var builtinCatalog = sync.OnceValue(func() []Category {
	var catalog struct {
		Expense []Category `yaml:"expense"`
		Income  []Category `yaml:"income"`
	}
	if err := yaml.Unmarshal(builtinCategoriesYAML, &catalog); err != nil {
		// The catalog is compiled in; failing to parse it is a build defect.
		panic(fmt.Sprintf("builtin category catalog: %v", err))
	}
	out := make([]Category, 0, len(catalog.Expense)+len(catalog.Income))
	for _, c := range catalog.Expense {
		c.Type = Expense
		out = append(out, c)
	}
	for _, c := range catalog.Income {
		c.Type = Income
		out = append(out, c)
	}
	return out
})

// BuiltinCategories returns a copy of the fixed built-in category catalog.
// Built-in categories are never part of the persisted aggregate and cannot
// be deleted.
func BuiltinCategories() []Category {
	catalog := builtinCatalog()
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// Uncategorized is the placeholder returned when a transaction references a
// category id with no matching category. Dangling ids are tolerated, never
// an error.
var Uncategorized = Category{ID: "uncategorized", Name: "Uncategorized", Emoji: "📦", Color: "#64748b", Type: Expense}

// Categories merges the built-in catalog with the aggregate's user-defined
// categories. Built-ins come first, in catalog order.
func Categories(d AppData) []Category {
	out := BuiltinCategories()
	return append(out, d.CustomCategories...)
}

// CategoryByID resolves a category id against the merged catalog. Unknown
// ids resolve to [Uncategorized].
func CategoryByID(d AppData, id string) Category {
	for _, c := range d.CustomCategories {
		if c.ID == id {
			return c
		}
	}
	for _, c := range builtinCatalog() {
		if c.ID == id {
			return c
		}
	}
	return Uncategorized
}
