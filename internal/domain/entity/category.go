// Package entity defines the core business entities for the domain layer.
package entity

// DefaultCategoryColor is the first color of the category palette.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// CategoryPalette holds the colors assigned to new categories, indexed by registry size.
var CategoryPalette = []string{
	DefaultCategoryColor,
	"#F59E0B",
	"#10B981",
	"#EF4444",
	"#3B82F6",
	"#8B5CF6",
	"#EC4899",
	"#14B8A6",
	"#F97316",
	"#64748B",
}

// DefaultCategoryNames seeds the registry of a user with no stored categories.
var DefaultCategoryNames = []string{
	"Rent",
	"Groceries",
	"Transport",
	"Utilities",
	"Entertainment",
	"Subscriptions",
	"Other",
}

// Category is a named, colored, iconed tag for transactions.
// Names are unique case-insensitively within a registry.
type Category struct {
	Name  string
	Color string
	Icon  string
}

// PaletteColor returns the palette color for the given registry position.
func PaletteColor(index int) string {
	if index < 0 {
		index = 0
	}
	return CategoryPalette[index%len(CategoryPalette)]
}
