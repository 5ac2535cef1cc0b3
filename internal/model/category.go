package model

// Category is a display grouping for transactions and budgets. The name is
// the key other records reference; categories are appended, never removed
// or renamed.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryData holds the caller-supplied fields for a new category.
type CategoryData struct {
	Name  string
	Icon  string
	Color string
}

// Fallback rendering for transactions whose category no longer resolves.
const (
	FallbackIcon  = "●"
	FallbackColor = "#878580"
)

// SeedCategories returns the nine built-in categories installed on first
// run. IDs are stable so repeated seeding is deterministic.
func SeedCategories() []Category {
	return []Category{
		{ID: "cat-food", Name: "Food & Dining", Icon: "🍔", Color: "#DA702C"},
		{ID: "cat-transport", Name: "Transportation", Icon: "🚗", Color: "#4385BE"},
		{ID: "cat-shopping", Name: "Shopping", Icon: "🛍️", Color: "#CE5D97"},
		{ID: "cat-entertainment", Name: "Entertainment", Icon: "🎬", Color: "#8B7EC8"},
		{ID: "cat-bills", Name: "Bills & Utilities", Icon: "💡", Color: "#D0A215"},
		{ID: "cat-health", Name: "Healthcare", Icon: "🏥", Color: "#D14D41"},
		{ID: "cat-education", Name: "Education", Icon: "📚", Color: "#24837B"},
		{ID: "cat-salary", Name: "Salary", Icon: "💰", Color: "#879A39"},
		{ID: "cat-other", Name: "Other", Icon: "📦", Color: "#878580"},
	}
}
