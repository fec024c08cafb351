package models

// Category represents a user-facing label used to group transactions for
// reporting. Categories are append-only: a fixed default set is seeded per
// new user and custom ones may be added, but there is no rename or delete.
type Category struct {
	Base
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Color  string `json:"color"`
	Icon   string `json:"icon"`
}

// DefaultCategories is the fixed set seeded for every new user.
var DefaultCategories = []Category{
	{Name: "Food & Dining", Color: "#FF6B6B", Icon: "🍽️"},
	{Name: "Transportation", Color: "#4ECDC4", Icon: "🚗"},
	{Name: "Shopping", Color: "#45B7D1", Icon: "🛍️"},
	{Name: "Entertainment", Color: "#96CEB4", Icon: "🎬"},
	{Name: "Bills & Utilities", Color: "#FFEAA7", Icon: "⚡"},
	{Name: "Healthcare", Color: "#DDA0DD", Icon: "🏥"},
	{Name: "Education", Color: "#98D8C8", Icon: "📚"},
	{Name: "Travel", Color: "#F7DC6F", Icon: "✈️"},
	{Name: "Income", Color: "#58D68D", Icon: "💰"},
	{Name: "Other", Color: "#AEB6BF", Icon: "📦"},
}
