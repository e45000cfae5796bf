package domain

// CategoryType distinguishes income categories from expense categories.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Category labels transactions for budgeting. Categories are created via
// seeding or an explicit add; no update or delete operation is exposed.
type Category struct {
	ID    uint64       `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Color string       `json:"color"`
	Icon  string       `json:"icon,omitempty"`
}
