package model

// CategoryType indicates whether a category is for income or expense.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
)

// Category is a user-defined label that transactions reference by name.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     Color  `json:"color"`
	IsExpense bool   `json:"isExpense"`
}

// Type reports which kind of transaction the category applies to.
func (c Category) Type() CategoryType {
	if c.IsExpense {
		return CategoryTypeExpense
	}
	return CategoryTypeIncome
}

// DefaultCategories returns the set seeded into an empty ledger.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Food", Color: MustParseColor("#FF5722"), IsExpense: true},
		{ID: "2", Name: "Transport", Color: MustParseColor("#2196F3"), IsExpense: true},
		{ID: "3", Name: "Bills", Color: MustParseColor("#F44336"), IsExpense: true},
		{ID: "4", Name: "Entertainment", Color: MustParseColor("#9C27B0"), IsExpense: true},
		{ID: "5", Name: "Shopping", Color: MustParseColor("#4CAF50"), IsExpense: true},
		{ID: "6", Name: "Health", Color: MustParseColor("#FF9800"), IsExpense: true},
		{ID: "7", Name: "Salary", Color: MustParseColor("#8BC34A"), IsExpense: false},
		{ID: "8", Name: "Gifts", Color: MustParseColor("#3F51B5"), IsExpense: false},
		{ID: "9", Name: "Other Income", Color: MustParseColor("#009688"), IsExpense: false},
	}
}

// FilterCategories returns the categories of the given kind, preserving order.
func FilterCategories(categories []Category, kind CategoryType) []Category {
	var out []Category
	for _, c := range categories {
		if c.Type() == kind {
			out = append(out, c)
		}
	}
	return out
}
