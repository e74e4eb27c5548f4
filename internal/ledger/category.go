package ledger

// Category is an expense category. The set is closed and not user-extensible.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryEntertainment Category = "entertainment"
	CategoryUtilities     Category = "utilities"
	CategoryOther         Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryHealth,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryFood:          "Food & Dining",
	CategoryTransport:     "Transport",
	CategoryShopping:      "Shopping",
	CategoryHealth:        "Health",
	CategoryEntertainment: "Entertainment",
	CategoryUtilities:     "Utilities",
	CategoryOther:         "Other",
}

// Label returns the category's display label. Unknown values render as Other.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// Known reports whether c is a member of the closed category set.
func (c Category) Known() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory maps a raw string onto the category set; the boolean is false
// for values outside the set.
func ParseCategory(raw string) (Category, bool) {
	c := Category(raw)
	return c, c.Known()
}
