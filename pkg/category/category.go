package category

// Category labels expenses for reporting. Expenses reference categories by id
// only; deleting a category leaves its expenses uncategorized.
type Category struct {
	ID   int
	Name string
}
