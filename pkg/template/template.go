package template

// Template is a reusable prefill pattern for recurring expenses. It is not
// itself a transaction; amount and category are optional suggestions.
type Template struct {
	ID          int
	Name        string
	Description string
	Amount      int64
	CategoryID  int
}
