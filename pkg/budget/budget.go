package budget

// Budget is a plain money-in record for the common fund, the counterpart
// of an expense. Note is optional free text.
type Budget struct {
	ID     int
	Amount int64
	Note   string
}
