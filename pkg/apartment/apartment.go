package apartment

// Apartment is a unit in the building that owes a monthly maintenance fee.
// Inactive apartments keep their history but drop out of new summaries.
type Apartment struct {
	ID         int
	Name       string
	MonthlyFee int64
	Active     bool
}

// Payment records that an apartment settled its fee for one period. The
// (ApartmentID, Period) pair is the natural key; marking the same period
// paid twice overwrites the amount instead of duplicating the row.
type Payment struct {
	ID          int
	ApartmentID int
	Amount      int64
	Period      string // YYYY-MM
}

// Status pairs an apartment with its payment state for one period.
type Status struct {
	Apartment Apartment
	Paid      bool
	Amount    int64
}

// MonthSummary aggregates collection progress for one period across the
// active apartments.
type MonthSummary struct {
	Period     string
	Statuses   []Status
	Collected  int64
	Total      int64
	Progress   int
	PaidCount  int
	TotalCount int
}
