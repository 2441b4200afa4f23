package dailycash

// Entry is a cash-on-hand snapshot for one calendar day. One entry per day;
// recording the same day again replaces the earlier snapshot.
type Entry struct {
	ID     int
	Date   string // YYYY-MM-DD
	Amount int64
	Notes  string
}
