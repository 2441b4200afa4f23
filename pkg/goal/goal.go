package goal

// Goal is a savings target. Saved tracks progress toward Target and may
// never exceed it. Deadline is an optional YYYY-MM-DD date.
type Goal struct {
	ID       int
	Title    string
	Target   int64
	Saved    int64
	Deadline string
}

// Progress returns the saved/target ratio as a whole percentage, rounded
// half up and clamped to [0, 100]. A zero target reports zero progress.
func (g Goal) Progress() int {
	if g.Target <= 0 {
		return 0
	}
	p := int((g.Saved*200 + g.Target) / (2 * g.Target))
	if p > 100 {
		return 100
	}
	return p
}
