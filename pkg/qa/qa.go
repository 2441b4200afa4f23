package qa

// Marker prefixes every record the smoke suites create, so cleanup can
// find its own artifacts and nothing else.
const Marker = "[QA]"

type StepStatus string

const (
	StepPassed StepStatus = "passed"
	StepFailed StepStatus = "failed"
)

// Step is one check inside a suite run, with what it observed.
type Step struct {
	Name   string
	Status StepStatus
	Detail string
}

// SuiteResult is the outcome of one suite: its steps in execution order
// and the ids of the records it created.
type SuiteResult struct {
	Suite      string
	Passed     bool
	Steps      []Step
	CreatedIds []int
}
