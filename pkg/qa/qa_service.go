package qa

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/domakasa/domakasa/internal/utils"
	"github.com/domakasa/domakasa/pkg/budget"
	"github.com/domakasa/domakasa/pkg/category"
	"github.com/domakasa/domakasa/pkg/expense"
	"github.com/domakasa/domakasa/pkg/goal"
	log "github.com/sirupsen/logrus"
)

var ErrUnknownSuite = errors.New("unknown qa suite")

// Suites lists the smoke suites in their run order.
var Suites = []string{"budgets", "goals", "expenses"}

// qaCategoryName is the category the expense suite creates through the
// regular find-or-create path.
const qaCategoryName = "QA"

// receipt payload for the expense suite; a valid one-element SVG.
var qaReceipt = []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"><rect width="1" height="1"/></svg>`)

// Service exercises the real record services end to end, the way a user
// session would, and can remove everything it created afterwards.
type Service interface {
	Run(ctx context.Context, suite string) (SuiteResult, error)
	RunAll(ctx context.Context) ([]SuiteResult, error)
	// Cleanup deletes the marked records a suite left behind and reports
	// how many went away.
	Cleanup(ctx context.Context, suite string) (int, error)
}

type ServiceImpl struct {
	budgetService   budget.Service
	goalService     goal.Service
	expenseService  expense.Service
	categoryService category.Service
	clock           utils.Clock
}

func NewQAService(
	budgetService budget.Service,
	goalService goal.Service,
	expenseService expense.Service,
	categoryService category.Service,
	clock utils.Clock,
) *ServiceImpl {
	return &ServiceImpl{
		budgetService:   budgetService,
		goalService:     goalService,
		expenseService:  expenseService,
		categoryService: categoryService,
		clock:           clock,
	}
}

func (s *ServiceImpl) RunAll(ctx context.Context) ([]SuiteResult, error) {
	results := make([]SuiteResult, 0, len(Suites))
	for _, suite := range Suites {
		result, err := s.Run(ctx, suite)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *ServiceImpl) Run(ctx context.Context, suite string) (SuiteResult, error) {
	log.Infof("running qa suite %s", suite)
	switch suite {
	case "budgets":
		return s.runBudgets(ctx), nil
	case "goals":
		return s.runGoals(ctx), nil
	case "expenses":
		return s.runExpenses(ctx), nil
	default:
		return SuiteResult{}, ErrUnknownSuite
	}
}

func (s *ServiceImpl) runBudgets(ctx context.Context) SuiteResult {
	r := newRecorder("budgets")

	created, err := s.budgetService.Create(ctx, budget.Budget{Amount: 12345, Note: Marker + " тестова вноска"})
	if !r.step("create a fund record of 123.45", err, "") {
		return r.result
	}
	r.created(created.ID)

	all, err := s.budgetService.GetAll(ctx)
	if !r.step("list fund records", err, "") {
		return r.result
	}
	r.check("read back the stored amount", containsBudget(all, created.ID, 12345),
		fmt.Sprintf("record %d with amount 12345", created.ID))
	return r.result
}

func (s *ServiceImpl) runGoals(ctx context.Context) SuiteResult {
	r := newRecorder("goals")

	created, err := s.goalService.Create(ctx, goal.Goal{Title: Marker + " Цел", Target: 50000})
	if !r.step("create a goal with a 500.00 target", err, "") {
		return r.result
	}
	r.created(created.ID)

	created.Saved = 15000
	updated, err := s.goalService.Update(ctx, created)
	if !r.step("move saved to 150.00", err, "") {
		return r.result
	}
	r.check("update reached the stored goal", updated, fmt.Sprintf("goal %d", created.ID))

	all, err := s.goalService.GetAll(ctx)
	if !r.step("list goals", err, "") {
		return r.result
	}
	r.check("read back saved and progress", containsGoal(all, created.ID, 15000, 30),
		fmt.Sprintf("goal %d with saved 15000 and progress 30", created.ID))
	return r.result
}

func (s *ServiceImpl) runExpenses(ctx context.Context) SuiteResult {
	r := newRecorder("expenses")

	qaCategory, err := s.categoryService.Ensure(ctx, qaCategoryName)
	if !r.step("ensure the QA category exists", err, "") {
		return r.result
	}

	day := s.clock.Now().Format("2006-01-02")
	created, err := s.expenseService.Create(ctx, expense.Expense{
		Amount:      999,
		IncurredAt:  day,
		Description: Marker + " тестов разход",
		CategoryID:  qaCategory.ID,
	}, &expense.ReceiptUpload{
		Filename:    "qa-receipt.svg",
		ContentType: "image/svg+xml",
		Content:     qaReceipt,
	})
	if !r.step("create a 9.99 expense with a receipt", err, "") {
		return r.result
	}
	r.created(created.ID)
	r.check("receipt was attached", created.ReceiptPath != "", created.ReceiptPath)

	url, err := s.expenseService.ReceiptURL(ctx, created.ID)
	if !r.step("resolve the receipt URL", err, "") {
		return r.result
	}
	r.check("receipt URL is served", url != "", url)

	listed, err := s.expenseService.GetForRange(ctx, day, day)
	if !r.step("list expenses for the day", err, "") {
		return r.result
	}
	r.check("expense shows up in the day's list", containsExpense(listed, created.ID),
		fmt.Sprintf("expense %d", created.ID))
	return r.result
}

func (s *ServiceImpl) Cleanup(ctx context.Context, suite string) (int, error) {
	log.Infof("cleaning up qa suite %s", suite)
	switch suite {
	case "budgets":
		return s.cleanupBudgets(ctx)
	case "goals":
		return s.cleanupGoals(ctx)
	case "expenses":
		return s.cleanupExpenses(ctx)
	default:
		return 0, ErrUnknownSuite
	}
}

func (s *ServiceImpl) cleanupBudgets(ctx context.Context) (int, error) {
	all, err := s.budgetService.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, b := range all {
		if !strings.HasPrefix(b.Note, Marker) {
			continue
		}
		if _, err := s.budgetService.Delete(ctx, b.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (s *ServiceImpl) cleanupGoals(ctx context.Context) (int, error) {
	all, err := s.goalService.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, g := range all {
		if !strings.HasPrefix(g.Title, Marker) {
			continue
		}
		if _, err := s.goalService.Delete(ctx, g.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (s *ServiceImpl) cleanupExpenses(ctx context.Context) (int, error) {
	all, err := s.expenseService.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, e := range all {
		if !strings.HasPrefix(e.Description, Marker) {
			continue
		}
		// receipt removal rides on the expense delete
		if _, err := s.expenseService.Delete(ctx, e.ID); err != nil {
			return removed, err
		}
		removed++
	}

	categories, err := s.categoryService.GetAll(ctx)
	if err != nil {
		return removed, err
	}
	for _, c := range categories {
		if c.Name != qaCategoryName {
			continue
		}
		if _, err := s.categoryService.Delete(ctx, c.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

type recorder struct {
	result SuiteResult
}

func newRecorder(suite string) *recorder {
	return &recorder{result: SuiteResult{Suite: suite, Passed: true}}
}

func (r *recorder) step(name string, err error, detail string) bool {
	if err != nil {
		r.result.Steps = append(r.result.Steps, Step{Name: name, Status: StepFailed, Detail: err.Error()})
		r.result.Passed = false
		return false
	}
	r.result.Steps = append(r.result.Steps, Step{Name: name, Status: StepPassed, Detail: detail})
	return true
}

func (r *recorder) check(name string, ok bool, detail string) bool {
	status := StepPassed
	if !ok {
		status = StepFailed
		r.result.Passed = false
	}
	r.result.Steps = append(r.result.Steps, Step{Name: name, Status: status, Detail: detail})
	return ok
}

func (r *recorder) created(id int) {
	r.result.CreatedIds = append(r.result.CreatedIds, id)
}

func containsBudget(budgets []budget.Budget, id int, amount int64) bool {
	for _, b := range budgets {
		if b.ID == id && b.Amount == amount {
			return true
		}
	}
	return false
}

func containsGoal(goals []goal.Goal, id int, saved int64, progress int) bool {
	for _, g := range goals {
		if g.ID == id && g.Saved == saved && g.Progress() == progress {
			return true
		}
	}
	return false
}

func containsExpense(expenses []expense.Expense, id int) bool {
	for _, e := range expenses {
		if e.ID == id {
			return true
		}
	}
	return false
}
