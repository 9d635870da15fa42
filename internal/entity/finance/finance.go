package finance

import (
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the ISO-8601 calendar date form every record carries.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrap(err, "parsing date")
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.New("date must be a string")
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Expense struct {
	Date        Date    `json:"date"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return errors.New("expense date is required")
	}
	if !IsCategory(e.Category) {
		return errors.New("unknown expense category")
	}
	if e.Amount <= 0 {
		return errors.New("expense amount must be positive")
	}
	return nil
}

type Income struct {
	Date      Date    `json:"date"`
	Source    string  `json:"source"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

func (i Income) Validate() error {
	if i.Date.IsZero() {
		return errors.New("income date is required")
	}
	if i.Source == "" {
		return errors.New("income source is required")
	}
	if i.Amount <= 0 {
		return errors.New("income amount must be positive")
	}
	if !IsFrequency(i.Frequency) {
		return errors.New("unknown income frequency")
	}
	return nil
}

// Budget maps a category to its monthly allowance. Updates replace the
// whole mapping, they never merge.
type Budget map[string]float64

func (b Budget) Validate() error {
	for cat, amount := range b {
		if !IsCategory(cat) {
			return errors.Errorf("unknown budget category %q", cat)
		}
		if amount < 0 {
			return errors.Errorf("budget for %s must not be negative", cat)
		}
	}
	return nil
}

type SavingsGoal struct {
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Current  float64 `json:"current"`
	Deadline string  `json:"deadline"`
}

func (g SavingsGoal) Validate() error {
	if g.Name == "" {
		return errors.New("goal name is required")
	}
	if g.Target <= 0 {
		return errors.New("goal target must be positive")
	}
	if g.Current < 0 {
		return errors.New("goal progress must not be negative")
	}
	if _, err := ParseDate(g.Deadline); err != nil {
		return errors.New("goal deadline must be a calendar date")
	}
	return nil
}

// Profile holds account attributes. Email and MemberSince are fixed at
// creation; only Name, Currency and Language may change afterwards.
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	MemberSince string `json:"member_since"`
	Currency    string `json:"currency"`
	Language    string `json:"language"`
}

// UserRecord is the whole per-user aggregate the store persists as a
// single document.
type UserRecord struct {
	Key         string
	Email       string
	Expenses    []Expense
	Income      []Income
	Budget      Budget
	Goals       []SavingsGoal
	Profile     Profile
	LastUpdated time.Time
}

// NewUserRecord builds the aggregate a first-time user starts with.
func NewUserRecord(key, email string, now time.Time) *UserRecord {
	return &UserRecord{
		Key:      key,
		Email:    email,
		Expenses: make([]Expense, 0),
		Income:   make([]Income, 0),
		Budget:   DefaultBudget(),
		Goals:    DefaultGoals(),
		Profile:  NewProfile(email, now),
	}
}

// Clone copies the aggregate so callers cannot alias each other's state.
func (r *UserRecord) Clone() *UserRecord {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Expenses = make([]Expense, len(r.Expenses))
	copy(cp.Expenses, r.Expenses)
	cp.Income = make([]Income, len(r.Income))
	copy(cp.Income, r.Income)
	cp.Goals = make([]SavingsGoal, len(r.Goals))
	copy(cp.Goals, r.Goals)
	if r.Budget != nil {
		cp.Budget = make(Budget, len(r.Budget))
		for cat, amount := range r.Budget {
			cp.Budget[cat] = amount
		}
	}
	return &cp
}
