package store

import (
	"time"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/entity/finance"
)

// Persisted document shape. Calendar dates travel as ISO-8601 strings,
// only last_updated is a native datetime.
type userDocument struct {
	UserID       string             `bson:"user_id"`
	Email        string             `bson:"email"`
	Expenses     []expenseDocument  `bson:"expenses"`
	Income       []incomeDocument   `bson:"income"`
	Budget       map[string]float64 `bson:"budget"`
	SavingsGoals []goalDocument     `bson:"savings_goals"`
	UserProfile  *profileDocument   `bson:"user_profile"`
	LastUpdated  time.Time          `bson:"last_updated"`
}

type expenseDocument struct {
	Date        string  `bson:"date"`
	Category    string  `bson:"category"`
	Amount      float64 `bson:"amount"`
	Description string  `bson:"description"`
}

type incomeDocument struct {
	Date      string  `bson:"date"`
	Source    string  `bson:"source"`
	Amount    float64 `bson:"amount"`
	Frequency string  `bson:"frequency"`
}

type goalDocument struct {
	Name     string  `bson:"name"`
	Target   float64 `bson:"target"`
	Current  float64 `bson:"current"`
	Deadline string  `bson:"deadline"`
}

type profileDocument struct {
	Name        string `bson:"name"`
	Email       string `bson:"email"`
	MemberSince string `bson:"member_since"`
	Currency    string `bson:"currency"`
	Language    string `bson:"language"`
}

func encodeRecord(rec *finance.UserRecord) userDocument {
	doc := userDocument{
		UserID:       rec.Key,
		Email:        rec.Email,
		Expenses:     make([]expenseDocument, 0, len(rec.Expenses)),
		Income:       make([]incomeDocument, 0, len(rec.Income)),
		Budget:       rec.Budget,
		SavingsGoals: make([]goalDocument, 0, len(rec.Goals)),
		UserProfile: &profileDocument{
			Name:        rec.Profile.Name,
			Email:       rec.Profile.Email,
			MemberSince: rec.Profile.MemberSince,
			Currency:    rec.Profile.Currency,
			Language:    rec.Profile.Language,
		},
		LastUpdated: rec.LastUpdated,
	}
	if doc.Budget == nil {
		doc.Budget = map[string]float64{}
	}
	for _, e := range rec.Expenses {
		doc.Expenses = append(doc.Expenses, expenseDocument{
			Date:        e.Date.String(),
			Category:    e.Category,
			Amount:      e.Amount,
			Description: e.Description,
		})
	}
	for _, i := range rec.Income {
		doc.Income = append(doc.Income, incomeDocument{
			Date:      i.Date.String(),
			Source:    i.Source,
			Amount:    i.Amount,
			Frequency: i.Frequency,
		})
	}
	for _, g := range rec.Goals {
		doc.SavingsGoals = append(doc.SavingsGoals, goalDocument{
			Name:     g.Name,
			Target:   g.Target,
			Current:  g.Current,
			Deadline: g.Deadline,
		})
	}
	return doc
}

// decodeRecord turns a stored document back into the aggregate. Fields
// absent from the document get their documented defaults here, never
// downstream. An unreadable date decodes to the zero Date instead of
// failing the whole load.
func decodeRecord(doc userDocument, email string, now time.Time) *finance.UserRecord {
	if doc.Email != "" {
		email = doc.Email
	}

	rec := &finance.UserRecord{
		Key:         doc.UserID,
		Email:       email,
		Expenses:    make([]finance.Expense, 0, len(doc.Expenses)),
		Income:      make([]finance.Income, 0, len(doc.Income)),
		LastUpdated: doc.LastUpdated,
	}

	for _, e := range doc.Expenses {
		date, _ := finance.ParseDate(e.Date)
		rec.Expenses = append(rec.Expenses, finance.Expense{
			Date:        date,
			Category:    e.Category,
			Amount:      e.Amount,
			Description: e.Description,
		})
	}
	for _, i := range doc.Income {
		date, _ := finance.ParseDate(i.Date)
		frequency := i.Frequency
		if frequency == "" {
			frequency = finance.FrequencyOneTime
		}
		rec.Income = append(rec.Income, finance.Income{
			Date:      date,
			Source:    i.Source,
			Amount:    i.Amount,
			Frequency: frequency,
		})
	}

	if doc.Budget != nil {
		rec.Budget = finance.Budget(doc.Budget)
	} else {
		rec.Budget = finance.DefaultBudget()
	}

	if doc.SavingsGoals != nil {
		rec.Goals = make([]finance.SavingsGoal, 0, len(doc.SavingsGoals))
		for _, g := range doc.SavingsGoals {
			rec.Goals = append(rec.Goals, finance.SavingsGoal{
				Name:     g.Name,
				Target:   g.Target,
				Current:  g.Current,
				Deadline: g.Deadline,
			})
		}
	} else {
		rec.Goals = finance.DefaultGoals()
	}

	if doc.UserProfile != nil {
		rec.Profile = finance.Profile{
			Name:        doc.UserProfile.Name,
			Email:       doc.UserProfile.Email,
			MemberSince: doc.UserProfile.MemberSince,
			Currency:    doc.UserProfile.Currency,
			Language:    doc.UserProfile.Language,
		}
	} else {
		rec.Profile = finance.NewProfile(email, now)
	}

	return rec
}
