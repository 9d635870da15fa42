package finance

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

const (
	DefaultCurrency = "₹"
	DefaultLanguage = "English"
)

func DefaultBudget() Budget {
	return Budget{
		CategoryFood:           5000,
		CategoryTransportation: 3000,
		CategoryEntertainment:  2000,
		CategoryShopping:       4000,
		CategoryUtilities:      2500,
		CategoryMedical:        1500,
		CategoryEducation:      2000,
		CategoryMiscellaneous:  1000,
	}
}

func DefaultGoals() []SavingsGoal {
	return []SavingsGoal{
		{Name: "Emergency Fund", Target: 50000, Current: 15000, Deadline: "2024-12-31"},
		{Name: "Vacation", Target: 25000, Current: 8000, Deadline: "2024-08-15"},
	}
}

func NewProfile(email string, now time.Time) Profile {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	return Profile{
		Name:        name,
		Email:       email,
		MemberSince: now.Format(DateLayout),
		Currency:    DefaultCurrency,
		Language:    DefaultLanguage,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserKey derives the stable storage identity for an email address.
// Normalization-equivalent spellings map to the same key.
func UserKey(email string) string {
	sum := sha256.Sum256([]byte(NormalizeEmail(email)))
	return hex.EncodeToString(sum[:])
}
