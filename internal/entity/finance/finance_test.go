package finance

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserKey_SameEmailGivesSameKey(t *testing.T) {
	first := UserKey("person@example.com")
	second := UserKey("person@example.com")

	assert.Equal(t, first, second)
}

func TestUserKey_NormalizesCaseAndSpaces(t *testing.T) {
	plain := UserKey("person@example.com")

	assert.Equal(t, plain, UserKey("  Person@Example.COM  "))
	assert.Equal(t, plain, UserKey("PERSON@EXAMPLE.COM"))
	assert.NotEqual(t, plain, UserKey("other@example.com"))
}

func TestUserKey_IsLowercaseHex(t *testing.T) {
	key := UserKey("person@example.com")

	assert.Len(t, key, 64)
	for _, r := range key {
		ok := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
		assert.True(t, ok, "unexpected rune %q", r)
	}
}

func TestDefaultBudget_HasAllCategories(t *testing.T) {
	budget := DefaultBudget()

	assert.Len(t, budget, 8)
	for _, cat := range Categories {
		assert.Contains(t, budget, cat)
	}
	assert.Equal(t, 5000.0, budget[CategoryFood])
	assert.Equal(t, 1000.0, budget[CategoryMiscellaneous])
}

func TestDefaultGoals_SeedsTwoGoals(t *testing.T) {
	goals := DefaultGoals()

	require.Len(t, goals, 2)
	assert.Equal(t, "Emergency Fund", goals[0].Name)
	assert.Equal(t, 50000.0, goals[0].Target)
	assert.Equal(t, "Vacation", goals[1].Name)
	assert.Equal(t, "2024-08-15", goals[1].Deadline)
}

func TestNewProfile_DerivesNameFromEmail(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

	profile := NewProfile("sam@example.com", now)

	assert.Equal(t, "sam", profile.Name)
	assert.Equal(t, "sam@example.com", profile.Email)
	assert.Equal(t, "2024-03-10", profile.MemberSince)
	assert.Equal(t, DefaultCurrency, profile.Currency)
	assert.Equal(t, DefaultLanguage, profile.Language)
}

func TestNewUserRecord_StartsWithDefaults(t *testing.T) {
	rec := NewUserRecord("key", "sam@example.com", time.Now())

	assert.Empty(t, rec.Expenses)
	assert.Empty(t, rec.Income)
	assert.Len(t, rec.Budget, 8)
	assert.Len(t, rec.Goals, 2)
	assert.Equal(t, "sam", rec.Profile.Name)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	day := NewDate(2024, time.January, 5)

	raw, err := json.Marshal(day)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-05"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, day.Equal(back.Time))
}

func TestParseDate_RejectsGarbage(t *testing.T) {
	_, err := ParseDate("05.01.2024")

	assert.Error(t, err)
}

func TestExpenseValidate(t *testing.T) {
	day := NewDate(2024, time.January, 5)

	cases := []struct {
		name    string
		expense Expense
		wantErr bool
	}{
		{"valid", Expense{Date: day, Category: CategoryFood, Amount: 250}, false},
		{"zero amount", Expense{Date: day, Category: CategoryFood, Amount: 0}, true},
		{"negative amount", Expense{Date: day, Category: CategoryFood, Amount: -5}, true},
		{"unknown category", Expense{Date: day, Category: "Groceries", Amount: 10}, true},
		{"missing date", Expense{Category: CategoryFood, Amount: 10}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.expense.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIncomeValidate(t *testing.T) {
	day := NewDate(2024, time.January, 5)

	cases := []struct {
		name    string
		income  Income
		wantErr bool
	}{
		{"valid", Income{Date: day, Source: "Salary", Amount: 50000, Frequency: FrequencyMonthly}, false},
		{"missing source", Income{Date: day, Amount: 50000, Frequency: FrequencyMonthly}, true},
		{"bad frequency", Income{Date: day, Source: "Salary", Amount: 50000, Frequency: "Daily"}, true},
		{"zero amount", Income{Date: day, Source: "Salary", Frequency: FrequencyMonthly}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.income.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudgetValidate(t *testing.T) {
	assert.NoError(t, Budget{CategoryFood: 1000}.Validate())
	assert.Error(t, Budget{"Groceries": 1000}.Validate())
	assert.Error(t, Budget{CategoryFood: -1}.Validate())
}

func TestSavingsGoalValidate(t *testing.T) {
	valid := SavingsGoal{Name: "Car", Target: 100000, Current: 0, Deadline: "2025-06-01"}

	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())

	badTarget := valid
	badTarget.Target = 0
	assert.Error(t, badTarget.Validate())

	badDeadline := valid
	badDeadline.Deadline = "June 2025"
	assert.Error(t, badDeadline.Validate())
}
