package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/entity/finance"
)

func newOfflineStore() *UserStore {
	return New(&Handle{})
}

func Test_OnLoadWithStoreDown_ShouldStartNewUserWithDefaults(t *testing.T) {
	s := newOfflineStore()

	rec := s.Load(context.Background(), finance.UserKey("new@example.com"), "new@example.com")

	assert.Len(t, rec.Budget, 8)
	assert.Len(t, rec.Goals, 2)
	assert.Empty(t, rec.Expenses)
	assert.Empty(t, rec.Income)
	assert.Equal(t, "new", rec.Profile.Name)
}

func Test_OnAddExpense_ShouldKeepSessionWorkingWithoutServer(t *testing.T) {
	s := newOfflineStore()
	key := finance.UserKey("new@example.com")
	rec := s.Load(context.Background(), key, "new@example.com")

	err := s.AddExpense(context.Background(), rec, finance.Expense{
		Date:     finance.NewDate(2024, time.January, 5),
		Category: finance.CategoryFood,
		Amount:   250,
	})

	require.NoError(t, err)
	require.Len(t, rec.Expenses, 1)
	assert.Equal(t, 250.0, rec.Expenses[0].Amount)
	assert.False(t, rec.LastUpdated.IsZero())
}

func Test_OnSecondLoad_ShouldSeeEarlierSaves(t *testing.T) {
	s := newOfflineStore()
	key := finance.UserKey("repeat@example.com")
	rec := s.Load(context.Background(), key, "repeat@example.com")

	err := s.AddExpense(context.Background(), rec, finance.Expense{
		Date:     finance.NewDate(2024, time.January, 5),
		Category: finance.CategoryShopping,
		Amount:   999,
	})
	require.NoError(t, err)

	again := s.Load(context.Background(), key, "repeat@example.com")

	require.Len(t, again.Expenses, 1)
	assert.Equal(t, finance.CategoryShopping, again.Expenses[0].Category)
}

func Test_OnLoad_ShouldNotAliasMemoryCopies(t *testing.T) {
	s := newOfflineStore()
	key := finance.UserKey("alias@example.com")
	rec := s.Load(context.Background(), key, "alias@example.com")

	require.NoError(t, s.AddExpense(context.Background(), rec, finance.Expense{
		Date:     finance.NewDate(2024, time.January, 5),
		Category: finance.CategoryFood,
		Amount:   10,
	}))

	other := s.Load(context.Background(), key, "alias@example.com")
	other.Expenses[0].Amount = 777

	fresh := s.Load(context.Background(), key, "alias@example.com")
	assert.Equal(t, 10.0, fresh.Expenses[0].Amount)
}

func TestAddExpense_RejectsInvalidRecords(t *testing.T) {
	s := newOfflineStore()
	rec := s.Load(context.Background(), "k", "k@example.com")

	err := s.AddExpense(context.Background(), rec, finance.Expense{
		Date:     finance.NewDate(2024, time.January, 5),
		Category: "Groceries",
		Amount:   10,
	})

	assert.Error(t, err)
	assert.Empty(t, rec.Expenses)
}

func TestAddIncome_DefaultsFrequencyToOneTime(t *testing.T) {
	s := newOfflineStore()
	rec := s.Load(context.Background(), "k", "k@example.com")

	err := s.AddIncome(context.Background(), rec, finance.Income{
		Date:   finance.NewDate(2024, time.January, 1),
		Source: "Gift",
		Amount: 500,
	})

	require.NoError(t, err)
	require.Len(t, rec.Income, 1)
	assert.Equal(t, finance.FrequencyOneTime, rec.Income[0].Frequency)
}

func TestDeleteAt_RemovesExactlyOneAndShifts(t *testing.T) {
	s := newOfflineStore()
	rec := s.Load(context.Background(), "k", "k@example.com")
	for _, desc := range []string{"first", "second", "third"} {
		require.NoError(t, s.AddExpense(context.Background(), rec, finance.Expense{
			Date:        finance.NewDate(2024, time.January, 5),
			Category:    finance.CategoryFood,
			Amount:      10,
			Description: desc,
		}))
	}

	err := s.DeleteAt(context.Background(), rec, KindExpense, 1)

	require.NoError(t, err)
	require.Len(t, rec.Expenses, 2)
	assert.Equal(t, "first", rec.Expenses[0].Description)
	assert.Equal(t, "third", rec.Expenses[1].Description)
}

func TestDeleteAt_RejectsOutOfRangeIndex(t *testing.T) {
	s := newOfflineStore()
	rec := s.Load(context.Background(), "k", "k@example.com")

	assert.ErrorIs(t, s.DeleteAt(context.Background(), rec, KindExpense, 0), ErrBadIndex)
	assert.ErrorIs(t, s.DeleteAt(context.Background(), rec, KindIncome, -1), ErrBadIndex)
	assert.Error(t, s.DeleteAt(context.Background(), rec, Kind("budget"), 0))
}

func TestDeleteAt_WorksOnIncome(t *testing.T) {
	s := newOfflineStore()
	rec := s.Load(context.Background(), "k", "k@example.com")
	require.NoError(t, s.AddIncome(context.Background(), rec, finance.Income{
		Date: finance.NewDate(2024, time.January, 1), Source: "Salary", Amount: 100,
	}))

	require.NoError(t, s.DeleteAt(context.Background(), rec, KindIncome, 0))

	assert.Empty(t, rec.Income)
}

func TestUpdateBudget_ReplacesWholeMapping(t *testing.T) {
	s := newOfflineStore()
	rec := s.Load(context.Background(), "k", "k@example.com")
	require.Len(t, rec.Budget, 8)

	err := s.UpdateBudget(context.Background(), rec, finance.Budget{finance.CategoryFood: 1000})

	require.NoError(t, err)
	assert.Equal(t, finance.Budget{finance.CategoryFood: 1000}, rec.Budget)
}

func TestUpdateBudget_RejectsBadMappings(t *testing.T) {
	s := newOfflineStore()
	rec := s.Load(context.Background(), "k", "k@example.com")
	before := rec.Budget

	assert.Error(t, s.UpdateBudget(context.Background(), rec, finance.Budget{"Groceries": 100}))
	assert.Error(t, s.UpdateBudget(context.Background(), rec, finance.Budget{finance.CategoryFood: -1}))
	assert.Equal(t, before, rec.Budget)
}

func TestUpdateProfile_TouchesOnlyMutableFields(t *testing.T) {
	s := newOfflineStore()
	rec := s.Load(context.Background(), "k", "sam@example.com")
	email := rec.Profile.Email
	since := rec.Profile.MemberSince

	err := s.UpdateProfile(context.Background(), rec, ProfilePatch{Name: "Sam", Currency: "$"})

	require.NoError(t, err)
	assert.Equal(t, "Sam", rec.Profile.Name)
	assert.Equal(t, "$", rec.Profile.Currency)
	assert.Equal(t, finance.DefaultLanguage, rec.Profile.Language)
	assert.Equal(t, email, rec.Profile.Email)
	assert.Equal(t, since, rec.Profile.MemberSince)
}

func TestUpdateProfile_EmptyPatchChangesNothing(t *testing.T) {
	s := newOfflineStore()
	rec := s.Load(context.Background(), "k", "sam@example.com")
	before := rec.Profile

	require.NoError(t, s.UpdateProfile(context.Background(), rec, ProfilePatch{}))

	assert.Equal(t, before, rec.Profile)
}

func TestAddGoal_AppendsValidatedGoal(t *testing.T) {
	s := newOfflineStore()
	rec := s.Load(context.Background(), "k", "k@example.com")

	err := s.AddGoal(context.Background(), rec, finance.SavingsGoal{
		Name: "Car", Target: 100000, Current: 5000, Deadline: "2025-06-01",
	})

	require.NoError(t, err)
	assert.Len(t, rec.Goals, 3)

	assert.Error(t, s.AddGoal(context.Background(), rec, finance.SavingsGoal{Name: "", Target: 1, Deadline: "2025-06-01"}))
	assert.Len(t, rec.Goals, 3)
}
