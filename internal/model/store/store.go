package store

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/entity/finance"
	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/logger"
)

type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

var ErrBadIndex = errors.New("no record at that position")

// ProfilePatch carries the profile fields a user may change. Zero-valued
// fields are left as they are; email and member-since can never change.
type ProfilePatch struct {
	Name     string
	Currency string
	Language string
}

// UserStore persists whole per-user aggregates. Every mutation saves the
// aggregate; when the document store is down the session keeps working
// on in-process memory and nothing surfaces to the caller.
type UserStore struct {
	handle *Handle
	mem    *memStore
}

func New(handle *Handle) *UserStore {
	return &UserStore{handle: handle, mem: newMemStore()}
}

func (s *UserStore) Available() bool {
	return s.handle.Available()
}

// Load fetches the aggregate for key. It never fails: a missing document
// means a fresh account with defaults (not persisted until the first
// mutation), and a lookup or decode error falls back to the memory copy.
func (s *UserStore) Load(ctx context.Context, key, email string) *finance.UserRecord {
	span, ctx := opentracing.StartSpanFromContext(ctx, "store.load")
	defer span.Finish()

	if s.handle.Available() {
		rec, err := s.loadDocument(ctx, key, email)
		if err == nil {
			return rec
		}
		ext.Error.Set(span, true)
		logger.Warn("load failed, serving from memory", zap.Error(err), zap.String("user", key))
	}

	if rec, ok := s.mem.get(key); ok {
		return rec
	}
	return finance.NewUserRecord(key, email, time.Now())
}

func (s *UserStore) loadDocument(ctx context.Context, key, email string) (*finance.UserRecord, error) {
	var doc userDocument
	err := s.handle.users.FindOne(ctx, bson.M{"user_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return finance.NewUserRecord(key, email, time.Now()), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return decodeRecord(doc, email, time.Now()), nil
}

// save replaces the whole document. A persistence failure is logged and
// swallowed so the session stays usable; the memory copy is written
// either way.
func (s *UserStore) save(ctx context.Context, rec *finance.UserRecord) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "store.save")
	defer span.Finish()

	rec.LastUpdated = time.Now()

	if s.handle.Available() {
		doc := encodeRecord(rec)
		opts := options.Replace().SetUpsert(true)
		if _, err := s.handle.users.ReplaceOne(ctx, bson.M{"user_id": rec.Key}, doc, opts); err != nil {
			ext.Error.Set(span, true)
			logger.Warn("save failed, keeping session in memory", zap.Error(err), zap.String("user", rec.Key))
		}
	}

	s.mem.put(rec.Key, rec)
}

func (s *UserStore) AddExpense(ctx context.Context, rec *finance.UserRecord, exp finance.Expense) error {
	if err := exp.Validate(); err != nil {
		return err
	}
	rec.Expenses = append(rec.Expenses, exp)
	s.save(ctx, rec)
	return nil
}

func (s *UserStore) AddIncome(ctx context.Context, rec *finance.UserRecord, inc finance.Income) error {
	if inc.Frequency == "" {
		inc.Frequency = finance.FrequencyOneTime
	}
	if err := inc.Validate(); err != nil {
		return err
	}
	rec.Income = append(rec.Income, inc)
	s.save(ctx, rec)
	return nil
}

// DeleteAt removes the record at a zero-based position in the expense or
// income sequence. Later records shift down by one.
func (s *UserStore) DeleteAt(ctx context.Context, rec *finance.UserRecord, kind Kind, index int) error {
	switch kind {
	case KindExpense:
		if index < 0 || index >= len(rec.Expenses) {
			return ErrBadIndex
		}
		rec.Expenses = append(rec.Expenses[:index], rec.Expenses[index+1:]...)
	case KindIncome:
		if index < 0 || index >= len(rec.Income) {
			return ErrBadIndex
		}
		rec.Income = append(rec.Income[:index], rec.Income[index+1:]...)
	default:
		return errors.Errorf("unknown record kind %q", kind)
	}
	s.save(ctx, rec)
	return nil
}

// UpdateBudget replaces the whole budget mapping. It never merges.
func (s *UserStore) UpdateBudget(ctx context.Context, rec *finance.UserRecord, budget finance.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}
	if budget == nil {
		budget = finance.Budget{}
	}
	rec.Budget = budget
	s.save(ctx, rec)
	return nil
}

func (s *UserStore) UpdateProfile(ctx context.Context, rec *finance.UserRecord, patch ProfilePatch) error {
	if patch.Name != "" {
		rec.Profile.Name = patch.Name
	}
	if patch.Currency != "" {
		rec.Profile.Currency = patch.Currency
	}
	if patch.Language != "" {
		rec.Profile.Language = patch.Language
	}
	s.save(ctx, rec)
	return nil
}

func (s *UserStore) AddGoal(ctx context.Context, rec *finance.UserRecord, goal finance.SavingsGoal) error {
	if err := goal.Validate(); err != nil {
		return err
	}
	rec.Goals = append(rec.Goals, goal)
	s.save(ctx, rec)
	return nil
}
