package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/entity/finance"
)

var ErrEmptyEmail = errors.New("email is required")

type userStore interface {
	Load(ctx context.Context, key, email string) *finance.UserRecord
	Available() bool
}

// Session ties an opaque token to a loaded user aggregate. Holding the
// token is the whole authentication story here.
type Session struct {
	Token  string
	Key    string
	Email  string
	Record *finance.UserRecord
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    userStore
}

func NewManager(store userStore) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
	}
}

// Login normalizes the email, loads the user's aggregate and opens a
// session for it. Two spellings of one address land on the same data.
func (m *Manager) Login(ctx context.Context, email string) (*Session, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "session.login")
	defer span.Finish()

	start := time.Now()
	sess, err := m.login(ctx, email)
	elapsed := time.Since(start)

	observeLogin(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return sess, err
}

func (m *Manager) login(ctx context.Context, email string) (*Session, error) {
	email = finance.NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmptyEmail
	}

	key := finance.UserKey(email)
	sess := &Session{
		Token:  uuid.NewString(),
		Key:    key,
		Email:  email,
		Record: m.store.Load(ctx, key, email),
	}

	m.mu.Lock()
	m.sessions[sess.Token] = sess
	m.mu.Unlock()

	return sess, nil
}

func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[token]
	return sess, ok
}

func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// Available reports whether sessions are backed by the document store or
// running degraded on in-process memory.
func (m *Manager) Available() bool {
	return m.store.Available()
}
