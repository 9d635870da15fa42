package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/entity/finance"
)

type fakeStore struct {
	loadFn      func(ctx context.Context, key, email string) *finance.UserRecord
	availableFn func() bool
}

func (f *fakeStore) Load(ctx context.Context, key, email string) *finance.UserRecord {
	if f.loadFn != nil {
		return f.loadFn(ctx, key, email)
	}
	return finance.NewUserRecord(key, email, time.Now())
}

func (f *fakeStore) Available() bool {
	if f.availableFn != nil {
		return f.availableFn()
	}
	return false
}

func Test_OnLogin_ShouldNormalizeEmailAndDeriveKey(t *testing.T) {
	var loadedKey, loadedEmail string
	m := NewManager(&fakeStore{
		loadFn: func(_ context.Context, key, email string) *finance.UserRecord {
			loadedKey, loadedEmail = key, email
			return finance.NewUserRecord(key, email, time.Now())
		},
	})

	sess, err := m.Login(context.Background(), "  Sam@Example.COM ")

	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", sess.Email)
	assert.Equal(t, finance.UserKey("sam@example.com"), sess.Key)
	assert.Equal(t, sess.Key, loadedKey)
	assert.Equal(t, "sam@example.com", loadedEmail)
	assert.NotEmpty(t, sess.Token)
	assert.NotNil(t, sess.Record)
}

func Test_OnLogin_ShouldRejectEmptyEmail(t *testing.T) {
	m := NewManager(&fakeStore{})

	_, err := m.Login(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyEmail)
	assert.Zero(t, m.Count())
}

func Test_OnLogin_TwoSpellingsShareTheSameKey(t *testing.T) {
	m := NewManager(&fakeStore{})

	first, err := m.Login(context.Background(), "sam@example.com")
	require.NoError(t, err)
	second, err := m.Login(context.Background(), "SAM@EXAMPLE.COM")
	require.NoError(t, err)

	assert.Equal(t, first.Key, second.Key)
	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, 2, m.Count())
}

func TestGet_UnknownTokenMisses(t *testing.T) {
	m := NewManager(&fakeStore{})

	_, ok := m.Get("nope")

	assert.False(t, ok)
}

func TestGet_ReturnsTheOpenSession(t *testing.T) {
	m := NewManager(&fakeStore{})
	sess, err := m.Login(context.Background(), "sam@example.com")
	require.NoError(t, err)

	got, ok := m.Get(sess.Token)

	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestLogout_RemovesTheSession(t *testing.T) {
	m := NewManager(&fakeStore{})
	sess, err := m.Login(context.Background(), "sam@example.com")
	require.NoError(t, err)

	m.Logout(sess.Token)

	_, ok := m.Get(sess.Token)
	assert.False(t, ok)
	assert.Zero(t, m.Count())
}

func TestAvailable_ForwardsStoreState(t *testing.T) {
	online := NewManager(&fakeStore{availableFn: func() bool { return true }})
	offline := NewManager(&fakeStore{})

	assert.True(t, online.Available())
	assert.False(t, offline.Available())
}
