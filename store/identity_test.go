package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdentityStore() (*IdentityStore, *MemoryLedger) {
	ledger := NewMemoryLedger()
	return NewIdentityStore(ledger), ledger
}

func TestRegisterAndLogin(t *testing.T) {
	store, _ := newTestIdentityStore()

	session, err := store.Register("alex", "0771234567", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alex", session.Username)
	assert.Equal(t, "0771234567", session.Phone)
	assert.False(t, session.IsAdmin)

	// Registration establishes a session immediately.
	got, loggedIn := store.Session()
	require.True(t, loggedIn)
	assert.Equal(t, "alex", got.Username)

	store.Logout()
	_, loggedIn = store.Session()
	assert.False(t, loggedIn)

	// Login is case-insensitive on username, exact on password.
	session, err = store.Login("ALEX", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alex", session.Username, "session should carry the stored casing")

	_, err = store.Login("alex", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = store.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterUniqueness(t *testing.T) {
	store, _ := newTestIdentityStore()

	_, err := store.Register("alex", "0771234567", "secret123")
	require.NoError(t, err)

	// Username collision is case-insensitive.
	_, err = store.Register("Alex", "0779999999", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// Phone collision is exact.
	_, err = store.Register("sam", "0771234567", "other")
	assert.ErrorIs(t, err, ErrPhoneTaken)

	_, err = store.Register("sam", "0779999999", "other")
	assert.NoError(t, err)
	assert.Len(t, store.Accounts(), 2)
}

func TestAdminLoginNotPersisted(t *testing.T) {
	store, _ := newTestIdentityStore()

	session, err := store.Login(adminUsername, adminPassword)
	require.NoError(t, err)
	assert.True(t, session.IsAdmin)
	assert.Equal(t, adminUsername, session.Username)

	// The admin pair is matched exactly, never case-folded.
	_, err = store.Login("ADMIN@ADSERVER70385", adminPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Admin never appears in the accounts document.
	assert.Empty(t, store.Accounts())

	got, loggedIn := store.Session()
	require.True(t, loggedIn)
	assert.True(t, got.IsAdmin)
}

func TestSessionCorruptReadsAsLoggedOut(t *testing.T) {
	store, ledger := newTestIdentityStore()

	_, err := store.Register("alex", "0771234567", "secret123")
	require.NoError(t, err)

	ledger.Corrupt(KeySession)

	_, loggedIn := store.Session()
	assert.False(t, loggedIn, "corrupt session should read as logged out")

	// The corrupt record is cleaned up, not left in place.
	var raw any
	assert.False(t, ledger.Read(KeySession, &raw))

	// The account itself is untouched.
	_, found := store.AccountByUsername("alex")
	assert.True(t, found)
}

func TestDeleteAccount(t *testing.T) {
	store, _ := newTestIdentityStore()

	_, err := store.Register("alex", "0771234567", "secret123")
	require.NoError(t, err)

	assert.True(t, store.DeleteAccount("ALEX"), "deletion matches case-insensitively")
	assert.False(t, store.DeleteAccount("alex"), "second delete finds nothing")
	assert.Empty(t, store.Accounts())
}
