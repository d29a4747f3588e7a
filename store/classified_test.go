package store

import (
	"testing"
	"time"

	"adserver/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdStore() (*ClassifiedAdStore, *MemoryLedger) {
	ledger := NewMemoryLedger()
	return NewClassifiedAdStore(ledger), ledger
}

func testDraft(username string) AdDraft {
	return AdDraft{
		Username:    username,
		Category:    "personal",
		Title:       "Friendly meetup Colombo",
		Description: "Looking for someone to spend time with this weekend in town.",
		District:    "Colombo",
		City:        "Colombo 03",
		Contact:     "0771234567",
	}
}

func TestAddStampsDerivedTimestamps(t *testing.T) {
	store, _ := newTestAdStore()

	before := time.Now()
	ad := store.Add(testDraft("alex"))
	after := time.Now()

	assert.NotEmpty(t, ad.ID)
	assert.False(t, ad.CreatedAt.Before(before) || ad.CreatedAt.After(after))

	require.NotNil(t, ad.ExpiresAt)
	require.NotNil(t, ad.EditLockedUntil)
	assert.Equal(t, time.Duration(Limits.AdLifetimeDays)*24*time.Hour, ad.ExpiresAt.Sub(ad.CreatedAt))
	assert.Equal(t, time.Duration(Limits.EditLockDays)*24*time.Hour, ad.EditLockedUntil.Sub(ad.CreatedAt))

	// Derived fields survive the round trip through the ledger.
	stored, found := store.GetByID(ad.ID)
	require.True(t, found)
	assert.True(t, stored.ExpiresAt.Equal(*ad.ExpiresAt))
	assert.True(t, stored.EditLockedUntil.Equal(*ad.EditLockedUntil))
}

func TestLockAndExpiryWindows(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expires := created.Add(time.Duration(Limits.AdLifetimeDays) * 24 * time.Hour)
	locked := created.Add(time.Duration(Limits.EditLockDays) * 24 * time.Hour)
	ad := models.ClassifiedAd{ID: "ua_x", CreatedAt: created, ExpiresAt: &expires, EditLockedUntil: &locked}

	day := 24 * time.Hour

	// 13 days in: still locked, still active.
	assert.True(t, AdLockedAt(ad, created.Add(13*day)))
	assert.False(t, AdExpiredAt(ad, created.Add(13*day)))

	// 15 days in: editable, still active.
	assert.False(t, AdLockedAt(ad, created.Add(15*day)))
	assert.False(t, AdExpiredAt(ad, created.Add(15*day)))

	// 61 days in: expired.
	assert.True(t, AdExpiredAt(ad, created.Add(61*day)))

	// Exact boundaries: lock ends at its instant, expiry begins at its instant.
	assert.False(t, AdLockedAt(ad, locked))
	assert.True(t, AdExpiredAt(ad, expires))
}

func TestPredicatesDefaultWhenTimestampsMissing(t *testing.T) {
	now := time.Now()
	bare := models.ClassifiedAd{ID: "ua_old"}

	// No expiresAt means never expired; no editLockedUntil means never locked.
	assert.False(t, AdExpiredAt(bare, now))
	assert.False(t, AdLockedAt(bare, now))
}

func TestCountActiveByUserExcludesExpired(t *testing.T) {
	store, ledger := newTestAdStore()

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	ads := []models.ClassifiedAd{
		{ID: "ua_1", Username: "alex", ExpiresAt: &future},
		{ID: "ua_2", Username: "alex", ExpiresAt: &past},
		{ID: "ua_3", Username: "Alex", ExpiresAt: &future}, // same user, different casing
		{ID: "ua_4", Username: "alex"},                     // no expiry: counted as active
		{ID: "ua_5", Username: "sam", ExpiresAt: &future},
	}
	require.NoError(t, ledger.Write(KeyUserAds, ads))

	assert.Equal(t, 3, store.CountActiveByUser("alex"))
	assert.Equal(t, 1, store.CountActiveByUser("sam"))
	assert.Equal(t, 0, store.CountActiveByUser("nobody"))

	// Expired ads stay readable; expiry is not deletion.
	assert.Len(t, store.GetByUser("alex"), 4)
}

func TestUpdateIsUnconditional(t *testing.T) {
	store, _ := newTestAdStore()
	ad := store.Add(testDraft("alex"))

	// The ad is inside its edit lock window; the store updates anyway.
	assert.True(t, store.IsLocked(ad))

	title := "Updated title here"
	require.True(t, store.Update(ad.ID, AdUpdate{Title: &title}))

	got, found := store.GetByID(ad.ID)
	require.True(t, found)
	assert.Equal(t, "Updated title here", got.Title)
	assert.Equal(t, ad.Description, got.Description, "unset fields stay untouched")
	assert.True(t, got.CreatedAt.Equal(ad.CreatedAt), "derived timestamps never change on update")

	assert.False(t, store.Update("ua_missing", AdUpdate{Title: &title}))
}

func TestDelete(t *testing.T) {
	store, _ := newTestAdStore()
	ad := store.Add(testDraft("alex"))

	assert.True(t, store.Delete(ad.ID))
	assert.False(t, store.Delete(ad.ID))
	_, found := store.GetByID(ad.ID)
	assert.False(t, found)
}

func TestGetAllFallsBackOnCorruptDocument(t *testing.T) {
	store, ledger := newTestAdStore()
	store.Add(testDraft("alex"))

	ledger.Corrupt(KeyUserAds)
	assert.Empty(t, store.GetAll(), "corrupt document reads as the empty collection")

	// The store keeps working after the fallback.
	store.Add(testDraft("sam"))
	assert.Len(t, store.GetAll(), 1)
}

func TestContactPattern(t *testing.T) {
	valid := []string{"0771234567", "+94771234567", "94771234567"}
	for _, number := range valid {
		assert.True(t, ContactPattern.MatchString(number), number)
	}
	invalid := []string{"077123456", "07712345678", "12345", "+9477123456", "hello"}
	for _, number := range invalid {
		assert.False(t, ContactPattern.MatchString(number), number)
	}
}
