package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStoryStore() (*StoryStore, *MemoryLedger) {
	ledger := NewMemoryLedger()
	return NewStoryStore(ledger), ledger
}

func TestStoriesSeededOnFirstRead(t *testing.T) {
	store, _ := newTestStoryStore()

	stories := store.GetAll()
	require.Len(t, stories, 6)
	assert.Equal(t, 1, stories[0].ID)

	got, found := store.GetByID(3)
	require.True(t, found)
	assert.Equal(t, "NightWriter", got.Author)

	_, found = store.GetByID(99)
	assert.False(t, found)
}

func TestAddAssignsNextIDAndPrepends(t *testing.T) {
	store, _ := newTestStoryStore()
	store.GetAll() // seed ids 1..6

	story := store.Add(StoryDraft{
		Title:    "New story",
		Author:   "Tester",
		Excerpt:  "A short teaser...",
		Content:  "The full text.",
		Category: "other",
	})
	assert.Equal(t, 7, story.ID)
	assert.Equal(t, 0, story.Views)
	assert.Equal(t, 0, story.Likes)
	assert.Equal(t, "Just now", story.Time)
	assert.NotZero(t, story.CreatedTs)

	stories := store.GetAll()
	require.Len(t, stories, 7)
	assert.Equal(t, 7, stories[0].ID, "newest story leads the feed")
}

func TestAddAfterDeleteReusesFreedID(t *testing.T) {
	store, _ := newTestStoryStore()
	store.GetAll()

	// ids are max+1, so deleting the top story frees its id.
	require.True(t, store.Delete(6))
	story := store.Add(StoryDraft{Title: "Replacement", Author: "x", Content: "y", Category: "other"})
	assert.Equal(t, 6, story.ID)
}

func TestUpdateStory(t *testing.T) {
	store, _ := newTestStoryStore()
	store.GetAll()

	title := "Renamed"
	likes := 500
	require.True(t, store.Update(2, StoryUpdate{Title: &title, Likes: &likes}))

	got, found := store.GetByID(2)
	require.True(t, found)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, 500, got.Likes)
	assert.Equal(t, "KandyGirl", got.Author, "unset fields stay untouched")

	assert.False(t, store.Update(99, StoryUpdate{Title: &title}))
}

func TestDeleteStory(t *testing.T) {
	store, _ := newTestStoryStore()
	store.GetAll()

	assert.True(t, store.Delete(1))
	assert.False(t, store.Delete(1))
	assert.Len(t, store.GetAll(), 5)
}

func TestResetRestoresFixtures(t *testing.T) {
	store, _ := newTestStoryStore()
	store.GetAll()

	store.Add(StoryDraft{Title: "Mine", Author: "x", Content: "y", Category: "other"})
	require.True(t, store.Delete(1))

	store.Reset()
	stories := store.GetAll()
	require.Len(t, stories, 6)
	assert.Equal(t, 1, stories[0].ID)

	_, found := store.GetByID(7)
	assert.False(t, found, "user content is discarded by reset")
}

func TestStoriesFallBackOnCorruptDocument(t *testing.T) {
	store, ledger := newTestStoryStore()
	store.GetAll()
	store.Add(StoryDraft{Title: "Mine", Author: "x", Content: "y", Category: "other"})

	ledger.Corrupt(KeyStories)
	stories := store.GetAll()
	assert.Len(t, stories, 6, "corrupt document reseeds the fixtures")
}

func TestStoryCategoriesCatalog(t *testing.T) {
	require.Len(t, StoryCategories, 10)
	slugs := make(map[string]bool)
	for _, c := range StoryCategories {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Slug)
		slugs[c.Slug] = true
	}
	assert.Len(t, slugs, 10, "slugs are unique")
}
