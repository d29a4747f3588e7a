package store

import (
	"log"
	"time"

	"adserver/models"
)

// StoryDraft carries a new story before the store assigns id, counters and
// timestamps.
type StoryDraft struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image,omitempty"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// StoryUpdate carries a partial story edit. Nil fields are left unchanged;
// the id is never editable.
type StoryUpdate struct {
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	Views    *int    `json:"views"`
	Likes    *int    `json:"likes"`
	Time     *string `json:"time"`
	Excerpt  *string `json:"excerpt"`
	Image    *string `json:"image"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

// StoryStore owns the story collection. Unlike the other stores it uses
// small integer ids, assigned as max existing id plus one.
type StoryStore struct {
	ledger Ledger
}

func NewStoryStore(ledger Ledger) *StoryStore {
	return &StoryStore{ledger: ledger}
}

// GetAll loads the collection, seeding it with the fixture stories on
// first use or after decode failure.
func (s *StoryStore) GetAll() []models.Story {
	var stories []models.Story
	if !s.ledger.Read(KeyStories, &stories) {
		stories = seedStories()
		if err := s.ledger.Write(KeyStories, stories); err != nil {
			log.Printf("ERROR: Failed to seed stories: %v", err)
		}
		log.Printf("INFO: Seeded %d stories", len(stories))
	}
	return stories
}

func (s *StoryStore) save(stories []models.Story) {
	if err := s.ledger.Write(KeyStories, stories); err != nil {
		log.Printf("ERROR: Failed to persist stories: %v", err)
	}
}

// GetByID returns the story with the given id.
func (s *StoryStore) GetByID(id int) (models.Story, bool) {
	for _, story := range s.GetAll() {
		if story.ID == id {
			return story, true
		}
	}
	return models.Story{}, false
}

// Add assigns the next id (max existing plus one), zeroes the counters,
// stamps the creation time, and prepends the story so the newest entry
// leads the feed.
func (s *StoryStore) Add(draft StoryDraft) models.Story {
	stories := s.GetAll()
	maxID := 0
	for _, st := range stories {
		if st.ID > maxID {
			maxID = st.ID
		}
	}
	story := models.Story{
		ID:        maxID + 1,
		Title:     draft.Title,
		Author:    draft.Author,
		Views:     0,
		Likes:     0,
		Time:      "Just now",
		Excerpt:   draft.Excerpt,
		Image:     draft.Image,
		Content:   draft.Content,
		Category:  draft.Category,
		CreatedTs: time.Now().UnixMilli(),
	}
	s.save(append([]models.Story{story}, stories...))
	return story
}

// Update merges a partial edit into the story. Returns false when the id
// is unknown.
func (s *StoryStore) Update(id int, update StoryUpdate) bool {
	stories := s.GetAll()
	for i := range stories {
		if stories[i].ID != id {
			continue
		}
		applyStoryUpdate(&stories[i], update)
		s.save(stories)
		return true
	}
	return false
}

// Delete removes a story by id.
func (s *StoryStore) Delete(id int) bool {
	stories := s.GetAll()
	for i := range stories {
		if stories[i].ID == id {
			s.save(append(stories[:i], stories[i+1:]...))
			return true
		}
	}
	return false
}

// Reset discards all user content and restores the fixture collection.
func (s *StoryStore) Reset() {
	s.save(seedStories())
	log.Printf("INFO: Reset story collection to fixtures")
}

func applyStoryUpdate(st *models.Story, u StoryUpdate) {
	if u.Title != nil {
		st.Title = *u.Title
	}
	if u.Author != nil {
		st.Author = *u.Author
	}
	if u.Views != nil {
		st.Views = *u.Views
	}
	if u.Likes != nil {
		st.Likes = *u.Likes
	}
	if u.Time != nil {
		st.Time = *u.Time
	}
	if u.Excerpt != nil {
		st.Excerpt = *u.Excerpt
	}
	if u.Image != nil {
		st.Image = *u.Image
	}
	if u.Content != nil {
		st.Content = *u.Content
	}
	if u.Category != nil {
		st.Category = *u.Category
	}
}
