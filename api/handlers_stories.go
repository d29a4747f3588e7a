package api

import (
	"fmt"
	"net/http"
	"strconv"

	"adserver/config"
	"adserver/store"
	"adserver/utils"

	"github.com/gin-gonic/gin"
)

// ListStoriesHandler lists all stories, optionally filtered by category.
// The newest story leads; the feed order is the stored order.
// @Summary      List Stories
// @Tags         Stories
// @Produce      json
// @Param        category query string false "Filter by category slug"
// @Success      200 {array} models.Story
// @Router       /stories [get]
func ListStoriesHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	category := c.Query("category")
	stories := stores.Stories.GetAll()
	if category == "" {
		c.JSON(http.StatusOK, stories)
		return
	}
	filtered := stories[:0]
	for _, story := range stories {
		if story.Category == category {
			filtered = append(filtered, story)
		}
	}
	c.JSON(http.StatusOK, filtered)
}

// StoryCategoriesHandler returns the fixed category catalog.
// @Summary      Story Categories
// @Tags         Stories
// @Produce      json
// @Success      200 {array} models.StoryCategory
// @Router       /stories/categories [get]
func StoryCategoriesHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	c.JSON(http.StatusOK, store.StoryCategories)
}

// GetStoryHandler returns one story and counts the view.
// @Summary      Read Story
// @Tags         Stories
// @Produce      json
// @Param        id path int true "Story ID"
// @Success      200 {object} models.Story
// @Failure      404 {object} utils.APIError
// @Router       /stories/{id} [get]
func GetStoryHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.GinBadRequest(c, "Story id must be a number.")
		return
	}
	story, found := stores.Stories.GetByID(id)
	if !found {
		utils.GinNotFound(c, "Story not found.")
		return
	}

	views := story.Views + 1
	stores.Stories.Update(id, store.StoryUpdate{Views: &views})
	story.Views = views
	c.JSON(http.StatusOK, story)
}

// CreateStoryRequest is the JSON body for submitting a story.
type CreateStoryRequest struct {
	Title    string `json:"title" binding:"required"`
	Author   string `json:"author"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// CreateStoryHandler submits a new story to the top of the feed.
// @Summary      Submit Story
// @Description  Adds a story with the next numeric id. Views and likes start at zero. Anonymous submissions are allowed; a blank author is stored as "Anonymous".
// @Tags         Stories
// @Accept       json
// @Produce      json
// @Param        story body CreateStoryRequest true "Story content"
// @Success      201 {object} models.Story
// @Failure      400 {object} utils.APIError
// @Router       /stories [post]
func CreateStoryHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	var req CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if !validStoryCategory(req.Category) {
		utils.GinBadRequest(c, "Unknown story category.")
		return
	}
	author := req.Author
	if author == "" {
		author = "Anonymous"
	}

	story := stores.Stories.Add(store.StoryDraft{
		Title:    req.Title,
		Author:   author,
		Excerpt:  req.Excerpt,
		Image:    req.Image,
		Content:  req.Content,
		Category: req.Category,
	})
	c.JSON(http.StatusCreated, story)
}

// LikeStoryHandler increments a story's like counter.
// @Summary      Like Story
// @Tags         Stories
// @Produce      json
// @Param        id path int true "Story ID"
// @Success      200 {object} models.Story
// @Failure      404 {object} utils.APIError
// @Router       /stories/{id}/like [post]
func LikeStoryHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.GinBadRequest(c, "Story id must be a number.")
		return
	}
	story, found := stores.Stories.GetByID(id)
	if !found {
		utils.GinNotFound(c, "Story not found.")
		return
	}

	likes := story.Likes + 1
	stores.Stories.Update(id, store.StoryUpdate{Likes: &likes})
	story.Likes = likes
	c.JSON(http.StatusOK, story)
}

func validStoryCategory(slug string) bool {
	for _, cat := range store.StoryCategories {
		if cat.Slug == slug {
			return true
		}
	}
	return false
}
