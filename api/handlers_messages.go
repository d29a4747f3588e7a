package api

import (
	"fmt"
	"net/http"

	"adserver/config"
	"adserver/store"
	"adserver/utils"

	"github.com/gin-gonic/gin"
)

// SendMessageRequest is the JSON body for sending a dating message.
type SendMessageRequest struct {
	ToUserID  string `json:"toUserId" binding:"required"`
	Subject   string `json:"subject"`
	Body      string `json:"body" binding:"required"`
	ReplyToID string `json:"replyToId"`
}

// SendMessageHandler sends a message from the caller to another profile.
// Sender and recipient identity is resolved here and denormalized into the
// stored message.
// @Summary      Send Message
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        message body SendMessageRequest true "Recipient and content"
// @Success      201 {object} models.DatingMessage
// @Failure      404 {object} utils.APIError "Sender or recipient profile not found."
// @Router       /dating/messages [post]
func SendMessageHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	from, found := stores.Dating.ProfileByID(datingCallerID(c))
	if !found {
		utils.GinNotFound(c, "Profile not found.")
		return
	}
	to, found := stores.Dating.ProfileByID(req.ToUserID)
	if !found {
		utils.GinNotFound(c, "Recipient profile not found.")
		return
	}

	msg := stores.Messages.Send(store.MessageDraft{
		FromUserID:   from.ID,
		FromUsername: from.Username,
		FromName:     from.Name,
		FromPhoto:    from.ProfilePhoto,
		ToUserID:     to.ID,
		ToUsername:   to.Username,
		ToName:       to.Name,
		ToPhoto:      to.ProfilePhoto,
		Subject:      req.Subject,
		Body:         req.Body,
		ReplyToID:    req.ReplyToID,
	})
	stores.Dating.TouchLastActive(from.ID)
	c.JSON(http.StatusCreated, msg)
}

// InboxHandler lists messages received by the caller, newest first.
// @Summary      Inbox
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.DatingMessage
// @Router       /dating/messages/inbox [get]
func InboxHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	c.JSON(http.StatusOK, stores.Messages.Inbox(datingCallerID(c)))
}

// SentMessagesHandler lists messages sent by the caller, newest first.
// @Summary      Sent Messages
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.DatingMessage
// @Router       /dating/messages/sent [get]
func SentMessagesHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	c.JSON(http.StatusOK, stores.Messages.Sent(datingCallerID(c)))
}

// ConversationHandler returns the two-way thread with another profile,
// oldest first, and marks the received side read.
// @Summary      Conversation Thread
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "Other profile ID"
// @Success      200 {array} models.DatingMessage
// @Router       /dating/messages/conversation/{userId} [get]
func ConversationHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	selfID := datingCallerID(c)
	otherID := c.Param("userId")

	// Opening a thread reads it.
	stores.Messages.MarkConversationRead(selfID, otherID)
	c.JSON(http.StatusOK, stores.Messages.Conversation(selfID, otherID))
}

// ConversationSummariesHandler groups the caller's messages by partner.
// @Summary      Conversation List
// @Description  One entry per conversation partner: latest message, unread count and total, sorted by last-message recency.
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.ConversationSummary
// @Router       /dating/messages/conversations [get]
func ConversationSummariesHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	c.JSON(http.StatusOK, stores.Messages.Summaries(datingCallerID(c)))
}

// UnreadCountHandler returns the caller's unread message count.
// @Summary      Unread Count
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]int
// @Router       /dating/messages/unread [get]
func UnreadCountHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	c.JSON(http.StatusOK, gin.H{"unread": stores.Messages.UnreadCount(datingCallerID(c))})
}

// MarkMessageReadHandler flags one received message as read.
// @Summary      Mark Message Read
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Message ID"
// @Success      200 {object} map[string]string
// @Router       /dating/messages/{id}/read [post]
func MarkMessageReadHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	stores.Messages.MarkRead(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Marked read."})
}

// DeleteMessageHandler removes one of the caller's messages.
// @Summary      Delete Message
// @Tags         Messages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Message ID"
// @Success      200 {object} map[string]string
// @Failure      403 {object} utils.APIError "Message belongs to someone else."
// @Failure      404 {object} utils.APIError
// @Router       /dating/messages/{id} [delete]
func DeleteMessageHandler(c *gin.Context, stores *Stores, cfg *config.Config) {
	selfID := datingCallerID(c)
	id := c.Param("id")

	msg, found := stores.Messages.GetByID(id)
	if !found {
		utils.GinNotFound(c, "Message not found.")
		return
	}
	// Only a participant may delete a message.
	if msg.FromUserID != selfID && msg.ToUserID != selfID {
		utils.GinForbidden(c, "You can only delete your own messages.")
		return
	}
	stores.Messages.Delete(id)
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted."})
}
