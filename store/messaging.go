package store

import (
	"log"
	"sort"

	"adserver/models"
	"adserver/utils"
)

// MessageDraft carries a new message before the store stamps id, createdAt
// and the unread flag. Sender and recipient identity is denormalized into
// the message so threads survive profile edits and deletions.
type MessageDraft struct {
	FromUserID   string `json:"fromUserId"`
	FromUsername string `json:"fromUsername"`
	FromName     string `json:"fromName"`
	FromPhoto    string `json:"fromPhoto"`
	ToUserID     string `json:"toUserId"`
	ToUsername   string `json:"toUsername"`
	ToName       string `json:"toName"`
	ToPhoto      string `json:"toPhoto"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	ReplyToID    string `json:"replyToId,omitempty"`
}

// MessageStore owns the dating message collection.
type MessageStore struct {
	ledger Ledger
}

func NewMessageStore(ledger Ledger) *MessageStore {
	return &MessageStore{ledger: ledger}
}

func (s *MessageStore) messages() []models.DatingMessage {
	var msgs []models.DatingMessage
	s.ledger.Read(KeyDatingMessages, &msgs)
	return msgs
}

func (s *MessageStore) save(msgs []models.DatingMessage) {
	if err := s.ledger.Write(KeyDatingMessages, msgs); err != nil {
		log.Printf("ERROR: Failed to persist dating messages: %v", err)
	}
}

// Send stamps a draft with id, createdAt and read=false, appends it to the
// collection, and returns the stored message.
func (s *MessageStore) Send(draft MessageDraft) models.DatingMessage {
	msg := models.DatingMessage{
		ID:           utils.GenerateID("msg"),
		FromUserID:   draft.FromUserID,
		FromUsername: draft.FromUsername,
		FromName:     draft.FromName,
		FromPhoto:    draft.FromPhoto,
		ToUserID:     draft.ToUserID,
		ToUsername:   draft.ToUsername,
		ToName:       draft.ToName,
		ToPhoto:      draft.ToPhoto,
		Subject:      draft.Subject,
		Body:         draft.Body,
		CreatedAt:    nowUTC(),
		ReplyToID:    draft.ReplyToID,
	}
	s.save(append(s.messages(), msg))
	return msg
}

// Inbox returns messages received by a user, newest first.
func (s *MessageStore) Inbox(userID string) []models.DatingMessage {
	out := filterMessages(s.messages(), func(m models.DatingMessage) bool {
		return m.ToUserID == userID
	})
	sortByCreatedAt(out, true)
	return out
}

// Sent returns messages sent by a user, newest first.
func (s *MessageStore) Sent(userID string) []models.DatingMessage {
	out := filterMessages(s.messages(), func(m models.DatingMessage) bool {
		return m.FromUserID == userID
	})
	sortByCreatedAt(out, true)
	return out
}

// Conversation returns the two-way thread between two users, oldest first.
func (s *MessageStore) Conversation(userA, userB string) []models.DatingMessage {
	out := filterMessages(s.messages(), func(m models.DatingMessage) bool {
		return (m.FromUserID == userA && m.ToUserID == userB) ||
			(m.FromUserID == userB && m.ToUserID == userA)
	})
	sortByCreatedAt(out, false)
	return out
}

// UnreadCount counts unread messages addressed to a user.
func (s *MessageStore) UnreadCount(userID string) int {
	count := 0
	for _, m := range s.messages() {
		if m.ToUserID == userID && !m.Read {
			count++
		}
	}
	return count
}

// MarkRead flags a single message as read. Unknown ids and already-read
// messages are a no-op.
func (s *MessageStore) MarkRead(messageID string) {
	msgs := s.messages()
	for i := range msgs {
		if msgs[i].ID == messageID {
			if !msgs[i].Read {
				msgs[i].Read = true
				s.save(msgs)
			}
			return
		}
	}
}

// MarkConversationRead flags every unread message from otherID to selfID as
// read. Only the receiving direction changes; persists only when something
// changed.
func (s *MessageStore) MarkConversationRead(selfID, otherID string) {
	msgs := s.messages()
	changed := false
	for i := range msgs {
		if msgs[i].ToUserID == selfID && msgs[i].FromUserID == otherID && !msgs[i].Read {
			msgs[i].Read = true
			changed = true
		}
	}
	if changed {
		s.save(msgs)
	}
}

// GetByID looks up a single message by id.
func (s *MessageStore) GetByID(messageID string) (models.DatingMessage, bool) {
	for _, m := range s.messages() {
		if m.ID == messageID {
			return m, true
		}
	}
	return models.DatingMessage{}, false
}

// Delete removes a message by id.
func (s *MessageStore) Delete(messageID string) bool {
	msgs := s.messages()
	for i := range msgs {
		if msgs[i].ID == messageID {
			s.save(append(msgs[:i], msgs[i+1:]...))
			return true
		}
	}
	return false
}

// DeleteByUser removes every message sent or received by a user, returning
// how many were removed. Used when a profile is deleted.
func (s *MessageStore) DeleteByUser(userID string) int {
	msgs := s.messages()
	kept := msgs[:0]
	removed := 0
	for _, m := range msgs {
		if m.FromUserID == userID || m.ToUserID == userID {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	if removed > 0 {
		s.save(kept)
		log.Printf("INFO: Removed %d messages for deleted profile %s", removed, userID)
	}
	return removed
}

// Summaries groups a user's messages by conversation partner: latest
// message, unread count and total per partner, sorted by last-message
// recency, newest conversation first. Partner identity comes from the
// latest message's denormalized fields.
func (s *MessageStore) Summaries(userID string) []models.ConversationSummary {
	byPartner := make(map[string][]models.DatingMessage)
	var order []string
	for _, m := range s.messages() {
		var partnerID string
		switch {
		case m.FromUserID == userID:
			partnerID = m.ToUserID
		case m.ToUserID == userID:
			partnerID = m.FromUserID
		default:
			continue
		}
		if _, seen := byPartner[partnerID]; !seen {
			order = append(order, partnerID)
		}
		byPartner[partnerID] = append(byPartner[partnerID], m)
	}

	summaries := make([]models.ConversationSummary, 0, len(order))
	for _, partnerID := range order {
		msgs := byPartner[partnerID]
		sortByCreatedAt(msgs, true)
		last := msgs[0]

		unread := 0
		for _, m := range msgs {
			if m.ToUserID == userID && !m.Read {
				unread++
			}
		}

		summary := models.ConversationSummary{
			PartnerID:     partnerID,
			LastMessage:   last,
			UnreadCount:   unread,
			TotalMessages: len(msgs),
		}
		if last.FromUserID == userID {
			summary.PartnerUsername = last.ToUsername
			summary.PartnerName = last.ToName
			summary.PartnerPhoto = last.ToPhoto
		} else {
			summary.PartnerUsername = last.FromUsername
			summary.PartnerName = last.FromName
			summary.PartnerPhoto = last.FromPhoto
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastMessage.CreatedAt.After(summaries[j].LastMessage.CreatedAt)
	})
	return summaries
}

func filterMessages(msgs []models.DatingMessage, keep func(models.DatingMessage) bool) []models.DatingMessage {
	var out []models.DatingMessage
	for _, m := range msgs {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func sortByCreatedAt(msgs []models.DatingMessage, newestFirst bool) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if newestFirst {
			return msgs[i].CreatedAt.After(msgs[j].CreatedAt)
		}
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
}
