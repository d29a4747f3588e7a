package store

import (
	"fmt"
	"testing"
	"time"

	"adserver/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessageStore() (*MessageStore, *MemoryLedger) {
	ledger := NewMemoryLedger()
	return NewMessageStore(ledger), ledger
}

func draftBetween(from, to string) MessageDraft {
	return MessageDraft{
		FromUserID:   from,
		FromUsername: from + "_user",
		FromName:     "Name " + from,
		ToUserID:     to,
		ToUsername:   to + "_user",
		ToName:       "Name " + to,
		Subject:      "Hi",
		Body:         fmt.Sprintf("from %s to %s", from, to),
	}
}

// seedThread writes a fixed conversation directly to the ledger so ordering
// tests do not depend on wall-clock resolution.
func seedThread(t *testing.T, ledger *MemoryLedger) []models.DatingMessage {
	t.Helper()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	msgs := []models.DatingMessage{
		{ID: "msg_1", FromUserID: "a", ToUserID: "b", Body: "first", CreatedAt: base},
		{ID: "msg_2", FromUserID: "b", ToUserID: "a", Body: "second", CreatedAt: base.Add(time.Minute)},
		{ID: "msg_3", FromUserID: "a", ToUserID: "b", Body: "third", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "msg_4", FromUserID: "c", ToUserID: "a", Body: "from c", CreatedAt: base.Add(3 * time.Minute)},
		{ID: "msg_5", FromUserID: "a", ToUserID: "c", Body: "to c", CreatedAt: base.Add(4 * time.Minute)},
	}
	require.NoError(t, ledger.Write(KeyDatingMessages, msgs))
	return msgs
}

func TestSendStampsMessage(t *testing.T) {
	store, _ := newTestMessageStore()

	msg := store.Send(draftBetween("a", "b"))
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
	assert.False(t, msg.Read, "new messages start unread")

	inbox := store.Inbox("b")
	require.Len(t, inbox, 1)
	assert.Equal(t, msg.ID, inbox[0].ID)
	assert.Empty(t, store.Inbox("a"), "inbox holds received messages only")
}

func TestInboxSentAndConversationOrdering(t *testing.T) {
	store, ledger := newTestMessageStore()
	seedThread(t, ledger)

	inbox := store.Inbox("a")
	require.Len(t, inbox, 2)
	assert.Equal(t, "msg_4", inbox[0].ID, "inbox is newest first")
	assert.Equal(t, "msg_2", inbox[1].ID)

	sent := store.Sent("a")
	require.Len(t, sent, 3)
	assert.Equal(t, "msg_5", sent[0].ID, "sent is newest first")

	conv := store.Conversation("a", "b")
	require.Len(t, conv, 3)
	assert.Equal(t, []string{"msg_1", "msg_2", "msg_3"},
		[]string{conv[0].ID, conv[1].ID, conv[2].ID}, "conversation is oldest first, both directions")

	// Symmetric regardless of argument order.
	assert.Equal(t, conv, store.Conversation("b", "a"))
}

func TestUnreadAndMarkRead(t *testing.T) {
	store, ledger := newTestMessageStore()
	seedThread(t, ledger)

	assert.Equal(t, 2, store.UnreadCount("a"))
	assert.Equal(t, 2, store.UnreadCount("b"))

	store.MarkRead("msg_2")
	assert.Equal(t, 1, store.UnreadCount("a"))

	// Idempotent, and unknown ids are a no-op.
	store.MarkRead("msg_2")
	store.MarkRead("msg_missing")
	assert.Equal(t, 1, store.UnreadCount("a"))
}

func TestMarkConversationReadIsDirected(t *testing.T) {
	store, ledger := newTestMessageStore()
	seedThread(t, ledger)

	// b reads the thread with a: only a→b messages flip.
	store.MarkConversationRead("b", "a")
	assert.Equal(t, 0, store.UnreadCount("b"))
	assert.Equal(t, 2, store.UnreadCount("a"), "the other direction is untouched")

	// Repeat is a no-op.
	store.MarkConversationRead("b", "a")
	assert.Equal(t, 0, store.UnreadCount("b"))
}

func TestSummaries(t *testing.T) {
	store, ledger := newTestMessageStore()
	msgs := seedThread(t, ledger)

	summaries := store.Summaries("a")
	require.Len(t, summaries, 2)

	// Sorted by last-message recency: the c thread (msg_5) leads.
	assert.Equal(t, "c", summaries[0].PartnerID)
	assert.Equal(t, "msg_5", summaries[0].LastMessage.ID)
	assert.Equal(t, 2, summaries[0].TotalMessages)
	assert.Equal(t, 1, summaries[0].UnreadCount, "only messages addressed to a count")

	assert.Equal(t, "b", summaries[1].PartnerID)
	assert.Equal(t, "msg_3", summaries[1].LastMessage.ID)
	assert.Equal(t, 3, summaries[1].TotalMessages)
	assert.Equal(t, 1, summaries[1].UnreadCount)

	// Totals across summaries cover every message involving a.
	total := 0
	for _, s := range summaries {
		total += s.TotalMessages
	}
	assert.Equal(t, len(msgs), total)

	assert.Empty(t, store.Summaries("nobody"))
}

func TestSummariesPartnerIdentityFromLatestMessage(t *testing.T) {
	store, ledger := newTestMessageStore()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	msgs := []models.DatingMessage{
		{ID: "msg_1", FromUserID: "b", FromName: "Old Name", ToUserID: "a", CreatedAt: base},
		{ID: "msg_2", FromUserID: "b", FromName: "New Name", ToUserID: "a", CreatedAt: base.Add(time.Minute)},
	}
	require.NoError(t, ledger.Write(KeyDatingMessages, msgs))

	summaries := store.Summaries("a")
	require.Len(t, summaries, 1)
	assert.Equal(t, "New Name", summaries[0].PartnerName, "identity comes from the latest message")
}

func TestGetByID(t *testing.T) {
	store, ledger := newTestMessageStore()
	seedThread(t, ledger)

	msg, found := store.GetByID("msg_4")
	require.True(t, found)
	assert.Equal(t, "c", msg.FromUserID)
	assert.Equal(t, "a", msg.ToUserID)

	_, found = store.GetByID("msg_missing")
	assert.False(t, found)
}

func TestDeleteAndDeleteByUser(t *testing.T) {
	store, ledger := newTestMessageStore()
	seedThread(t, ledger)

	assert.True(t, store.Delete("msg_1"))
	assert.False(t, store.Delete("msg_1"))
	assert.Len(t, store.Conversation("a", "b"), 2)

	// Removing c takes out both directions of the c thread.
	assert.Equal(t, 2, store.DeleteByUser("c"))
	assert.Empty(t, store.Conversation("a", "c"))
	assert.Len(t, store.Summaries("a"), 1)

	assert.Equal(t, 0, store.DeleteByUser("c"))
}
