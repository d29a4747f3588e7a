package models

import "time"

// Account is a registered classifieds user as persisted under the "accounts" key.
// The password is stored in plaintext. This mirrors the system this server
// replaces and is a documented limitation, not a feature; do not list accounts
// on any public endpoint.
type Account struct {
	Username string `json:"username"` // Unique, case-insensitive
	Phone    string `json:"phone"`    // Unique, exact match
	Password string `json:"password"` // Plaintext (see note above)
}

// Session is the public projection of an Account, persisted as a single
// record under the "session" key. It never carries the password.
type Session struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

// ClassifiedAd is a user-authored ad persisted under the "user-ads" key.
// ExpiresAt and EditLockedUntil are stamped at creation; "expired" is a
// read-time predicate, never a state transition.
type ClassifiedAd struct {
	ID          string `json:"id"`
	Username    string `json:"username"` // Owner
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	District    string `json:"district"`
	City        string `json:"city"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	Image       string `json:"image,omitempty"`
	Price       string `json:"price,omitempty"`
	Whatsapp    bool   `json:"whatsapp,omitempty"`
	Viber       bool   `json:"viber,omitempty"`
	Telegram    bool   `json:"telegram,omitempty"`
	Imo         bool   `json:"imo,omitempty"`

	CreatedAt       time.Time  `json:"createdAt"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`       // Ad inactive after this
	EditLockedUntil *time.Time `json:"editLockedUntil,omitempty"` // Edit/delete blocked until this
}

// SlotKind distinguishes single-code placements from rotating ones.
type SlotKind string

const (
	SlotSingle   SlotKind = "single"
	SlotRotating SlotKind = "rotating"
)

// AdSpaceSlot is a named placement for operator-supplied ad markup, persisted
// under the "ad-placement-slots" key. Codes hold raw HTML/JS pasted by the
// operator and are rendered verbatim by consumers: trusted content only.
type AdSpaceSlot struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Area    string   `json:"area"`
	Kind    SlotKind `json:"kind"`
	Size    string   `json:"size"`  // e.g. "320x50"
	Codes   []string `json:"codes"` // 1 for single, always 4 for rotating
	Enabled bool     `json:"enabled"`
}

// DatingProfile is persisted under the "dating-profiles" key. Password is
// plaintext (same limitation as Account) and is stripped from every public
// projection via Public().
type DatingProfile struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"` // Unique, case-insensitive
	Password          string    `json:"password,omitempty"`
	Name              string    `json:"name"`
	Age               int       `json:"age"`
	Gender            string    `json:"gender"`  // Man, Woman, Couple
	Seeking           string    `json:"seeking"` // Man, Woman, Couple
	Country           string    `json:"country"`
	District          string    `json:"district"`
	AboutMe           string    `json:"aboutMe"`
	Interests         string    `json:"interests"`
	MaritalStatus     string    `json:"maritalStatus"`
	SexualOrientation string    `json:"sexualOrientation"`
	ProfilePhoto      string    `json:"profilePhoto"` // URL, empty for placeholder
	CreatedAt         time.Time `json:"createdAt"`
	LastActive        time.Time `json:"lastActive"`
}

// Public returns the profile without its password.
func (p DatingProfile) Public() DatingProfile {
	p.Password = ""
	return p
}

// DatingMessage is a directed message persisted under the "dating-messages"
// key. Immutable once sent except for the Read flag. Sender/recipient
// identity is denormalized so a conversation view survives profile deletion.
type DatingMessage struct {
	ID           string    `json:"id"`
	FromUserID   string    `json:"fromUserId"`
	FromUsername string    `json:"fromUsername"`
	FromName     string    `json:"fromName"`
	FromPhoto    string    `json:"fromPhoto"`
	ToUserID     string    `json:"toUserId"`
	ToUsername   string    `json:"toUsername"`
	ToName       string    `json:"toName"`
	ToPhoto      string    `json:"toPhoto"`
	Subject      string    `json:"subject"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"createdAt"`
	Read         bool      `json:"read"`
	ReplyToID    string    `json:"replyToId,omitempty"`
}

// ConversationSummary is a derived, never-persisted aggregation of all
// messages between a user and one other participant.
type ConversationSummary struct {
	PartnerID       string        `json:"partnerId"`
	PartnerUsername string        `json:"partnerUsername"`
	PartnerName     string        `json:"partnerName"`
	PartnerPhoto    string        `json:"partnerPhoto"`
	LastMessage     DatingMessage `json:"lastMessage"`
	UnreadCount     int           `json:"unreadCount"`
	TotalMessages   int           `json:"totalMessages"`
}

// Story is user-generated long-form content persisted under the "stories"
// key. IDs are numeric and recomputed as max+1 on insert so the store
// tolerates external deletions.
type Story struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Views     int    `json:"views"`
	Likes     int    `json:"likes"`
	Time      string `json:"time"` // Display label, e.g. "Just now"
	Excerpt   string `json:"excerpt"`
	Image     string `json:"image,omitempty"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	CreatedTs int64  `json:"createdTs"` // Unix ms, used for sorting
}

// StoryCategory is a fixed catalog entry for story browsing.
type StoryCategory struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
