package store

import (
	"log"
	"regexp"
	"strings"
	"time"

	"adserver/models"
	"adserver/utils"
)

// AdLimits defines the legal value space for classified ads. The store
// itself does not enforce any of it: quota and field validation are the
// calling form's job, and Add always succeeds at the storage level. That
// split is inherited from the system this replaces (its dating store
// validates internally, its ad store does not) and is kept on purpose.
type AdLimits struct {
	MaxActivePerUser int
	EditLockDays     int
	AdLifetimeDays   int
	TitleMin         int
	TitleMax         int
	DescMin          int
	DescMax          int
	PriceMax         int
	ImageMaxMB       int
}

var Limits = AdLimits{
	MaxActivePerUser: 4,
	EditLockDays:     14,
	AdLifetimeDays:   60,
	TitleMin:         5,
	TitleMax:         100,
	DescMin:          20,
	DescMax:          1000,
	PriceMax:         10_000_000,
	ImageMaxMB:       5,
}

// ContactPattern matches Sri Lankan mobile numbers after the caller strips
// spaces, dashes and parens: 07########, +947########, 947########.
var ContactPattern = regexp.MustCompile(`^(?:0[0-9]{9}|\+94[0-9]{9}|94[0-9]{9})$`)

// AdDraft carries the caller-supplied fields of a new ad. Everything derived
// (id, createdAt, expiresAt, editLockedUntil) is stamped by Add.
type AdDraft struct {
	Username    string
	Category    string
	Title       string
	Description string
	District    string
	City        string
	Location    string
	Contact     string
	Image       string
	Price       string
	Whatsapp    bool
	Viber       bool
	Telegram    bool
	Imo         bool
}

// AdUpdate is a partial update; nil fields are left untouched. Owner,
// id and the derived timestamps can never be changed.
type AdUpdate struct {
	Category    *string
	Title       *string
	Description *string
	District    *string
	City        *string
	Location    *string
	Contact     *string
	Image       *string
	Price       *string
	Whatsapp    *bool
	Viber       *bool
	Telegram    *bool
	Imo         *bool
}

// ClassifiedAdStore owns the "user-ads" document.
type ClassifiedAdStore struct {
	ledger Ledger
}

func NewClassifiedAdStore(ledger Ledger) *ClassifiedAdStore {
	return &ClassifiedAdStore{ledger: ledger}
}

// GetAll returns every persisted ad, expired ones included: expiry is a
// read-time predicate, not a deletion.
func (s *ClassifiedAdStore) GetAll() []models.ClassifiedAd {
	var ads []models.ClassifiedAd
	if !s.ledger.Read(KeyUserAds, &ads) {
		return []models.ClassifiedAd{}
	}
	return ads
}

// GetByID returns the ad with the given id.
func (s *ClassifiedAdStore) GetByID(id string) (models.ClassifiedAd, bool) {
	for _, ad := range s.GetAll() {
		if ad.ID == id {
			return ad, true
		}
	}
	return models.ClassifiedAd{}, false
}

// GetByUser returns all ads posted by a user (case-insensitive username).
func (s *ClassifiedAdStore) GetByUser(username string) []models.ClassifiedAd {
	matched := make([]models.ClassifiedAd, 0)
	for _, ad := range s.GetAll() {
		if strings.EqualFold(ad.Username, username) {
			matched = append(matched, ad)
		}
	}
	return matched
}

// CountActiveByUser counts the user's non-expired ads. An ad with no
// expiresAt is always counted: the defensive default is active. Callers use
// this to enforce the MaxActivePerUser ceiling before calling Add.
func (s *ClassifiedAdStore) CountActiveByUser(username string) int {
	now := time.Now()
	count := 0
	for _, ad := range s.GetAll() {
		if strings.EqualFold(ad.Username, username) && !AdExpiredAt(ad, now) {
			count++
		}
	}
	return count
}

// AdLockedAt reports whether the ad's edit/delete lock is still in force at
// the given instant. Pure function of the instant and the ad's timestamp.
func AdLockedAt(ad models.ClassifiedAd, now time.Time) bool {
	return ad.EditLockedUntil != nil && ad.EditLockedUntil.After(now)
}

// AdExpiredAt reports whether the ad has expired at the given instant.
// Lock and expiry are independent predicates with no cross-check.
func AdExpiredAt(ad models.ClassifiedAd, now time.Time) bool {
	return ad.ExpiresAt != nil && !ad.ExpiresAt.After(now)
}

// IsLocked reports whether the ad is currently within its edit lock window.
func (s *ClassifiedAdStore) IsLocked(ad models.ClassifiedAd) bool {
	return AdLockedAt(ad, time.Now())
}

// IsExpired reports whether the ad is currently expired.
func (s *ClassifiedAdStore) IsExpired(ad models.ClassifiedAd) bool {
	return AdExpiredAt(ad, time.Now())
}

// Add appends a new ad, stamping createdAt plus the two derived timestamps
// (expiry after AdLifetimeDays, edit lock for EditLockDays). It never
// refuses: quota and field validation belong to the calling form.
func (s *ClassifiedAdStore) Add(draft AdDraft) models.ClassifiedAd {
	ads := s.GetAll()

	now := time.Now()
	expiresAt := now.Add(time.Duration(Limits.AdLifetimeDays) * 24 * time.Hour)
	editLockedUntil := now.Add(time.Duration(Limits.EditLockDays) * 24 * time.Hour)

	ad := models.ClassifiedAd{
		ID:              utils.GenerateID("ua"),
		Username:        draft.Username,
		Category:        draft.Category,
		Title:           draft.Title,
		Description:     draft.Description,
		District:        draft.District,
		City:            draft.City,
		Location:        draft.Location,
		Contact:         draft.Contact,
		Image:           draft.Image,
		Price:           draft.Price,
		Whatsapp:        draft.Whatsapp,
		Viber:           draft.Viber,
		Telegram:        draft.Telegram,
		Imo:             draft.Imo,
		CreatedAt:       now,
		ExpiresAt:       &expiresAt,
		EditLockedUntil: &editLockedUntil,
	}

	ads = append(ads, ad)
	if err := s.ledger.Write(KeyUserAds, ads); err != nil {
		log.Printf("ERROR: Failed to persist ads after adding '%s': %v", ad.ID, err)
	}
	log.Printf("INFO: Created ad %s for user '%s'", ad.ID, ad.Username)
	return ad
}

// Update merges the non-nil fields of the update into the ad with the given
// id. Unconditional: checking the edit lock first is the caller's job.
// Returns false if no such ad exists.
func (s *ClassifiedAdStore) Update(id string, updates AdUpdate) bool {
	ads := s.GetAll()
	for i := range ads {
		if ads[i].ID != id {
			continue
		}
		applyAdUpdate(&ads[i], updates)
		if err := s.ledger.Write(KeyUserAds, ads); err != nil {
			log.Printf("ERROR: Failed to persist ads after updating '%s': %v", id, err)
		}
		return true
	}
	return false
}

// Delete removes the ad with the given id. Unconditional; lock checking is
// the caller's job. Returns false if no such ad exists.
func (s *ClassifiedAdStore) Delete(id string) bool {
	ads := s.GetAll()
	kept := ads[:0]
	for _, ad := range ads {
		if ad.ID != id {
			kept = append(kept, ad)
		}
	}
	if len(kept) == len(ads) {
		return false
	}
	if err := s.ledger.Write(KeyUserAds, kept); err != nil {
		log.Printf("ERROR: Failed to persist ads after deleting '%s': %v", id, err)
	}
	log.Printf("INFO: Deleted ad %s", id)
	return true
}

func applyAdUpdate(ad *models.ClassifiedAd, u AdUpdate) {
	if u.Category != nil {
		ad.Category = *u.Category
	}
	if u.Title != nil {
		ad.Title = *u.Title
	}
	if u.Description != nil {
		ad.Description = *u.Description
	}
	if u.District != nil {
		ad.District = *u.District
	}
	if u.City != nil {
		ad.City = *u.City
	}
	if u.Location != nil {
		ad.Location = *u.Location
	}
	if u.Contact != nil {
		ad.Contact = *u.Contact
	}
	if u.Image != nil {
		ad.Image = *u.Image
	}
	if u.Price != nil {
		ad.Price = *u.Price
	}
	if u.Whatsapp != nil {
		ad.Whatsapp = *u.Whatsapp
	}
	if u.Viber != nil {
		ad.Viber = *u.Viber
	}
	if u.Telegram != nil {
		ad.Telegram = *u.Telegram
	}
	if u.Imo != nil {
		ad.Imo = *u.Imo
	}
}
