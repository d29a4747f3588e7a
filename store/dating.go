package store

import (
	"errors"
	"log"
	"strings"
	"time"

	"adserver/models"
	"adserver/utils"
)

// Dating account errors. Messages are surfaced verbatim to the caller.
var (
	ErrDatingInvalidCredentials = errors.New("Invalid username or password.")
	ErrDatingUsernameTaken      = errors.New("Username already taken.")
	ErrDatingMissingFields      = errors.New("Please fill in all required fields.")
	ErrDatingPasswordTooShort   = errors.New("Password must be at least 6 characters.")
	ErrDatingUnderage           = errors.New("You must be at least 18 years old to register.")
	ErrDatingInvalidAge         = errors.New("Please enter a valid age.")
	ErrDatingNotLoggedIn        = errors.New("Not logged in.")
	ErrDatingProfileNotFound    = errors.New("Profile not found.")
)

// DatingRegisterFields carries the signup form for a new dating profile.
type DatingRegisterFields struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Seeking  string `json:"seeking"`
	Country  string `json:"country"`
	District string `json:"district"`
}

// DatingProfileUpdate carries a partial profile edit. Nil fields are left
// unchanged.
type DatingProfileUpdate struct {
	Name              *string `json:"name"`
	Age               *int    `json:"age"`
	Gender            *string `json:"gender"`
	Seeking           *string `json:"seeking"`
	Country           *string `json:"country"`
	District          *string `json:"district"`
	AboutMe           *string `json:"aboutMe"`
	Interests         *string `json:"interests"`
	MaritalStatus     *string `json:"maritalStatus"`
	SexualOrientation *string `json:"sexualOrientation"`
	ProfilePhoto      *string `json:"profilePhoto"`
}

// DatingStore owns the dating profile collection and the dating session
// document. It keeps its own account system, separate from the classified
// accounts; the two share nothing but the ledger.
type DatingStore struct {
	ledger Ledger
}

func NewDatingStore(ledger Ledger) *DatingStore {
	return &DatingStore{ledger: ledger}
}

// profiles loads the full collection, seeding it with the fixture profiles
// on first use or after decode failure. Seed timestamps are randomized once
// and persisted, so repeat reads are stable.
func (s *DatingStore) profiles() []models.DatingProfile {
	var users []models.DatingProfile
	if !s.ledger.Read(KeyDatingProfiles, &users) {
		users = seedDatingProfiles()
		if err := s.ledger.Write(KeyDatingProfiles, users); err != nil {
			log.Printf("ERROR: Failed to seed dating profiles: %v", err)
		}
		log.Printf("INFO: Seeded %d dating profiles", len(users))
	}
	return users
}

func (s *DatingStore) save(users []models.DatingProfile) {
	if err := s.ledger.Write(KeyDatingProfiles, users); err != nil {
		log.Printf("ERROR: Failed to persist dating profiles: %v", err)
	}
}

// PublicProfiles returns every profile with credentials stripped.
func (s *DatingStore) PublicProfiles() []models.DatingProfile {
	users := s.profiles()
	out := make([]models.DatingProfile, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out
}

// ProfileByID returns the profile with the given id, credentials stripped.
func (s *DatingStore) ProfileByID(id string) (models.DatingProfile, bool) {
	for _, u := range s.profiles() {
		if u.ID == id {
			return u.Public(), true
		}
	}
	return models.DatingProfile{}, false
}

// Login matches username case-insensitively and password exactly, stamps
// lastActive, and stores the credential-stripped profile as the session.
func (s *DatingStore) Login(username, password string) (models.DatingProfile, error) {
	users := s.profiles()
	for i := range users {
		if strings.EqualFold(users[i].Username, username) && users[i].Password == password {
			users[i].LastActive = nowUTC()
			s.save(users)
			session := users[i].Public()
			s.saveSession(session)
			return session, nil
		}
	}
	return models.DatingProfile{}, ErrDatingInvalidCredentials
}

// Register creates a profile from the signup form. The uniqueness check
// runs before field validation, matching the established behavior.
func (s *DatingStore) Register(fields DatingRegisterFields) (models.DatingProfile, error) {
	users := s.profiles()
	for _, u := range users {
		if strings.EqualFold(u.Username, fields.Username) {
			return models.DatingProfile{}, ErrDatingUsernameTaken
		}
	}
	if fields.Username == "" || fields.Password == "" || fields.Name == "" ||
		fields.Age == 0 || fields.Gender == "" || fields.Seeking == "" || fields.District == "" {
		return models.DatingProfile{}, ErrDatingMissingFields
	}
	if len(fields.Password) < 6 {
		return models.DatingProfile{}, ErrDatingPasswordTooShort
	}
	if fields.Age < 18 {
		return models.DatingProfile{}, ErrDatingUnderage
	}
	if fields.Age > 99 {
		return models.DatingProfile{}, ErrDatingInvalidAge
	}

	country := fields.Country
	if country == "" {
		country = "Sri Lanka"
	}
	now := nowUTC()
	profile := models.DatingProfile{
		ID:                utils.GenerateID("u"),
		Username:          fields.Username,
		Password:          fields.Password,
		Name:              fields.Name,
		Age:               fields.Age,
		Gender:            fields.Gender,
		Seeking:           fields.Seeking,
		Country:           country,
		District:          fields.District,
		MaritalStatus:     "Single",
		SexualOrientation: "Prefer not to say",
		CreatedAt:         now,
		LastActive:        now,
	}
	s.save(append(users, profile))

	session := profile.Public()
	s.saveSession(session)
	log.Printf("INFO: Registered dating profile %s (%s)", profile.ID, profile.Username)
	return session, nil
}

// Logout stamps lastActive on the current profile, if any, and clears the
// session document. Profiles are untouched.
func (s *DatingStore) Logout() {
	if session, ok := s.Session(); ok {
		s.TouchLastActive(session.ID)
	}
	s.ledger.Remove(KeyDatingSession)
}

// Session returns the stored dating session. A corrupt session document is
// treated as logged out and removed.
func (s *DatingStore) Session() (models.DatingProfile, bool) {
	var session models.DatingProfile
	if !s.ledger.Read(KeyDatingSession, &session) {
		s.ledger.Remove(KeyDatingSession)
		return models.DatingProfile{}, false
	}
	if session.ID == "" {
		return models.DatingProfile{}, false
	}
	return session, true
}

func (s *DatingStore) saveSession(profile models.DatingProfile) {
	if err := s.ledger.Write(KeyDatingSession, profile); err != nil {
		log.Printf("ERROR: Failed to persist dating session: %v", err)
	}
}

// UpdateProfile merges a partial edit into the profile, stamps lastActive,
// and refreshes the session document with the updated public view.
func (s *DatingStore) UpdateProfile(id string, update DatingProfileUpdate) (models.DatingProfile, error) {
	users := s.profiles()
	for i := range users {
		if users[i].ID != id {
			continue
		}
		applyProfileUpdate(&users[i], update)
		users[i].LastActive = nowUTC()
		s.save(users)

		session := users[i].Public()
		s.saveSession(session)
		return session, nil
	}
	return models.DatingProfile{}, ErrDatingProfileNotFound
}

// TouchLastActive stamps lastActive on the given profile. Unknown ids are
// a no-op.
func (s *DatingStore) TouchLastActive(id string) {
	users := s.profiles()
	for i := range users {
		if users[i].ID == id {
			users[i].LastActive = nowUTC()
			s.save(users)
			return
		}
	}
}

// DeleteProfile removes a profile by id. Message cleanup is the caller's
// responsibility.
func (s *DatingStore) DeleteProfile(id string) bool {
	users := s.profiles()
	for i := range users {
		if users[i].ID == id {
			s.save(append(users[:i], users[i+1:]...))
			if session, ok := s.Session(); ok && session.ID == id {
				s.ledger.Remove(KeyDatingSession)
			}
			log.Printf("INFO: Deleted dating profile %s", id)
			return true
		}
	}
	return false
}

func applyProfileUpdate(p *models.DatingProfile, u DatingProfileUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Seeking != nil {
		p.Seeking = *u.Seeking
	}
	if u.Country != nil {
		p.Country = *u.Country
	}
	if u.District != nil {
		p.District = *u.District
	}
	if u.AboutMe != nil {
		p.AboutMe = *u.AboutMe
	}
	if u.Interests != nil {
		p.Interests = *u.Interests
	}
	if u.MaritalStatus != nil {
		p.MaritalStatus = *u.MaritalStatus
	}
	if u.SexualOrientation != nil {
		p.SexualOrientation = *u.SexualOrientation
	}
	if u.ProfilePhoto != nil {
		p.ProfilePhoto = *u.ProfilePhoto
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
