package store

import (
	"errors"
	"log"
	"strings"

	"adserver/models"
)

// Hard-coded privileged credential pair. The admin account bypasses the
// accounts document entirely: it is never persisted, never listed, and
// cannot be deleted through normal flows.
const (
	adminUsername = "admin@adserver70385"
	adminPassword = "Wikum70385#"
)

// Business-rule failures. The error text is the user-facing display string.
var (
	ErrInvalidCredentials = errors.New("Invalid username or password.")
	ErrUsernameTaken      = errors.New("Username already taken.")
	ErrPhoneTaken         = errors.New("This phone number is already registered.")
)

// IdentityStore owns the "accounts" and "session" documents: registered
// classifieds accounts plus the single active session record.
//
// Credentials are stored and compared in plaintext, faithfully to the system
// this replaces. Documented limitation; see models.Account.
type IdentityStore struct {
	ledger Ledger
}

func NewIdentityStore(ledger Ledger) *IdentityStore {
	return &IdentityStore{ledger: ledger}
}

func (s *IdentityStore) accounts() []models.Account {
	var accounts []models.Account
	if !s.ledger.Read(KeyAccounts, &accounts) {
		return []models.Account{}
	}
	return accounts
}

// Login checks the hard-coded admin pair first (exact match), then the
// stored accounts (case-insensitive username, exact password). On success
// the session record is persisted and returned.
func (s *IdentityStore) Login(username, password string) (models.Session, error) {
	if username == adminUsername && password == adminPassword {
		session := models.Session{Username: adminUsername, IsAdmin: true}
		s.saveSession(session)
		log.Printf("INFO: Admin login")
		return session, nil
	}

	for _, account := range s.accounts() {
		if strings.EqualFold(account.Username, username) && account.Password == password {
			session := models.Session{Username: account.Username, Phone: account.Phone}
			s.saveSession(session)
			return session, nil
		}
	}

	return models.Session{}, ErrInvalidCredentials
}

// Register appends a new account after checking username (case-insensitive)
// and phone (exact) uniqueness, then establishes a session.
func (s *IdentityStore) Register(username, phone, password string) (models.Session, error) {
	accounts := s.accounts()

	for _, account := range accounts {
		if strings.EqualFold(account.Username, username) {
			return models.Session{}, ErrUsernameTaken
		}
	}
	for _, account := range accounts {
		if account.Phone == phone {
			return models.Session{}, ErrPhoneTaken
		}
	}

	accounts = append(accounts, models.Account{Username: username, Phone: phone, Password: password})
	if err := s.ledger.Write(KeyAccounts, accounts); err != nil {
		log.Printf("ERROR: Failed to persist accounts after registration of '%s': %v", username, err)
	}
	log.Printf("INFO: Registered account '%s'", username)

	session := models.Session{Username: username, Phone: phone}
	s.saveSession(session)
	return session, nil
}

// Logout clears the session record only; the account is untouched.
func (s *IdentityStore) Logout() {
	s.ledger.Remove(KeySession)
}

// Session returns the persisted session record, if any. A corrupted record
// is removed and reported as logged out.
func (s *IdentityStore) Session() (models.Session, bool) {
	var session models.Session
	if !s.ledger.Read(KeySession, &session) {
		// Absent or unparseable; either way the caller is logged out.
		s.ledger.Remove(KeySession)
		return models.Session{}, false
	}
	if session.Username == "" {
		return models.Session{}, false
	}
	return session, true
}

// Accounts returns all registered accounts. Admin collaborator use only;
// the hard-coded admin is not among them.
func (s *IdentityStore) Accounts() []models.Account {
	return s.accounts()
}

// AccountByUsername looks up an account case-insensitively.
func (s *IdentityStore) AccountByUsername(username string) (models.Account, bool) {
	for _, account := range s.accounts() {
		if strings.EqualFold(account.Username, username) {
			return account, true
		}
	}
	return models.Account{}, false
}

// DeleteAccount removes an account by username (case-insensitive). Returns
// false if no such account exists. Deleting the user's ads is the caller's
// job: this store never touches the "user-ads" document.
func (s *IdentityStore) DeleteAccount(username string) bool {
	accounts := s.accounts()
	kept := accounts[:0]
	for _, account := range accounts {
		if !strings.EqualFold(account.Username, username) {
			kept = append(kept, account)
		}
	}
	if len(kept) == len(accounts) {
		return false
	}
	if err := s.ledger.Write(KeyAccounts, kept); err != nil {
		log.Printf("ERROR: Failed to persist accounts after deleting '%s': %v", username, err)
	}
	log.Printf("INFO: Deleted account '%s'", username)
	return true
}

func (s *IdentityStore) saveSession(session models.Session) {
	if err := s.ledger.Write(KeySession, session); err != nil {
		log.Printf("ERROR: Failed to persist session for '%s': %v", session.Username, err)
	}
}
