// Package store implements the persistence layer: a set of flat, independent
// key-value stores, each owning exactly one persisted JSON document. All
// stores are built on the Ledger primitive and keep no shared in-memory
// cache: every operation is a synchronous read-modify-write of its document.
//
// Two classes of race are accepted limitations rather than bugs: a
// read-modify-write is not atomic across processes (last write wins, no
// merge), and only AdPlacementStore broadcasts change notifications; every
// other store expects its consumers to re-read.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Persisted document keys. Each store owns exactly one key and never reads
// another store's key; cross-store consistency (e.g. deleting an account and
// then its ads) is composed by the caller with no rollback.
const (
	KeyAccounts       = "accounts"
	KeySession        = "session"
	KeyUserAds        = "user-ads"
	KeyPlacementSlots = "ad-placement-slots"
	KeyDatingProfiles = "dating-profiles"
	KeyDatingSession  = "dating-session"
	KeyDatingMessages = "dating-messages"
	KeyStories        = "stories"
)

// Ledger is the storage backend the stores are constructed with: generic
// get/set/remove against a single persistent key with JSON encode/decode.
//
// Read returns false when the key is absent or its document cannot be
// decoded; it never returns an error, so every store falls back to its
// default collection instead of surfacing corruption to callers.
type Ledger interface {
	Read(key string, dest any) bool
	Write(key string, v any) error
	Remove(key string)
}

// --- File-backed ledger ---

// FileLedger persists one JSON document per key as <dir>/<key>.json.
// Writes go through a temp file and an atomic rename, optionally keeping a
// .bak of the previous document. Writes are synchronous: when Write returns,
// the document is on disk.
type FileLedger struct {
	dir          string
	enableBackup bool
	mu           sync.Mutex // Serializes writers within this process only
}

// NewFileLedger creates the backing directory if needed.
func NewFileLedger(dir string, enableBackup bool) (*FileLedger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	log.Printf("INFO: Initializing file ledger in directory: %s", dir)
	return &FileLedger{dir: dir, enableBackup: enableBackup}, nil
}

func (l *FileLedger) path(key string) string {
	return filepath.Join(l.dir, key+".json")
}

// Read decodes the document stored under key into dest. Any failure -
// missing file, unreadable file, malformed JSON - logs and returns false so
// the caller can fall back to its default value.
func (l *FileLedger) Read(key string, dest any) bool {
	fileData, err := os.ReadFile(l.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: Failed to read store document '%s': %v. Falling back to default.", key, err)
		}
		return false
	}

	if err := json.Unmarshal(fileData, dest); err != nil {
		log.Printf("WARN: Failed to parse store document '%s': %v. Falling back to default.", key, err)
		return false
	}
	return true
}

// Write serializes v and stores it under key unconditionally.
func (l *FileLedger) Write(key string, v any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("ERROR: Failed to marshal store document '%s': %v", key, err)
		return err
	}

	finalPath := l.path(key)
	tempPath := finalPath + ".tmp"

	if err := os.WriteFile(tempPath, jsonData, 0644); err != nil {
		log.Printf("ERROR: Failed to write temporary file for store document '%s': %v", key, err)
		return err
	}

	if l.enableBackup {
		if _, err := os.Stat(finalPath); err == nil {
			if err := os.Rename(finalPath, finalPath+".bak"); err != nil {
				// Keep going; the new document still lands via the rename below.
				log.Printf("WARN: Failed to create backup for store document '%s': %v. Proceeding with save.", key, err)
			}
		}
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		log.Printf("ERROR: Failed to atomically rename temporary file for store document '%s': %v", key, err)
		_ = os.Remove(tempPath)
		return err
	}

	return nil
}

// Remove deletes the document stored under key, if present.
func (l *FileLedger) Remove(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.Remove(l.path(key)); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: Failed to remove store document '%s': %v", key, err)
	}
}

// --- In-memory ledger ---

// MemoryLedger is a map-backed Ledger for tests and embedded use. Values are
// round-tripped through JSON so decode behavior matches FileLedger.
type MemoryLedger struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{docs: make(map[string][]byte)}
}

func (l *MemoryLedger) Read(key string, dest any) bool {
	l.mu.Lock()
	data, found := l.docs[key]
	l.mu.Unlock()
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("WARN: Failed to parse in-memory store document '%s': %v. Falling back to default.", key, err)
		return false
	}
	return true
}

func (l *MemoryLedger) Write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.docs[key] = data
	l.mu.Unlock()
	return nil
}

func (l *MemoryLedger) Remove(key string) {
	l.mu.Lock()
	delete(l.docs, key)
	l.mu.Unlock()
}

// Corrupt overwrites a key with unparseable bytes. Test helper for exercising
// the decode-failure fallback paths.
func (l *MemoryLedger) Corrupt(key string) {
	l.mu.Lock()
	l.docs[key] = []byte("{not json")
	l.mu.Unlock()
}
