package store

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"adserver/models"
)

// rotatingCodeCount is the fixed length of a rotating slot's code list.
const rotatingCodeCount = 4

// defaultSlots is the closed catalog of placement keys. Callers cannot
// create slots; only migration can add a missing catalog entry back to a
// corrupted collection.
var defaultSlots = []models.AdSpaceSlot{
	// Global
	{Key: "top-leaderboard", Label: "Top Leaderboard", Area: "Global", Kind: models.SlotSingle, Size: "320x50", Codes: []string{""}},
	{Key: "bottom-mobile", Label: "Bottom Mobile Banner", Area: "Global", Kind: models.SlotSingle, Size: "320x100", Codes: []string{""}},
	{Key: "sliding-bottom", Label: "Sliding Bottom Strip", Area: "Global", Kind: models.SlotSingle, Size: "320x50", Codes: []string{""}},
	// Ads section
	{Key: "detail-below-image", Label: "Detail Page Below Image", Area: "Ads", Kind: models.SlotSingle, Size: "320x100", Codes: []string{""}},
	{Key: "ad-detail-bottom", Label: "Ad Detail Bottom", Area: "Ads", Kind: models.SlotSingle, Size: "300x250", Codes: []string{""}},
	{Key: "home-in-content", Label: "Home Feed (every 4 rows)", Area: "Ads", Kind: models.SlotRotating, Size: "320x200", Codes: []string{"", "", "", ""}},
	{Key: "category-in-content", Label: "Category Feed (every 4 rows)", Area: "Ads", Kind: models.SlotRotating, Size: "320x200", Codes: []string{"", "", "", ""}},
	// Profile
	{Key: "profile-bottom", Label: "Profile Page Bottom", Area: "Profile", Kind: models.SlotSingle, Size: "300x250", Codes: []string{""}},
	// Dating
	{Key: "dating-in-content", Label: "Dating Feed (every 4 rows)", Area: "Dating", Kind: models.SlotRotating, Size: "320x50", Codes: []string{"", "", "", ""}},
	{Key: "dating-profile-bottom", Label: "Dating Profile Bottom", Area: "Dating", Kind: models.SlotSingle, Size: "320x250", Codes: []string{""}},
	// Stories
	{Key: "story-in-content", Label: "Stories Feed (every 4 rows)", Area: "Stories", Kind: models.SlotRotating, Size: "320x100", Codes: []string{"", "", "", ""}},
	{Key: "story-content-1", Label: "Story Body 25%", Area: "Stories", Kind: models.SlotSingle, Size: "320x90", Codes: []string{""}},
	{Key: "story-content-2", Label: "Story Body 50%", Area: "Stories", Kind: models.SlotSingle, Size: "320x90", Codes: []string{""}},
	{Key: "story-content-3", Label: "Story Body 75%", Area: "Stories", Kind: models.SlotSingle, Size: "320x90", Codes: []string{""}},
	{Key: "story-content-4", Label: "Story Body End", Area: "Stories", Kind: models.SlotSingle, Size: "320x90", Codes: []string{""}},
	// Chat
	{Key: "chatbox-horizontal", Label: "Chat User List (every 10)", Area: "Chat", Kind: models.SlotRotating, Size: "320x50", Codes: []string{"", "", "", ""}},
}

// DefaultSlots returns a fresh copy of the catalog.
func DefaultSlots() []models.AdSpaceSlot {
	out := make([]models.AdSpaceSlot, len(defaultSlots))
	for i, slot := range defaultSlots {
		out[i] = slot
		out[i].Codes = append([]string(nil), slot.Codes...)
	}
	return out
}

// AdPlacementStore owns the "ad-placement-slots" document: operator-editable
// raw markup per named placement. It is the only store with a change
// notification mechanism; every Write fans out a signal so each mounted
// placement widget re-reads its own slot independently.
type AdPlacementStore struct {
	ledger Ledger

	mu          sync.Mutex
	subscribers map[int]chan struct{}
	nextSubID   int
}

func NewAdPlacementStore(ledger Ledger) *AdPlacementStore {
	return &AdPlacementStore{
		ledger:      ledger,
		subscribers: make(map[int]chan struct{}),
	}
}

// repairSlots applies the idempotent read-time migration: append catalog
// entries missing from the collection, pad rotating code lists to the fixed
// length, and default missing sizes from the catalog. Pure function; the
// caller persists only when repaired is true.
func repairSlots(slots []models.AdSpaceSlot) (repaired bool, out []models.AdSpaceSlot) {
	out = slots

	known := make(map[string]bool, len(out))
	for _, slot := range out {
		known[slot.Key] = true
	}
	for _, def := range DefaultSlots() {
		if !known[def.Key] {
			out = append(out, def)
			repaired = true
		}
	}

	for i := range out {
		if out[i].Kind == models.SlotRotating && len(out[i].Codes) < rotatingCodeCount {
			for len(out[i].Codes) < rotatingCodeCount {
				out[i].Codes = append(out[i].Codes, "")
			}
			repaired = true
		}
		if out[i].Size == "" {
			out[i].Size = catalogSize(out[i].Key)
			repaired = true
		}
	}
	return repaired, out
}

// catalogSize returns the catalog's size for a key, or the smallest banner
// size for keys the catalog no longer knows.
func catalogSize(key string) string {
	for _, def := range defaultSlots {
		if def.Key == key {
			return def.Size
		}
	}
	return "320x50"
}

// ReadAll loads the slot collection, seeding it from the catalog on first
// use and repairing it on every read. Repairs are persisted back, so a
// second consecutive call performs no further write.
func (s *AdPlacementStore) ReadAll() []models.AdSpaceSlot {
	var slots []models.AdSpaceSlot
	if !s.ledger.Read(KeyPlacementSlots, &slots) {
		slots = DefaultSlots()
		if err := s.ledger.Write(KeyPlacementSlots, slots); err != nil {
			log.Printf("ERROR: Failed to seed placement slots: %v", err)
		}
		return slots
	}

	repaired, slots := repairSlots(slots)
	if repaired {
		log.Printf("INFO: Repaired placement slot collection during read")
		if err := s.ledger.Write(KeyPlacementSlots, slots); err != nil {
			log.Printf("ERROR: Failed to persist repaired placement slots: %v", err)
		}
	}
	return slots
}

// Slot returns the slot with the given catalog key.
func (s *AdPlacementStore) Slot(key string) (models.AdSpaceSlot, bool) {
	for _, slot := range s.ReadAll() {
		if slot.Key == key {
			return slot, true
		}
	}
	return models.AdSpaceSlot{}, false
}

// SingleCode returns the first code of a single slot, trimmed, or "" when
// the slot is unknown, disabled, or blank. Disabled slots yield nothing
// regardless of code content.
func (s *AdPlacementStore) SingleCode(key string) string {
	slot, found := s.Slot(key)
	if !found || !slot.Enabled || len(slot.Codes) == 0 {
		return ""
	}
	return strings.TrimSpace(slot.Codes[0])
}

// RotatingCode picks the code to display for the given rotation index.
// Rotation runs over the compacted list of non-blank codes, not the raw
// 4-entry array: a slot with 2 of 4 codes filled cycles 1,2,1,2.
func (s *AdPlacementStore) RotatingCode(key string, index int) string {
	slot, found := s.Slot(key)
	if !found || !slot.Enabled {
		return ""
	}
	active := make([]string, 0, len(slot.Codes))
	for _, code := range slot.Codes {
		if strings.TrimSpace(code) != "" {
			active = append(active, code)
		}
	}
	if len(active) == 0 {
		return ""
	}
	if index < 0 {
		index = -index
	}
	return active[index%len(active)]
}

// UpdateSlot merges label-independent fields (codes, enabled, size) into an
// existing slot. The catalog is closed: unknown keys are refused.
func (s *AdPlacementStore) UpdateSlot(key string, codes []string, enabled bool) bool {
	slots := s.ReadAll()
	for i := range slots {
		if slots[i].Key != key {
			continue
		}
		if codes != nil {
			slots[i].Codes = codes
		}
		slots[i].Enabled = enabled
		s.Write(slots)
		return true
	}
	return false
}

// Write persists the collection and notifies every subscriber.
func (s *AdPlacementStore) Write(slots []models.AdSpaceSlot) {
	if err := s.ledger.Write(KeyPlacementSlots, slots); err != nil {
		log.Printf("ERROR: Failed to persist placement slots: %v", err)
	}
	s.notify()
}

// Subscribe registers a change listener. The returned channel receives a
// signal after every Write; the returned func cancels the subscription.
// Signals are coalesced (buffer of one, non-blocking send): a slow consumer
// misses intermediate writes but always sees the latest state on re-read.
func (s *AdPlacementStore) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan struct{}, 1)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
	return ch, cancel
}

func (s *AdPlacementStore) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// LoadSamples enables every slot and fills it with placeholder markup sized
// to its declared WxH: one banner for single slots, four numbered banners
// for rotating ones.
func (s *AdPlacementStore) LoadSamples() {
	slots := s.ReadAll()
	for i := range slots {
		slots[i].Enabled = true
		w, h := parseSize(slots[i].Size)
		if slots[i].Kind == models.SlotSingle {
			slots[i].Codes = []string{sampleBanner(slots[i].Key, slots[i].Label, w, h)}
		} else {
			codes := make([]string, rotatingCodeCount)
			for n := range codes {
				codes[n] = sampleRotating(slots[i].Key, slots[i].Label, n+1, w, h)
			}
			slots[i].Codes = codes
		}
	}
	s.Write(slots)
	log.Printf("INFO: Loaded sample markup into all placement slots")
}

// ClearAll disables every slot and blanks all codes.
func (s *AdPlacementStore) ClearAll() {
	slots := s.ReadAll()
	for i := range slots {
		slots[i].Enabled = false
		if slots[i].Kind == models.SlotRotating {
			slots[i].Codes = make([]string, rotatingCodeCount)
		} else {
			slots[i].Codes = []string{""}
		}
	}
	s.Write(slots)
	log.Printf("INFO: Cleared all placement slots")
}

// parseSize parses "320x250" (or the legacy "320×250") into width and height.
func parseSize(size string) (w, h int) {
	parts := strings.FieldsFunc(size, func(r rune) bool {
		return r == 'x' || r == 'X' || r == '×'
	})
	w, h = 320, 50
	if len(parts) >= 1 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			w = n
		}
	}
	if len(parts) >= 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			h = n
		}
	}
	return w, h
}

// sampleBanner builds the placeholder markup for a single slot.
func sampleBanner(slotKey, label string, w, h int) string {
	fs := 12
	if h <= 50 {
		fs = 10
	} else if h <= 100 {
		fs = 11
	}
	dir := ""
	if h >= 200 {
		dir = "flex-direction:column;"
	}
	return fmt.Sprintf(`<div style="width:%dpx;max-width:100%%;height:%dpx;background:#1a1a2e;border:2px dashed #6d28d9;border-radius:8px;display:flex;align-items:center;justify-content:center;gap:8px;padding:4px 12px;box-sizing:border-box;margin:0 auto;%s"><span style="color:#a78bfa;font-weight:700">AD</span><span style="color:#d4d4d8;font-size:%dpx;text-align:center">%s</span><span style="color:#6d28d9;font-size:9px;opacity:.6">%dx%d [%s]</span></div>`,
		w, h, dir, fs, label, w, h, slotKey)
}

// sampleRotating builds the placeholder markup for position n of a rotating slot.
func sampleRotating(slotKey, label string, n, w, h int) string {
	colors := []string{"#6d28d9", "#2563eb", "#059669", "#d97706"}
	c := colors[(n-1)%len(colors)]
	fs := 12
	if h <= 50 {
		fs = 10
	} else if h <= 100 {
		fs = 11
	}
	dir := ""
	if h >= 200 {
		dir = "flex-direction:column;"
	}
	return fmt.Sprintf(`<div style="width:%dpx;max-width:100%%;height:%dpx;background:linear-gradient(135deg,%s22,%s08);border:2px dashed %s;border-radius:8px;display:flex;align-items:center;justify-content:center;gap:8px;padding:4px 12px;box-sizing:border-box;margin:0 auto;%s"><span style="color:%s;font-weight:800">AD %d</span><span style="color:#d4d4d8;font-size:%dpx;text-align:center">%s</span><span style="color:%s;font-size:9px;opacity:.5">%dx%d [%s]</span></div>`,
		w, h, c, c, c, dir, c, n, fs, label, c, w, h, slotKey)
}
