// Package api exposes the stores over HTTP. The stores themselves are
// deliberately permissive (see package store); every business rule a user
// can trip over (field limits, the active-ad quota, the edit lock, owner
// checks) is enforced here, before the store is touched.
package api

import "adserver/store"

// Stores bundles every store a handler might need. main wires one instance
// and closes over it when registering routes.
type Stores struct {
	Identity   *store.IdentityStore
	Ads        *store.ClassifiedAdStore
	Placements *store.AdPlacementStore
	Dating     *store.DatingStore
	Messages   *store.MessageStore
	Stories    *store.StoryStore
}

// NewStores constructs the full store set over one ledger.
func NewStores(ledger store.Ledger) *Stores {
	return &Stores{
		Identity:   store.NewIdentityStore(ledger),
		Ads:        store.NewClassifiedAdStore(ledger),
		Placements: store.NewAdPlacementStore(ledger),
		Dating:     store.NewDatingStore(ledger),
		Messages:   store.NewMessageStore(ledger),
		Stories:    store.NewStoryStore(ledger),
	}
}
