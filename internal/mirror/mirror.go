// Package mirror snapshots the store's four collections to durable key-value
// slots and rehydrates them at startup. Each collection lives in its own
// versioned slot; a slot that is missing or unreadable falls back to the seed
// dataset without affecting the other slots.
package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/permutei/permutei-core/internal/platform/logger"
	"github.com/permutei/permutei-core/internal/store"
	"github.com/permutei/permutei-core/internal/types"
)

// SchemaVersion tags every slot key. Bump it whenever a stored shape changes
// so stale snapshots are abandoned instead of half-loaded.
const SchemaVersion = "v12"

const (
	KeyListings      = "permutei:ads:" + SchemaVersion
	KeyAuth          = "permutei:auth:" + SchemaVersion
	KeyConversations = "permutei:convs:" + SchemaVersion
	KeyStats         = "permutei:stats:" + SchemaVersion
)

// ErrNotFound is returned by SlotStore.Load when a key has never been written.
var ErrNotFound = errors.New("mirror: slot not found")

// SlotStore is the transport a Mirror writes through. Implementations: file,
// redis, sqlite, memory.
type SlotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

type Mirror struct {
	log   *logger.Logger
	slots SlotStore
}

func New(log *logger.Logger, slots SlotStore) *Mirror {
	return &Mirror{
		log:   log.With("service", "Mirror"),
		slots: slots,
	}
}

// Save serializes each collection to its slot. Best effort: a failed slot is
// logged and skipped, never surfaced to the mutation that triggered it.
func (m *Mirror) Save(ctx context.Context, st store.State) {
	m.saveSlot(ctx, KeyListings, st.Listings)
	m.saveSlot(ctx, KeyAuth, st.Auth)
	m.saveSlot(ctx, KeyConversations, st.Conversations)
	m.saveSlot(ctx, KeyStats, st.Stats)
}

func (m *Mirror) saveSlot(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		m.log.Warn("slot marshal failed", "key", key, "error", err)
		return
	}
	if err := m.slots.Save(ctx, key, data); err != nil {
		m.log.Warn("slot save failed", "key", key, "error", err)
	}
}

// Load reads all four slots, adopting each one that is present and parseable
// and seeding the rest.
func (m *Mirror) Load(ctx context.Context, now time.Time) store.State {
	st := store.SeedState(now)

	var listings []*types.Listing
	if m.loadSlot(ctx, KeyListings, &listings) {
		st.Listings = listings
	}
	var auth *types.AuthState
	if m.loadSlot(ctx, KeyAuth, &auth) && auth != nil {
		st.Auth = auth
	}
	var convs []*types.Conversation
	if m.loadSlot(ctx, KeyConversations, &convs) {
		st.Conversations = convs
	}
	var stats *types.PlatformStats
	if m.loadSlot(ctx, KeyStats, &stats) && stats != nil {
		st.Stats = stats
	}
	return st
}

func (m *Mirror) loadSlot(ctx context.Context, key string, out interface{}) bool {
	data, err := m.slots.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.log.Warn("slot load failed, using seed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		m.log.Warn("slot parse failed, using seed", "key", key, "error", err)
		return false
	}
	return true
}
