// Package store owns the four domain collections (listings, session,
// conversations, platform stats) and exposes the only sanctioned mutation
// entry points. Readers always receive deep copies; every applied mutation is
// reported to the change observer so the persistence mirror can snapshot.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/permutei/permutei-core/internal/ledger"
	"github.com/permutei/permutei-core/internal/platform/ids"
	"github.com/permutei/permutei-core/internal/platform/logger"
	"github.com/permutei/permutei-core/internal/types"
)

const (
	HighlightPrice       = 4.90
	ProSubscriptionPrice = 19.90
)

// State bundles the four collections, used for seeding the store and for
// mirror snapshots. Always deep-copied across the store boundary.
type State struct {
	Listings      []*types.Listing
	Auth          *types.AuthState
	Conversations []*types.Conversation
	Stats         *types.PlatformStats
}

func (s State) Clone() State {
	out := State{
		Listings:      make([]*types.Listing, len(s.Listings)),
		Auth:          s.Auth.Clone(),
		Conversations: make([]*types.Conversation, len(s.Conversations)),
		Stats:         s.Stats.Clone(),
	}
	for i, l := range s.Listings {
		out.Listings[i] = l.Clone()
	}
	for i, c := range s.Conversations {
		out.Conversations[i] = c.Clone()
	}
	return out
}

// SeedState is the fallback dataset used when no persisted state exists.
func SeedState(now time.Time) State {
	return State{
		Listings:      types.SeedListings(now),
		Auth:          types.SeedAuth(),
		Conversations: types.SeedConversations(),
		Stats:         types.SeedStats(),
	}
}

type Store struct {
	mu  sync.Mutex
	log *logger.Logger
	ids ids.Generator
	now func() time.Time
	rec ledger.Recorder

	listings      []*types.Listing
	auth          *types.AuthState
	conversations []*types.Conversation
	stats         *types.PlatformStats

	onChange func(State)
}

type Option func(*Store)

// WithIDGenerator substitutes the id generator, mainly for deterministic tests.
func WithIDGenerator(gen ids.Generator) Option {
	return func(s *Store) { s.ids = gen }
}

// WithNow substitutes the clock.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithState seeds the store with previously persisted state instead of the
// default seed dataset.
func WithState(st State) Option {
	return func(s *Store) {
		st = st.Clone()
		s.listings = st.Listings
		s.auth = st.Auth
		s.conversations = st.Conversations
		s.stats = st.Stats
	}
}

// WithOnChange registers the observer invoked with a snapshot after every
// applied mutation. Skipped no-ops do not notify.
func WithOnChange(fn func(State)) Option {
	return func(s *Store) { s.onChange = fn }
}

func New(log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		log: log.With("service", "Store"),
		ids: ids.NewUUIDGenerator(),
		now: time.Now,
	}
	seed := SeedState(s.now())
	s.listings = seed.Listings
	s.auth = seed.Auth
	s.conversations = seed.Conversations
	s.stats = seed.Stats
	for _, opt := range opts {
		opt(s)
	}
	s.rec = ledger.NewRecorder(log, s.ids, s.now)
	return s
}

// --- read accessors (deep-copied snapshots) ---

func (s *Store) Listings() []*types.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.Listing, len(s.listings))
	for i, l := range s.listings {
		out[i] = l.Clone()
	}
	return out
}

func (s *Store) Auth() *types.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth.Clone()
}

func (s *Store) Conversations() []*types.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.Conversation, len(s.conversations))
	for i, c := range s.conversations {
		out[i] = c.Clone()
	}
	return out
}

func (s *Store) Stats() *types.PlatformStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Clone()
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	return State{
		Listings:      s.listings,
		Auth:          s.auth,
		Conversations: s.conversations,
		Stats:         s.stats,
	}.Clone()
}

func (s *Store) notifyLocked() {
	if s.onChange != nil {
		s.onChange(s.snapshotLocked())
	}
}

// --- mutations ---

// Login replaces the session with the demo profile stamped with the given
// email. There is no credential verification; the demo has no account registry.
func (s *Store) Login(email string) *types.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := types.SeedUser()
	u.Email = strings.TrimSpace(email)
	s.auth = &types.AuthState{User: u, IsAuthenticated: true}
	s.notifyLocked()
	s.log.Info("session opened", "user_id", u.ID)
	return u.Clone()
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = &types.AuthState{User: nil, IsAuthenticated: false}
	s.notifyLocked()
	s.log.Info("session closed")
}

// AddListing stamps a new listing from the session and prepends it to the
// catalog. Skipped when unauthenticated.
func (s *Store) AddListing(in types.NewListingInput) (*types.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authedLocked() {
		s.log.Debug("addListing skipped: no session")
		return nil, false
	}
	l := &types.Listing{
		ID:          s.ids.NewID(),
		OwnerID:     s.auth.User.ID,
		OwnerName:   s.auth.User.Name,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Kind:        in.Kind,
		DealKind:    in.DealKind,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		CreatedAt:   s.now(),
	}
	s.listings = append([]*types.Listing{l}, s.listings...)
	s.notifyLocked()
	s.log.Info("listing added", "listing_id", l.ID, "owner_id", l.OwnerID)
	return l.Clone(), true
}

// RemoveListing deletes the session user's own listing. A missing id is a
// successful no-op; deleting another user's listing is rejected.
func (s *Store) RemoveListing(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authedLocked() {
		s.log.Debug("removeListing skipped: no session")
		return false
	}
	idx := -1
	for i, l := range s.listings {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return true
	}
	if s.listings[idx].OwnerID != s.auth.User.ID {
		s.log.Warn("removeListing rejected: not owner", "listing_id", id, "user_id", s.auth.User.ID)
		return false
	}
	s.listings = append(s.listings[:idx], s.listings[idx+1:]...)
	s.notifyLocked()
	s.log.Info("listing removed", "listing_id", id)
	return true
}

// ToggleFavorite adds the listing id to the session user's favorites if
// absent and removes it if present.
func (s *Store) ToggleFavorite(listingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authedLocked() {
		s.log.Debug("toggleFavorite skipped: no session")
		return false
	}
	u := s.auth.User
	kept := u.FavoriteIDs[:0]
	found := false
	for _, id := range u.FavoriteIDs {
		if id == listingID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if found {
		u.FavoriteIDs = kept
	} else {
		u.FavoriteIDs = append(u.FavoriteIDs, listingID)
	}
	s.notifyLocked()
	return true
}

// HighlightListing debits the highlight price, records a highlight
// transaction and flags the listing. Skipped when the balance is short.
func (s *Store) HighlightListing(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authedLocked() {
		s.log.Debug("highlightListing skipped: no session")
		return false
	}
	if s.auth.User.WalletBalance < HighlightPrice {
		s.log.Debug("highlightListing skipped: insufficient balance", "listing_id", id)
		return false
	}
	s.rec.Record(s.stats, s.auth.User, types.TransactionKindHighlight, HighlightPrice, "Destaque de Anúncio (7 dias)")
	for _, l := range s.listings {
		if l.ID == id {
			l.Highlighted = true
			break
		}
	}
	s.notifyLocked()
	return true
}

// SubscribePro debits the subscription price, records a subscription
// transaction and grants the Pro tier.
func (s *Store) SubscribePro() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authedLocked() {
		s.log.Debug("subscribePro skipped: no session")
		return false
	}
	if s.auth.User.WalletBalance < ProSubscriptionPrice {
		s.log.Debug("subscribePro skipped: insufficient balance")
		return false
	}
	s.rec.Record(s.stats, s.auth.User, types.TransactionKindSubscription, ProSubscriptionPrice, "Plano Permutei Pro Mensal")
	s.auth.User.IsPro = true
	s.notifyLocked()
	return true
}

// RechargeWallet credits the wallet and records a recharge transaction.
// Amount must be positive.
func (s *Store) RechargeWallet(amount float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authedLocked() {
		s.log.Debug("rechargeWallet skipped: no session")
		return false
	}
	if amount <= 0 {
		s.log.Debug("rechargeWallet skipped: non-positive amount", "amount", amount)
		return false
	}
	s.rec.Record(s.stats, s.auth.User, types.TransactionKindRecharge, amount, "Recarga de Saldo")
	s.notifyLocked()
	return true
}

// SendMessage appends a message from the session user to the conversation and
// refreshes its preview. Unknown conversation ids are a no-op.
func (s *Store) SendMessage(conversationID, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authedLocked() {
		s.log.Debug("sendMessage skipped: no session")
		return false
	}
	for _, c := range s.conversations {
		if c.ID != conversationID {
			continue
		}
		s.appendMessageLocked(c, text)
		s.notifyLocked()
		return true
	}
	s.log.Debug("sendMessage skipped: conversation not found", "conversation_id", conversationID)
	return false
}

// SendProposal opens (or reuses) the conversation with the listing's owner and
// appends the proposal text as a message. Returns the conversation id.
func (s *Store) SendProposal(listingID, text string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authedLocked() {
		s.log.Debug("sendProposal skipped: no session")
		return "", false
	}
	var listing *types.Listing
	for _, l := range s.listings {
		if l.ID == listingID {
			listing = l
			break
		}
	}
	if listing == nil {
		s.log.Debug("sendProposal skipped: listing not found", "listing_id", listingID)
		return "", false
	}
	var conv *types.Conversation
	for _, c := range s.conversations {
		if c.ParticipantID == listing.OwnerID {
			conv = c
			break
		}
	}
	if conv == nil {
		conv = &types.Conversation{
			ID:              s.ids.NewID(),
			ParticipantID:   listing.OwnerID,
			ParticipantName: listing.OwnerName,
			Messages:        []*types.Message{},
		}
		s.conversations = append(s.conversations, conv)
	}
	s.appendMessageLocked(conv, text)
	s.notifyLocked()
	s.log.Info("proposal sent", "listing_id", listingID, "conversation_id", conv.ID)
	return conv.ID, true
}

func (s *Store) appendMessageLocked(c *types.Conversation, text string) {
	c.Messages = append(c.Messages, &types.Message{
		ID:        s.ids.NewID(),
		SenderID:  s.auth.User.ID,
		Text:      text,
		Timestamp: s.now(),
	})
	c.LastMessage = text
}

func (s *Store) authedLocked() bool {
	return s.auth != nil && s.auth.IsAuthenticated && s.auth.User != nil
}
