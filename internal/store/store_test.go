package store

import (
	"math"
	"testing"
	"time"

	"github.com/permutei/permutei-core/internal/platform/ids"
	"github.com/permutei/permutei-core/internal/platform/logger"
	"github.com/permutei/permutei-core/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	base := []Option{
		WithIDGenerator(ids.NewSequenceGenerator("id")),
		WithNow(fixedNow),
	}
	return New(testLogger(t), append(base, opts...)...)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestToggleFavoriteParity(t *testing.T) {
	cases := []struct {
		name    string
		toggles int
		want    bool
	}{
		{name: "once_adds", toggles: 1, want: true},
		{name: "twice_removes", toggles: 2, want: false},
		{name: "five_times_adds", toggles: 5, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			for i := 0; i < tc.toggles; i++ {
				if !s.ToggleFavorite("3") {
					t.Fatalf("toggle %d skipped", i+1)
				}
			}
			favs := s.Auth().User.FavoriteIDs
			got := false
			n := 0
			for _, id := range favs {
				if id == "3" {
					got = true
					n++
				}
			}
			if got != tc.want {
				t.Fatalf("membership after %d toggles = %v, want %v", tc.toggles, got, tc.want)
			}
			if n > 1 {
				t.Fatalf("favorite id duplicated %d times", n)
			}
		})
	}
}

func TestToggleFavoriteRequiresSession(t *testing.T) {
	s := newTestStore(t)
	s.Logout()
	if s.ToggleFavorite("1") {
		t.Fatal("toggle applied without a session")
	}
}

func TestHighlightListingDebitsAndFlags(t *testing.T) {
	s := newTestStore(t)
	before := s.Stats()

	if !s.HighlightListing("3") {
		t.Fatal("highlight skipped")
	}

	if got := s.Auth().User.WalletBalance; !almostEqual(got, 245.10) {
		t.Fatalf("wallet balance = %v, want 245.10", got)
	}
	after := s.Stats()
	if len(after.Transactions) != len(before.Transactions)+1 {
		t.Fatalf("transactions = %d, want %d", len(after.Transactions), len(before.Transactions)+1)
	}
	tx := after.Transactions[0]
	if tx.Kind != types.TransactionKindHighlight || !almostEqual(tx.Amount, HighlightPrice) {
		t.Fatalf("head transaction = {%s %v}, want {highlight %v}", tx.Kind, tx.Amount, HighlightPrice)
	}
	if !almostEqual(after.HighlightRevenue-before.HighlightRevenue, HighlightPrice) {
		t.Fatalf("highlight revenue delta = %v, want %v", after.HighlightRevenue-before.HighlightRevenue, HighlightPrice)
	}
	if !almostEqual(after.TotalRevenue-before.TotalRevenue, HighlightPrice) {
		t.Fatalf("total revenue delta = %v, want %v", after.TotalRevenue-before.TotalRevenue, HighlightPrice)
	}
	for _, l := range s.Listings() {
		if l.ID == "3" && !l.Highlighted {
			t.Fatal("listing 3 not flagged as highlighted")
		}
	}
}

func TestHighlightListingInsufficientBalance(t *testing.T) {
	st := SeedState(fixedNow())
	st.Auth.User.WalletBalance = 1.00
	st.Stats.Transactions = []*types.Transaction{}
	s := newTestStore(t, WithState(st))

	if s.HighlightListing("3") {
		t.Fatal("highlight applied with insufficient balance")
	}
	if got := s.Auth().User.WalletBalance; !almostEqual(got, 1.00) {
		t.Fatalf("wallet balance changed to %v", got)
	}
	if got := s.Auth().User.WalletBalance; got < 0 {
		t.Fatalf("wallet balance went negative: %v", got)
	}
	if n := len(s.Stats().Transactions); n != 0 {
		t.Fatalf("transactions recorded on skipped highlight: %d", n)
	}
	for _, l := range s.Listings() {
		if l.ID == "3" && l.Highlighted {
			t.Fatal("listing flagged despite skipped highlight")
		}
	}
}

func TestRechargeWallet(t *testing.T) {
	s := newTestStore(t)
	start := s.Auth().User.WalletBalance

	if !s.RechargeWallet(50) {
		t.Fatal("recharge skipped")
	}
	if got := s.Auth().User.WalletBalance; !almostEqual(got, start+50) {
		t.Fatalf("wallet balance = %v, want %v", got, start+50)
	}
	stats := s.Stats()
	if len(stats.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(stats.Transactions))
	}
	tx := stats.Transactions[0]
	if tx.Kind != types.TransactionKindRecharge || !almostEqual(tx.Amount, 50) {
		t.Fatalf("transaction = {%s %v}, want {recharge 50}", tx.Kind, tx.Amount)
	}

	if s.RechargeWallet(0) {
		t.Fatal("zero-amount recharge applied")
	}
	if s.RechargeWallet(-5) {
		t.Fatal("negative recharge applied")
	}
}

func TestSubscribePro(t *testing.T) {
	s := newTestStore(t)
	start := s.Auth().User.WalletBalance
	before := s.Stats()

	if !s.SubscribePro() {
		t.Fatal("subscribe skipped")
	}

	u := s.Auth().User
	if !u.IsPro {
		t.Fatal("isPro not set")
	}
	if !almostEqual(u.WalletBalance, start-ProSubscriptionPrice) {
		t.Fatalf("wallet balance = %v, want %v", u.WalletBalance, start-ProSubscriptionPrice)
	}
	after := s.Stats()
	if len(after.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(after.Transactions))
	}
	tx := after.Transactions[0]
	if tx.Kind != types.TransactionKindSubscription || !almostEqual(tx.Amount, ProSubscriptionPrice) {
		t.Fatalf("transaction = {%s %v}, want {subscription %v}", tx.Kind, tx.Amount, ProSubscriptionPrice)
	}
	if !almostEqual(after.SubscriptionRevenue-before.SubscriptionRevenue, ProSubscriptionPrice) {
		t.Fatalf("subscription revenue delta = %v", after.SubscriptionRevenue-before.SubscriptionRevenue)
	}
}

func TestAddListingStampsOwnerAndPrepends(t *testing.T) {
	s := newTestStore(t)
	before := len(s.Listings())

	l, ok := s.AddListing(types.NewListingInput{
		Title:       "A",
		Description: "B",
		Kind:        types.ListingKindProduct,
		DealKind:    types.DealKindTrade,
		Category:    "Eletrônicos",
	})
	if !ok {
		t.Fatal("addListing skipped")
	}
	if l.OwnerID != "u1" || l.OwnerName != "João Silva" {
		t.Fatalf("owner stamp = %s/%s, want u1/João Silva", l.OwnerID, l.OwnerName)
	}
	if l.ID == "" {
		t.Fatal("no id assigned")
	}
	if !l.CreatedAt.Equal(fixedNow()) {
		t.Fatalf("createdAt = %v, want %v", l.CreatedAt, fixedNow())
	}

	listings := s.Listings()
	if len(listings) != before+1 {
		t.Fatalf("listing count = %d, want %d", len(listings), before+1)
	}
	if listings[0].ID != l.ID {
		t.Fatalf("new listing not at head, head = %s", listings[0].ID)
	}
	seen := map[string]bool{}
	for _, x := range listings {
		if seen[x.ID] {
			t.Fatalf("duplicate listing id %s", x.ID)
		}
		seen[x.ID] = true
	}
}

func TestAddListingRequiresSession(t *testing.T) {
	s := newTestStore(t)
	s.Logout()
	if _, ok := s.AddListing(types.NewListingInput{Title: "A"}); ok {
		t.Fatal("addListing applied without a session")
	}
}

func TestRemoveListing(t *testing.T) {
	t.Run("missing_id_is_noop_success", func(t *testing.T) {
		s := newTestStore(t)
		before := len(s.Listings())
		if !s.RemoveListing("does-not-exist") {
			t.Fatal("missing id reported as failure")
		}
		if got := len(s.Listings()); got != before {
			t.Fatalf("listing count changed: %d -> %d", before, got)
		}
	})

	t.Run("own_listing_removed", func(t *testing.T) {
		s := newTestStore(t)
		if !s.RemoveListing("1") {
			t.Fatal("owner removal rejected")
		}
		for _, l := range s.Listings() {
			if l.ID == "1" {
				t.Fatal("listing still present")
			}
		}
	})

	t.Run("foreign_listing_rejected", func(t *testing.T) {
		s := newTestStore(t)
		if s.RemoveListing("2") {
			t.Fatal("removed a listing owned by another user")
		}
		found := false
		for _, l := range s.Listings() {
			if l.ID == "2" {
				found = true
			}
		}
		if !found {
			t.Fatal("foreign listing disappeared")
		}
	})
}

func TestLoginLogout(t *testing.T) {
	s := newTestStore(t)

	u := s.Login("maria@example.com")
	if u.Email != "maria@example.com" {
		t.Fatalf("email = %s", u.Email)
	}
	if !s.Auth().IsAuthenticated {
		t.Fatal("not authenticated after login")
	}

	s.Logout()
	auth := s.Auth()
	if auth.IsAuthenticated || auth.User != nil {
		t.Fatal("session not cleared by logout")
	}
}

func TestSendMessage(t *testing.T) {
	st := SeedState(fixedNow())
	st.Conversations = []*types.Conversation{{
		ID:              "c1",
		ParticipantID:   "u2",
		ParticipantName: "Sarah Chen",
		Messages:        []*types.Message{},
	}}
	s := newTestStore(t, WithState(st))

	if !s.SendMessage("c1", "hello") {
		t.Fatal("sendMessage skipped")
	}
	convs := s.Conversations()
	if len(convs[0].Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(convs[0].Messages))
	}
	m := convs[0].Messages[0]
	if m.SenderID != "u1" || m.Text != "hello" {
		t.Fatalf("message = {%s %q}", m.SenderID, m.Text)
	}
	if convs[0].LastMessage != "hello" {
		t.Fatalf("preview = %q, want hello", convs[0].LastMessage)
	}

	if s.SendMessage("nope", "hi") {
		t.Fatal("sendMessage applied for unknown conversation")
	}
}

func TestSendProposalFindsOrCreatesConversation(t *testing.T) {
	s := newTestStore(t)

	convID, ok := s.SendProposal("2", "I offer my design services")
	if !ok {
		t.Fatal("proposal skipped")
	}
	convs := s.Conversations()
	if len(convs) != 1 {
		t.Fatalf("conversations = %d, want 1", len(convs))
	}
	if convs[0].ParticipantID != "u2" {
		t.Fatalf("participant = %s, want u2", convs[0].ParticipantID)
	}

	again, ok := s.SendProposal("2", "second offer")
	if !ok {
		t.Fatal("second proposal skipped")
	}
	if again != convID {
		t.Fatalf("new conversation %s created instead of reusing %s", again, convID)
	}
	if got := len(s.Conversations()); got != 1 {
		t.Fatalf("conversations = %d, want 1", got)
	}

	if _, ok := s.SendProposal("missing", "x"); ok {
		t.Fatal("proposal applied for unknown listing")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := newTestStore(t)

	listings := s.Listings()
	listings[0].Title = "mutated"
	if s.Listings()[0].Title == "mutated" {
		t.Fatal("snapshot mutation leaked into store")
	}

	auth := s.Auth()
	auth.User.WalletBalance = -1
	if s.Auth().User.WalletBalance == -1 {
		t.Fatal("auth snapshot mutation leaked into store")
	}
}

func TestOnChangeFiresOnlyForAppliedMutations(t *testing.T) {
	var n int
	s := newTestStore(t, WithOnChange(func(State) { n++ }))

	s.RechargeWallet(10)
	if n != 1 {
		t.Fatalf("notifications = %d, want 1", n)
	}

	s.RechargeWallet(-1)
	s.SendMessage("nope", "hi")
	if n != 1 {
		t.Fatalf("skipped mutations notified, n = %d", n)
	}
}
