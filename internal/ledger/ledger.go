// Package ledger records financial events. Every event becomes exactly one
// immutable Transaction folded into the platform aggregates, with a single
// consistent wallet adjustment in the same step.
package ledger

import (
	"time"

	"github.com/permutei/permutei-core/internal/platform/ids"
	"github.com/permutei/permutei-core/internal/platform/logger"
	"github.com/permutei/permutei-core/internal/types"
)

type Recorder interface {
	// Record appends a transaction for user to stats (newest-first), updates
	// the revenue aggregates for kind and applies the wallet delta to user.
	Record(stats *types.PlatformStats, user *types.User, kind types.TransactionKind, amount float64, description string) *types.Transaction
}

type recorder struct {
	log *logger.Logger
	ids ids.Generator
	now func() time.Time
}

func NewRecorder(log *logger.Logger, gen ids.Generator, now func() time.Time) Recorder {
	return &recorder{
		log: log.With("service", "LedgerRecorder"),
		ids: gen,
		now: now,
	}
}

func (r *recorder) Record(stats *types.PlatformStats, user *types.User, kind types.TransactionKind, amount float64, description string) *types.Transaction {
	tx := &types.Transaction{
		ID:          r.ids.NewID(),
		UserID:      user.ID,
		UserName:    user.Name,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		CreatedAt:   r.now(),
	}

	stats.Transactions = append([]*types.Transaction{tx}, stats.Transactions...)

	stats.TotalRevenue += amount
	switch kind {
	case types.TransactionKindServiceFee:
		stats.FeesCollected += amount
	case types.TransactionKindSubscription:
		stats.SubscriptionRevenue += amount
	case types.TransactionKindHighlight:
		stats.HighlightRevenue += amount
	}

	switch kind {
	case types.TransactionKindServiceFee, types.TransactionKindSubscription, types.TransactionKindHighlight:
		user.WalletBalance -= amount
	case types.TransactionKindRecharge:
		user.WalletBalance += amount
	case types.TransactionKindSale:
		// sale settlement does not touch the wallet
	}

	r.log.Debug("transaction recorded", "tx_id", tx.ID, "kind", string(kind), "amount", amount, "user_id", user.ID)
	return tx
}
