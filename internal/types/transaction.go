package types

import "time"

type TransactionKind string

const (
	TransactionKindServiceFee   TransactionKind = "service_fee"
	TransactionKindSubscription TransactionKind = "subscription"
	TransactionKindHighlight    TransactionKind = "highlight"
	TransactionKindSale         TransactionKind = "sale"
	TransactionKindRecharge     TransactionKind = "recharge"
)

// Transaction is an immutable financial-event record. Append-only: never
// mutated or deleted once recorded.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	UserName    string          `json:"user_name"`
	Kind        TransactionKind `json:"kind"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
