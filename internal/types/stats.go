package types

// PlatformStats is the aggregate financial rollup derived from the transaction
// history. Transactions are ordered newest-first.
type PlatformStats struct {
	TotalRevenue        float64        `json:"total_revenue"`
	FeesCollected       float64        `json:"fees_collected"`
	SubscriptionRevenue float64        `json:"subscription_revenue"`
	HighlightRevenue    float64        `json:"highlight_revenue"`
	Transactions        []*Transaction `json:"transactions"`
}

func (s *PlatformStats) Clone() *PlatformStats {
	if s == nil {
		return nil
	}
	c := *s
	c.Transactions = make([]*Transaction, len(s.Transactions))
	for i, tx := range s.Transactions {
		c.Transactions[i] = tx.Clone()
	}
	return &c
}
