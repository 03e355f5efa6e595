package types

import "time"

// Seed dataset used whenever a persisted slot is missing or unreadable.

func SeedListings(now time.Time) []*Listing {
	return []*Listing{
		{
			ID:          "1",
			OwnerID:     "u1",
			OwnerName:   "João Silva",
			Title:       "Apple Watch Ultra - Impecável",
			Description: "Top of the line watch, titanium case. Open to trades for design services, consulting, or smaller Apple products plus cash.",
			Kind:        ListingKindProduct,
			DealKind:    DealKindBoth,
			Category:    "Eletrônicos",
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=1200&auto=format&fit=crop",
			Price:       4500,
			CreatedAt:   now,
			Highlighted: true,
		},
		{
			ID:          "2",
			OwnerID:     "u2",
			OwnerName:   "Sarah Chen",
			Title:       "Corte de Cabelo Premium & Visagismo",
			Description: "Full service at a luxury salon. Specialist in visagism and coloring. Trades for electronics or home decor.",
			Kind:        ListingKindService,
			DealKind:    DealKindSale,
			Category:    "Beleza & Bem-Estar",
			ImageURL:    "https://images.unsplash.com/photo-1560066984-138dadb4c035?q=80&w=1200&auto=format&fit=crop",
			Price:       300,
			CreatedAt:   now,
		},
		{
			ID:          "3",
			OwnerID:     "u3",
			OwnerName:   "Marcos Oliveira",
			Title:       "PlayStation 5 + 2 Controles",
			Description: "Disc edition, original box. Looking for a MacBook M1 or better. Open to offers of other electronics.",
			Kind:        ListingKindProduct,
			DealKind:    DealKindTrade,
			Category:    "Eletrônicos",
			ImageURL:    "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?q=80&w=1200&auto=format&fit=crop",
			Price:       3800,
			CreatedAt:   now,
		},
		{
			ID:          "4",
			OwnerID:     "u4",
			OwnerName:   "Clínica Sorrir",
			Title:       "Clareamento Dental Profissional",
			Description: "Complete laser treatment. Will trade for social media or digital marketing services for the clinic.",
			Kind:        ListingKindService,
			DealKind:    DealKindBoth,
			Category:    "Beleza & Bem-Estar",
			ImageURL:    "https://images.unsplash.com/photo-1588776814546-1ffcf47267a5?q=80&w=1200&auto=format&fit=crop",
			Price:       1200,
			CreatedAt:   now,
			Highlighted: true,
		},
	}
}

// SeedUser is the demo profile every login is stamped from.
func SeedUser() *User {
	return &User{
		ID:            "u1",
		Name:          "João Silva",
		Email:         "joao@permutei.com",
		AvatarURL:     "https://ui-avatars.com/api/?name=Joao+Silva&background=10b981&color=fff",
		Bio:           "Entusiasta de tecnologia e trocas justas.",
		Location:      "Florianópolis, SC",
		WalletBalance: 250.00,
		FavoriteIDs:   []string{},
	}
}

func SeedAuth() *AuthState {
	return &AuthState{User: SeedUser(), IsAuthenticated: true}
}

func SeedStats() *PlatformStats {
	return &PlatformStats{
		TotalRevenue:        15450.50,
		FeesCollected:       2350.30,
		SubscriptionRevenue: 10200.00,
		HighlightRevenue:    2900.20,
		Transactions:        []*Transaction{},
	}
}

func SeedConversations() []*Conversation {
	return []*Conversation{}
}
