package types

import "time"

type ListingKind string

const (
	ListingKindProduct ListingKind = "product"
	ListingKindService ListingKind = "service"
)

type DealKind string

const (
	DealKindTrade DealKind = "trade"
	DealKindSale  DealKind = "sale"
	DealKindBoth  DealKind = "both"
)

// Listing is a product or service offered on the marketplace. Immutable once
// created except for the Highlighted flag and owner-initiated deletion.
type Listing struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	OwnerName   string      `json:"owner_name"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price,omitempty"`
	Kind        ListingKind `json:"kind"`
	DealKind    DealKind    `json:"deal_kind"`
	Category    string      `json:"category"`
	ImageURL    string      `json:"image_url"`
	CreatedAt   time.Time   `json:"created_at"`
	Highlighted bool        `json:"highlighted,omitempty"`
}

func (l *Listing) Clone() *Listing {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

// NewListingInput carries the caller-supplied fields of addListing; owner and
// timestamps are stamped by the store.
type NewListingInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price,omitempty"`
	Kind        ListingKind `json:"kind"`
	DealKind    DealKind    `json:"deal_kind"`
	Category    string      `json:"category"`
	ImageURL    string      `json:"image_url"`
}
