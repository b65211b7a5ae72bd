package domain

import (
	"time"
)

// Item describes what is being sold. Immutable after creation.
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Auction is a listing with its current best bid and an advisory lock
// embedded in the record. The lock is free whenever the current time is
// past LockExpiry.
type Auction struct {
	ID            int64
	Owner         string
	Item          Item
	HighestBid    int64
	HighestBidder string // empty until the first accepted bid
	Expiry        time.Time
	LockHolder    string
	LockExpiry    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasBidder reports whether any bid has been accepted yet.
func (a *Auction) HasBidder() bool {
	return a.HighestBidder != ""
}

type BidEvent struct {
	EventID   string       `json:"event_id"`
	Type      BidEventType `json:"type"`
	AuctionID int64        `json:"auction_id"`
	UserID    string       `json:"user_id"`
	Amount    int64        `json:"amount"`
	Reason    string       `json:"reason,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

type BidEventType string

const (
	BidAccepted   BidEventType = "bid_accepted"
	BidRejected   BidEventType = "bid_rejected"
	AuctionClosed BidEventType = "auction_closed"
)
