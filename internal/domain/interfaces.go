package domain

import (
	"context"
)

// AuctionStore owns every Auction record. Replace is an unconditional
// overwrite; callers are responsible for serializing read-validate-write
// sequences on the same auction id.
type AuctionStore interface {
	Create(owner string, item Item, startingBid int64) int64
	Get(id int64) (Auction, error)
	Replace(id int64, auction Auction) error
	List() []Auction
}

// Ledger is the contract to the external balance service. Both calls may
// suspend the caller while the request is in flight; Transfer failure is a
// recoverable event and must be checked.
type Ledger interface {
	GetBalance(ctx context.Context, user string) (int64, error)
	Transfer(ctx context.Context, from, to string, amount int64) error
}

// Event interfaces
type EventPublisher interface {
	PublishBidEvent(ctx context.Context, event *BidEvent) error
}

type EventSubscriber interface {
	SubscribeToBidEvents(ctx context.Context, handler EventHandler) error
}

type EventHandler func(event *BidEvent) error

// BidHistoryRepository archives bid events for later inspection.
type BidHistoryRepository interface {
	SaveBidEvent(ctx context.Context, event *BidEvent) error
	GetBidHistory(ctx context.Context, auctionID int64) ([]*BidEvent, error)
}

// Notification interfaces
type UserNotifier interface {
	NotifyUser(ctx context.Context, userID string, message interface{}) error
}

type AuctionBroadcaster interface {
	BroadcastToAuction(ctx context.Context, auctionID int64, message interface{}) error
}

// WebSocket interfaces
type WebSocketConnection interface {
	Send(message interface{}) error
	Close() error
	UserID() string
	AuctionID() int64
}

type ConnectionManager interface {
	RegisterConnection(userID string, auctionID int64, conn WebSocketConnection) error
	UnregisterConnection(userID string, auctionID int64) error
	GetConnectionsForAuction(auctionID int64) []WebSocketConnection
	GetConnectionsForUser(userID string) []WebSocketConnection
	BroadcastToAuction(auctionID int64, message interface{}) error
	NotifyUser(userID string, message interface{}) error
	CloseAndUnregisterConnections(auctionID int64) error
}
