package memory

import (
	"fmt"
	"sync"
	"time"

	"auction-house/internal/domain"
)

// AuctionStore keeps every auction in a dense arena indexed by its id.
// Ids are assigned sequentially from the arena length and never reused.
type AuctionStore struct {
	mu       sync.RWMutex
	auctions []domain.Auction
	duration time.Duration
	now      func() time.Time
}

func NewAuctionStore(auctionDuration time.Duration) *AuctionStore {
	return &AuctionStore{
		duration: auctionDuration,
		now:      time.Now,
	}
}

// Create inserts a new auction and returns its id. The advisory lock starts
// expired so the first bidder can take it immediately.
func (s *AuctionStore) Create(owner string, item domain.Item, startingBid int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := int64(len(s.auctions))
	s.auctions = append(s.auctions, domain.Auction{
		ID:         id,
		Owner:      owner,
		Item:       item,
		HighestBid: startingBid,
		Expiry:     now.Add(s.duration),
		LockHolder: owner,
		LockExpiry: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	})

	return id
}

func (s *AuctionStore) Get(id int64) (domain.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 0 || id >= int64(len(s.auctions)) {
		return domain.Auction{}, fmt.Errorf("get auction %d: %w", id, domain.ErrAuctionNotFound)
	}

	return s.auctions[id], nil
}

// Replace overwrites the stored record unconditionally. Callers must
// serialize their own read-validate-write sequences.
func (s *AuctionStore) Replace(id int64, auction domain.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 0 || id >= int64(len(s.auctions)) {
		return fmt.Errorf("replace auction %d: %w", id, domain.ErrAuctionNotFound)
	}

	auction.ID = id
	auction.UpdatedAt = s.now()
	s.auctions[id] = auction

	return nil
}

// List returns a snapshot of all auctions in insertion order.
func (s *AuctionStore) List() []domain.Auction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Auction(nil), s.auctions...)
}
