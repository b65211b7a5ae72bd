package services

import (
	"context"
	"fmt"

	"auction-house/internal/domain"
	"auction-house/pkg/logger"
)

// AuctionService is the thin listing facade over the store. All mutation of
// live auctions goes through BidService.
type AuctionService struct {
	store domain.AuctionStore
	log   logger.Logger
}

func NewAuctionService(store domain.AuctionStore, log logger.Logger) *AuctionService {
	return &AuctionService{
		store: store,
		log:   log,
	}
}

// CreateAuction lists a new item and returns the assigned auction id.
func (s *AuctionService) CreateAuction(ctx context.Context, owner, name, description, url string, startingBid int64) (int64, error) {
	if owner == "" || name == "" {
		return 0, fmt.Errorf("%w: owner and item name are required", domain.ErrInvalidAuction)
	}
	if startingBid < 0 {
		return 0, fmt.Errorf("%w: starting bid must not be negative", domain.ErrInvalidAuction)
	}

	item := domain.Item{
		Name:        name,
		Description: description,
		URL:         url,
	}
	id := s.store.Create(owner, item, startingBid)

	s.log.Info("Auction created", "auction_id", id, "owner", owner, "item", name, "starting_bid", startingBid)
	return id, nil
}

func (s *AuctionService) GetAuction(ctx context.Context, id int64) (domain.Auction, error) {
	return s.store.Get(id)
}

// ListAuctions returns every auction in insertion order.
func (s *AuctionService) ListAuctions(ctx context.Context) []domain.Auction {
	return s.store.List()
}
