package services

import (
	"context"
	"sync"
	"time"

	"auction-house/internal/domain"
	"auction-house/pkg/logger"
	"auction-house/pkg/utils"

	"github.com/robfig/cron/v3"
)

// ExpirySweeper periodically scans the store for auctions past their expiry,
// announces the close once, and drops any live connections for them.
type ExpirySweeper struct {
	cron        *cron.Cron
	store       domain.AuctionStore
	eventPub    domain.EventPublisher
	connManager domain.ConnectionManager
	log         logger.Logger
	now         func() time.Time

	mu        sync.Mutex
	announced map[int64]bool
}

func NewExpirySweeper(store domain.AuctionStore, eventPub domain.EventPublisher,
	connManager domain.ConnectionManager, log logger.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		cron:        cron.New(cron.WithSeconds()),
		store:       store,
		eventPub:    eventPub,
		connManager: connManager,
		log:         log,
		now:         time.Now,
		announced:   make(map[int64]bool),
	}
}

func (s *ExpirySweeper) Start(ctx context.Context) error {
	s.log.Info("Starting expiry sweeper")

	_, err := s.cron.AddFunc("@every 1m", func() {
		s.sweep(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *ExpirySweeper) Stop() error {
	s.log.Info("Stopping expiry sweeper")
	s.cron.Stop()
	return nil
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	now := s.now()

	for _, auction := range s.store.List() {
		if !now.After(auction.Expiry) {
			continue
		}

		s.mu.Lock()
		seen := s.announced[auction.ID]
		s.announced[auction.ID] = true
		s.mu.Unlock()
		if seen {
			continue
		}

		s.log.Info("Auction expired", "auction_id", auction.ID,
			"winner", auction.HighestBidder, "final_bid", auction.HighestBid)

		event := &domain.BidEvent{
			EventID:   utils.GenerateID("evt"),
			Type:      domain.AuctionClosed,
			AuctionID: auction.ID,
			UserID:    auction.HighestBidder,
			Amount:    auction.HighestBid,
			Timestamp: now,
		}
		if err := s.eventPub.PublishBidEvent(ctx, event); err != nil {
			s.log.Error("Failed to publish close event", "auction_id", auction.ID, "error", err)
		}

		if err := s.connManager.CloseAndUnregisterConnections(auction.ID); err != nil {
			s.log.Error("Failed to close connections", "auction_id", auction.ID, "error", err)
		}
	}
}
