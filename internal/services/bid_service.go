package services

import (
	"context"
	"fmt"
	"time"

	"auction-house/internal/domain"
	"auction-house/pkg/logger"
	"auction-house/pkg/utils"
)

// BidService runs the bid acceptance protocol: balance check, existence and
// expiry checks, advisory lock acquisition, amount validation, then the
// two-leg escrow transfer and the commit write.
//
// The whole sequence for one auction id runs under an exclusive per-auction
// mutex held across the ledger calls. The ledger calls are where control
// would otherwise yield to competing bids on the same record, so this is
// what keeps a slow commit from being overwritten with stale data.
type BidService struct {
	store         domain.AuctionStore
	ledger        domain.Ledger
	eventPub      domain.EventPublisher
	notifier      domain.UserNotifier
	escrowAccount string
	lockWindow    time.Duration
	locks         *keyedMutex
	now           func() time.Time
	log           logger.Logger
}

func NewBidService(
	store domain.AuctionStore,
	ledger domain.Ledger,
	eventPub domain.EventPublisher,
	notifier domain.UserNotifier,
	escrowAccount string,
	lockWindow time.Duration,
	log logger.Logger,
) *BidService {
	return &BidService{
		store:         store,
		ledger:        ledger,
		eventPub:      eventPub,
		notifier:      notifier,
		escrowAccount: escrowAccount,
		lockWindow:    lockWindow,
		locks:         newKeyedMutex(),
		now:           time.Now,
		log:           log,
	}
}

// PlaceBid returns nil on an accepted bid, or one of the domain sentinel
// errors. Validation failures leave the auction record untouched.
func (s *BidService) PlaceBid(ctx context.Context, bidder string, auctionID int64, amount int64) error {
	s.log.Info("Placing bid", "auction_id", auctionID, "bidder", bidder, "amount", amount)

	s.locks.Lock(auctionID)
	defer s.locks.Unlock(auctionID)

	balance, err := s.ledger.GetBalance(ctx, bidder)
	if err != nil {
		return fmt.Errorf("balance lookup for %s: %w", bidder, err)
	}
	if amount > balance {
		s.rejectBid(ctx, auctionID, bidder, amount, "insufficient_balance")
		return fmt.Errorf("bid of %d with balance %d: %w", amount, balance, domain.ErrInsufficientBalance)
	}

	auction, err := s.store.Get(auctionID)
	if err != nil {
		return err
	}

	now := s.now()
	if now.After(auction.Expiry) {
		s.rejectBid(ctx, auctionID, bidder, amount, "auction_expired")
		return fmt.Errorf("auction %d closed at %s: %w", auctionID, auction.Expiry.Format(time.RFC3339), domain.ErrAuctionExpired)
	}

	// Advisory lock. The current highest bidder may not outbid themselves;
	// an auction with no bids yet has nobody to compare against, so the
	// guard does not apply.
	if auction.HasBidder() && auction.HighestBidder == bidder {
		s.rejectBid(ctx, auctionID, bidder, amount, "already_highest_bidder")
		return fmt.Errorf("bidder %s already leads auction %d: %w", bidder, auctionID, domain.ErrHighestBidderNotPermitted)
	}
	if !now.After(auction.LockExpiry) {
		s.rejectBid(ctx, auctionID, bidder, amount, "lock_held")
		return fmt.Errorf("auction %d locked until %s: %w", auctionID, auction.LockExpiry.Format(time.RFC3339), domain.ErrLockNotAcquired)
	}
	auction.LockHolder = bidder
	auction.LockExpiry = now.Add(s.lockWindow)

	if amount <= auction.HighestBid {
		s.rejectBid(ctx, auctionID, bidder, amount, "below_minimum")
		return fmt.Errorf("bid of %d against highest bid %d: %w", amount, auction.HighestBid, domain.ErrBelowMinimumBid)
	}

	prevBidder := auction.HighestBidder
	prevBid := auction.HighestBid

	// Collect the new bid into escrow, then refund the outbid party. The
	// first accepted bid has nobody to refund; its funds sit in escrow
	// until it is outbid or the auction settles.
	if err := s.ledger.Transfer(ctx, bidder, s.escrowAccount, amount); err != nil {
		s.log.Error("Escrow collection failed", "auction_id", auctionID, "bidder", bidder, "amount", amount, "error", err)
		return fmt.Errorf("collect %d from %s: %w", amount, bidder, domain.ErrTransferFailed)
	}
	if prevBidder != "" {
		if err := s.ledger.Transfer(ctx, s.escrowAccount, prevBidder, prevBid); err != nil {
			s.log.Error("Refund to outbid user failed", "auction_id", auctionID, "user", prevBidder, "amount", prevBid, "error", err)
			// Compensate the collected leg so the aborted bid costs nothing.
			if rbErr := s.ledger.Transfer(ctx, s.escrowAccount, bidder, amount); rbErr != nil {
				s.log.Error("Failed to return funds after aborted commit", "auction_id", auctionID, "bidder", bidder, "amount", amount, "error", rbErr)
			}
			return fmt.Errorf("refund %d to %s: %w", prevBid, prevBidder, domain.ErrTransferFailed)
		}
	}

	auction.HighestBid = amount
	auction.HighestBidder = bidder
	if err := s.store.Replace(auctionID, auction); err != nil {
		return fmt.Errorf("commit bid on auction %d: %w", auctionID, err)
	}

	event := &domain.BidEvent{
		EventID:   utils.GenerateID("evt"),
		Type:      domain.BidAccepted,
		AuctionID: auctionID,
		UserID:    bidder,
		Amount:    amount,
		Timestamp: now,
	}
	if err := s.eventPub.PublishBidEvent(ctx, event); err != nil {
		s.log.Error("Failed to publish bid event", "auction_id", auctionID, "error", err)
	}

	if prevBidder != "" {
		if err := s.notifier.NotifyUser(ctx, prevBidder, map[string]interface{}{
			"type":       "outbid",
			"auction_id": auctionID,
			"new_bid":    amount,
			"refunded":   prevBid,
		}); err != nil {
			s.log.Error("Failed to notify outbid user", "user", prevBidder, "error", err)
		}
	}

	s.log.Info("Bid accepted", "auction_id", auctionID, "bidder", bidder, "amount", amount)
	return nil
}

func (s *BidService) rejectBid(ctx context.Context, auctionID int64, bidder string, amount int64, reason string) {
	event := &domain.BidEvent{
		EventID:   utils.GenerateID("evt"),
		Type:      domain.BidRejected,
		AuctionID: auctionID,
		UserID:    bidder,
		Amount:    amount,
		Reason:    reason,
		Timestamp: s.now(),
	}
	if err := s.eventPub.PublishBidEvent(ctx, event); err != nil {
		s.log.Error("Failed to publish bid event", "auction_id", auctionID, "error", err)
	}

	if err := s.notifier.NotifyUser(ctx, bidder, map[string]interface{}{
		"type":       "bid_rejected",
		"reason":     reason,
		"auction_id": auctionID,
		"amount":     amount,
	}); err != nil {
		s.log.Error("Failed to notify bidder", "user", bidder, "error", err)
	}
}
