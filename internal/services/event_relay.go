package services

import (
	"context"
	"fmt"

	"auction-house/internal/domain"
	"auction-house/pkg/logger"
)

// EventRelay bridges the pub/sub channel to the archive and to connected
// websocket clients.
type EventRelay struct {
	history     domain.BidHistoryRepository
	broadcaster domain.AuctionBroadcaster
	log         logger.Logger
}

func NewEventRelay(history domain.BidHistoryRepository, broadcaster domain.AuctionBroadcaster,
	log logger.Logger) *EventRelay {
	return &EventRelay{
		history:     history,
		broadcaster: broadcaster,
		log:         log,
	}
}

func (r *EventRelay) Start(ctx context.Context, subscriber domain.EventSubscriber) error {
	r.log.Info("Starting event relay")
	return subscriber.SubscribeToBidEvents(ctx, r.handleBidEvent)
}

func (r *EventRelay) handleBidEvent(event *domain.BidEvent) error {
	r.log.Debug("Handling bid event", "type", event.Type, "auction_id", event.AuctionID)

	if err := r.history.SaveBidEvent(context.Background(), event); err != nil {
		r.log.Error("Failed to archive bid event", "auction_id", event.AuctionID, "error", err)
	}

	switch event.Type {
	case domain.BidAccepted:
		return r.broadcaster.BroadcastToAuction(context.Background(), event.AuctionID, map[string]interface{}{
			"type":           "bid_update",
			"current_bid":    event.Amount,
			"current_winner": event.UserID,
			"timestamp":      event.Timestamp,
		})
	case domain.AuctionClosed:
		return r.broadcaster.BroadcastToAuction(context.Background(), event.AuctionID, map[string]interface{}{
			"type":      "auction_closed",
			"winner":    event.UserID,
			"final_bid": event.Amount,
			"timestamp": event.Timestamp,
		})
	case domain.BidRejected:
		// Rejections are delivered to the bidder directly, not broadcast.
		return nil
	}

	return fmt.Errorf("unknown event type %q", event.Type)
}
