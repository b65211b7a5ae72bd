package services

import (
	"testing"
	"time"

	"auction-house/internal/domain"
	"auction-house/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type relayFixture struct {
	ctrl        *gomock.Controller
	history     *domain.MockBidHistoryRepository
	broadcaster *domain.MockAuctionBroadcaster
	relay       *EventRelay
}

func newRelayFixture(t *testing.T) *relayFixture {
	ctrl := gomock.NewController(t)
	history := domain.NewMockBidHistoryRepository(ctrl)
	broadcaster := domain.NewMockAuctionBroadcaster(ctrl)

	return &relayFixture{
		ctrl:        ctrl,
		history:     history,
		broadcaster: broadcaster,
		relay:       NewEventRelay(history, broadcaster, logger.NewNop()),
	}
}

func TestEventRelay_BidAcceptedArchivedAndBroadcast(t *testing.T) {
	f := newRelayFixture(t)
	defer f.ctrl.Finish()

	event := &domain.BidEvent{
		Type:      domain.BidAccepted,
		AuctionID: 3,
		UserID:    "bob",
		Amount:    15,
		Timestamp: time.Now(),
	}

	f.history.EXPECT().SaveBidEvent(gomock.Any(), event).Return(nil)
	f.broadcaster.EXPECT().BroadcastToAuction(gomock.Any(), int64(3), gomock.Any()).Return(nil)

	require.NoError(t, f.relay.handleBidEvent(event))
}

func TestEventRelay_BidRejectedArchivedNotBroadcast(t *testing.T) {
	f := newRelayFixture(t)
	defer f.ctrl.Finish()

	event := &domain.BidEvent{
		Type:      domain.BidRejected,
		AuctionID: 3,
		UserID:    "bob",
		Amount:    5,
		Reason:    "below_minimum",
		Timestamp: time.Now(),
	}

	f.history.EXPECT().SaveBidEvent(gomock.Any(), event).Return(nil)

	require.NoError(t, f.relay.handleBidEvent(event))
}

func TestEventRelay_AuctionClosedBroadcast(t *testing.T) {
	f := newRelayFixture(t)
	defer f.ctrl.Finish()

	event := &domain.BidEvent{
		Type:      domain.AuctionClosed,
		AuctionID: 7,
		UserID:    "carol",
		Amount:    50,
		Timestamp: time.Now(),
	}

	f.history.EXPECT().SaveBidEvent(gomock.Any(), event).Return(nil)
	f.broadcaster.EXPECT().BroadcastToAuction(gomock.Any(), int64(7), gomock.Any()).Return(nil)

	require.NoError(t, f.relay.handleBidEvent(event))
}

func TestEventRelay_UnknownEventType(t *testing.T) {
	f := newRelayFixture(t)
	defer f.ctrl.Finish()

	event := &domain.BidEvent{Type: "mystery", AuctionID: 1}

	f.history.EXPECT().SaveBidEvent(gomock.Any(), event).Return(nil)

	require.Error(t, f.relay.handleBidEvent(event))
}
