package websocket

import (
	"context"

	"auction-house/internal/domain"
)

// Notifier adapts the connection manager to the context-taking notification
// interfaces the services consume.
type Notifier struct {
	connManager domain.ConnectionManager
}

func NewNotifier(connManager domain.ConnectionManager) *Notifier {
	return &Notifier{connManager: connManager}
}

func (n *Notifier) NotifyUser(ctx context.Context, userID string, message interface{}) error {
	return n.connManager.NotifyUser(userID, message)
}

func (n *Notifier) BroadcastToAuction(ctx context.Context, auctionID int64, message interface{}) error {
	return n.connManager.BroadcastToAuction(auctionID, message)
}
