package websocket

import (
	"sync"
	"testing"

	"auction-house/internal/domain"
	"auction-house/pkg/logger"

	"github.com/stretchr/testify/require"
)

// fakeConnection records sent messages in place of a real socket.
type fakeConnection struct {
	mu        sync.Mutex
	userID    string
	auctionID int64
	messages  []interface{}
	closed    bool
}

func newFakeConnection(userID string, auctionID int64) *fakeConnection {
	return &fakeConnection{userID: userID, auctionID: auctionID}
}

func (c *fakeConnection) Send(message interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
	return nil
}

func (c *fakeConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConnection) UserID() string   { return c.userID }
func (c *fakeConnection) AuctionID() int64 { return c.auctionID }

func (c *fakeConnection) sent() []interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]interface{}(nil), c.messages...)
}

func (c *fakeConnection) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func TestConnectionManager_RegisterAndLookup(t *testing.T) {
	cm := NewConnectionManager(logger.NewNop())

	bob := newFakeConnection("bob", 1)
	carol := newFakeConnection("carol", 1)
	bobOther := newFakeConnection("bob", 2)

	require.NoError(t, cm.RegisterConnection("bob", 1, bob))
	require.NoError(t, cm.RegisterConnection("carol", 1, carol))
	require.NoError(t, cm.RegisterConnection("bob", 2, bobOther))

	require.Len(t, cm.GetConnectionsForAuction(1), 2)
	require.Len(t, cm.GetConnectionsForAuction(2), 1)
	require.Len(t, cm.GetConnectionsForUser("bob"), 2)
	require.Len(t, cm.GetConnectionsForUser("carol"), 1)
}

func TestConnectionManager_Unregister(t *testing.T) {
	cm := NewConnectionManager(logger.NewNop())

	bob := newFakeConnection("bob", 1)
	bobOther := newFakeConnection("bob", 2)
	require.NoError(t, cm.RegisterConnection("bob", 1, bob))
	require.NoError(t, cm.RegisterConnection("bob", 2, bobOther))

	require.NoError(t, cm.UnregisterConnection("bob", 1))

	require.Empty(t, cm.GetConnectionsForAuction(1))
	require.Len(t, cm.GetConnectionsForUser("bob"), 1)
	require.Equal(t, int64(2), cm.GetConnectionsForUser("bob")[0].AuctionID())
}

func TestConnectionManager_BroadcastToAuction(t *testing.T) {
	cm := NewConnectionManager(logger.NewNop())

	bob := newFakeConnection("bob", 1)
	carol := newFakeConnection("carol", 1)
	other := newFakeConnection("dave", 2)
	require.NoError(t, cm.RegisterConnection("bob", 1, bob))
	require.NoError(t, cm.RegisterConnection("carol", 1, carol))
	require.NoError(t, cm.RegisterConnection("dave", 2, other))

	msg := map[string]interface{}{"type": "bid_update", "current_bid": int64(15)}
	require.NoError(t, cm.BroadcastToAuction(1, msg))

	require.Len(t, bob.sent(), 1)
	require.Len(t, carol.sent(), 1)
	require.Empty(t, other.sent())
}

func TestConnectionManager_NotifyUser(t *testing.T) {
	cm := NewConnectionManager(logger.NewNop())

	bob := newFakeConnection("bob", 1)
	bobOther := newFakeConnection("bob", 2)
	carol := newFakeConnection("carol", 1)
	require.NoError(t, cm.RegisterConnection("bob", 1, bob))
	require.NoError(t, cm.RegisterConnection("bob", 2, bobOther))
	require.NoError(t, cm.RegisterConnection("carol", 1, carol))

	require.NoError(t, cm.NotifyUser("bob", map[string]string{"type": "outbid"}))

	require.Len(t, bob.sent(), 1)
	require.Len(t, bobOther.sent(), 1)
	require.Empty(t, carol.sent())
}

func TestConnectionManager_CloseAndUnregisterConnections(t *testing.T) {
	cm := NewConnectionManager(logger.NewNop())

	bob := newFakeConnection("bob", 1)
	carol := newFakeConnection("carol", 1)
	other := newFakeConnection("bob", 2)
	require.NoError(t, cm.RegisterConnection("bob", 1, bob))
	require.NoError(t, cm.RegisterConnection("carol", 1, carol))
	require.NoError(t, cm.RegisterConnection("bob", 2, other))

	require.NoError(t, cm.CloseAndUnregisterConnections(1))

	require.True(t, bob.isClosed())
	require.True(t, carol.isClosed())
	require.False(t, other.isClosed())

	require.Empty(t, cm.GetConnectionsForAuction(1))
	require.Len(t, cm.GetConnectionsForUser("bob"), 1)
	require.Empty(t, cm.GetConnectionsForUser("carol"))
}

var _ domain.WebSocketConnection = (*fakeConnection)(nil)
