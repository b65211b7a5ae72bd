package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Connection wraps a gorilla connection for one user watching one auction.
// Writes are serialized; gorilla connections allow only one concurrent writer.
type Connection struct {
	conn      *websocket.Conn
	writeMu   sync.Mutex
	userID    string
	auctionID int64
}

func NewConnection(conn *websocket.Conn, userID string, auctionID int64) *Connection {
	return &Connection{
		conn:      conn,
		userID:    userID,
		auctionID: auctionID,
	}
}

func (c *Connection) Send(message interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(message)
}

func (c *Connection) Close() error {
	return c.conn.Close()
}

func (c *Connection) UserID() string {
	return c.userID
}

func (c *Connection) AuctionID() int64 {
	return c.auctionID
}

// ReadJSON exposes the read side for the message loop in the handler.
func (c *Connection) ReadJSON(v interface{}) error {
	return c.conn.ReadJSON(v)
}
