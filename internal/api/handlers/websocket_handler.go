package handlers

import (
	"context"
	"net/http"
	"time"

	"auction-house/internal/domain"
	ws "auction-house/internal/infrastructure/websocket"
	"auction-house/internal/services"
	"auction-house/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

type WebSocketHandler struct {
	bidService  *services.BidService
	store       domain.AuctionStore
	connManager domain.ConnectionManager
	log         logger.Logger
}

func NewWebSocketHandler(bidService *services.BidService, store domain.AuctionStore,
	connManager domain.ConnectionManager, log logger.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		bidService:  bidService,
		store:       store,
		connManager: connManager,
		log:         log,
	}
}

func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	auctionID, err := parseAuctionID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid auction id"})
	}

	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id required"})
	}

	auction, err := h.store.Get(auctionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "auction not found"})
	}

	if time.Now().After(auction.Expiry) {
		h.log.Info("Rejected connection, auction has ended", "auction_id", auctionID)
		return c.JSON(http.StatusForbidden, map[string]string{"error": "auction has already ended"})
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Error("Failed to upgrade connection", "error", err)
		return nil
	}

	wsConn := ws.NewConnection(conn, userID, auctionID)

	if err := h.connManager.RegisterConnection(userID, auctionID, wsConn); err != nil {
		h.log.Error("Failed to register connection", "error", err)
		wsConn.Close()
		return nil
	}

	go h.handleMessages(wsConn, userID, auctionID)
	return nil
}

func (h *WebSocketHandler) handleMessages(conn *ws.Connection, userID string, auctionID int64) {
	defer func() {
		h.connManager.UnregisterConnection(userID, auctionID)
		conn.Close()
	}()

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			h.log.Debug("Connection read ended", "user_id", userID, "auction_id", auctionID, "error", err)
			return
		}

		msgType, ok := msg["type"].(string)
		if !ok {
			continue
		}

		switch msgType {
		case "place_bid":
			h.handleBidMessage(conn, userID, auctionID, msg)
		case "ping":
			conn.Send(map[string]string{"type": "pong"})
		}
	}
}

func (h *WebSocketHandler) handleBidMessage(conn *ws.Connection, userID string, auctionID int64, msg map[string]interface{}) {
	amount, ok := msg["amount"].(float64)
	if !ok || amount <= 0 {
		conn.Send(map[string]string{"type": "error", "message": "invalid amount"})
		return
	}

	if err := h.bidService.PlaceBid(context.Background(), userID, auctionID, int64(amount)); err != nil {
		h.log.Debug("Bid over websocket rejected", "auction_id", auctionID, "user_id", userID, "error", err)
	}
}
