package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"auction-house/internal/domain"
	"auction-house/internal/services"
	"auction-house/pkg/logger"

	"github.com/labstack/echo/v4"
)

type AuctionHandler struct {
	auctionService *services.AuctionService
	bidService     *services.BidService
	history        domain.BidHistoryRepository
	log            logger.Logger
}

type CreateAuctionRequest struct {
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	StartingBid int64  `json:"starting_bid"`
}

type AuctionResponse struct {
	AuctionID     int64       `json:"auction_id"`
	Owner         string      `json:"owner"`
	Item          domain.Item `json:"item"`
	HighestBid    int64       `json:"highest_bid"`
	HighestBidder string      `json:"highest_bidder,omitempty"`
	Expiry        time.Time   `json:"expiry"`
}

type PlaceBidRequest struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
}

func NewAuctionHandler(auctionService *services.AuctionService, bidService *services.BidService,
	history domain.BidHistoryRepository, log logger.Logger) *AuctionHandler {
	return &AuctionHandler{
		auctionService: auctionService,
		bidService:     bidService,
		history:        history,
		log:            log,
	}
}

func (h *AuctionHandler) CreateAuction(c echo.Context) error {
	var req CreateAuctionRequest
	if err := c.Bind(&req); err != nil {
		h.log.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	id, err := h.auctionService.CreateAuction(c.Request().Context(),
		req.Owner, req.Name, req.Description, req.URL, req.StartingBid)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAuction) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		h.log.Error("Failed to create auction", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create auction"})
	}

	auction, err := h.auctionService.GetAuction(c.Request().Context(), id)
	if err != nil {
		h.log.Error("Failed to load created auction", "auction_id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create auction"})
	}

	return c.JSON(http.StatusCreated, toAuctionResponse(auction))
}

func (h *AuctionHandler) ListAuctions(c echo.Context) error {
	auctions := h.auctionService.ListAuctions(c.Request().Context())

	responses := make([]AuctionResponse, 0, len(auctions))
	for _, auction := range auctions {
		responses = append(responses, toAuctionResponse(auction))
	}

	return c.JSON(http.StatusOK, responses)
}

func (h *AuctionHandler) GetAuction(c echo.Context) error {
	id, err := parseAuctionID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid auction id"})
	}

	auction, err := h.auctionService.GetAuction(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAuctionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "auction not found"})
		}
		h.log.Error("Failed to get auction", "auction_id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get auction"})
	}

	return c.JSON(http.StatusOK, toAuctionResponse(auction))
}

func (h *AuctionHandler) PlaceBid(c echo.Context) error {
	id, err := parseAuctionID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid auction id"})
	}

	var req PlaceBidRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id required"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "amount must be positive"})
	}

	if err := h.bidService.PlaceBid(c.Request().Context(), req.UserID, id, req.Amount); err != nil {
		status, message := bidFailureStatus(err)
		if status == http.StatusInternalServerError {
			h.log.Error("Failed to place bid", "auction_id", id, "user_id", req.UserID, "error", err)
		}
		return c.JSON(status, map[string]string{"error": message})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "accepted",
		"auction_id": id,
		"amount":     req.Amount,
	})
}

func (h *AuctionHandler) GetBidHistory(c echo.Context) error {
	id, err := parseAuctionID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid auction id"})
	}

	events, err := h.history.GetBidHistory(c.Request().Context(), id)
	if err != nil {
		h.log.Error("Failed to load bid history", "auction_id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load bid history"})
	}

	return c.JSON(http.StatusOK, events)
}

func parseAuctionID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func toAuctionResponse(auction domain.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:     auction.ID,
		Owner:         auction.Owner,
		Item:          auction.Item,
		HighestBid:    auction.HighestBid,
		HighestBidder: auction.HighestBidder,
		Expiry:        auction.Expiry,
	}
}

// bidFailureStatus maps protocol rejections to response codes.
func bidFailureStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAuctionNotFound):
		return http.StatusNotFound, domain.ErrAuctionNotFound.Error()
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, domain.ErrInsufficientBalance.Error()
	case errors.Is(err, domain.ErrAuctionExpired):
		return http.StatusUnprocessableEntity, domain.ErrAuctionExpired.Error()
	case errors.Is(err, domain.ErrHighestBidderNotPermitted):
		return http.StatusUnprocessableEntity, domain.ErrHighestBidderNotPermitted.Error()
	case errors.Is(err, domain.ErrBelowMinimumBid):
		return http.StatusUnprocessableEntity, domain.ErrBelowMinimumBid.Error()
	case errors.Is(err, domain.ErrLockNotAcquired):
		return http.StatusConflict, domain.ErrLockNotAcquired.Error()
	case errors.Is(err, domain.ErrTransferFailed):
		return http.StatusBadGateway, domain.ErrTransferFailed.Error()
	default:
		return http.StatusInternalServerError, "failed to place bid"
	}
}
