package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auction-house/internal/domain"
	"auction-house/internal/infrastructure/memory"
	"auction-house/internal/services"
	"auction-house/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	ctrl    *gomock.Controller
	echo    *echo.Echo
	store   *memory.AuctionStore
	ledger  *domain.MockLedger
	history *domain.MockBidHistoryRepository
	handler *AuctionHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)

	store := memory.NewAuctionStore(48 * time.Hour)
	mockLedger := domain.NewMockLedger(ctrl)
	history := domain.NewMockBidHistoryRepository(ctrl)

	eventPub := domain.NewMockEventPublisher(ctrl)
	eventPub.EXPECT().PublishBidEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	notifier := domain.NewMockUserNotifier(ctrl)
	notifier.EXPECT().NotifyUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	log := logger.NewNop()
	bidService := services.NewBidService(store, mockLedger, eventPub, notifier, "escrow", time.Second, log)
	auctionService := services.NewAuctionService(store, log)

	return &handlerFixture{
		ctrl:    ctrl,
		echo:    echo.New(),
		store:   store,
		ledger:  mockLedger,
		history: history,
		handler: NewAuctionHandler(auctionService, bidService, history, log),
	}
}

func (f *handlerFixture) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func (f *handlerFixture) createAuction(t *testing.T) int64 {
	t.Helper()
	return f.store.Create("alice", domain.Item{Name: "Vase", Description: "old", URL: "http://example.com/vase"}, 10)
}

func TestAuctionHandler_CreateAuction(t *testing.T) {
	f := newHandlerFixture(t)
	defer f.ctrl.Finish()

	body := `{"owner":"alice","name":"Vase","description":"an old vase","url":"http://example.com/vase","starting_bid":10}`
	c, rec := f.request(http.MethodPost, "/api/v1/auctions", body)

	require.NoError(t, f.handler.CreateAuction(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AuctionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(0), resp.AuctionID)
	require.Equal(t, "alice", resp.Owner)
	require.Equal(t, "Vase", resp.Item.Name)
	require.Equal(t, int64(10), resp.HighestBid)
	require.Empty(t, resp.HighestBidder)
}

func TestAuctionHandler_CreateAuction_Invalid(t *testing.T) {
	f := newHandlerFixture(t)
	defer f.ctrl.Finish()

	c, rec := f.request(http.MethodPost, "/api/v1/auctions", `{"owner":"alice","name":"Vase","starting_bid":-5}`)

	require.NoError(t, f.handler.CreateAuction(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuctionHandler_GetAuction_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	defer f.ctrl.Finish()

	c, rec := f.request(http.MethodGet, "/api/v1/auctions/9", "")
	c.SetPath("/api/v1/auctions/:id")
	c.SetParamNames("id")
	c.SetParamValues("9")

	require.NoError(t, f.handler.GetAuction(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuctionHandler_GetAuction_InvalidID(t *testing.T) {
	f := newHandlerFixture(t)
	defer f.ctrl.Finish()

	c, rec := f.request(http.MethodGet, "/api/v1/auctions/abc", "")
	c.SetPath("/api/v1/auctions/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, f.handler.GetAuction(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuctionHandler_ListAuctions(t *testing.T) {
	f := newHandlerFixture(t)
	defer f.ctrl.Finish()

	f.createAuction(t)
	f.createAuction(t)

	c, rec := f.request(http.MethodGet, "/api/v1/auctions", "")

	require.NoError(t, f.handler.ListAuctions(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []AuctionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
}

func TestAuctionHandler_PlaceBid_Accepted(t *testing.T) {
	f := newHandlerFixture(t)
	defer f.ctrl.Finish()

	id := f.createAuction(t)

	f.ledger.EXPECT().GetBalance(gomock.Any(), "bob").Return(int64(100), nil)
	f.ledger.EXPECT().Transfer(gomock.Any(), "bob", "escrow", int64(15)).Return(nil)

	c, rec := f.request(http.MethodPost, "/api/v1/auctions/0/bids", `{"user_id":"bob","amount":15}`)
	c.SetPath("/api/v1/auctions/:id/bids")
	c.SetParamNames("id")
	c.SetParamValues("0")

	require.NoError(t, f.handler.PlaceBid(c))
	require.Equal(t, http.StatusOK, rec.Code)

	auction, err := f.store.Get(id)
	require.NoError(t, err)
	require.Equal(t, "bob", auction.HighestBidder)
	require.Equal(t, int64(15), auction.HighestBid)
}

func TestAuctionHandler_PlaceBid_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(f *handlerFixture)
		wantStatus int
	}{
		{
			name:       "missing_user_id",
			body:       `{"amount":15}`,
			mockSetup:  func(f *handlerFixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non_positive_amount",
			body:       `{"user_id":"bob","amount":0}`,
			mockSetup:  func(f *handlerFixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "below_minimum",
			body: `{"user_id":"bob","amount":5}`,
			mockSetup: func(f *handlerFixture) {
				f.ledger.EXPECT().GetBalance(gomock.Any(), "bob").Return(int64(100), nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "insufficient_balance",
			body: `{"user_id":"bob","amount":15}`,
			mockSetup: func(f *handlerFixture) {
				f.ledger.EXPECT().GetBalance(gomock.Any(), "bob").Return(int64(3), nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "ledger_transfer_fails",
			body: `{"user_id":"bob","amount":15}`,
			mockSetup: func(f *handlerFixture) {
				f.ledger.EXPECT().GetBalance(gomock.Any(), "bob").Return(int64(100), nil)
				f.ledger.EXPECT().Transfer(gomock.Any(), "bob", "escrow", int64(15)).
					Return(http.ErrHandlerTimeout)
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			defer f.ctrl.Finish()

			f.createAuction(t)
			tc.mockSetup(f)

			c, rec := f.request(http.MethodPost, "/api/v1/auctions/0/bids", tc.body)
			c.SetPath("/api/v1/auctions/:id/bids")
			c.SetParamNames("id")
			c.SetParamValues("0")

			require.NoError(t, f.handler.PlaceBid(c))
			require.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestAuctionHandler_PlaceBid_UnknownAuction(t *testing.T) {
	f := newHandlerFixture(t)
	defer f.ctrl.Finish()

	f.ledger.EXPECT().GetBalance(gomock.Any(), "bob").Return(int64(100), nil)

	c, rec := f.request(http.MethodPost, "/api/v1/auctions/9/bids", `{"user_id":"bob","amount":15}`)
	c.SetPath("/api/v1/auctions/:id/bids")
	c.SetParamNames("id")
	c.SetParamValues("9")

	require.NoError(t, f.handler.PlaceBid(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuctionHandler_GetBidHistory(t *testing.T) {
	f := newHandlerFixture(t)
	defer f.ctrl.Finish()

	f.createAuction(t)

	events := []*domain.BidEvent{
		{Type: domain.BidAccepted, AuctionID: 0, UserID: "bob", Amount: 15, Timestamp: time.Now()},
		{Type: domain.BidAccepted, AuctionID: 0, UserID: "carol", Amount: 20, Timestamp: time.Now()},
	}
	f.history.EXPECT().GetBidHistory(gomock.Any(), int64(0)).Return(events, nil)

	c, rec := f.request(http.MethodGet, "/api/v1/auctions/0/bids", "")
	c.SetPath("/api/v1/auctions/:id/bids")
	c.SetParamNames("id")
	c.SetParamValues("0")

	require.NoError(t, f.handler.GetBidHistory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.BidEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.Equal(t, "bob", resp[0].UserID)
	require.Equal(t, "carol", resp[1].UserID)
}
