package handler

import (
	"context"
	"net/http"
	"testing"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/services/api/helpers"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		actor          uint
		mockSetup      func(svc *MockBiddingServiceInterface)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success",
			requestBody: helpers.PlaceBidRequest{AuctionID: 2, GoodID: 1, Amount: decimal.RequireFromString("100.50")},
			actor:       4,
			mockSetup: func(svc *MockBiddingServiceInterface) {
				svc.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), uint(4)).DoAndReturn(
					func(_ context.Context, b *model.Bid, actor uint) (model.Bid, error) {
						b.ID = 11
						b.OwnerID = actor
						return *b, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "anonymous",
			requestBody: helpers.PlaceBidRequest{AuctionID: 2, Amount: decimal.NewFromInt(5)},
			mockSetup: func(svc *MockBiddingServiceInterface) {
				svc.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), uint(0)).Return(model.Bid{}, auctionerrors.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Unauthorized.",
		},
		{
			name:        "non_positive_amount",
			requestBody: helpers.PlaceBidRequest{AuctionID: 2, Amount: decimal.Zero},
			actor:       4,
			mockSetup: func(svc *MockBiddingServiceInterface) {
				svc.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), uint(4)).Return(model.Bid{}, auctionerrors.ErrBidAmountError)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Bid amount should be positive",
		},
		{
			name:        "invalid_json",
			requestBody: `{"amount":`,
			actor:       4,
			mockSetup: func(svc *MockBiddingServiceInterface) {
				svc.EXPECT().PlaceBid(gomock.Any(), nil, uint(4)).Return(model.Bid{}, auctionerrors.ErrInvalidRequest)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request.",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			svc := NewMockBiddingServiceInterface(ctrl)
			tc.mockSetup(svc)

			router := newRouter()
			router.POST("/bids", NewBiddingHandler(svc).PlaceBidHandler)

			w := doRequest(t, router, http.MethodPost, "/bids", tc.requestBody, tc.actor)
			if tc.expectedError != "" {
				requireError(t, w, tc.expectedStatus, tc.expectedError)
				return
			}
			require.Equal(t, tc.expectedStatus, w.Code)
			data := decodeBody(t, w)
			require.Equal(t, float64(11), data["id"])
			require.Equal(t, 100.5, data["amount"])
			require.Equal(t, float64(4), data["owner_id"])
		})
	}
}

// Test ListBidsByOwnerHandler
func TestListBidsByOwnerHandler(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		actor          uint
		mockSetup      func(svc *MockBiddingServiceInterface)
		expectedStatus int
		expectedError  string
	}{
		{
			name:  "missing_param",
			query: "",
			actor: 2,
			mockSetup: func(svc *MockBiddingServiceInterface) {
				svc.EXPECT().ListBidsByOwner(gomock.Any(), "", false, uint(2)).Return(nil, auctionerrors.ErrIdNone)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Owner id parameter is missing",
		},
		{
			name:  "empty_param",
			query: "?ownerid=",
			actor: 2,
			mockSetup: func(svc *MockBiddingServiceInterface) {
				svc.EXPECT().ListBidsByOwner(gomock.Any(), "", true, uint(2)).Return(nil, auctionerrors.ErrIdInvalid)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Owner id parameter is invalid",
		},
		{
			name:  "other_owner",
			query: "?ownerid=3",
			actor: 2,
			mockSetup: func(svc *MockBiddingServiceInterface) {
				svc.EXPECT().ListBidsByOwner(gomock.Any(), "3", true, uint(2)).Return(nil, auctionerrors.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Unauthorized.",
		},
		{
			name:  "own_bids_empty",
			query: "?ownerid=2",
			actor: 2,
			mockSetup: func(svc *MockBiddingServiceInterface) {
				svc.EXPECT().ListBidsByOwner(gomock.Any(), "2", true, uint(2)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			svc := NewMockBiddingServiceInterface(ctrl)
			tc.mockSetup(svc)

			router := newRouter()
			router.GET("/bids", NewBiddingHandler(svc).ListBidsByOwnerHandler)

			w := doRequest(t, router, http.MethodGet, "/bids"+tc.query, nil, tc.actor)
			if tc.expectedError != "" {
				requireError(t, w, tc.expectedStatus, tc.expectedError)
				return
			}
			require.Equal(t, tc.expectedStatus, w.Code)
			require.JSONEq(t, `[]`, w.Body.String())
		})
	}
}

func TestListAuctionBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockBiddingServiceInterface(ctrl)

	router := newRouter()
	router.GET("/auctions/:id/bids", NewBiddingHandler(svc).ListAuctionBidsHandler)

	svc.EXPECT().ListBidsByAuction(gomock.Any(), uint(2)).Return([]model.Bid{{ID: 1, AuctionID: 2}}, nil)
	w := doRequest(t, router, http.MethodGet, "/auctions/2/bids", nil, 0)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"auction_id":2`)

	svc.EXPECT().ListBidsByAuction(gomock.Any(), uint(9)).Return(nil, auctionerrors.ErrAuctionNotExist)
	w = doRequest(t, router, http.MethodGet, "/auctions/9/bids", nil, 0)
	requireError(t, w, http.StatusNotFound, "Auction does not exist")

	w = doRequest(t, router, http.MethodGet, "/auctions/-1/bids", nil, 0)
	requireError(t, w, http.StatusBadRequest, "Invalid request.")
}
