package handler

import (
	"context"
	"net/http"
	"testing"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/services/api/helpers"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		actor          uint
		mockSetup      func(svc *MockEventServiceInterface)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "success",
			requestBody: helpers.EventRequest{Name: "Spring", Location: "Lisbon", AuctionType: "ENGLISH", Category: "art", Status: "OPENED"},
			actor:       1,
			mockSetup: func(svc *MockEventServiceInterface) {
				svc.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), uint(1)).DoAndReturn(
					func(_ context.Context, e *model.Event, actor uint) (model.Event, error) {
						e.ID = 3
						e.OwnerID = actor
						return *e, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "anonymous",
			requestBody: helpers.EventRequest{Name: "Spring", AuctionType: "ENGLISH"},
			mockSetup: func(svc *MockEventServiceInterface) {
				svc.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), uint(0)).Return(model.Event{}, auctionerrors.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Unauthorized.",
		},
		{
			name:        "bad_type",
			requestBody: helpers.EventRequest{Name: "Spring", AuctionType: "DUTCH"},
			actor:       1,
			mockSetup: func(svc *MockEventServiceInterface) {
				svc.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), uint(1)).Return(model.Event{}, auctionerrors.ErrInvalidAuctionType)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid auction type",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			svc := NewMockEventServiceInterface(ctrl)
			tc.mockSetup(svc)

			router := newRouter()
			router.POST("/events", NewEventHandler(svc).CreateEventHandler)

			w := doRequest(t, router, http.MethodPost, "/events", tc.requestBody, tc.actor)
			if tc.expectedError != "" {
				requireError(t, w, tc.expectedStatus, tc.expectedError)
				return
			}
			require.Equal(t, tc.expectedStatus, w.Code)
			data := decodeBody(t, w)
			require.Equal(t, float64(3), data["id"])
			require.Equal(t, float64(tc.actor), data["owner_id"])
			require.Equal(t, "ENGLISH", data["auction_type"])
		})
	}
}

func TestEventHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockEventServiceInterface(ctrl)
	h := NewEventHandler(svc)

	router := newRouter()
	router.GET("/events", h.ListEventsHandler)
	router.GET("/events/:id", h.GetEventHandler)
	router.PUT("/events/:id", h.UpdateEventHandler)
	router.DELETE("/events/:id", h.DeleteEventHandler)

	t.Run("update_uses_path_id", func(t *testing.T) {
		svc.EXPECT().UpdateEvent(gomock.Any(), gomock.Any(), uint(1)).DoAndReturn(
			func(_ context.Context, e *model.Event, _ uint) (model.Event, error) {
				require.Equal(t, uint(5), e.ID)
				return *e, nil
			})
		w := doRequest(t, router, http.MethodPut, "/events/5", helpers.EventRequest{Name: "renamed"}, 1)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "renamed", decodeBody(t, w)["name"])
	})

	t.Run("update_not_owner", func(t *testing.T) {
		svc.EXPECT().UpdateEvent(gomock.Any(), gomock.Any(), uint(2)).Return(model.Event{}, auctionerrors.ErrUnauthorized)
		w := doRequest(t, router, http.MethodPut, "/events/5", helpers.EventRequest{Name: "renamed"}, 2)
		requireError(t, w, http.StatusUnauthorized, "Unauthorized.")
	})

	t.Run("update_bad_id", func(t *testing.T) {
		svc.EXPECT().UpdateEvent(gomock.Any(), nil, uint(1)).Return(model.Event{}, auctionerrors.ErrInvalidRequest)
		w := doRequest(t, router, http.MethodPut, "/events/zero", helpers.EventRequest{Name: "renamed"}, 1)
		requireError(t, w, http.StatusBadRequest, "Invalid request.")
	})

	t.Run("get", func(t *testing.T) {
		svc.EXPECT().GetEvent(gomock.Any(), uint(5)).Return(model.Event{ID: 5, Name: "e"}, nil)
		w := doRequest(t, router, http.MethodGet, "/events/5", nil, 0)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "e", decodeBody(t, w)["name"])
	})

	t.Run("get_missing", func(t *testing.T) {
		svc.EXPECT().GetEvent(gomock.Any(), uint(6)).Return(model.Event{}, auctionerrors.ErrEventNotExist)
		w := doRequest(t, router, http.MethodGet, "/events/6", nil, 0)
		requireError(t, w, http.StatusNotFound, "Event does not exist")
	})

	t.Run("list", func(t *testing.T) {
		svc.EXPECT().ListEvents(gomock.Any()).Return([]model.Event{{ID: 1}, {ID: 2}}, nil)
		w := doRequest(t, router, http.MethodGet, "/events", nil, 0)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"id":2`)
	})

	t.Run("delete", func(t *testing.T) {
		svc.EXPECT().DeleteEvent(gomock.Any(), uint(5), uint(1)).Return(true, nil)
		w := doRequest(t, router, http.MethodDelete, "/events/5", nil, 1)
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("delete_absent", func(t *testing.T) {
		svc.EXPECT().DeleteEvent(gomock.Any(), uint(5), uint(1)).Return(false, nil)
		w := doRequest(t, router, http.MethodDelete, "/events/5", nil, 1)
		requireError(t, w, http.StatusNotFound, "Event does not exist")
	})
}
