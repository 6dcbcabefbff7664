package helpers

import (
	model "auction-house/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs

// CreateAuctionRequest is the body of POST /auctions. Status and start time
// are accepted on the wire but always replaced by the service.
type CreateAuctionRequest struct {
	Name          string          `json:"name"`
	EventID       uint            `json:"event_id"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	Status        string          `json:"status,omitempty"`
}

// UpdateAuctionStatusRequest is the body of POST /auctions/update/status
type UpdateAuctionStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// EventRequest is the body of POST /events and PUT /events/:id
type EventRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	AuctionType string `json:"auction_type"`
	Category    string `json:"category"`
	Status      string `json:"status,omitempty"`
}

// PlaceBidRequest is the body of POST /bids
type PlaceBidRequest struct {
	AuctionID uint            `json:"auction_id"`
	GoodID    uint            `json:"good_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// RegisterRequest is the body of POST /users
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	LastName *string `json:"last_name,omitempty"`
}

// AuthenticateRequest is the body of POST /users/authenticate
type AuthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned after sign-up and sign-in
type SessionResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// ToAuction converts the request into an auction candidate
func (r CreateAuctionRequest) ToAuction() *model.Auction {
	return &model.Auction{
		Name:          r.Name,
		EventID:       r.EventID,
		StartingPrice: r.StartingPrice,
		Status:        model.AuctionStatus(r.Status),
	}
}

// ToEvent converts the request into an event candidate
func (r EventRequest) ToEvent() *model.Event {
	return &model.Event{
		Name:        r.Name,
		Location:    r.Location,
		AuctionType: model.AuctionType(r.AuctionType),
		Category:    r.Category,
		Status:      model.EventStatus(r.Status),
	}
}

// ToBid converts the request into a bid candidate
func (r PlaceBidRequest) ToBid() *model.Bid {
	return &model.Bid{
		AuctionID: r.AuctionID,
		GoodID:    r.GoodID,
		Amount:    r.Amount,
	}
}
