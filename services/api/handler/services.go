package handler

//go:generate mockgen -source=services.go -destination=mock_services.go -package=handler

import (
	"context"
	"time"

	model "auction-house/internal/models"
	user "auction-house/internal/userService"
)

type AuctionServiceInterface interface {
	CreateAuction(ctx context.Context, candidate *model.Auction, actor uint) (model.Auction, error)
	UpdateAuctionStatus(ctx context.Context, auctionID uint, status string, actor uint) (model.Auction, error)
	GetAuction(ctx context.Context, auctionID uint) (model.Auction, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	ListAuctionsByEvent(ctx context.Context, eventID uint) ([]model.Auction, error)
	DeleteAuction(ctx context.Context, auctionID uint, actor uint) (bool, error)
}

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, candidate *model.Event, actor uint) (model.Event, error)
	UpdateEvent(ctx context.Context, candidate *model.Event, actor uint) (model.Event, error)
	GetEvent(ctx context.Context, eventID uint) (model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	DeleteEvent(ctx context.Context, eventID uint, actor uint) (bool, error)
}

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, candidate *model.Bid, actor uint) (model.Bid, error)
	ListBidsByOwner(ctx context.Context, ownerIDParam string, present bool, actor uint) ([]model.Bid, error)
	ListBidsByAuction(ctx context.Context, auctionID uint) ([]model.Bid, error)
}

type UserServiceInterface interface {
	Register(ctx context.Context, r *user.Registration) (model.User, error)
	Authenticate(ctx context.Context, email, password string) (model.User, error)
	GetUser(ctx context.Context, userID uint) (model.User, error)
}

// TokenIssuer mints session tokens after sign-up and sign-in
type TokenIssuer interface {
	Issue(userID uint) (string, error)
	TTL() time.Duration
}
