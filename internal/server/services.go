package server

import (
	auction "auction-house/internal/auctionService"
	bidding "auction-house/internal/biddingService"
	event "auction-house/internal/eventService"
	"auction-house/internal/repository"
	user "auction-house/internal/userService"

	"gorm.io/gorm"
)

// NewServices builds the repositories over db and the services over them
func NewServices(db *gorm.DB) Services {
	users := repository.NewUserRepo(db)
	events := repository.NewEventRepo(db)
	auctions := repository.NewAuctionRepo(db)
	bids := repository.NewBidRepo(db)

	return Services{
		Auctions: auction.NewAuctionService(auctions, events),
		Events:   event.NewEventService(events),
		Bids:     bidding.NewBiddingService(bids, auctions),
		Users:    user.NewUserService(users),
	}
}
