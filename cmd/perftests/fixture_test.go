package perftests

import (
	"context"
	"fmt"
	"testing"

	auction "auction-house/internal/auctionService"
	bidding "auction-house/internal/biddingService"
	"auction-house/internal/database"
	model "auction-house/internal/models"
	"auction-house/internal/repository"

	"github.com/shopspring/decimal"
)

// fixture is a seeded sqlite store with the services over it
type fixture struct {
	auctions *auction.AuctionService
	bids     *bidding.BiddingService
	owner    uint
	bidders  []uint
	events   map[model.AuctionType]uint
	lots     []uint
}

// newFixture seeds one owner, numBidders bidders, an OPENED event per auction
// type and numLots auctions on the ENGLISH event
func newFixture(b *testing.B, numBidders, numLots int) *fixture {
	b.Helper()
	ctx := context.Background()

	db, err := database.OpenInMemory()
	if err != nil {
		b.Fatalf("failed to open database: %v", err)
	}
	b.Cleanup(func() { _ = database.Close(db) })

	users := repository.NewUserRepo(db)
	events := repository.NewEventRepo(db)
	auctions := repository.NewAuctionRepo(db)
	bids := repository.NewBidRepo(db)

	f := &fixture{
		auctions: auction.NewAuctionService(auctions, events),
		bids:     bidding.NewBiddingService(bids, auctions),
		events:   map[model.AuctionType]uint{},
	}

	owner, err := users.Create(ctx, model.User{Email: "owner@bench.test", Password: "x", Name: "Owner"})
	if err != nil {
		b.Fatalf("failed to seed owner: %v", err)
	}
	f.owner = owner.ID

	for i := 0; i < numBidders; i++ {
		u, err := users.Create(ctx, model.User{Email: fmt.Sprintf("bidder_%d@bench.test", i), Password: "x", Name: "Bidder"})
		if err != nil {
			b.Fatalf("failed to seed bidder: %v", err)
		}
		f.bidders = append(f.bidders, u.ID)
	}

	for _, t := range model.AuctionTypes {
		e, err := events.Create(ctx, model.Event{
			Name: string(t) + " bench", OwnerID: f.owner, AuctionType: t, Status: model.EventOpened,
		})
		if err != nil {
			b.Fatalf("failed to seed event: %v", err)
		}
		f.events[t] = e.ID
	}

	for i := 0; i < numLots; i++ {
		a, err := f.auctions.CreateAuction(ctx, &model.Auction{
			Name:          fmt.Sprintf("lot_%d", i),
			EventID:       f.events[model.English],
			StartingPrice: decimal.NewFromInt(50),
		}, f.owner)
		if err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
		f.lots = append(f.lots, a.ID)
	}

	return f
}
