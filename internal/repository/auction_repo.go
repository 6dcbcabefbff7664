package repository

import (
	"context"

	model "auction-house/internal/models"

	"gorm.io/gorm"
)

// AuctionRepo is the gorm implementation of AuctionDB
type AuctionRepo struct {
	t table[model.Auction]
}

// NewAuctionRepo creates an auction repository on top of db
func NewAuctionRepo(db *gorm.DB) *AuctionRepo {
	return &AuctionRepo{t: table[model.Auction]{db: db, name: "auction"}}
}

func (r *AuctionRepo) GetByID(ctx context.Context, id uint) (model.Auction, error) {
	return r.t.getByID(ctx, id)
}

// Create inserts auction. An unknown event or owner fails with ErrMissingReference.
func (r *AuctionRepo) Create(ctx context.Context, auction model.Auction) (model.Auction, error) {
	auction.ID = 0
	return r.t.create(ctx, auction)
}

func (r *AuctionRepo) Update(ctx context.Context, auction model.Auction) (model.Auction, error) {
	return r.t.update(ctx, auction.ID, auction)
}

func (r *AuctionRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return r.t.delete(ctx, id)
}

func (r *AuctionRepo) List(ctx context.Context) ([]model.Auction, error) {
	return r.t.list(ctx, "")
}

// ListByEvent returns the auctions of one event ordered by id
func (r *AuctionRepo) ListByEvent(ctx context.Context, eventID uint) ([]model.Auction, error) {
	return r.t.list(ctx, "event_id = ?", eventID)
}
