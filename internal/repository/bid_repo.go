package repository

import (
	"context"

	model "auction-house/internal/models"

	"gorm.io/gorm"
)

// BidRepo is the gorm implementation of BidDB
type BidRepo struct {
	t table[model.Bid]
}

// NewBidRepo creates a bid repository on top of db
func NewBidRepo(db *gorm.DB) *BidRepo {
	return &BidRepo{t: table[model.Bid]{db: db, name: "bid"}}
}

func (r *BidRepo) GetByID(ctx context.Context, id uint) (model.Bid, error) {
	return r.t.getByID(ctx, id)
}

func (r *BidRepo) Create(ctx context.Context, bid model.Bid) (model.Bid, error) {
	bid.ID = 0
	return r.t.create(ctx, bid)
}

func (r *BidRepo) Update(ctx context.Context, bid model.Bid) (model.Bid, error) {
	return r.t.update(ctx, bid.ID, bid)
}

func (r *BidRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return r.t.delete(ctx, id)
}

func (r *BidRepo) List(ctx context.Context) ([]model.Bid, error) {
	return r.t.list(ctx, "")
}

// ListByOwner returns every bid placed by ownerID ordered by id
func (r *BidRepo) ListByOwner(ctx context.Context, ownerID uint) ([]model.Bid, error) {
	return r.t.list(ctx, "owner_id = ?", ownerID)
}

// ListByAuction returns every bid on auctionID ordered by id
func (r *BidRepo) ListByAuction(ctx context.Context, auctionID uint) ([]model.Bid, error) {
	return r.t.list(ctx, "auction_id = ?", auctionID)
}
