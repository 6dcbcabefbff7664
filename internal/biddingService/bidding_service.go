package bidding

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// BiddingService defines the business logic for bids
type BiddingService struct {
	bids     repository.BidDB
	auctions repository.AuctionDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(bids repository.BidDB, auctions repository.AuctionDB) *BiddingService {
	return &BiddingService{
		bids:     bids,
		auctions: auctions,
	}
}

// PlaceBid validates and records actor's bid on an auction
func (s *BiddingService) PlaceBid(ctx context.Context, candidate *models.Bid, actor uint) (models.Bid, error) {
	if actor == models.NoUser {
		return models.Bid{}, auctionerrors.ErrUnauthorized
	}
	if candidate == nil {
		return models.Bid{}, auctionerrors.ErrInvalidRequest
	}
	if !candidate.Amount.IsPositive() || !models.IsCents(candidate.Amount) {
		return models.Bid{}, fmt.Errorf("service: %w - amount %s", auctionerrors.ErrBidAmountError, candidate.Amount)
	}

	if _, err := s.auctions.GetByID(ctx, candidate.AuctionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Bid{}, fmt.Errorf("service: auction %d: %w", candidate.AuctionID, auctionerrors.ErrAuctionNotExist)
		}
		utils.Error("PlaceBid: failed to get auction", map[string]any{
			"auction_id": candidate.AuctionID,
			"error":      err.Error(),
		})
		return models.Bid{}, fmt.Errorf("service: failed to get auction %d: %w", candidate.AuctionID, err)
	}

	bid := models.Bid{
		AuctionID: candidate.AuctionID,
		OwnerID:   actor,
		GoodID:    candidate.GoodID,
		Amount:    candidate.Amount,
	}

	created, err := s.bids.Create(ctx, bid)
	if err != nil {
		// the auction was just loaded, so a dangling key is the actor's
		if errors.Is(err, repository.ErrMissingReference) {
			return models.Bid{}, fmt.Errorf("service: record bid for auction %d by user %d: %w", bid.AuctionID, actor, auctionerrors.ErrUnauthorized)
		}
		utils.Error("PlaceBid: failed to record bid", map[string]any{
			"auction_id": bid.AuctionID,
			"user_id":    actor,
			"error":      err.Error(),
		})
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %d by user %d: %w", bid.AuctionID, actor, err)
	}

	return created, nil
}

// ListBidsByOwner returns the bids of the user named by ownerIDParam.
// present tells a missing parameter apart from an empty one. Users may only
// list their own bids.
func (s *BiddingService) ListBidsByOwner(ctx context.Context, ownerIDParam string, present bool, actor uint) ([]models.Bid, error) {
	if actor == models.NoUser {
		return nil, auctionerrors.ErrUnauthorized
	}
	if !present {
		return nil, auctionerrors.ErrIdNone
	}

	ownerID, err := parseID(ownerIDParam)
	if err != nil {
		return nil, fmt.Errorf("service: owner id %q: %w", ownerIDParam, auctionerrors.ErrIdInvalid)
	}
	if ownerID != actor {
		return nil, auctionerrors.ErrUnauthorized
	}

	bids, err := s.bids.ListByOwner(ctx, ownerID)
	if err != nil {
		utils.Error("ListBidsByOwner: failed to list bids", map[string]any{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("service: failed to get bids for user %d: %w", ownerID, err)
	}

	return bids, nil
}

// ListBidsByAuction returns all bids on an existing auction
func (s *BiddingService) ListBidsByAuction(ctx context.Context, auctionID uint) ([]models.Bid, error) {
	if _, err := s.auctions.GetByID(ctx, auctionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("service: auction %d: %w", auctionID, auctionerrors.ErrAuctionNotExist)
		}
		return nil, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}

	bids, err := s.bids.ListByAuction(ctx, auctionID)
	if err != nil {
		utils.Error("ListBidsByAuction: failed to list bids", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("service: failed to get bids for auction %d: %w", auctionID, err)
	}

	return bids, nil
}

// parseID accepts positive base-10 integers only
func parseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(v), nil
}
