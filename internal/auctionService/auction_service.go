package auction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"

	"github.com/shopspring/decimal"
)

// AuctionService validates and applies auction lifecycle changes
type AuctionService struct {
	auctions repository.AuctionDB
	events   repository.EventDB
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(auctions repository.AuctionDB, events repository.EventDB) *AuctionService {
	return &AuctionService{
		auctions: auctions,
		events:   events,
	}
}

// CreateAuction checks candidate against its event and stores it on behalf of actor.
// Checks run in order and the first failure is returned:
// authentication, presence, name, event existence, event status, pricing.
// Status, start time and owner are always set by the service.
func (s *AuctionService) CreateAuction(ctx context.Context, candidate *model.Auction, actor uint) (model.Auction, error) {
	if actor == model.NoUser {
		return model.Auction{}, auctionerrors.ErrUnauthorized
	}
	if candidate == nil {
		return model.Auction{}, auctionerrors.ErrInvalidRequest
	}
	if strings.TrimSpace(candidate.Name) == "" {
		return model.Auction{}, auctionerrors.ErrNameError
	}

	event, err := s.getEvent(ctx, "CreateAuction", candidate.EventID)
	if err != nil {
		return model.Auction{}, err
	}

	if event.Status != model.EventOpened {
		return model.Auction{}, fmt.Errorf("service: event %d is %s: %w", event.ID, event.Status, auctionerrors.ErrEventNotOpened)
	}

	price, err := startingPrice(event.AuctionType, candidate.StartingPrice)
	if err != nil {
		return model.Auction{}, err
	}

	auction := model.Auction{
		Name:          candidate.Name,
		OwnerID:       actor,
		EventID:       event.ID,
		StartingPrice: price,
		StartTime:     nil,
		Status:        model.AuctionPending,
	}

	created, err := s.auctions.Create(ctx, auction)
	if err != nil {
		// the event was just loaded, so a dangling key is the actor's
		if errors.Is(err, repository.ErrMissingReference) {
			return model.Auction{}, fmt.Errorf("service: create auction for event %d by user %d: %w", event.ID, actor, auctionerrors.ErrUnauthorized)
		}
		utils.Error("CreateAuction: failed to create auction", map[string]any{
			"event_id": event.ID,
			"user_id":  actor,
			"name":     auction.Name,
			"error":    err.Error(),
		})
		return model.Auction{}, fmt.Errorf("service: failed to create auction for event %d: %w", event.ID, err)
	}

	return created, nil
}

// startingPrice applies the pricing rule of an auction type to the requested price.
// Prices are stored with cents precision, so finer values are rejected.
func startingPrice(t model.AuctionType, requested decimal.Decimal) (decimal.Decimal, error) {
	if fixed, ok := t.FixedStartingPrice(); ok {
		return fixed, nil
	}
	if !requested.IsPositive() || !model.IsCents(requested) {
		return decimal.Zero, fmt.Errorf("service: starting price %s: %w", requested, auctionerrors.ErrAuctionStartingPriceError)
	}
	return requested, nil
}

// UpdateAuctionStatus sets the status of an auction. Only the owner of the
// auction's event may do so; the auction's own owner field is not consulted.
// Any recognised status may follow any other, and concurrent updates are
// last-writer-wins.
func (s *AuctionService) UpdateAuctionStatus(ctx context.Context, auctionID uint, status string, actor uint) (model.Auction, error) {
	if actor == model.NoUser {
		return model.Auction{}, auctionerrors.ErrUnauthorized
	}
	if auctionID == 0 {
		return model.Auction{}, auctionerrors.ErrInvalidRequest
	}

	newStatus, err := model.ParseAuctionStatus(status)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: %v: %w", err, auctionerrors.ErrInvalidStatus)
	}

	stored, err := s.getAuction(ctx, "UpdateAuctionStatus", auctionID)
	if err != nil {
		return model.Auction{}, err
	}

	if err := s.authorize(ctx, "UpdateAuctionStatus", stored, actor); err != nil {
		return model.Auction{}, err
	}

	stored.Status = newStatus
	updated, err := s.auctions.Update(ctx, stored)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Auction{}, fmt.Errorf("service: auction %d: %w", auctionID, auctionerrors.ErrAuctionNotExist)
		}
		utils.Error("UpdateAuctionStatus: failed to update auction", map[string]any{
			"auction_id": auctionID,
			"status":     newStatus,
			"user_id":    actor,
			"error":      err.Error(),
		})
		return model.Auction{}, fmt.Errorf("service: failed to update auction %d: %w", auctionID, err)
	}

	return updated, nil
}

// GetAuction returns a single auction
func (s *AuctionService) GetAuction(ctx context.Context, auctionID uint) (model.Auction, error) {
	return s.getAuction(ctx, "GetAuction", auctionID)
}

// ListAuctions returns every auction ordered by id
func (s *AuctionService) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	auctions, err := s.auctions.List(ctx)
	if err != nil {
		utils.Error("ListAuctions: failed to list auctions", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// ListAuctionsByEvent returns the auctions of one existing event
func (s *AuctionService) ListAuctionsByEvent(ctx context.Context, eventID uint) ([]model.Auction, error) {
	if _, err := s.getEvent(ctx, "ListAuctionsByEvent", eventID); err != nil {
		return nil, err
	}

	auctions, err := s.auctions.ListByEvent(ctx, eventID)
	if err != nil {
		utils.Error("ListAuctionsByEvent: failed to list auctions", map[string]any{
			"event_id": eventID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("service: failed to list auctions of event %d: %w", eventID, err)
	}
	return auctions, nil
}

// DeleteAuction removes an auction on behalf of the owner of its event.
// It reports false when the auction does not exist.
func (s *AuctionService) DeleteAuction(ctx context.Context, auctionID uint, actor uint) (bool, error) {
	if actor == model.NoUser {
		return false, auctionerrors.ErrUnauthorized
	}

	stored, err := s.getAuction(ctx, "DeleteAuction", auctionID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotExist) {
			return false, nil
		}
		return false, err
	}

	if err := s.authorize(ctx, "DeleteAuction", stored, actor); err != nil {
		return false, err
	}

	deleted, err := s.auctions.Delete(ctx, auctionID)
	if err != nil {
		utils.Error("DeleteAuction: failed to delete auction", map[string]any{
			"auction_id": auctionID,
			"user_id":    actor,
			"error":      err.Error(),
		})
		return false, fmt.Errorf("service: failed to delete auction %d: %w", auctionID, err)
	}
	return deleted, nil
}

// authorize loads the parent event of auction and checks actor owns it
func (s *AuctionService) authorize(ctx context.Context, op string, auction model.Auction, actor uint) error {
	event, err := s.getEvent(ctx, op, auction.EventID)
	if err != nil {
		return err
	}
	return Authorize(actor, event)
}

func (s *AuctionService) getAuction(ctx context.Context, op string, auctionID uint) (model.Auction, error) {
	auction, err := s.auctions.GetByID(ctx, auctionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Auction{}, fmt.Errorf("service: auction %d: %w", auctionID, auctionerrors.ErrAuctionNotExist)
		}
		utils.Error(op+": failed to get auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return model.Auction{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}
	return auction, nil
}

func (s *AuctionService) getEvent(ctx context.Context, op string, eventID uint) (model.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Event{}, fmt.Errorf("service: event %d: %w", eventID, auctionerrors.ErrEventNotExist)
		}
		utils.Error(op+": failed to get event", map[string]any{
			"event_id": eventID,
			"error":    err.Error(),
		})
		return model.Event{}, fmt.Errorf("service: failed to get event %d: %w", eventID, err)
	}
	return event, nil
}
