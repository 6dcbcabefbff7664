package event

import (
	"context"
	"errors"
	"fmt"
	"strings"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// EventService manages events and guards them by ownership
type EventService struct {
	events repository.EventDB
}

// NewEventService creates a new EventService instance
func NewEventService(events repository.EventDB) *EventService {
	return &EventService{events: events}
}

// CreateEvent stores candidate as an event owned by actor.
// An empty status means PENDING.
func (s *EventService) CreateEvent(ctx context.Context, candidate *model.Event, actor uint) (model.Event, error) {
	if actor == model.NoUser {
		return model.Event{}, auctionerrors.ErrUnauthorized
	}
	if candidate == nil {
		return model.Event{}, auctionerrors.ErrInvalidRequest
	}

	event, err := validate(*candidate)
	if err != nil {
		return model.Event{}, err
	}
	event.OwnerID = actor

	created, err := s.events.Create(ctx, event)
	if err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			// the session names a user that no longer exists
			return model.Event{}, fmt.Errorf("service: owner %d: %w", actor, auctionerrors.ErrUnauthorized)
		}
		utils.Error("CreateEvent: failed to create event", map[string]any{
			"user_id": actor,
			"name":    event.Name,
			"error":   err.Error(),
		})
		return model.Event{}, fmt.Errorf("service: failed to create event: %w", err)
	}

	return created, nil
}

// UpdateEvent replaces the editable fields of an event owned by actor.
// It is a full replace: name, location and category take the candidate's
// values even when empty. Owner and auction type keep their stored values,
// and an empty status keeps the stored status.
func (s *EventService) UpdateEvent(ctx context.Context, candidate *model.Event, actor uint) (model.Event, error) {
	if actor == model.NoUser {
		return model.Event{}, auctionerrors.ErrUnauthorized
	}
	if candidate == nil || candidate.ID == 0 {
		return model.Event{}, auctionerrors.ErrInvalidRequest
	}

	stored, err := s.GetEvent(ctx, candidate.ID)
	if err != nil {
		return model.Event{}, err
	}
	if err := auction.Authorize(actor, stored); err != nil {
		return model.Event{}, err
	}

	next := *candidate
	next.AuctionType = stored.AuctionType
	if next.Status == "" {
		next.Status = stored.Status
	}
	event, err := validate(next)
	if err != nil {
		return model.Event{}, err
	}
	event.ID = stored.ID
	event.OwnerID = stored.OwnerID
	event.CreatedAt = stored.CreatedAt

	updated, err := s.events.Update(ctx, event)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Event{}, fmt.Errorf("service: event %d: %w", event.ID, auctionerrors.ErrEventNotExist)
		}
		utils.Error("UpdateEvent: failed to update event", map[string]any{
			"event_id": event.ID,
			"user_id":  actor,
			"error":    err.Error(),
		})
		return model.Event{}, fmt.Errorf("service: failed to update event %d: %w", event.ID, err)
	}

	return updated, nil
}

// GetEvent returns a single event
func (s *EventService) GetEvent(ctx context.Context, eventID uint) (model.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Event{}, fmt.Errorf("service: event %d: %w", eventID, auctionerrors.ErrEventNotExist)
		}
		utils.Error("GetEvent: failed to get event", map[string]any{"event_id": eventID, "error": err.Error()})
		return model.Event{}, fmt.Errorf("service: failed to get event %d: %w", eventID, err)
	}
	return event, nil
}

// ListEvents returns every event ordered by id
func (s *EventService) ListEvents(ctx context.Context) ([]model.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		utils.Error("ListEvents: failed to list events", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("service: failed to list events: %w", err)
	}
	return events, nil
}

// DeleteEvent removes an event owned by actor together with its auctions.
// It reports false when the event does not exist.
func (s *EventService) DeleteEvent(ctx context.Context, eventID uint, actor uint) (bool, error) {
	if actor == model.NoUser {
		return false, auctionerrors.ErrUnauthorized
	}

	stored, err := s.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrEventNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := auction.Authorize(actor, stored); err != nil {
		return false, err
	}

	deleted, err := s.events.Delete(ctx, eventID)
	if err != nil {
		utils.Error("DeleteEvent: failed to delete event", map[string]any{
			"event_id": eventID,
			"user_id":  actor,
			"error":    err.Error(),
		})
		return false, fmt.Errorf("service: failed to delete event %d: %w", eventID, err)
	}
	return deleted, nil
}

// validate checks the caller-editable fields and normalizes the enums
func validate(e model.Event) (model.Event, error) {
	if strings.TrimSpace(e.Name) == "" {
		return model.Event{}, auctionerrors.ErrEventNameError
	}

	auctionType, err := model.ParseAuctionType(string(e.AuctionType))
	if err != nil {
		return model.Event{}, fmt.Errorf("service: %v: %w", err, auctionerrors.ErrInvalidAuctionType)
	}

	status := model.EventPending
	if e.Status != "" {
		status, err = model.ParseEventStatus(string(e.Status))
		if err != nil {
			return model.Event{}, fmt.Errorf("service: %v: %w", err, auctionerrors.ErrInvalidEventStatus)
		}
	}

	return model.Event{
		Name:        e.Name,
		Location:    e.Location,
		AuctionType: auctionType,
		Category:    e.Category,
		Status:      status,
	}, nil
}
