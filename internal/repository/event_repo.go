package repository

import (
	"context"

	model "auction-house/internal/models"

	"gorm.io/gorm"
)

// EventRepo is the gorm implementation of EventDB
type EventRepo struct {
	t table[model.Event]
}

// NewEventRepo creates an event repository on top of db
func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{t: table[model.Event]{db: db, name: "event"}}
}

func (r *EventRepo) GetByID(ctx context.Context, id uint) (model.Event, error) {
	return r.t.getByID(ctx, id)
}

// Create inserts event. A missing owner fails with ErrMissingReference.
func (r *EventRepo) Create(ctx context.Context, event model.Event) (model.Event, error) {
	event.ID = 0
	return r.t.create(ctx, event)
}

func (r *EventRepo) Update(ctx context.Context, event model.Event) (model.Event, error) {
	return r.t.update(ctx, event.ID, event)
}

// Delete removes the event and, through the foreign key, its auctions
func (r *EventRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return r.t.delete(ctx, id)
}

func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	return r.t.list(ctx, "")
}
