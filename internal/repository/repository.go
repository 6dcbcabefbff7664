package repository

import (
	"context"
	"errors"
	"fmt"

	model "auction-house/internal/models"

	"gorm.io/gorm"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// Persistence-level errors
var (
	ErrNotFound         = errors.New("record not found")
	ErrMissingReference = errors.New("referenced record does not exist")
	ErrDuplicate        = errors.New("record already exists")
)

// UserDB defines the user storage interface
type UserDB interface {
	GetByID(ctx context.Context, id uint) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, user model.User) (model.User, error)
	Update(ctx context.Context, user model.User) (model.User, error)
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]model.User, error)
}

// EventDB defines the event storage interface
type EventDB interface {
	GetByID(ctx context.Context, id uint) (model.Event, error)
	Create(ctx context.Context, event model.Event) (model.Event, error)
	Update(ctx context.Context, event model.Event) (model.Event, error)
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]model.Event, error)
}

// AuctionDB defines the auction storage interface
type AuctionDB interface {
	GetByID(ctx context.Context, id uint) (model.Auction, error)
	Create(ctx context.Context, auction model.Auction) (model.Auction, error)
	Update(ctx context.Context, auction model.Auction) (model.Auction, error)
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]model.Auction, error)
	ListByEvent(ctx context.Context, eventID uint) ([]model.Auction, error)
}

// BidDB defines the bid storage interface
type BidDB interface {
	GetByID(ctx context.Context, id uint) (model.Bid, error)
	Create(ctx context.Context, bid model.Bid) (model.Bid, error)
	Update(ctx context.Context, bid model.Bid) (model.Bid, error)
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]model.Bid, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Bid, error)
	ListByAuction(ctx context.Context, auctionID uint) ([]model.Bid, error)
}

// table holds the CRUD plumbing shared by every entity repository
type table[T any] struct {
	db   *gorm.DB
	name string
}

func (t table[T]) getByID(ctx context.Context, id uint) (T, error) {
	var row T
	if err := t.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return row, translate(fmt.Sprintf("get %s %d", t.name, id), err)
	}
	return row, nil
}

func (t table[T]) create(ctx context.Context, row T) (T, error) {
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		var zero T
		return zero, translate("create "+t.name, err)
	}
	return row, nil
}

// update replaces every column but created_at of the row with the given id.
// It never inserts: an absent row yields ErrNotFound.
func (t table[T]) update(ctx context.Context, id uint, row T) (T, error) {
	var zero T
	if id == 0 {
		return zero, fmt.Errorf("update %s: %w", t.name, ErrNotFound)
	}

	res := t.db.WithContext(ctx).Model(&row).Select("*").Omit("created_at").Updates(&row)
	if res.Error != nil {
		return zero, translate(fmt.Sprintf("update %s %d", t.name, id), res.Error)
	}
	if res.RowsAffected == 0 {
		return zero, fmt.Errorf("update %s %d: %w", t.name, id, ErrNotFound)
	}

	return t.getByID(ctx, id)
}

func (t table[T]) delete(ctx context.Context, id uint) (bool, error) {
	var row T
	res := t.db.WithContext(ctx).Delete(&row, id)
	if res.Error != nil {
		return false, translate(fmt.Sprintf("delete %s %d", t.name, id), res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (t table[T]) list(ctx context.Context, query string, args ...any) ([]T, error) {
	rows := []T{}
	tx := t.db.WithContext(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translate("list "+t.name, err)
	}
	return rows, nil
}

// translate maps driver errors onto the repository error set
func translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, ErrMissingReference)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
