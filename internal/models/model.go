package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices travel as JSON numbers, the way clients send them
	decimal.MarshalJSONWithoutQuotes = true
}

// NoUser is the acting user id of an anonymous request
const NoUser uint = 0

// MoneyScale is the number of decimal places money columns keep
const MoneyScale int32 = 2

// IsCents reports whether d fits a money column without rounding
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}

// User represents a registered participant
type User struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Email     string          `gorm:"uniqueIndex;not null" json:"email"`
	Password  string          `gorm:"not null" json:"-"`
	Name      string          `gorm:"not null" json:"name"`
	LastName  *string         `json:"last_name,omitempty"`
	Credit    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"credit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Event groups auctions that share one auction type
type Event struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Location    string      `json:"location"`
	OwnerID     uint        `gorm:"index;not null" json:"owner_id"`
	AuctionType AuctionType `gorm:"type:varchar(20);not null" json:"auction_type"`
	Category    string      `json:"category"`
	Status      EventStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// Auction represents a lot sold inside an event
type Auction struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	OwnerID       uint            `gorm:"index;not null" json:"owner_id"`
	EventID       uint            `gorm:"index;not null" json:"event_id"`
	StartingPrice decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"starting_price"`
	StartTime     *time.Time      `json:"start_time"`
	Status        AuctionStatus   `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Owner *User  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Event *Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

// Bid represents a user's offer on one good of an auction
type Bid struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	AuctionID uint            `gorm:"index;not null" json:"auction_id"`
	OwnerID   uint            `gorm:"index;not null" json:"owner_id"`
	GoodID    uint            `json:"good_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Owner   *User    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Auction *Auction `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE" json:"-"`
}
