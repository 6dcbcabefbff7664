package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AuctionType is fixed per event and decides the pricing rule of its auctions
type AuctionType string

const (
	English       AuctionType = "ENGLISH"
	Combinatorial AuctionType = "COMBINATORIAL"
)

// AuctionTypes lists every accepted auction type
var AuctionTypes = []AuctionType{English, Combinatorial}

// ParseAuctionType converts a wire value into an AuctionType
func ParseAuctionType(s string) (AuctionType, error) {
	switch t := AuctionType(s); t {
	case English, Combinatorial:
		return t, nil
	}
	return "", fmt.Errorf("unknown auction type %q", s)
}

// FixedStartingPrice reports the price forced on every auction of this type.
// Price-driven types return false and keep the caller's price.
func (t AuctionType) FixedStartingPrice() (decimal.Decimal, bool) {
	switch t {
	case Combinatorial:
		return decimal.NewFromInt(1), true
	case English:
		return decimal.Zero, false
	}
	return decimal.Zero, false
}

// EventStatus is the lifecycle state of an event
type EventStatus string

const (
	EventPending    EventStatus = "PENDING"
	EventOpened     EventStatus = "OPENED"
	EventInProgress EventStatus = "IN_PROGRESS"
	EventClosed     EventStatus = "CLOSED"
)

// EventStatuses lists every accepted event status
var EventStatuses = []EventStatus{EventPending, EventOpened, EventInProgress, EventClosed}

// ParseEventStatus converts a wire value into an EventStatus
func ParseEventStatus(s string) (EventStatus, error) {
	switch st := EventStatus(s); st {
	case EventPending, EventOpened, EventInProgress, EventClosed:
		return st, nil
	}
	return "", fmt.Errorf("unknown event status %q", s)
}

// AuctionStatus is the lifecycle state of an auction
type AuctionStatus string

const (
	AuctionPending    AuctionStatus = "PENDING"
	AuctionInProgress AuctionStatus = "IN_PROGRESS"
	AuctionClosed     AuctionStatus = "CLOSED"
)

// AuctionStatuses lists every accepted auction status
var AuctionStatuses = []AuctionStatus{AuctionPending, AuctionInProgress, AuctionClosed}

// ParseAuctionStatus converts a wire value into an AuctionStatus
func ParseAuctionStatus(s string) (AuctionStatus, error) {
	switch st := AuctionStatus(s); st {
	case AuctionPending, AuctionInProgress, AuctionClosed:
		return st, nil
	}
	return "", fmt.Errorf("unknown auction status %q", s)
}
