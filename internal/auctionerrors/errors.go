package auctionerrors

import "errors"

// Kind groups errors by how a caller should react to them
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindInvalidRequest
	KindValidation
	KindNotFound
	KindConflict
)

// Access and request errors
var (
	ErrUnauthorized   = errors.New("Unauthorized.")
	ErrInvalidRequest = errors.New("Invalid request.")
	ErrInternal       = errors.New("Internal server error.")
)

// Auction lifecycle errors
var (
	ErrNameError                 = errors.New("Auction name cannot be blank")
	ErrEventNotExist             = errors.New("Event does not exist")
	ErrEventNotOpened            = errors.New("Event is not opened")
	ErrAuctionStartingPriceError = errors.New("Starting price should be positive")
	ErrInvalidStatus             = errors.New("Invalid auction status")
	ErrAuctionNotExist           = errors.New("Auction does not exist")
)

// Event errors
var (
	ErrEventNameError     = errors.New("Event name cannot be blank")
	ErrInvalidAuctionType = errors.New("Invalid auction type")
	ErrInvalidEventStatus = errors.New("Invalid event status")
)

// Bid errors
var (
	ErrIdNone         = errors.New("Owner id parameter is missing")
	ErrIdInvalid      = errors.New("Owner id parameter is invalid")
	ErrBidAmountError = errors.New("Bid amount should be positive")
)

// User errors
var (
	ErrEmailBlank      = errors.New("Email cannot be blank.")
	ErrEmailInvalid    = errors.New("Invalid email.")
	ErrEmailTaken      = errors.New("Email is already taken")
	ErrEmailNotFound   = errors.New("Email is not registered in the system")
	ErrPasswordBlank   = errors.New("Password cannot be blank")
	ErrPasswordLength  = errors.New("Password should be longer than 4 characters")
	ErrPasswordInvalid = errors.New("Invalid password.")
	ErrNameBlank       = errors.New("Name cannot be blank")
	ErrUserNotExist    = errors.New("User does not exist")
)

var kinds = map[error]Kind{
	ErrUnauthorized:   KindUnauthorized,
	ErrInvalidRequest: KindInvalidRequest,

	ErrNameError:                 KindValidation,
	ErrAuctionStartingPriceError: KindValidation,
	ErrInvalidStatus:             KindValidation,
	ErrEventNameError:            KindValidation,
	ErrInvalidAuctionType:        KindValidation,
	ErrInvalidEventStatus:        KindValidation,
	ErrIdNone:                    KindValidation,
	ErrIdInvalid:                 KindValidation,
	ErrBidAmountError:            KindValidation,
	ErrEmailBlank:                KindValidation,
	ErrEmailInvalid:              KindValidation,
	ErrPasswordBlank:             KindValidation,
	ErrPasswordLength:            KindValidation,
	ErrNameBlank:                 KindValidation,
	ErrPasswordInvalid:           KindUnauthorized,

	ErrEventNotExist:   KindNotFound,
	ErrAuctionNotExist: KindNotFound,
	ErrUserNotExist:    KindNotFound,
	ErrEmailNotFound:   KindNotFound,

	ErrEventNotOpened: KindConflict,
	ErrEmailTaken:     KindConflict,
}

// KindOf classifies err by the first known sentinel in its chain.
// Anything unrecognised is internal.
func KindOf(err error) Kind {
	for sentinel, kind := range kinds {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindInternal
}

// Public returns the sentinel whose message may be shown to a caller.
// Unknown errors collapse to ErrInternal so store details never leak.
func Public(err error) error {
	for sentinel := range kinds {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return ErrInternal
}
