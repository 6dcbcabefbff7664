package auction

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
)

// CanMutate reports whether actor may change the children of event.
// Only the event owner may; an anonymous actor never may.
func CanMutate(actor uint, event model.Event) bool {
	return actor != model.NoUser && event.OwnerID == actor
}

// Authorize returns ErrUnauthorized unless CanMutate holds. Anonymous callers
// and authenticated non-owners get the same error.
func Authorize(actor uint, event model.Event) error {
	if !CanMutate(actor, event) {
		return auctionerrors.ErrUnauthorized
	}
	return nil
}
