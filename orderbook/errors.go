package orderbook

import (
	"cosmossdk.io/errors"
)

// Rejection reasons. These double as cosmossdk.io/errors sentinels (the
// teacher's convention in x/orderbook/types/errors.go) so callers embedding
// the core in a larger service can errors.Is/errors.Wrap them the same way
// the rest of the pack does.
var (
	ErrBadQuantity = errors.Register("orderbook", 1, "quantity must be positive")
	ErrBadPrice    = errors.Register("orderbook", 2, "limit price must be positive")
	ErrUnknownID   = errors.Register("orderbook", 3, "order id not found")

	// Time-in-force rejections (SPEC_FULL §4.1).
	ErrFOKUnfillable     = errors.Register("orderbook", 10, "FOK order could not be fully filled")
	ErrPostOnlyWouldTake = errors.Register("orderbook", 11, "post-only order would take liquidity")

	// Conditional-order and OCO rejections (SPEC_FULL §4.1).
	ErrInvalidTriggerPrice      = errors.Register("orderbook", 20, "trigger price must be positive")
	ErrConditionalOrderNotFound = errors.Register("orderbook", 21, "conditional order not found")
	ErrOCONotFound              = errors.Register("orderbook", 22, "OCO link not found")

	ErrBatchTooLarge = errors.Register("orderbook", 30, "batch size exceeds MaxBatchSize")
)

// RejectReason names why a command was rejected, echoed on the Rejected
// event (spec.md §6).
type RejectReason string

const (
	ReasonBadQuantity         RejectReason = "BadQuantity"
	ReasonBadPrice            RejectReason = "BadPrice"
	ReasonUnknownID           RejectReason = "UnknownId"
	ReasonFOKUnfillable       RejectReason = "FOKUnfillable"
	ReasonPostOnlyWouldTake   RejectReason = "PostOnlyWouldTake"
	ReasonInvalidTriggerPrice RejectReason = "InvalidTriggerPrice"
)
