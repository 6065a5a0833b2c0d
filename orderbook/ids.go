package orderbook

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// OrderID is an opaque 128-bit identifier chosen by the caller. It is wide
// enough to hold a version-4 UUID, which is the recommended way to mint one.
type OrderID [16]byte

// NewOrderID mints a fresh random OrderID backed by a UUIDv4.
func NewOrderID() OrderID {
	return OrderID(uuid.New())
}

// OrderIDFromUint64 packs a uint64 into the low 8 bytes of an OrderID, for
// tests and examples that want small, readable identifiers.
func OrderIDFromUint64(n uint64) OrderID {
	var id OrderID
	binary.BigEndian.PutUint64(id[8:], n)
	return id
}

func (id OrderID) String() string {
	return uuid.UUID(id).String()
}

// parseUUIDOrHex accepts either canonical UUID text or plain 32-character
// hex, so callers minting OrderIDs with OrderIDFromUint64 can round-trip
// them through the wire format without going via uuid.UUID's dashed form.
func parseUUIDOrHex(s string) (OrderID, error) {
	if u, err := uuid.Parse(s); err == nil {
		return OrderID(u), nil
	}
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 16 {
		return OrderID{}, fmt.Errorf("not a UUID or 32-char hex string")
	}
	var id OrderID
	copy(id[:], b)
	return id, nil
}

// IsZero reports whether id is the zero value, which is never a valid
// caller-assigned identifier.
func (id OrderID) IsZero() bool {
	return id == OrderID{}
}

// Price is an unsigned integer price. The caller owns the currency unit
// (ticks, cents, whatever); the core never interprets it beyond ordering
// and arithmetic.
type Price uint64

// Qty is an unsigned integer quantity, in the caller's lot size.
type Qty uint64

// Side is which side of the book an order rests on or trades against.
type Side uint8

const (
	// SideUnspecified marks a Side that has not been set; it is never valid
	// on a Limit or Market command.
	SideUnspecified Side = iota
	Bid
	Ask
)

func (s Side) String() string {
	switch s {
	case Bid:
		return "Bid"
	case Ask:
		return "Ask"
	default:
		return "Unspecified"
	}
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

// addQty adds b to a, panicking with OverflowError on unsigned overflow.
// Quantity-sum overflow is the one fatal condition the core recognizes
// (spec.md §7): it signals corrupted state, not bad input.
func addQty(a, b Qty) Qty {
	sum := a + b
	if sum < a {
		panic(OverflowError{A: a, B: b})
	}
	return sum
}

// OverflowError is raised (via panic) when quantity arithmetic would wrap
// a uint64. It is never returned as a normal error value: the engine offers
// no partial-failure recovery from arithmetic corruption.
type OverflowError struct {
	A, B Qty
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("orderbook: quantity overflow adding %d + %d", e.A, e.B)
}
