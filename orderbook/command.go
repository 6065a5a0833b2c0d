package orderbook

// Kind identifies which of the three command shapes a Command carries.
type Kind uint8

const (
	KindLimit Kind = iota
	KindMarket
	KindCancel
)

func (k Kind) String() string {
	switch k {
	case KindLimit:
		return "Limit"
	case KindMarket:
		return "Market"
	case KindCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// TimeInForce qualifies how aggressively a Limit command is allowed to
// rest. Market commands always carry GTC: the Market constructor takes no
// time-in-force. GTC (the zero value) is the behavior spec.md §4.5
// describes; IOC, FOK, and GTX are SPEC_FULL additions layered on the same
// matching primitives (SPEC_FULL §4.1), grounded in the teacher's
// keeper/time_in_force.go.
type TimeInForce uint8

const (
	GTC TimeInForce = iota // Good Till Cancel (default)
	IOC                    // Immediate Or Cancel
	FOK                    // Fill Or Kill
	GTX                    // Post-only (Good Till Crossing)
)

func (t TimeInForce) String() string {
	switch t {
	case IOC:
		return "IOC"
	case FOK:
		return "FOK"
	case GTX:
		return "GTX"
	default:
		return "GTC"
	}
}

// Command is the immutable descriptor of a caller intent: a Limit order, a
// Market order, or a Cancel. It is built with the Limit/Market/Cancel
// constructors below rather than assembled field-by-field, so a Cancel
// never carries a stray side/price/qty and a Market command never carries
// a price (spec.md §4.1).
type Command struct {
	kind  Kind
	id    OrderID
	side  Side
	price Price
	qty   Qty
	tif   TimeInForce
}

// Limit builds a Limit command: rest at price if any remainder survives
// matching, subject to tif.
func Limit(id OrderID, side Side, price Price, qty Qty, tif TimeInForce) Command {
	return Command{kind: KindLimit, id: id, side: side, price: price, qty: qty, tif: tif}
}

// Market builds a Market command: match until filled or the opposing side
// is exhausted, never rests.
func Market(id OrderID, side Side, qty Qty) Command {
	return Command{kind: KindMarket, id: id, side: side, qty: qty}
}

// Cancel builds a Cancel command for a previously-submitted resting order.
func Cancel(id OrderID) Command {
	return Command{kind: KindCancel, id: id}
}

func (c Command) Kind() Kind          { return c.kind }
func (c Command) ID() OrderID         { return c.id }
func (c Command) Side() Side          { return c.side }
func (c Command) Price() Price        { return c.price }
func (c Command) Qty() Qty            { return c.qty }
func (c Command) TimeInForce() TimeInForce { return c.tif }

// validate applies spec.md §4.1/§4.5.5/§7's pre-validation rules. It never
// mutates engine state; a non-nil RejectReason means the caller's command
// is malformed and must be rejected before any matching is attempted.
func (c Command) validate() (RejectReason, bool) {
	switch c.kind {
	case KindCancel:
		return "", true
	case KindLimit:
		if c.qty == 0 {
			return ReasonBadQuantity, false
		}
		if c.price == 0 {
			return ReasonBadPrice, false
		}
		return "", true
	case KindMarket:
		if c.qty == 0 {
			return ReasonBadQuantity, false
		}
		return "", true
	default:
		return ReasonBadQuantity, false
	}
}
