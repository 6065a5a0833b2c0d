package orderbook

// Event is the tagged union returned from Engine.Execute (spec.md §6).
// Concrete types are Filled, PartiallyFilled, Placed, Canceled, Rejected.
// The unexported marker method keeps the union closed to this package.
type Event interface {
	isEvent()
}

// Fill records one match: the aggressor traded qty against opposite at
// price, which is always the resting (maker) order's limit price
// (spec.md §4.5.3).
type Fill struct {
	OppositeOrderID OrderID
	Price           Price
	Qty             Qty
}

// Filled is emitted when the aggressor is fully filled.
type Filled struct {
	ID        OrderID
	Side      Side
	OrderKind Kind
	Fills     []Fill
}

func (Filled) isEvent() {}

// PartiallyFilled is emitted when the aggressor did not fully fill, except
// for a GTC/GTX Limit that rests with no trades (that is Placed). For a
// resting Limit remainder, QtyRemaining is on the book; for a Market or IOC
// remainder, it was canceled (spec.md §4.5.1 step 4). Fills is nil when no
// trade occurred at all.
type PartiallyFilled struct {
	ID           OrderID
	Side         Side
	OrderKind    Kind
	Fills        []Fill
	QtyRemaining Qty
}

func (PartiallyFilled) isEvent() {}

// Placed is emitted when a Limit order rests with zero immediate fills.
type Placed struct {
	ID OrderID
}

func (Placed) isEvent() {}

// Canceled is emitted when a resting order is successfully canceled.
type Canceled struct {
	ID OrderID
}

func (Canceled) isEvent() {}

// Rejected is emitted when pre-validation fails; the book is left
// unchanged (spec.md §4.5.5, §7).
type Rejected struct {
	ID     OrderID
	Reason RejectReason
}

func (Rejected) isEvent() {}
