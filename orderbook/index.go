package orderbook

import "container/list"

// indexEntry locates a resting order: which side/price it rests at, and
// the intrusive list.Element handle for O(1) removal from that level's
// FIFO queue (spec.md §4.4, §9).
type indexEntry struct {
	side  Side
	price Price
	elem  *list.Element
}

// OrderIndex maps an external OrderID to its containing (side, price,
// element) for O(1)-plus-level-lookup cancellation (spec.md §4.4). The
// invariant it maintains: id is present iff a RestingOrder with that id is
// present in the PriceLevel at (side, price).
type OrderIndex struct {
	m map[OrderID]indexEntry
}

func newOrderIndex() *OrderIndex {
	return &OrderIndex{m: make(map[OrderID]indexEntry)}
}

func (ix *OrderIndex) insert(id OrderID, side Side, price Price, elem *list.Element) {
	ix.m[id] = indexEntry{side: side, price: price, elem: elem}
}

func (ix *OrderIndex) lookup(id OrderID) (indexEntry, bool) {
	e, ok := ix.m[id]
	return e, ok
}

func (ix *OrderIndex) delete(id OrderID) {
	delete(ix.m, id)
}

func (ix *OrderIndex) len() int {
	return len(ix.m)
}
