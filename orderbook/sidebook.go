package orderbook

// sideBook is the price-ordered collection of PriceLevels for one side of
// the market (spec.md §4.3). Two backends implement it — BTreeSideBook and
// SkipListSideBook — mirroring the teacher's OrderBookBTree /
// OrderBookV2 pair (x/orderbook/keeper/orderbook_btree.go,
// orderbook_v2.go), selectable behind the same contract per spec.md §9's
// rejection of a single hard-coded layout.
//
// Insertion and level lookup are O(log P) where P is the number of
// distinct resting price points. Neither backend caches the best price:
// SkipListSideBook reads it from the list front in O(1), BTreeSideBook
// descends to the tree's Min/Max in O(log P).
type sideBook interface {
	// best returns the most aggressive resting level, or nil if the side
	// is empty.
	best() *PriceLevel
	// levelAt returns the level at price, or nil if none rests there.
	levelAt(price Price) *PriceLevel
	// getOrCreate returns the level at price, creating and inserting an
	// empty one if absent.
	getOrCreate(price Price) *PriceLevel
	// deleteLevel removes the (assumed empty) level at price.
	deleteLevel(price Price)
	// len returns the number of distinct resting price points.
	len() int
	// topN calls fn for up to n levels in aggressiveness order (best
	// first), stopping early if fn returns false.
	topN(n int, fn func(*PriceLevel) bool)
}

// crosses reports whether the opposing side's best price crosses an
// aggressor's limit price, per spec.md §4.5.1: a buy aggressor crosses
// when opp.best() <= price; a sell aggressor crosses when opp.best() >=
// price. aggressorSide is the side of the *aggressor* (so opp is the other
// side's book).
func crosses(aggressorSide Side, oppBest Price, aggressorPrice Price) bool {
	if aggressorSide == Bid {
		return oppBest <= aggressorPrice
	}
	return oppBest >= aggressorPrice
}
