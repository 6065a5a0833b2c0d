package orderbook

import "github.com/google/btree"

// btreeDegree matches the teacher's choice in
// x/orderbook/keeper/orderbook_btree.go: large enough that each node holds
// many price levels, keeping the tree shallow and cache-friendly.
const btreeDegree = 32

// priceLevelItem wraps a PriceLevel for btree.Item ordering, ascending by
// price regardless of which side owns it — BTreeSideBook flips direction
// by choosing Min() or Max() as "best" instead of by changing the
// comparator, same as the teacher's priceLevelItem.
type priceLevelItem struct {
	price Price
	level *PriceLevel
}

func (a *priceLevelItem) Less(b btree.Item) bool {
	return a.price < b.(*priceLevelItem).price
}

// BTreeSideBook is the default sideBook backend: a B-tree ordered map from
// price to PriceLevel, giving O(log P) insert/delete/lookup and O(log P)
// best via Min/Max; the best level is not cached. Grounded in
// x/orderbook/keeper/orderbook_btree.go.
type BTreeSideBook struct {
	tree *btree.BTree
	desc bool // true for Bid (best = max price), false for Ask (best = min)
}

func newBTreeSideBook(desc bool) *BTreeSideBook {
	return &BTreeSideBook{tree: btree.New(btreeDegree), desc: desc}
}

func (s *BTreeSideBook) best() *PriceLevel {
	var item btree.Item
	if s.desc {
		item = s.tree.Max()
	} else {
		item = s.tree.Min()
	}
	if item == nil {
		return nil
	}
	return item.(*priceLevelItem).level
}

func (s *BTreeSideBook) levelAt(price Price) *PriceLevel {
	item := s.tree.Get(&priceLevelItem{price: price})
	if item == nil {
		return nil
	}
	return item.(*priceLevelItem).level
}

func (s *BTreeSideBook) getOrCreate(price Price) *PriceLevel {
	if level := s.levelAt(price); level != nil {
		return level
	}
	level := newPriceLevel(price)
	s.tree.ReplaceOrInsert(&priceLevelItem{price: price, level: level})
	return level
}

func (s *BTreeSideBook) deleteLevel(price Price) {
	s.tree.Delete(&priceLevelItem{price: price})
}

func (s *BTreeSideBook) len() int {
	return s.tree.Len()
}

func (s *BTreeSideBook) topN(n int, fn func(*PriceLevel) bool) {
	count := 0
	iter := func(item btree.Item) bool {
		if count >= n {
			return false
		}
		count++
		return fn(item.(*priceLevelItem).level)
	}
	if s.desc {
		s.tree.Descend(iter)
	} else {
		s.tree.Ascend(iter)
	}
}
