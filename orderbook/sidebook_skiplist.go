package orderbook

import "github.com/huandu/skiplist"

// priceKeyAsc/priceKeyDesc are skiplist comparators ordering by Price,
// ascending or descending. Grounded in
// x/orderbook/keeper/orderbook_v2.go's priceKeyAsc/priceKeyDesc, adapted
// from math.LegacyDec keys to plain uint64 Price.
type priceKeyAsc struct{}

func (priceKeyAsc) Compare(lhs, rhs interface{}) int {
	l, r := lhs.(Price), rhs.(Price)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func (priceKeyAsc) CalcScore(key interface{}) float64 {
	return float64(key.(Price))
}

type priceKeyDesc struct{}

func (priceKeyDesc) Compare(lhs, rhs interface{}) int {
	l, r := lhs.(Price), rhs.(Price)
	switch {
	case l > r:
		return -1
	case l < r:
		return 1
	default:
		return 0
	}
}

func (priceKeyDesc) CalcScore(key interface{}) float64 {
	return -float64(key.(Price))
}

// SkipListSideBook is an alternative sideBook backend built on a skip
// list, offering the same O(log P) bounds with O(1) best via Front().
// Grounded in x/orderbook/keeper/orderbook_v2.go (OrderBookV2); kept
// alongside BTreeSideBook so benchmarks can compare the two the way
// benchmark_comparison_test.go does in the teacher.
type SkipListSideBook struct {
	list *skiplist.SkipList
}

func newSkipListSideBook(desc bool) *SkipListSideBook {
	if desc {
		return &SkipListSideBook{list: skiplist.New(priceKeyDesc{})}
	}
	return &SkipListSideBook{list: skiplist.New(priceKeyAsc{})}
}

func (s *SkipListSideBook) best() *PriceLevel {
	front := s.list.Front()
	if front == nil {
		return nil
	}
	return front.Value.(*PriceLevel)
}

func (s *SkipListSideBook) levelAt(price Price) *PriceLevel {
	elem := s.list.Get(price)
	if elem == nil {
		return nil
	}
	return elem.Value.(*PriceLevel)
}

func (s *SkipListSideBook) getOrCreate(price Price) *PriceLevel {
	if level := s.levelAt(price); level != nil {
		return level
	}
	level := newPriceLevel(price)
	s.list.Set(price, level)
	return level
}

func (s *SkipListSideBook) deleteLevel(price Price) {
	s.list.Remove(price)
}

func (s *SkipListSideBook) len() int {
	return s.list.Len()
}

func (s *SkipListSideBook) topN(n int, fn func(*PriceLevel) bool) {
	elem := s.list.Front()
	for i := 0; i < n && elem != nil; i++ {
		if !fn(elem.Value.(*PriceLevel)) {
			return
		}
		elem = elem.Next()
	}
}
