package topk

import (
	"math/rand"
	"sort"
	"testing"
)

func intLess(a, b int) bool { return a < b }

func TestSelectorRetainsLargest(t *testing.T) {
	s := New(3, intLess)
	for _, v := range []int{5, 1, 9, 3, 7, 2, 8} {
		s.Offer(v)
	}
	got := s.Descending()
	want := []int{9, 8, 7}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSelectorNeverExceedsCapacity(t *testing.T) {
	s := New(4, intLess)
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		s.Offer(rnd.Intn(100))
		if s.Len() > 4 {
			t.Fatalf("size %d exceeds capacity after %d offers", s.Len(), i+1)
		}
	}
	if s.Len() != 4 {
		t.Fatalf("expected full selector, got %d items", s.Len())
	}
}

func TestSelectorFewerOffersThanCapacity(t *testing.T) {
	s := New(10, intLess)
	s.Offer(2)
	s.Offer(1)
	got := s.Descending()
	if len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestSelectorZeroCapacity(t *testing.T) {
	s := New(0, intLess)
	s.Offer(1)
	if s.Len() != 0 {
		t.Fatalf("expected empty selector, got %d items", s.Len())
	}
	if got := s.Descending(); len(got) != 0 {
		t.Fatalf("expected no items, got %v", got)
	}
}

func TestSelectorEqualToFullSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	values := make([]int, 500)
	for i := range values {
		values[i] = rnd.Intn(50)
	}

	type entry struct {
		value int
		order int
	}
	// Ties broken by insertion order descending so the order is total.
	less := func(a, b entry) bool {
		if a.value != b.value {
			return a.value < b.value
		}
		return a.order < b.order
	}
	s := New(20, less)
	all := make([]entry, 0, len(values))
	for i, v := range values {
		e := entry{value: v, order: i}
		s.Offer(e)
		all = append(all, e)
	}

	sort.Slice(all, func(i, j int) bool { return less(all[j], all[i]) })
	want := all[:20]
	got := s.Descending()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSelectorDiscardsEqualAtCapacity(t *testing.T) {
	s := New(2, intLess)
	s.Offer(3)
	s.Offer(5)
	s.Offer(3)
	got := s.Descending()
	if len(got) != 2 || got[0] != 5 || got[1] != 3 {
		t.Fatalf("unexpected result: %v", got)
	}
}
