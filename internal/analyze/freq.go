package analyze

// Table maps canonical words to occurrence counts. It is built
// incrementally during the analysis pass and read-only afterwards; no key
// is ever stored with a zero count.
type Table struct {
	counts map[string]int
}

// NewTable returns an empty frequency table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Observe increments the count for a non-empty canonical word, inserting
// it with count 1 when absent. A single map operation; the word is stored
// once and never copied again.
func (t *Table) Observe(word string) {
	t.counts[word]++
}

// Len returns the number of distinct words observed.
func (t *Table) Len() int {
	return len(t.counts)
}

// Range calls fn for every (word, count) pair. Iteration order is
// unspecified; callers needing determinism must impose their own order.
func (t *Table) Range(fn func(word string, count int)) {
	for word, count := range t.counts {
		fn(word, count)
	}
}
