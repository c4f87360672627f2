package sortseq

// quickselectPrefix partitions keys in place so that keys[:k] holds the k
// smallest elements under less (in unspecified order among themselves)
// and every element of keys[k:] compares >= every element of keys[:k].
// This is the selection half of spec.md §4.G's partial-sort variant: a
// following introSort(keys[:k], less) then brings just that prefix to
// full sorted order without paying for the suffix.
func quickselectPrefix(keys []uint64, k int, less func(a, b uint64) bool) {
	lo, hi := 0, len(keys)-1
	for lo < hi {
		pivotIdx := medianOfThreeIndex(keys[lo:hi+1], less) + lo
		keys[pivotIdx], keys[hi] = keys[hi], keys[pivotIdx]
		pivot := keys[hi]

		store := lo
		for i := lo; i < hi; i++ {
			if less(keys[i], pivot) {
				keys[i], keys[store] = keys[store], keys[i]
				store++
			}
		}
		keys[store], keys[hi] = keys[hi], keys[store]

		switch {
		case store == k:
			return
		case store < k:
			lo = store + 1
		default:
			hi = store - 1
		}
	}
}
