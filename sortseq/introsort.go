package sortseq

import "math/bits"

const insertionThreshold = 16

// introSort sorts keys according to less, using the same three-tier
// scheme spec.md §4.G step 4 specifies: median-of-three quicksort down to
// a depth limit of floor(log2 N)+1, heapsort beyond that depth, and plain
// insertion sort once a partition shrinks below 16 elements.
func introSort(keys []uint64, less func(a, b uint64) bool) {
	if len(keys) < 2 {
		return
	}
	maxDepth := bits.Len(uint(len(keys))) // floor(log2 n) + 1, n>=1
	introRecurse(keys, less, maxDepth)
}

func introRecurse(keys []uint64, less func(a, b uint64) bool, depth int) {
	for {
		n := len(keys)
		if n < insertionThreshold {
			insertionSort(keys, less)
			return
		}
		if depth == 0 {
			heapSort(keys, less)
			return
		}
		depth--

		pivotIdx := medianOfThreeIndex(keys, less)
		keys[pivotIdx], keys[n-1] = keys[n-1], keys[pivotIdx]
		pivot := keys[n-1]

		store := 0
		for i := 0; i < n-1; i++ {
			if less(keys[i], pivot) {
				keys[i], keys[store] = keys[store], keys[i]
				store++
			}
		}
		keys[store], keys[n-1] = keys[n-1], keys[store]

		// Recurse into the smaller side, loop on the larger one, bounding
		// stack depth to O(log n) the way a textbook introsort does.
		left, right := keys[:store], keys[store+1:]
		if len(left) < len(right) {
			introRecurse(left, less, depth)
			keys = right
		} else {
			introRecurse(right, less, depth)
			keys = left
		}
	}
}

func medianOfThreeIndex(keys []uint64, less func(a, b uint64) bool) int {
	n := len(keys)
	a, b, c := 0, n/2, n-1
	if less(keys[b], keys[a]) {
		a, b = b, a
	}
	if less(keys[c], keys[b]) {
		b, c = c, b
	}
	if less(keys[b], keys[a]) {
		a, b = b, a
	}
	return b
}

func insertionSort(keys []uint64, less func(a, b uint64) bool) {
	for i := 1; i < len(keys); i++ {
		cur := keys[i]
		j := i - 1
		for j >= 0 && less(cur, keys[j]) {
			keys[j+1] = keys[j]
			j--
		}
		keys[j+1] = cur
	}
}

// heapSort is the depth-limit fallback, guaranteeing O(n log n) worst
// case when quicksort's recursion would otherwise go quadratic.
func heapSort(keys []uint64, less func(a, b uint64) bool) {
	n := len(keys)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(keys, less, i, n)
	}
	for end := n - 1; end > 0; end-- {
		keys[0], keys[end] = keys[end], keys[0]
		siftDown(keys, less, 0, end)
	}
}

func siftDown(keys []uint64, less func(a, b uint64) bool, root, n int) {
	for {
		largest := root
		l, r := 2*root+1, 2*root+2
		if l < n && less(keys[largest], keys[l]) {
			largest = l
		}
		if r < n && less(keys[largest], keys[r]) {
			largest = r
		}
		if largest == root {
			return
		}
		keys[root], keys[largest] = keys[largest], keys[root]
		root = largest
	}
}
