package executor

import (
	"sort"
	"sync"
	"testing"
)

func TestSerialStaticOrder(t *testing.T) {
	var got []int
	Serial{}.ForEachStatic(5, func(i int, _ Prong) { got = append(got, i) })
	for i, v := range got {
		if v != i {
			t.Fatalf("serial static out of order: %v", got)
		}
	}
}

func testForEachStaticCoversAll(t *testing.T, ex Executor) {
	t.Helper()
	const n = 200
	var mu sync.Mutex
	seen := make(map[int]bool)
	ex.ForEachStatic(n, func(i int, _ Prong) {
		mu.Lock()
		seen[i] = true
		mu.Unlock()
	})
	if len(seen) != n {
		t.Fatalf("ForEachStatic covered %d/%d indices", len(seen), n)
	}
}

func testForEachDynamicCoversAll(t *testing.T, ex Executor) {
	t.Helper()
	const n = 200
	var mu sync.Mutex
	seen := make(map[int]bool)
	ex.ForEachDynamic(n, func(i int, _ Prong) {
		mu.Lock()
		seen[i] = true
		mu.Unlock()
	})
	if len(seen) != n {
		t.Fatalf("ForEachDynamic covered %d/%d indices", len(seen), n)
	}
}

func testForEachSliceCoversAllContiguous(t *testing.T, ex Executor) {
	t.Helper()
	const n = 97
	var mu sync.Mutex
	type rng struct{ begin, end int }
	var ranges []rng
	ex.ForEachSlice(n, func(begin, end int, _ Prong) {
		mu.Lock()
		ranges = append(ranges, rng{begin, end})
		mu.Unlock()
	})
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].begin < ranges[j].begin })
	cursor := 0
	for _, r := range ranges {
		if r.begin != cursor {
			t.Fatalf("gap or overlap in slices: %+v", ranges)
		}
		cursor = r.end
	}
	if cursor != n {
		t.Fatalf("slices cover [0,%d), want [0,%d)", cursor, n)
	}
}

func TestSerialCoverage(t *testing.T) {
	testForEachStaticCoversAll(t, Serial{})
	testForEachDynamicCoversAll(t, Serial{})
	testForEachSliceCoversAllContiguous(t, Serial{})
}

func TestForkJoinCoverage(t *testing.T) {
	fj := ForkJoin{Workers: 4}
	testForEachStaticCoversAll(t, fj)
	testForEachDynamicCoversAll(t, fj)
	testForEachSliceCoversAllContiguous(t, fj)
}

func TestForkJoinThreadsCount(t *testing.T) {
	fj := ForkJoin{Workers: 7}
	if fj.ThreadsCount() != 7 {
		t.Fatalf("ThreadsCount() = %d, want 7", fj.ThreadsCount())
	}
}

func TestForkJoinSmallN(t *testing.T) {
	// fewer items than workers must not panic or deadlock
	fj := ForkJoin{Workers: 16}
	count := 0
	var mu sync.Mutex
	fj.ForEachStatic(3, func(i int, _ Prong) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}
