// Package executor implements spec.md §4.H's executor abstraction: a
// serial implementation and a fork-join implementation, both satisfying
// the same interface so bulk drivers (similarity's pairwise scoring,
// fingerprint's per-chunk fanout) can be written once against Executor
// and run either way.
//
// This is the Go-native reshaping of the teacher's OpenMP-pragma
// parallelism model (original_source/include/stringcuzilla/types.hpp's
// dummy_executor_t/openmp_executor_t): goroutines plus sync.WaitGroup
// stand in for #pragma omp parallel for, per the system prompt's
// "OpenMP pragmas -> executor interface" re-architecture guidance.
package executor

// Prong carries the per-callback coordinates spec.md §4.H specifies: which
// task index is executing, and on which logical worker thread.
type Prong struct {
	TaskIndex   int
	ThreadIndex int
}

// Mutex is the minimal lock surface make_mutex() exposes: Lock/Unlock.
type Mutex interface {
	Lock()
	Unlock()
}

// Executor is the interface every bulk driver programs against.
type Executor interface {
	// ForEachStatic calls fn for each index in [0,n), partitioning work so
	// that consecutive indices are likely handled by the same worker.
	// Within one worker, indices execute in increasing order.
	ForEachStatic(n int, fn func(i int, p Prong))
	// ForEachDynamic calls fn for each index in [0,n), handing out work
	// items one at a time so workers with faster items pick up more work.
	ForEachDynamic(n int, fn func(i int, p Prong))
	// ForEachSlice calls fn once per worker with a contiguous, disjoint
	// [begin,end) range covering all of [0,n).
	ForEachSlice(n int, fn func(begin, end int, p Prong))
	// ThreadsCount reports how many workers this executor would use.
	ThreadsCount() int
	// NewMutex returns a lock suitable for guarding a merge step.
	NewMutex() Mutex
}
