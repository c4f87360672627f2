package executor

import "sync"

// Serial runs every operation on the calling goroutine. No synchronisation
// primitive is needed since there is never more than one worker, matching
// spec.md §4.H's serial implementation.
type Serial struct{}

var _ Executor = Serial{}

// ForEachStatic implements Executor.
func (Serial) ForEachStatic(n int, fn func(i int, p Prong)) {
	for i := 0; i < n; i++ {
		fn(i, Prong{TaskIndex: i, ThreadIndex: 0})
	}
}

// ForEachDynamic implements Executor.
func (Serial) ForEachDynamic(n int, fn func(i int, p Prong)) {
	for i := 0; i < n; i++ {
		fn(i, Prong{TaskIndex: i, ThreadIndex: 0})
	}
}

// ForEachSlice implements Executor.
func (Serial) ForEachSlice(n int, fn func(begin, end int, p Prong)) {
	fn(0, n, Prong{TaskIndex: 0, ThreadIndex: 0})
}

// ThreadsCount implements Executor.
func (Serial) ThreadsCount() int { return 1 }

// NewMutex implements Executor.
func (Serial) NewMutex() Mutex { return &sync.Mutex{} }
