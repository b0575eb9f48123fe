package schedlib

import "errors"

// Time is a signed integer time unit. Negative values are permitted and occur
// naturally inside Carlier's branch-and-bound (tightened due dates can fall
// below zero).
type Time = int64

// JobID is a dense, non-negative job index in 0..n. All per-job data
// (processing time, release time, due time) is stored in parallel slices
// indexed by JobID.
type JobID = int

// MachineID is a dense, non-negative machine index in 0..m.
type MachineID = int

// Sentinel errors for malformed input and operations with no meaningful
// answer. These are the only errors returned across the package; no
// fmt.Errorf wrapping is used where a sentinel suffices.
var (
	// ErrLengthMismatch indicates that parallel input slices (processing
	// times, release times, due times) do not share the same length.
	ErrLengthMismatch = errors.New("schedlib: input slices have mismatched lengths")

	// ErrNegativeProcessingTime indicates a processing time below zero.
	ErrNegativeProcessingTime = errors.New("schedlib: negative processing time")

	// ErrEmptySchedule indicates an operation that has no meaningful answer
	// on an empty schedule (e.g. MaxLateness).
	ErrEmptySchedule = errors.New("schedlib: schedule is empty")

	// ErrInvalidPermutation indicates a job order is not a permutation of
	// 0..n-1 (wrong length, out-of-range entry, or duplicate).
	ErrInvalidPermutation = errors.New("schedlib: not a permutation of 0..n-1")

	// ErrMachineCountMismatch indicates a processing-time matrix whose rows
	// (one per machine) do not all share the same length (one entry per job).
	ErrMachineCountMismatch = errors.New("schedlib: processing-time matrix rows have mismatched lengths")
)
