package schedlib

// validateJobTimes checks that p, r, d have equal length and that no
// processing time is negative. It is the shared shape guard for every
// single-machine entry point (Schrage, EDDPreemptive, Carlier).
//
// Complexity: O(n).
func validateJobTimes(p, r, d []Time) (int, error) {
	n := len(p)
	if len(r) != n || len(d) != n {
		return 0, ErrLengthMismatch
	}

	var j int
	for j = 0; j < n; j++ {
		if p[j] < 0 {
			return 0, ErrNegativeProcessingTime
		}
	}

	return n, nil
}

// validateEqualLength checks that a and b have the same length, used by the
// entry points that take two parallel slices (Johnson, and through it
// Dannenbring; ScheduleHodgson).
//
// Complexity: O(1).
func validateEqualLength(a, b []Time) (int, error) {
	n := len(a)
	if len(b) != n {
		return 0, ErrLengthMismatch
	}

	return n, nil
}

// validatePermutation checks that perm is a permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(perm []JobID, n int) error {
	if len(perm) != n {
		return ErrInvalidPermutation
	}
	seen := make([]bool, n)

	var i int
	var v JobID
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrInvalidPermutation
		}
		if seen[v] {
			return ErrInvalidPermutation
		}
		seen[v] = true
	}

	return nil
}
