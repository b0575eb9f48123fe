package schedlib

// Dannenbring extends Johnson's two-machine rule to an m-machine flow shop
// F||C_max (Dannenbring 1977, the "RA" heuristic): every job's m processing
// times are collapsed into two synthetic ones,
//
//	a_j = sum_{k=1}^{m} (m - k + 1) * ptimes[k][j]
//	b_j = sum_{k=1}^{m} k * ptimes[k][j]
//
// and Johnson's algorithm is run on (a, b). The result is a fast heuristic
// order with no optimality guarantee. For m = 2 the weights (2*p1 + p2,
// p1 + 2*p2) split the jobs into the same two groups as Johnson's rule on
// (p1, p2), but may order jobs differently within a group, so the result is
// not always optimal there either.
//
// ptimes is indexed [machine][job]; every row must have the same length.
//
// Complexity: O(machines * jobs) to build the weight vectors, plus Johnson's
// O(n^2) worst case.
func Dannenbring(ptimes [][]Time) ([]JobID, error) {
	m := len(ptimes)
	if m == 0 {
		return nil, nil
	}
	n := len(ptimes[0])

	var k int
	for k = 1; k < m; k++ {
		if len(ptimes[k]) != n {
			return nil, ErrMachineCountMismatch
		}
	}

	a := make([]Time, n)
	b := make([]Time, n)

	var j JobID
	var weight Time
	for k = 0; k < m; k++ {
		weight = Time(m - k)
		for j = 0; j < n; j++ {
			a[j] += weight * ptimes[k][j]
			b[j] += Time(k+1) * ptimes[k][j]
		}
	}

	return Johnson(a, b)
}
