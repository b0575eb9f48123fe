package schedlib

// CriticalPath locates, inside a Schrage schedule, the pivot run achieving
// maximum lateness and the start of the contiguous (idle-time-free) block
// ending at that pivot.
//
// pivot is the smallest index achieving max lateness. blockStart is the
// largest index a <= pivot such that a == 0 or the machine was idle just
// before position a (i.e. schedule[a].Start > schedule[a-1].Start +
// schedule[a-1].Duration); positions blockStart..pivot then run back-to-back
// with no idle time.
//
// Complexity: O(n).
func CriticalPath(s MachineSchedule, d []Time) (blockStart int, pivot int, err error) {
	n := len(s.Runs)
	if n == 0 {
		return 0, 0, ErrEmptySchedule
	}

	var i int
	var lateness, best Time
	for i = 0; i < n; i++ {
		run := s.Runs[i]
		lateness = run.Start + run.Duration - d[run.Job]
		if i == 0 || lateness > best {
			best = lateness
			pivot = i
		}
	}

	blockStart = 0
	for i = pivot; i >= 1; i-- {
		prev := s.Runs[i-1]
		cur := s.Runs[i]
		if cur.Start > prev.Start+prev.Duration {
			blockStart = i
			break
		}
	}

	return blockStart, pivot, nil
}

// InterferenceJob returns the last index in [blockStart, pivot-1] (scanning
// back from pivot) whose job has a strictly later due date than the pivot
// job. If no such index exists, the schedule is already optimal for this
// node: ok is false and the caller should not branch.
//
// Complexity: O(n).
func InterferenceJob(s MachineSchedule, d []Time, blockStart, pivot int) (c int, ok bool) {
	pivotDue := d[s.Runs[pivot].Job]

	for i := pivot - 1; i >= blockStart; i-- {
		if d[s.Runs[i].Job] > pivotDue {
			return i, true
		}
	}

	return 0, false
}
