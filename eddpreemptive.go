package schedlib

import (
	"container/heap"
	"sort"
)

// EDDPreemptive produces the optimum MachineSchedule for 1|pmtn,r_j|L_max in
// O(n log n) time: jobs are run earliest-due-date-first among those already
// released, preempting the running job whenever a newly released job has an
// earlier due date. Consecutive runs of the same job (no other job ran in
// between) are merged into one.
//
// Used inside Carlier as a lower-bound oracle on every expanded node: the
// preemptive optimum never exceeds the non-preemptive optimum's L_max.
//
// Complexity: O(n log n).
func EDDPreemptive(p, r, d []Time) (MachineSchedule, error) {
	n, err := validateJobTimes(p, r, d)
	if err != nil {
		return MachineSchedule{}, err
	}
	if n == 0 {
		return MachineSchedule{}, nil
	}

	pending := make([]JobID, n)
	var j JobID
	for j = 0; j < n; j++ {
		pending[j] = j
	}
	sort.Slice(pending, func(i, k int) bool { return r[pending[i]] < r[pending[k]] })

	remaining := make([]Time, n)
	copy(remaining, p)

	ready := make(eddHeap, 0, n)
	heap.Init(&ready)

	runs := make([]JobRun, 0, n)

	var t Time
	var head int
	for head < n || ready.Len() > 0 {
		for head < n && r[pending[head]] <= t {
			heap.Push(&ready, eddItem{job: pending[head], due: d[pending[head]]})
			head++
		}

		if ready.Len() == 0 {
			t = r[pending[head]]
			continue
		}

		it := heap.Pop(&ready).(eddItem)
		job := it.job

		if len(runs) > 0 && runs[len(runs)-1].Job == job {
			runs[len(runs)-1].Duration += remaining[job]
		} else {
			runs = append(runs, JobRun{Start: t, Job: job, Duration: remaining[job]})
		}
		t += remaining[job]

		// A newly released job may arrive strictly before this job would
		// finish: cut the just-emitted run short, requeue the remainder.
		if head < n && r[pending[head]] < t {
			next := r[pending[head]]
			overrun := t - next
			remaining[job] = overrun
			runs[len(runs)-1].Duration -= overrun
			heap.Push(&ready, eddItem{job: job, due: d[job]})
			t = next
		}
	}

	return MachineSchedule{Runs: runs}, nil
}

// eddItem is a ready job keyed by earliest due date first, tie-broken by
// smallest job id.
type eddItem struct {
	job JobID
	due Time
}

type eddHeap []eddItem

func (h eddHeap) Len() int { return len(h) }
func (h eddHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}

	return h[i].job < h[j].job
}
func (h eddHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eddHeap) Push(x interface{}) { *h = append(*h, x.(eddItem)) }
func (h *eddHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
