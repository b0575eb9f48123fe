package schedlib

import (
	"container/heap"
	"sort"
)

// ScheduleHodgson solves 1||sum(U_j) optimally in O(n log n) time: it finds
// an order maximizing the number of on-time jobs (equivalently minimizing the
// tardy count), per Blazewicz et al., "Handbook on Scheduling", alg. 4.3.6.
//
// Jobs are processed in ascending due-date order while accumulating a tentative
// schedule; whenever the accumulated duration would make the current job
// late, the longest job seen so far among the accumulated set is evicted and
// marked late instead. On-time jobs are placed first, in ascending due-date
// order, zero release times throughout; late jobs follow in arbitrary order.
//
// Complexity: O(n log n).
func ScheduleHodgson(p, d []Time) (MachineSchedule, error) {
	n, err := validateEqualLength(p, d)
	if err != nil {
		return MachineSchedule{}, err
	}
	if n == 0 {
		return MachineSchedule{}, nil
	}

	jobs := make([]JobID, n)
	var j JobID
	for j = 0; j < n; j++ {
		jobs[j] = j
	}
	sort.Slice(jobs, func(i, k int) bool { return d[jobs[i]] > d[jobs[k]] })

	onTime := make(hodgsonHeap, 0, n)
	numLate := 0
	var duration Time

	var i int
	var job JobID
	for i = n - 1; i >= 0; i-- {
		job = jobs[i]
		heap.Push(&onTime, hodgsonItem{proc: p[job], job: job})
		duration += p[job]

		if duration > d[job] {
			longest := heap.Pop(&onTime).(hodgsonItem)
			duration -= longest.proc
			numLate++
			jobs[n-numLate] = longest.job
		}
	}

	for i, it := range onTime {
		jobs[i] = it.job
	}

	onTimeCount := n - numLate
	sort.Slice(jobs[:onTimeCount], func(i, k int) bool { return d[jobs[i]] < d[jobs[k]] })

	r := make([]Time, n)

	return NewMachineScheduleFromOrder(jobs, p, r)
}

// hodgsonItem is a job kept in the tentative "finishes on time" set, keyed by
// processing time so the longest job can be evicted in O(log n) when a new
// job would otherwise be late.
type hodgsonItem struct {
	proc Time
	job  JobID
}

type hodgsonHeap []hodgsonItem

func (h hodgsonHeap) Len() int { return len(h) }
func (h hodgsonHeap) Less(i, j int) bool {
	if h[i].proc != h[j].proc {
		return h[i].proc > h[j].proc
	}

	return h[i].job > h[j].job
}
func (h hodgsonHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *hodgsonHeap) Push(x interface{}) { *h = append(*h, x.(hodgsonItem)) }
func (h *hodgsonHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
