package schedlib

import (
	"container/heap"
	"sort"
)

// Schrage produces a feasible non-preemptive MachineSchedule for 1|r_j|L_max
// in O(n log n) time. It is optimal when all release times are equal
// (1||L_max).
//
// Jobs not yet released are held in a pending set ordered by ascending
// release time; at every step, all pending jobs whose release time has
// arrived move into a ready set. The ready set is a max-priority set keyed
// by earliest due date first, tie-broken by longest processing time first,
// then by smallest job id — popped greedily as the machine becomes free. If
// no job is ready, the clock jumps to the next pending release time.
//
// Complexity: O(n log n).
func Schrage(p, r, d []Time) (MachineSchedule, error) {
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

	ready := make(schrageHeap, 0, n)
	heap.Init(&ready)

	runs := make([]JobRun, 0, n)

	var t Time
	var head int // index of next not-yet-released job in `pending`
	for head < n || ready.Len() > 0 {
		for head < n && r[pending[head]] <= t {
			heap.Push(&ready, schrageItem{job: pending[head], due: d[pending[head]], proc: p[pending[head]]})
			head++
		}

		if ready.Len() > 0 {
			it := heap.Pop(&ready).(schrageItem)
			runs = append(runs, JobRun{Start: t, Job: it.job, Duration: p[it.job]})
			t += p[it.job]
		} else {
			t = r[pending[head]]
		}
	}

	return MachineSchedule{Runs: runs}, nil
}

// schrageItem is a ready-to-run job keyed by the Schrage priority order:
// earliest due date first, then longest processing time first, then
// smallest job id. Only Schrage uses this comparator; EDDPreemptive keys its
// ready set by due date and job id alone (see eddItem).
type schrageItem struct {
	job  JobID
	due  Time
	proc Time // processing time
}

// schrageLess implements the Schrage tie-break rule.
func schrageLess(a, b schrageItem) bool {
	if a.due != b.due {
		return a.due < b.due
	}
	if a.proc != b.proc {
		return a.proc > b.proc
	}

	return a.job < b.job
}

// schrageHeap is a container/heap max-priority set over schrageItem, ordered
// by schrageLess (so Pop returns the highest-priority ready job).
type schrageHeap []schrageItem

func (h schrageHeap) Len() int            { return len(h) }
func (h schrageHeap) Less(i, j int) bool  { return schrageLess(h[i], h[j]) }
func (h schrageHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *schrageHeap) Push(x interface{}) { *h = append(*h, x.(schrageItem)) }
func (h *schrageHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
