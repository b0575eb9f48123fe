package schedlib

import "container/heap"

// Carlier solves 1|r_j|L_max exactly via branch-and-bound (Carlier 1982).
// Worst-case running time is exponential (the problem is strongly NP-hard);
// in practice, best-first search ordered by inherited lower bound, the
// critical-block bound and the preemptive EDD bound keep the search tree
// tractable on hundreds of jobs.
//
// Carlier never fails on well-formed input: it always returns a schedule (at
// worst, Schrage's heuristic schedule for the root instance).
//
// Complexity: exponential worst case; O(n log n) per expanded node for the
// Schrage call plus O(n) for critical-path analysis and bound tightening.
func Carlier(p, r, d []Time) (MachineSchedule, error) {
	n, err := validateJobTimes(p, r, d)
	if err != nil {
		return MachineSchedule{}, err
	}
	if n == 0 {
		return MachineSchedule{}, nil
	}

	e := &carlierEngine{p: p, origD: d}
	e.bestL = posInf

	rootR := make([]Time, n)
	rootD := make([]Time, n)
	copy(rootR, r)
	copy(rootD, d)

	pq := make(carlierPQ, 0)
	heap.Init(&pq)
	heap.Push(&pq, e.newNode(rootR, rootD, negInf))

	for pq.Len() > 0 {
		node := heap.Pop(&pq).(*carlierNode)
		if node.lb >= e.bestL {
			continue // pruned: this subtree cannot beat the incumbent
		}

		if err := e.expand(node, &pq); err != nil {
			return MachineSchedule{}, err
		}
	}

	return e.bestSchedule, nil
}

// negInf/posInf stand in for -infinity/+infinity on the Time domain. Real
// instances never approach these magnitudes, so ordinary arithmetic on them
// stays well clear of overflow.
const (
	negInf Time = -1 << 40
	posInf Time = 1 << 40
)

// carlierNode is a tightened subproblem: release/due arrays (processing
// times never change) plus the lower bound inherited at push time and a
// monotonic sequence number used to break lower-bound ties deterministically
// (insertion order).
type carlierNode struct {
	r, d []Time
	lb   Time
	seq  uint64
}

// carlierEngine holds the search-wide state: fixed processing times, the
// original due dates (lateness is always measured against these, never a
// node's tightened due dates), the running incumbent, and the sequence
// counter for deterministic tie-breaking.
type carlierEngine struct {
	p     []Time
	origD []Time

	bestL        Time
	bestSchedule MachineSchedule

	seq uint64
}

func (e *carlierEngine) newNode(r, d []Time, lb Time) *carlierNode {
	e.seq++

	return &carlierNode{r: r, d: d, lb: lb, seq: e.seq}
}

// expand runs one Carlier iteration on node: Schrage + incumbent refresh,
// critical-path analysis, the critical-block and preemptive EDD bounds, ascent
// tightening, and branching into up to two children pushed onto pq.
func (e *carlierEngine) expand(node *carlierNode, pq *carlierPQ) error {
	sched, err := Schrage(e.p, node.r, node.d)
	if err != nil {
		return err
	}

	// Lateness is always measured against the original due dates; the
	// node's tightened due dates only steer Schrage's internal priority.
	lmax, err := sched.MaxLateness(e.origD)
	if err != nil {
		return err
	}
	if lmax < e.bestL {
		e.bestL = lmax
		e.bestSchedule = sched.Clone()
	}

	blockStart, pivot, err := CriticalPath(sched, node.d)
	if err != nil {
		return err
	}
	c, ok := InterferenceJob(sched, node.d, blockStart, pivot)
	if !ok {
		return nil // this node's Schrage schedule is already optimal: no children
	}

	cJob := sched.Runs[c].Job
	pivotJob := sched.Runs[pivot].Job
	dMax := node.d[pivotJob]

	var procTotal, rMin Time
	var i int
	for i = c + 1; i <= pivot; i++ {
		job := sched.Runs[i].Job
		procTotal += e.p[job]
		if i == c+1 || node.r[job] < rMin {
			rMin = node.r[job]
		}
	}
	critBound := procTotal + rMin - dMax

	rcMin := node.r[cJob]
	if rMin < rcMin {
		rcMin = rMin
	}
	lb := critBound
	if alt := procTotal + rcMin - node.d[cJob]; alt > lb {
		lb = alt
	}
	// The preemptive relaxation of this node bounds every non-preemptive
	// schedule in its subtree from below.
	relaxed, err := EDDPreemptive(e.p, node.r, node.d)
	if err != nil {
		return err
	}
	relaxedL, err := relaxed.MaxLateness(node.d)
	if err != nil {
		return err
	}
	if relaxedL > lb {
		lb = relaxedL
	}
	lbPrime := lb
	if node.lb > lbPrime {
		lbPrime = node.lb
	}

	workR := make([]Time, len(node.r))
	workD := make([]Time, len(node.d))
	copy(workR, node.r)
	copy(workD, node.d)
	e.ascentTighten(sched, workR, workD, blockStart, c, pivot, procTotal, rMin, dMax)

	if lbPrime >= e.bestL {
		return nil // both children would be pruned immediately
	}

	// Child A: c_job forced before the critical block.
	childR := make([]Time, len(workR))
	copy(childR, workR)
	childD := make([]Time, len(workD))
	copy(childD, workD)
	if dMax-procTotal < childD[cJob] {
		childD[cJob] = dMax - procTotal
	}
	heap.Push(pq, e.newNode(childR, childD, lbPrime))

	// Child B: c_job forced after the critical block.
	childR2 := workR
	childD2 := workD
	if rMin+procTotal > childR2[cJob] {
		childR2[cJob] = rMin + procTotal
	}
	heap.Push(pq, e.newNode(childR2, childD2, lbPrime))

	return nil
}

// ascentTighten sharpens r/d for every job outside the critical set
// (schedule positions [blockStart, c) and (pivot, n)) before branching: a job
// too large to hide inside the critical set must run either entirely before
// it or entirely after it, so its release or due date can be pulled in.
// Position c itself is excluded: the interference job's placement is exactly
// what the two children decide, so it must stay untightened in the shared
// working copy.
func (e *carlierEngine) ascentTighten(sched MachineSchedule, r, d []Time, blockStart, c, pivot int, procTotal, rMin, dMax Time) {
	slack := e.bestL - (procTotal + rMin - dMax)

	tighten := func(pos int) {
		job := sched.Runs[pos].Job
		if e.p[job] <= slack {
			return // fits inside the critical set; no forced ordering
		}
		if r[job]+e.p[job]+procTotal > e.bestL+dMax {
			if rMin+procTotal > r[job] {
				r[job] = rMin + procTotal
			}
		} else if rMin+procTotal+e.p[job] > e.bestL+d[job] {
			if dMax-procTotal < d[job] {
				d[job] = dMax - procTotal
			}
		}
	}

	var i int
	for i = blockStart; i < c; i++ {
		tighten(i)
	}
	for i = pivot + 1; i < len(sched.Runs); i++ {
		tighten(i)
	}
}

// carlierPQ is a container/heap min-priority queue of *carlierNode ordered
// by lower bound ascending, ties broken by insertion order (seq ascending)
// so that runs with identical bounds still expand deterministically.
type carlierPQ []*carlierNode

func (q carlierPQ) Len() int { return len(q) }
func (q carlierPQ) Less(i, j int) bool {
	if q[i].lb != q[j].lb {
		return q[i].lb < q[j].lb
	}

	return q[i].seq < q[j].seq
}
func (q carlierPQ) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *carlierPQ) Push(x interface{}) { *q = append(*q, x.(*carlierNode)) }
func (q *carlierPQ) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
