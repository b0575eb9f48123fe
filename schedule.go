package schedlib

import (
	"fmt"
	"strconv"
	"strings"
)

// JobRun is a single contiguous execution of a job on a machine: it starts at
// Start, runs for Duration, and identifies the job via Job. Duration is
// never negative; it is zero only for a job whose processing time is zero.
// A job may appear in multiple runs when preemption is
// allowed (EDDPreemptive); the non-preemptive constructors below never
// produce more than one run per job.
type JobRun struct {
	Start    Time
	Job      JobID
	Duration Time
}

// MachineSchedule is an ordered sequence of JobRuns on a single machine,
// sorted strictly by Start. For consecutive runs r_i, r_{i+1}:
// r_i.Start + r_i.Duration <= r_{i+1}.Start. For any run r: r.Start >=
// release_times[r.Job].
type MachineSchedule struct {
	Runs []JobRun
}

// NewMachineScheduleFromProcessingTimes builds an identity-order schedule
// with zero release times: job i starts immediately after job i-1 finishes.
//
// Complexity: O(n).
func NewMachineScheduleFromProcessingTimes(p []Time) MachineSchedule {
	n := len(p)
	runs := make([]JobRun, n)

	var t Time
	var i int
	for i = 0; i < n; i++ {
		runs[i] = JobRun{Start: t, Job: i, Duration: p[i]}
		t += p[i]
	}

	return MachineSchedule{Runs: runs}
}

// NewMachineScheduleFromOrder builds a non-preemptive schedule where job
// order[k] starts at max(finish of order[k-1], r[order[k]]) and runs for
// p[order[k]]. The initial finish time is 0.
//
// Complexity: O(n).
func NewMachineScheduleFromOrder(order []JobID, p, r []Time) (MachineSchedule, error) {
	n := len(p)
	if len(r) != n {
		return MachineSchedule{}, ErrLengthMismatch
	}

	runs := make([]JobRun, len(order))

	var t Time
	var k int
	var job JobID
	for k, job = range order {
		if job < 0 || job >= n {
			return MachineSchedule{}, ErrInvalidPermutation
		}
		if r[job] > t {
			t = r[job]
		}
		runs[k] = JobRun{Start: t, Job: job, Duration: p[job]}
		t += p[job]
	}

	return MachineSchedule{Runs: runs}, nil
}

// Makespan returns last.Start + last.Duration, or 0 for an empty schedule.
//
// Complexity: O(1).
func (s MachineSchedule) Makespan() Time {
	if len(s.Runs) == 0 {
		return 0
	}
	last := s.Runs[len(s.Runs)-1]

	return last.Start + last.Duration
}

// MaxLateness returns the maximum, over all runs, of
// (run.Start + run.Duration - due_times[run.Job]). For jobs split across
// multiple runs under preemption, each fragment is considered independently
// (the last fragment's completion governs that job's lateness). Fails with
// ErrEmptySchedule if the schedule has no runs.
//
// Complexity: O(n).
func (s MachineSchedule) MaxLateness(d []Time) (Time, error) {
	if len(s.Runs) == 0 {
		return 0, ErrEmptySchedule
	}

	var best Time
	var i int
	var run JobRun
	var lateness Time
	for i, run = range s.Runs {
		lateness = run.Start + run.Duration - d[run.Job]
		if i == 0 || lateness > best {
			best = lateness
		}
	}

	return best, nil
}

// NumTardy returns the number of runs whose completion exceeds the job's due
// time. Under preemption this counts tardy fragments, not tardy jobs.
//
// Complexity: O(n).
func (s MachineSchedule) NumTardy(d []Time) int {
	var count int
	var run JobRun
	for _, run = range s.Runs {
		if run.Start+run.Duration > d[run.Job] {
			count++
		}
	}

	return count
}

// Clone returns an independent copy of the schedule; mutating the result
// never affects the receiver.
func (s MachineSchedule) Clone() MachineSchedule {
	runs := make([]JobRun, len(s.Runs))
	copy(runs, s.Runs)

	return MachineSchedule{Runs: runs}
}

// String renders one line per run, "<start>-<finish>: Job #<id>", with
// start/finish widths padded to the digit count of the makespan.
func (s MachineSchedule) String() string {
	if len(s.Runs) == 0 {
		return "(empty schedule)"
	}
	width := len(strconv.FormatInt(s.Makespan(), 10))

	var b strings.Builder
	var run JobRun
	for _, run = range s.Runs {
		fmt.Fprintf(&b, "%*d-%*d: Job #%d\n", width, run.Start, width, run.Start+run.Duration, run.Job)
	}

	return b.String()
}

// MultiMachineSchedule is a schedule across a set of machines, one
// MachineSchedule per machine.
type MultiMachineSchedule struct {
	Machines []MachineSchedule
}

// Makespan returns the maximum makespan across all machines, or 0 if there
// are no machines.
//
// Complexity: O(machines * jobs-per-machine).
func (m MultiMachineSchedule) Makespan() Time {
	var best Time
	var i int
	var ms MachineSchedule
	for i, ms = range m.Machines {
		if c := ms.Makespan(); i == 0 || c > best {
			best = c
		}
	}

	return best
}

// NewMultiMachineScheduleFromOrder schedules every job on machines 0..m-1 in
// the given order: machine i processes the jobs in `order`, each starting as
// soon as both the machine is free and the job finished on machine i-1
// (ptimes[i][j] is the time machine i needs for job j).
//
// Complexity: O(machines * jobs).
func NewMultiMachineScheduleFromOrder(order []JobID, ptimes [][]Time) (MultiMachineSchedule, error) {
	m := len(ptimes)
	if m == 0 {
		return MultiMachineSchedule{}, nil
	}
	n := len(ptimes[0])
	if err := validatePermutation(order, n); err != nil {
		return MultiMachineSchedule{}, err
	}

	var i int
	for i = 0; i < m; i++ {
		if len(ptimes[i]) != n {
			return MultiMachineSchedule{}, ErrMachineCountMismatch
		}
	}

	readyTimes := make([]Time, n) // time at which each job is ready for its next machine
	machines := make([]MachineSchedule, m)

	var j JobID
	var t, start Time
	for i = 0; i < m; i++ {
		runs := make([]JobRun, 0, n)
		t = 0
		for _, j = range order {
			start = t
			if readyTimes[j] > start {
				start = readyTimes[j]
			}
			runs = append(runs, JobRun{Start: start, Job: j, Duration: ptimes[i][j]})
			t = start + ptimes[i][j]
			readyTimes[j] = t
		}
		machines[i] = MachineSchedule{Runs: runs}
	}

	return MultiMachineSchedule{Machines: machines}, nil
}
