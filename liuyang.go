package schedlib

// SerialScheduleHeuristic is a makespan-minimization heuristic for R|prec|C_max
// (unrelated parallel machines with precedence constraints), per Liu & Yang,
// "A heuristic serial schedule algorithm for unrelated parallel machine
// scheduling with precedence constraints" (doi:10.4304/jsw.6.6.1146-1153).
//
// At every step, among the jobs whose predecessors have all completed, the
// one with the highest processing-time variance across the idle machines is picked
// (ties are expected to be rare; the first such job found wins) and greedily
// assigned to its fastest currently-idle machine. When only one machine is
// idle, the shortest available job is picked instead, to avoid starving a
// slow idle machine on a job that would run much faster elsewhere.
//
// ptimes is indexed [machine][job]. predecessor[j] lists the jobs that must
// complete before job j may start.
//
// Complexity: O(n^2) for n jobs (each of the n scheduling steps scans the
// available set).
func SerialScheduleHeuristic(ptimes [][]Time, predecessor [][]JobID) (MultiMachineSchedule, error) {
	m := len(ptimes)
	if m == 0 {
		return MultiMachineSchedule{}, nil
	}
	n := len(ptimes[0])
	if len(predecessor) != n {
		return MultiMachineSchedule{}, ErrLengthMismatch
	}

	var i int
	for i = 1; i < m; i++ {
		if len(ptimes[i]) != n {
			return MultiMachineSchedule{}, ErrLengthMismatch
		}
	}

	schedules := make([]MachineSchedule, m)
	if n == 0 {
		return MultiMachineSchedule{Machines: schedules}, nil
	}

	pg := newPrecedenceGraph(predecessor)
	machinesBusyUntil := make([]Time, m)
	completions := make([]jobCompletion, 0, n)

	var time Time
	var counter int
	for counter = 0; ; counter++ {
		idle := idleMachines(machinesBusyUntil, time)
		machine, job, duration := pickNextJob(ptimes, idle, pg.available)

		schedules[machine].Runs = append(schedules[machine].Runs, JobRun{Start: time, Job: job, Duration: duration})
		if counter == n-1 {
			break
		}

		pg.markRunning(job)
		completions = append(completions, jobCompletion{at: time + duration, job: job})
		machinesBusyUntil[machine] = time + duration

		time = maxTime(time, minBusyUntil(machinesBusyUntil))
		completions = retireCompletions(completions, time, pg)

		for len(pg.available) == 0 {
			time = nextBusyAfter(machinesBusyUntil, time)
			completions = retireCompletions(completions, time, pg)
		}
	}

	return MultiMachineSchedule{Machines: schedules}, nil
}

type jobCompletion struct {
	at  Time
	job JobID
}

func retireCompletions(completions []jobCompletion, time Time, pg *precedenceGraph) []jobCompletion {
	kept := completions[:0]
	var c jobCompletion
	for _, c = range completions {
		if c.at <= time {
			pg.markCompleted(c.job)
		} else {
			kept = append(kept, c)
		}
	}

	return kept
}

func idleMachines(busyUntil []Time, time Time) []MachineID {
	idle := make([]MachineID, 0, len(busyUntil))
	var i int
	var t Time
	for i, t = range busyUntil {
		if t <= time {
			idle = append(idle, i)
		}
	}

	return idle
}

func minBusyUntil(busyUntil []Time) Time {
	var best Time
	var i int
	for i = range busyUntil {
		if i == 0 || busyUntil[i] < best {
			best = busyUntil[i]
		}
	}

	return best
}

func nextBusyAfter(busyUntil []Time, time Time) Time {
	var best Time
	found := false
	var i int
	for i = range busyUntil {
		if busyUntil[i] > time && (!found || busyUntil[i] < best) {
			best = busyUntil[i]
			found = true
		}
	}

	return best
}

func maxTime(a, b Time) Time {
	if a > b {
		return a
	}

	return b
}

// pickNextJob chooses which available job to run on which idle machine. With
// a single idle machine, it picks the shortest available job for it;
// otherwise it picks the available job with the highest variance in
// processing time across the idle machines, then assigns it to its fastest
// idle machine.
func pickNextJob(ptimes [][]Time, idle []MachineID, available []JobID) (machine MachineID, job JobID, duration Time) {
	if len(idle) == 1 {
		machine = idle[0]
		var j JobID
		for i, jj := range available {
			if i == 0 || ptimes[machine][jj] < duration {
				duration = ptimes[machine][jj]
				j = jj
			}
		}
		job = j

		return machine, job, duration
	}

	var bestVariance float64
	var i int
	var jj JobID
	for i, jj = range available {
		variance := processingTimeVariance(ptimes, jj, idle)
		if i == 0 || variance > bestVariance {
			bestVariance = variance
			job = jj
		}
	}

	for i, mm := range idle {
		if i == 0 || ptimes[mm][job] < duration {
			duration = ptimes[mm][job]
			machine = mm
		}
	}

	return machine, job, duration
}

func processingTimeVariance(ptimes [][]Time, job JobID, idle []MachineID) float64 {
	var sum float64
	var mm MachineID
	for _, mm = range idle {
		sum += float64(ptimes[mm][job])
	}
	mean := sum / float64(len(idle))

	var variance float64
	for _, mm = range idle {
		diff := float64(ptimes[mm][job]) - mean
		variance += diff * diff
	}

	return variance / float64(len(idle))
}

// precedenceGraph tracks, as jobs complete, which jobs become available to
// run: a job is available once every job in its predecessor list has been
// marked completed.
type precedenceGraph struct {
	available   []JobID
	predecessor [][]JobID
}

func newPrecedenceGraph(predecessor [][]JobID) *precedenceGraph {
	// The lists are consumed destructively as jobs complete; copy them so the
	// caller's slices survive untouched.
	lists := make([][]JobID, len(predecessor))
	available := make([]JobID, 0, len(predecessor))
	var i int
	var pr []JobID
	for i, pr = range predecessor {
		lists[i] = append([]JobID(nil), pr...)
		if len(pr) == 0 {
			available = append(available, i)
		}
	}

	return &precedenceGraph{available: available, predecessor: lists}
}

// markRunning removes job from the available set without touching other
// jobs' precedence lists, and poisons job's own list so it can never become
// available again (it has already started).
func (pg *precedenceGraph) markRunning(job JobID) {
	removeJob(&pg.available, job)
	pg.predecessor[job] = []JobID{job}
}

// markCompleted marks job as running (see markRunning) and then strikes it
// from every other job's predecessor list, making any job whose list becomes
// empty newly available.
func (pg *precedenceGraph) markCompleted(job JobID) {
	pg.markRunning(job)

	var i int
	var pr []JobID
	for i, pr = range pg.predecessor {
		if i == job || len(pr) == 0 {
			continue
		}
		if removeJob(&pg.predecessor[i], job) && len(pg.predecessor[i]) == 0 {
			pg.available = append(pg.available, i)
		}
	}
}

// removeJob deletes the first occurrence of job from *list (order is not
// preserved) and reports whether it was found.
func removeJob(list *[]JobID, job JobID) bool {
	var i int
	var v JobID
	for i, v = range *list {
		if v == job {
			n := len(*list)
			(*list)[i] = (*list)[n-1]
			*list = (*list)[:n-1]

			return true
		}
	}

	return false
}
