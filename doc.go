// Package schedlib implements exact and heuristic algorithms for deterministic
// machine scheduling problems from classical operations research.
//
// Given jobs with integer processing times, release times, and due dates, the
// package produces schedules that optimize maximum lateness (L_max), number
// of tardy jobs, or makespan (C_max) across several machine configurations.
//
// The centerpiece is Carlier, a branch-and-bound solver for 1|r_j|L_max
// (single-machine scheduling with release times, minimizing maximum
// lateness) — strongly NP-hard in general, solved exactly here via:
//
//	Schrage          — O(n log n) list scheduler; feasible schedule + upper bound.
//	EDDPreemptive    — O(n log n) preemptive EDD; lower-bound oracle.
//	CriticalPath     — locates the contiguous block limiting achievable lateness.
//	Carlier          — branch-and-bound over tightened (release, due) subproblems.
//
// Siblings sharing the same job/schedule data model but not part of the
// Carlier search: Johnson (F2||C_max), Dannenbring (F||C_max), ScheduleHodgson
// (1||∑U_j), SerialScheduleHeuristic (R|prec|C_max, Liu & Yang).
//
// The package is a pure function library: no CLI, no I/O, no persistence.
// All algorithms consume input slices by reference and return owned result
// structures. Time is a signed integer (negative values are permitted);
// jobs are dense non-negative integer ids in 0..n.
package schedlib
