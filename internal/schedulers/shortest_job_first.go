package schedulers

import (
	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
)

// ScheduleShortestJobFirst picks the shortest arrived job each time the cpu is free.
// Equal durations go to the job that arrived first. Running jobs are never preempted.
func ScheduleShortestJobFirst(processes []core.Process) responses.Timeline {
	remaining := sortedByArrival(processes)

	cpu := core.NewCPU()
	timeline := make(responses.Timeline, 0, len(remaining))
	for len(remaining) > 0 {
		shortest := -1
		for i, job := range remaining {
			if job.Arrival > cpu.Clock() {
				continue
			}
			if shortest == -1 || job.Duration < remaining[shortest].Duration {
				shortest = i
			}
		}

		if shortest == -1 {
			// remaining is arrival ordered
			cpu.WaitFor(remaining[0].Arrival)
			continue
		}

		job := remaining[shortest]
		remaining = append(remaining[:shortest], remaining[shortest+1:]...)
		timeline = append(timeline, runSlice(cpu, job, job.Duration))
	}
	return timeline
}
