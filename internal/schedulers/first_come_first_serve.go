package schedulers

import (
	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
)

// ScheduleFirstComeFirstServe runs processes in arrival order without preemption.
// Processes arriving at the same time keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) responses.Timeline {
	jobs := sortedByArrival(processes)

	cpu := core.NewCPU()
	timeline := make(responses.Timeline, 0, len(jobs))
	for _, job := range jobs {
		cpu.WaitFor(job.Arrival)
		timeline = append(timeline, runSlice(cpu, job, job.Duration))
	}
	return timeline
}
