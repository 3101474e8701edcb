package schedulers

import (
	"fmt"
	"sort"

	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
)

// SchedulePriority dispatches processes by descending priority, then by arrival.
//
// The first dispatched process always starts at the first second, even if it
// has not arrived yet. Every later process waits for its arrival.
func SchedulePriority(processes []core.Process) (responses.Timeline, error) {
	for _, p := range processes {
		if p.Priority == nil {
			return nil, fmt.Errorf("%w: %q", core.ErrMissingPriority, p.Name)
		}
	}

	jobs := append([]core.Process(nil), processes...)
	sort.SliceStable(jobs, func(i, j int) bool {
		if *jobs[i].Priority != *jobs[j].Priority {
			return *jobs[i].Priority > *jobs[j].Priority
		}
		return jobs[i].Arrival < jobs[j].Arrival
	})

	cpu := core.NewCPU()
	timeline := make(responses.Timeline, 0, len(jobs))
	for i, job := range jobs {
		if i > 0 {
			cpu.WaitFor(job.Arrival)
		}
		record := runSlice(cpu, job, job.Duration)
		record.Priority = core.IntPtr(*job.Priority)
		timeline = append(timeline, record)
	}
	return timeline, nil
}
