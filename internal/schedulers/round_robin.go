package schedulers

import (
	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
)

// DefaultTimeQuantum is the longest slice a process gets per round robin turn.
const DefaultTimeQuantum = 3

// ScheduleRoundRobin serves processes in input order, giving each at most
// timeQuantum units per turn and sending unfinished ones to the back of the queue.
//
// Remaining work is tracked per queue position, so processes sharing a name stay
// independent. Every record carries the full duration of its process, not the slice.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) responses.Timeline {
	if timeQuantum <= 0 {
		timeQuantum = DefaultTimeQuantum
	}

	remaining := make([]int, len(processes))
	queue := make([]int, 0, len(processes))
	for i, p := range processes {
		remaining[i] = p.Duration
		queue = append(queue, i)
	}

	cpu := core.NewCPU()
	timeline := make(responses.Timeline, 0, len(processes))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		job := processes[i]

		// the very first slice starts at the first second regardless of arrival
		if len(timeline) > 0 {
			cpu.WaitFor(job.Arrival)
		}

		slice := min(remaining[i], timeQuantum)
		remaining[i] -= slice
		timeline = append(timeline, runSlice(cpu, job, slice))

		if remaining[i] > 0 {
			queue = append(queue, i)
		}
	}
	return timeline
}
