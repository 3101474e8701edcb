package schedulers

import (
	"sort"

	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
)

// runSlice gives p slice units of cpu time at the current clock.
func runSlice(cpu *core.CPU, p core.Process, slice int) responses.ExecutionRecord {
	start, end := cpu.Execute(slice)
	return responses.NewExecutionRecord(p, start, end)
}

// sortedByArrival returns a copy of processes stably ordered by arrival.
func sortedByArrival(processes []core.Process) []core.Process {
	jobs := append([]core.Process(nil), processes...)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Arrival < jobs[j].Arrival
	})
	return jobs
}
