package schedulers

import (
	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
)

// DefaultLevelsTimeQuantum are the quanta of the round robin levels. A last,
// first come first serve level is always added below them.
var DefaultLevelsTimeQuantum = []int{3, 6}

// ScheduleMultilevelFeedbackQueue runs arrived processes from the highest non-empty level.
// A process that uses its whole quantum and still has work left drops one level.
func ScheduleMultilevelFeedbackQueue(processes []core.Process, timeQuantumList []int) responses.Timeline {
	if !validLevels(timeQuantumList) {
		timeQuantumList = DefaultLevelsTimeQuantum
	}
	lastLevel := len(timeQuantumList)

	// pending holds indexes of processes not yet admitted, in arrival order
	pending := make([]int, 0, len(processes))
	for _, p := range sortedByArrival(withIndexes(processes)) {
		pending = append(pending, p.ID)
	}

	remaining := make([]int, len(processes))
	for i, p := range processes {
		remaining[i] = p.Duration
	}

	levels := make([][]int, lastLevel+1)
	cpu := core.NewCPU()
	timeline := make(responses.Timeline, 0, len(processes))
	for finished := 0; finished < len(processes); {
		for len(pending) > 0 && processes[pending[0]].Arrival <= cpu.Clock() {
			levels[0] = append(levels[0], pending[0])
			pending = pending[1:]
		}

		level := highestReadyLevel(levels)
		if level == -1 {
			cpu.WaitFor(processes[pending[0]].Arrival)
			continue
		}

		i := levels[level][0]
		levels[level] = levels[level][1:]

		slice := remaining[i]
		if level < lastLevel {
			slice = min(slice, timeQuantumList[level])
		}
		remaining[i] -= slice
		timeline = append(timeline, runSlice(cpu, processes[i], slice))

		if remaining[i] == 0 {
			finished++
			continue
		}
		next := min(level+1, lastLevel)
		levels[next] = append(levels[next], i)
	}
	return timeline
}

func validLevels(timeQuantumList []int) bool {
	if len(timeQuantumList) == 0 {
		return false
	}
	for _, q := range timeQuantumList {
		if q <= 0 {
			return false
		}
	}
	return true
}

func highestReadyLevel(levels [][]int) int {
	for level, queue := range levels {
		if len(queue) > 0 {
			return level
		}
	}
	return -1
}

// withIndexes copies processes replacing their ids with slice positions.
func withIndexes(processes []core.Process) []core.Process {
	indexed := append([]core.Process(nil), processes...)
	for i := range indexed {
		indexed[i].ID = i
	}
	return indexed
}
