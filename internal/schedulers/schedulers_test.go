package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
)

type slot struct {
	name       string
	start, end int
}

func proc(id int, name string, duration, arrival int) core.Process {
	return core.Process{ID: id, Name: name, Duration: duration, Arrival: arrival}
}

func prioritized(id int, name string, duration, arrival, priority int) core.Process {
	p := proc(id, name, duration, arrival)
	p.Priority = core.IntPtr(priority)
	return p
}

func slots(timeline responses.Timeline) []slot {
	out := make([]slot, 0, len(timeline))
	for _, r := range timeline {
		out = append(out, slot{name: r.Process, start: r.Start, end: r.End})
	}
	return out
}

func TestScheduleFirstComeFirstServe(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      []slot
	}{
		{
			name:      "sorted by arrival",
			processes: []core.Process{proc(1, "A", 5, 3), proc(2, "B", 2, 1), proc(3, "C", 1, 1)},
			want:      []slot{{"B", 1, 3}, {"C", 3, 4}, {"A", 4, 9}},
		},
		{
			name:      "equal arrivals keep input order",
			processes: []core.Process{proc(1, "X", 3, 1), proc(2, "Y", 1, 1)},
			want:      []slot{{"X", 1, 4}, {"Y", 4, 5}},
		},
		{
			name:      "idle until next arrival",
			processes: []core.Process{proc(1, "A", 2, 1), proc(2, "B", 2, 20)},
			want:      []slot{{"A", 1, 3}, {"B", 20, 22}},
		},
		{
			name:      "arrival zero starts at the first second",
			processes: []core.Process{proc(1, "A", 2, 0)},
			want:      []slot{{"A", 1, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slots(ScheduleFirstComeFirstServe(tt.processes)))
		})
	}
}

func TestScheduleShortestJobFirst(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      []slot
	}{
		{
			name:      "shortest first with idle jump",
			processes: []core.Process{proc(1, "A", 5, 1), proc(2, "B", 2, 1), proc(3, "C", 1, 10)},
			want:      []slot{{"B", 1, 3}, {"A", 3, 8}, {"C", 10, 11}},
		},
		{
			name:      "running job is not preempted",
			processes: []core.Process{proc(1, "A", 4, 1), proc(2, "B", 1, 2)},
			want:      []slot{{"A", 1, 5}, {"B", 5, 6}},
		},
		{
			name:      "duration tie goes to earlier arrival",
			processes: []core.Process{proc(1, "A", 2, 3), proc(2, "B", 2, 1), proc(3, "C", 5, 1)},
			want:      []slot{{"B", 1, 3}, {"A", 3, 5}, {"C", 5, 10}},
		},
		{
			name:      "duration and arrival tie keeps input order",
			processes: []core.Process{proc(1, "A", 2, 1), proc(2, "B", 2, 1)},
			want:      []slot{{"A", 1, 3}, {"B", 3, 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slots(ScheduleShortestJobFirst(tt.processes)))
		})
	}
}

func TestSchedulePriority(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      []slot
	}{
		{
			name:      "higher priority first, later process waits for arrival",
			processes: []core.Process{prioritized(1, "A", 2, 5, 1), prioritized(2, "B", 3, 1, 5)},
			want:      []slot{{"B", 1, 4}, {"A", 5, 7}},
		},
		{
			name:      "first dispatch ignores its arrival",
			processes: []core.Process{prioritized(1, "A", 3, 1, 1), prioritized(2, "B", 2, 10, 5)},
			want:      []slot{{"B", 1, 3}, {"A", 3, 6}},
		},
		{
			name: "priority tie broken by arrival then input order",
			processes: []core.Process{
				prioritized(1, "X", 1, 4, 2),
				prioritized(2, "Y", 1, 2, 2),
				prioritized(3, "Z", 1, 2, 2),
			},
			want: []slot{{"Y", 1, 2}, {"Z", 2, 3}, {"X", 4, 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeline, err := SchedulePriority(tt.processes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slots(timeline))
			for _, record := range timeline {
				require.NotNil(t, record.Priority)
			}
		})
	}
}

func TestSchedulePriority_MissingPriority(t *testing.T) {
	_, err := SchedulePriority([]core.Process{prioritized(1, "A", 1, 1, 3), proc(2, "B", 1, 1)})
	assert.ErrorIs(t, err, core.ErrMissingPriority)
}

func TestScheduleRoundRobin(t *testing.T) {
	tests := []struct {
		name        string
		processes   []core.Process
		timeQuantum int
		want        []slot
	}{
		{
			name:        "single process split in quanta",
			processes:   []core.Process{proc(1, "P", 7, 1)},
			timeQuantum: DefaultTimeQuantum,
			want:        []slot{{"P", 1, 4}, {"P", 4, 7}, {"P", 7, 8}},
		},
		{
			name:        "unfinished process goes to the back",
			processes:   []core.Process{proc(1, "A", 5, 1), proc(2, "B", 2, 1)},
			timeQuantum: DefaultTimeQuantum,
			want:        []slot{{"A", 1, 4}, {"B", 4, 6}, {"A", 6, 8}},
		},
		{
			name:        "first slice ignores arrival",
			processes:   []core.Process{proc(1, "A", 2, 5), proc(2, "B", 1, 1)},
			timeQuantum: DefaultTimeQuantum,
			want:        []slot{{"A", 1, 3}, {"B", 3, 4}},
		},
		{
			name:        "later slices wait for arrival",
			processes:   []core.Process{proc(1, "A", 1, 1), proc(2, "B", 2, 10)},
			timeQuantum: DefaultTimeQuantum,
			want:        []slot{{"A", 1, 2}, {"B", 10, 12}},
		},
		{
			name:        "custom quantum",
			processes:   []core.Process{proc(1, "P", 5, 1)},
			timeQuantum: 2,
			want:        []slot{{"P", 1, 3}, {"P", 3, 5}, {"P", 5, 6}},
		},
		{
			name:        "non positive quantum uses default",
			processes:   []core.Process{proc(1, "P", 4, 1)},
			timeQuantum: 0,
			want:        []slot{{"P", 1, 4}, {"P", 4, 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slots(ScheduleRoundRobin(tt.processes, tt.timeQuantum)))
		})
	}
}

func TestScheduleRoundRobin_RecordsCarryFullDuration(t *testing.T) {
	timeline := ScheduleRoundRobin([]core.Process{proc(1, "P", 7, 1)}, DefaultTimeQuantum)
	require.Len(t, timeline, 3)
	for _, record := range timeline {
		assert.Equal(t, 7, record.Duration)
		assert.Nil(t, record.Priority)
	}
}

func TestScheduleRoundRobin_DuplicateNames(t *testing.T) {
	timeline := ScheduleRoundRobin([]core.Process{proc(1, "A", 4, 1), proc(2, "A", 2, 1)}, DefaultTimeQuantum)

	assert.Equal(t, []slot{{"A", 1, 4}, {"A", 4, 6}, {"A", 6, 7}}, slots(timeline))
	worked := map[int]int{}
	for _, record := range timeline {
		worked[record.ProcessId] += record.Slice()
	}
	assert.Equal(t, map[int]int{1: 4, 2: 2}, worked)
}

func TestScheduleMultilevelFeedbackQueue(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		levels    []int
		want      []slot
	}{
		{
			name:      "demoted through every level",
			processes: []core.Process{proc(1, "P", 10, 1)},
			levels:    []int{3, 6},
			want:      []slot{{"P", 1, 4}, {"P", 4, 10}, {"P", 10, 11}},
		},
		{
			name:      "new arrival runs before demoted process",
			processes: []core.Process{proc(1, "A", 4, 1), proc(2, "B", 2, 2)},
			levels:    []int{3, 6},
			want:      []slot{{"A", 1, 4}, {"B", 4, 6}, {"A", 6, 7}},
		},
		{
			name:      "idle until next arrival",
			processes: []core.Process{proc(1, "A", 1, 1), proc(2, "B", 1, 5)},
			levels:    []int{3, 6},
			want:      []slot{{"A", 1, 2}, {"B", 5, 6}},
		},
		{
			name:      "invalid levels fall back to defaults",
			processes: []core.Process{proc(1, "P", 4, 1)},
			levels:    []int{0},
			want:      []slot{{"P", 1, 4}, {"P", 4, 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slots(ScheduleMultilevelFeedbackQueue(tt.processes, tt.levels)))
		})
	}
}
