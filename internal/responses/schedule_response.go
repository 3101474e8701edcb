package responses

import "scheduling-simulator/internal/core"

// ExecutionRecord is one slice of cpu time given to a process.
// Priority is only set by the priority scheduler.
type ExecutionRecord struct {
	ProcessId int    `json:"process_id"`
	Process   string `json:"process"`
	Priority  *int   `json:"priority,omitempty"`
	Duration  int    `json:"duration"`
	Arrival   int    `json:"arrival"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

func NewExecutionRecord(p core.Process, start, end int) ExecutionRecord {
	return ExecutionRecord{
		ProcessId: p.ID,
		Process:   p.Name,
		Duration:  p.Duration,
		Arrival:   p.Arrival,
		Start:     start,
		End:       end,
	}
}

func (r ExecutionRecord) Slice() int {
	return r.End - r.Start
}

// Timeline lists execution records in dispatch order.
type Timeline []ExecutionRecord

type ProcessResponse struct {
	ProcessId      int     `json:"process_id"`
	Name           string  `json:"name"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              Timeline          `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}
