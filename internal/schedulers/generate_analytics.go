package schedulers

import (
	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
	"scheduling-simulator/internal/util"
)

func generateResponse(algorithm core.Algorithm, processes []core.Process, timeline responses.Timeline) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(p, timeline))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	cpuMetric := generateCpuMetric(timeline)
	var utilization, throughput float64
	if cpuMetric.TotalTime > 0 {
		utilization = float64(cpuMetric.UtilizationTime) / float64(cpuMetric.TotalTime)
		throughput = float64(len(processes)) / float64(cpuMetric.TotalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TotalTime:             float64(cpuMetric.TotalTime),
		IdleTime:              float64(cpuMetric.IdleTime),
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Timeline:              timeline,
		Details:               proccessDetails,
	}
}

// generateProcessDetails measures a process from its records, matched by id.
func generateProcessDetails(process core.Process, timeline responses.Timeline) responses.ProcessResponse {
	firstStart, lastEnd := -1, 0
	for _, record := range timeline {
		if record.ProcessId != process.ID {
			continue
		}
		if firstStart == -1 {
			firstStart = record.Start
		}
		lastEnd = record.End
	}

	turnAroundTime := lastEnd - process.Arrival
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		Name:           process.Name,
		ResponseTime:   float64(firstStart - process.Arrival),
		TurnAroundTime: float64(turnAroundTime),
		WaitingTime:    float64(turnAroundTime - process.Duration),
	}
}

func generateCpuMetric(timeline responses.Timeline) core.CpuMetric {
	var metric core.CpuMetric
	lastEnd := core.ClockStart
	for _, record := range timeline {
		metric.UtilizationTime += record.Slice()
		lastEnd = max(lastEnd, record.End)
	}
	metric.TotalTime = lastEnd - core.ClockStart
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}
