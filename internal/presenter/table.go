package presenter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/responses"
)

// RenderTimeline writes the timeline as a table. Priority runs get an extra column.
func RenderTimeline(w io.Writer, algorithm core.Algorithm, timeline responses.Timeline) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(timelineHeader(algorithm))
	table.AppendBulk(timelineRows(algorithm, timeline))
	table.Render()
}

// RenderSchedule writes the timeline followed by the per-process metrics.
func RenderSchedule(w io.Writer, response responses.ScheduleResponse) {
	algorithm := core.Algorithm(response.Algorithm)
	_, _ = fmt.Fprintln(w, algorithm)
	RenderTimeline(w, algorithm, response.Timeline)
	_, _ = fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Process", "Response", "Wait", "Turnaround"})
	for _, detail := range response.Details {
		table.Append([]string{
			strconv.Itoa(detail.ProcessId),
			detail.Name,
			formatFloat(detail.ResponseTime),
			formatFloat(detail.WaitingTime),
			formatFloat(detail.TurnAroundTime),
		})
	}
	table.SetFooter([]string{"", "",
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "total %.0f  idle %.0f  utilization %.2f  throughput %.2f/t\n",
		response.TotalTime, response.IdleTime, response.CpuUtilization, response.CpuThroughput)
}

func timelineHeader(algorithm core.Algorithm) []string {
	if algorithm.RequiresPriority() {
		return []string{"Process", "Priority", "Duration", "Arrival", "Start", "End"}
	}
	return []string{"Process", "Duration", "Arrival", "Start", "End"}
}

func timelineRows(algorithm core.Algorithm, timeline responses.Timeline) [][]string {
	rows := make([][]string, 0, len(timeline))
	for _, record := range timeline {
		row := []string{record.Process}
		if algorithm.RequiresPriority() {
			priority := ""
			if record.Priority != nil {
				priority = strconv.Itoa(*record.Priority)
			}
			row = append(row, priority)
		}
		row = append(row,
			strconv.Itoa(record.Duration),
			strconv.Itoa(record.Arrival),
			strconv.Itoa(record.Start),
			strconv.Itoa(record.End),
		)
		rows = append(rows, row)
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
