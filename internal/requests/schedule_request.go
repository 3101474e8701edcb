package requests

import "scheduling-simulator/internal/core"

type Job struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Arrival  int    `json:"arrival"`
	Priority *int   `json:"priority,omitempty"`
}

type ScheduleRequests struct {
	Algorithm string `json:"algorithm,omitempty"`
	Jobs      []Job  `json:"processes"`
}

func (j Job) ToProcess() core.Process {
	return core.Process{
		Name:     j.Name,
		Duration: j.Duration,
		Arrival:  j.Arrival,
		Priority: j.Priority,
	}
}

// ToProcesses numbers the jobs in request order.
func (r ScheduleRequests) ToProcesses() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		p := job.ToProcess()
		p.ID = i + 1
		processes = append(processes, p)
	}
	return processes
}

func FromProcesses(algorithm core.Algorithm, processes []core.Process) ScheduleRequests {
	jobs := make([]Job, 0, len(processes))
	for _, p := range processes {
		jobs = append(jobs, Job{Name: p.Name, Duration: p.Duration, Arrival: p.Arrival, Priority: p.Priority})
	}
	return ScheduleRequests{Algorithm: string(algorithm), Jobs: jobs}
}
