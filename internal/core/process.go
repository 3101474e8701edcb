package core

import (
	"fmt"
	"strings"
)

// Process is a schedulable unit of work. Schedulers never modify it.
type Process struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Arrival  int    `json:"arrival"`
	Priority *int   `json:"priority,omitempty"`
}

// Validate checks the process fields. Priority is only enforced when requirePriority is set.
func (p Process) Validate(requirePriority bool) error {
	if strings.TrimSpace(p.Name) == "" {
		return &InvalidProcessError{Field: "name", Reason: "must not be empty"}
	}
	if p.Duration <= 0 {
		return &InvalidProcessError{Field: "duration", Reason: fmt.Sprintf("must be positive, got %d", p.Duration)}
	}
	if p.Arrival < 0 {
		return &InvalidProcessError{Field: "arrival", Reason: fmt.Sprintf("must not be negative, got %d", p.Arrival)}
	}
	if requirePriority && p.Priority == nil {
		return &InvalidProcessError{Field: "priority", Reason: "is required"}
	}
	return nil
}

func IntPtr(v int) *int {
	return &v
}

type Algorithm string

const (
	FIFO       Algorithm = "FIFO"
	SJF        Algorithm = "SJF"
	Priority   Algorithm = "Priority"
	RoundRobin Algorithm = "RoundRobin"
	MLFQ       Algorithm = "MLFQ"
)

var Algorithms = []Algorithm{FIFO, SJF, Priority, RoundRobin, MLFQ}

var algorithmAliases = map[string]Algorithm{
	"fifo":        FIFO,
	"fcfs":        FIFO,
	"sjf":         SJF,
	"priority":    Priority,
	"prioridades": Priority,
	"roundrobin":  RoundRobin,
	"round robin": RoundRobin,
	"round_robin": RoundRobin,
	"rr":          RoundRobin,
	"mlfq":        MLFQ,
}

// ParseAlgorithm resolves canonical names as well as the legacy store names.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// StoreName is the name of the process list kept for the algorithm.
func (a Algorithm) StoreName() string {
	switch a {
	case Priority:
		return "Prioridades"
	case RoundRobin:
		return "Round Robin"
	default:
		return string(a)
	}
}

func (a Algorithm) RequiresPriority() bool {
	return a == Priority
}
