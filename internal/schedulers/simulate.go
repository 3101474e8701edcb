package schedulers

import (
	"context"
	"fmt"
	"log/slog"

	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/logger"
	"scheduling-simulator/internal/responses"
	"scheduling-simulator/internal/util"
)

// Engine dispatches simulations to the scheduling algorithms. It keeps no
// state between runs and is safe for concurrent use.
type Engine struct {
	TimeQuantum       int
	LevelsTimeQuantum []int
	Log               *slog.Logger
}

func NewEngine(timeQuantum int, levelsTimeQuantum []int, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		TimeQuantum:       timeQuantum,
		LevelsTimeQuantum: append([]int(nil), levelsTimeQuantum...),
		Log:               log,
	}
}

// Simulate runs the default engine.
func Simulate(algorithm core.Algorithm, processes []core.Process) (responses.Timeline, error) {
	return NewEngine(DefaultTimeQuantum, DefaultLevelsTimeQuantum, nil).Simulate(algorithm, processes)
}

// Simulate produces the timeline of processes under algorithm.
func (e *Engine) Simulate(algorithm core.Algorithm, processes []core.Process) (responses.Timeline, error) {
	snapshot, err := e.snapshot(processes)
	if err != nil {
		return nil, err
	}
	return e.run(algorithm, snapshot)
}

// Schedule simulates processes and measures the resulting timeline.
func (e *Engine) Schedule(algorithm core.Algorithm, processes []core.Process) (responses.ScheduleResponse, error) {
	snapshot, err := e.snapshot(processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	timeline, err := e.run(algorithm, snapshot)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(algorithm, snapshot, timeline), nil
}

func (e *Engine) run(algorithm core.Algorithm, processes []core.Process) (responses.Timeline, error) {
	e.Log.Debug("running scheduling algorithm",
		logger.StringAttr("algorithm", string(algorithm)),
		logger.IntAttr("processes", len(processes)),
	)

	switch algorithm {
	case core.FIFO:
		return ScheduleFirstComeFirstServe(processes), nil
	case core.SJF:
		return ScheduleShortestJobFirst(processes), nil
	case core.Priority:
		return SchedulePriority(processes)
	case core.RoundRobin:
		return ScheduleRoundRobin(processes, e.TimeQuantum), nil
	case core.MLFQ:
		return ScheduleMultilevelFeedbackQueue(processes, e.LevelsTimeQuantum), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, algorithm)
	}
}

// snapshot copies and validates processes, numbering them by position so
// records can be matched to processes even when names repeat.
func (e *Engine) snapshot(processes []core.Process) ([]core.Process, error) {
	if len(processes) == 0 {
		return nil, core.ErrEmptyRegistry
	}

	snapshot := make([]core.Process, len(processes))
	for i, p := range processes {
		if err := p.Validate(false); err != nil {
			return nil, fmt.Errorf("process %d: %w", i+1, err)
		}
		p.ID = i + 1
		if p.Priority != nil {
			p.Priority = core.IntPtr(*p.Priority)
		}
		snapshot[i] = p
	}

	if e.Log.Enabled(context.Background(), slog.LevelDebug) {
		e.Log.Debug("simulation input", logger.StringAttr("processes", util.Pretty(snapshot)))
	}
	return snapshot, nil
}
