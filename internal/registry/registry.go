package registry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/logger"
)

// Registry holds the process list of each algorithm, backed by a Store.
type Registry struct {
	store Store
	log   *slog.Logger

	mu        sync.Mutex
	processes map[core.Algorithm][]core.Process
}

func New(store Store, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		store:     store,
		log:       log,
		processes: make(map[core.Algorithm][]core.Process),
	}
}

// Load reloads the list stored for algorithm and returns a copy of it.
// Malformed lines are logged and skipped. An empty list is reported as
// core.ErrEmptyRegistry together with the (empty) result.
func (r *Registry) Load(algorithm core.Algorithm) ([]core.Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	processes, err := r.read(algorithm)
	if err != nil {
		return nil, err
	}
	r.processes[algorithm] = processes

	if len(processes) == 0 {
		return []core.Process{}, fmt.Errorf("%w: %s", core.ErrEmptyRegistry, algorithm.StoreName())
	}
	return clone(processes), nil
}

// LoadFrom parses a process list that lives outside the store.
func (r *Registry) LoadFrom(reader io.Reader, algorithm core.Algorithm) ([]core.Process, error) {
	processes, skipped, err := Parse(reader, algorithm)
	if err != nil {
		return nil, err
	}
	r.warnSkipped(algorithm, skipped)
	if len(processes) == 0 {
		return []core.Process{}, core.ErrEmptyRegistry
	}
	return processes, nil
}

// Processes returns the in-memory list for algorithm without touching the store.
func (r *Registry) Processes(algorithm core.Algorithm) []core.Process {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.processes[algorithm])
}

// Add validates p and appends it to the store and to the in-memory list.
// Nothing is changed when validation or the store write fails.
func (r *Registry) Add(p core.Process, algorithm core.Algorithm) (core.Process, error) {
	if err := p.Validate(algorithm.RequiresPriority()); err != nil {
		return core.Process{}, err
	}
	if !algorithm.RequiresPriority() {
		p.Priority = nil
	}
	record, err := FormatRecord(p, algorithm)
	if err != nil {
		return core.Process{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// ids continue after what is already stored
	if _, loaded := r.processes[algorithm]; !loaded {
		stored, err := r.read(algorithm)
		if err != nil {
			return core.Process{}, err
		}
		r.processes[algorithm] = stored
	}

	if err := r.store.Append(algorithm, record); err != nil {
		return core.Process{}, fmt.Errorf("storing process %q: %w", p.Name, err)
	}
	p.ID = len(r.processes[algorithm]) + 1
	r.processes[algorithm] = append(r.processes[algorithm], p)

	r.log.Info("process added",
		logger.StringAttr("algorithm", string(algorithm)),
		logger.StringAttr("name", p.Name),
		logger.IntAttr("id", p.ID),
	)
	return p, nil
}

func (r *Registry) read(algorithm core.Algorithm) ([]core.Process, error) {
	f, err := r.store.Open(algorithm)
	if isNotExist(err) {
		r.log.Warn("no stored processes", logger.StringAttr("algorithm", algorithm.StoreName()))
		return []core.Process{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening process list %s: %w", algorithm.StoreName(), err)
	}
	defer func() {
		_ = f.Close()
	}()

	processes, skipped, err := Parse(f, algorithm)
	if err != nil {
		return nil, err
	}
	r.warnSkipped(algorithm, skipped)
	return processes, nil
}

func (r *Registry) warnSkipped(algorithm core.Algorithm, skipped []error) {
	for _, err := range skipped {
		var malformed *core.MalformedRecordError
		line := 0
		if errors.As(err, &malformed) {
			line = malformed.Line
		}
		r.log.Warn("skipping malformed process record",
			logger.StringAttr("algorithm", algorithm.StoreName()),
			logger.IntAttr("line", line),
			logger.ErrAttr(err),
		)
	}
}

func clone(processes []core.Process) []core.Process {
	out := make([]core.Process, len(processes))
	for i, p := range processes {
		if p.Priority != nil {
			p.Priority = core.IntPtr(*p.Priority)
		}
		out[i] = p
	}
	return out
}
