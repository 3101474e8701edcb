package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/logger"
	"scheduling-simulator/internal/registry"
	"scheduling-simulator/internal/requests"
	"scheduling-simulator/internal/responses"
	"scheduling-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListProcesses(ctx *fiber.Ctx) error
	AddProcess(ctx *fiber.Ctx) error
	SimulateRegistry(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	engine   *schedulers.Engine
	registry *registry.Registry
	log      *slog.Logger
}

func NewSchedulerHandlerImpl(engine *schedulers.Engine, registry *registry.Registry, log *slog.Logger) *SchedulerHandlerImpl {
	if log == nil {
		log = slog.Default()
	}
	return &SchedulerHandlerImpl{engine: engine, registry: registry, log: log}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.FIFO)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.SJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.Priority)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.MLFQ)
}

// Simulate takes the algorithm from the request body.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx)
	}
	algorithm, err := core.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respond(ctx, algorithm, request.ToProcesses())
}

// AllAlgorithms runs every algorithm on the same processes. Priority is only
// included when every process carries a priority.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx)
	}
	processes := request.ToProcesses()

	result := make(map[core.Algorithm]responses.ScheduleResponse, len(core.Algorithms))
	for _, algorithm := range core.Algorithms {
		if algorithm.RequiresPriority() && !allPrioritized(processes) {
			continue
		}
		response, err := s.engine.Schedule(algorithm, processes)
		if err != nil {
			return s.fail(ctx, err)
		}
		result[algorithm] = response
	}
	return ctx.JSON(result)
}

func (s *SchedulerHandlerImpl) ListProcesses(ctx *fiber.Ctx) error {
	algorithm, err := core.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return s.fail(ctx, err)
	}
	processes, err := s.registry.Load(algorithm)
	if err != nil && !errors.Is(err, core.ErrEmptyRegistry) {
		return s.fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"algorithm": algorithm, "processes": processes})
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	algorithm, err := core.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return s.fail(ctx, err)
	}
	var job requests.Job
	if err := ctx.BodyParser(&job); err != nil {
		return invalidRequest(ctx)
	}
	added, err := s.registry.Add(job.ToProcess(), algorithm)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(added)
}

func (s *SchedulerHandlerImpl) SimulateRegistry(ctx *fiber.Ctx) error {
	algorithm, err := core.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return s.fail(ctx, err)
	}
	processes, err := s.registry.Load(algorithm)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respond(ctx, algorithm, processes)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm core.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx)
	}
	return s.respond(ctx, algorithm, request.ToProcesses())
}

func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, algorithm core.Algorithm, processes []core.Process) error {
	response, err := s.engine.Schedule(algorithm, processes)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		s.log.Error("can not process request", logger.ErrAttr(err), logger.StringAttr("path", ctx.Path()))
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func invalidRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrEmptyRegistry):
		return fiber.StatusNotFound
	case errors.Is(err, core.ErrInvalidProcess),
		errors.Is(err, core.ErrMissingPriority),
		errors.Is(err, core.ErrUnknownAlgorithm):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func allPrioritized(processes []core.Process) bool {
	for _, p := range processes {
		if p.Priority == nil {
			return false
		}
	}
	return true
}
