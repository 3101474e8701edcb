package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"scheduling-simulator/api"
	"scheduling-simulator/config"
	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/logger"
	"scheduling-simulator/internal/presenter"
	"scheduling-simulator/internal/registry"
	"scheduling-simulator/internal/responses"
	"scheduling-simulator/internal/schedulers"
	"scheduling-simulator/pkg/client"
)

func main() {
	algorithmName := flag.String("algorithm", "", "algorithm to simulate: FIFO, SJF, Priority, RoundRobin or MLFQ")
	file := flag.String("file", "", "read processes from this file instead of the algorithm store")
	add := flag.String("add", "", "append a process given as name,duration,arrival[,priority]")
	remote := flag.String("remote", "", "simulate through the scheduler api at this base url")
	flag.Parse()

	cfg := config.GetSchedulerConfig()
	logs := logger.BuildLogger(cfg.LogLevel)
	engine := schedulers.NewEngine(cfg.RoundRobinTimeQuantum, cfg.MultilevelFeedbackQueueLevelsTimeQuantum, logs)
	reg := registry.New(registry.NewFileStore(cfg.StorageDir), logs)

	if *algorithmName == "" {
		serve(cfg, engine, reg, logs)
		return
	}

	algorithm, err := core.ParseAlgorithm(*algorithmName)
	if err != nil {
		log.Fatalln(err)
	}

	switch {
	case *add != "":
		err = addProcess(reg, algorithm, *add)
	case *remote != "":
		err = simulateRemote(client.NewScheduler(*remote, logs), algorithm)
	default:
		err = simulate(engine, reg, algorithm, *file)
	}

	if errors.Is(err, core.ErrEmptyRegistry) {
		logs.Warn("nothing to simulate", logger.StringAttr("algorithm", algorithm.StoreName()))
		return
	}
	if err != nil {
		logs.Error("simulation failed", logger.ErrAttr(err))
		os.Exit(1)
	}
}

func serve(cfg *config.SchedulerConfig, engine *schedulers.Engine, reg *registry.Registry, logs *slog.Logger) {
	app := fiber.New()
	api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(engine, reg, logs))

	logs.Info("starting scheduler api", logger.IntAttr("port", cfg.Port))
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func simulate(engine *schedulers.Engine, reg *registry.Registry, algorithm core.Algorithm, file string) error {
	var (
		processes []core.Process
		err       error
	)
	if file != "" {
		f, openErr := os.Open(file)
		if openErr != nil {
			return openErr
		}
		defer func() {
			_ = f.Close()
		}()
		processes, err = reg.LoadFrom(f, algorithm)
	} else {
		processes, err = reg.Load(algorithm)
	}
	if err != nil {
		return err
	}

	response, err := engine.Schedule(algorithm, processes)
	if err != nil {
		return err
	}
	present(response)
	return nil
}

func simulateRemote(scheduler *client.Scheduler, algorithm core.Algorithm) error {
	response, err := scheduler.SimulateRegistry(context.Background(), algorithm)
	if err != nil {
		return err
	}
	present(response)
	return nil
}

func addProcess(reg *registry.Registry, algorithm core.Algorithm, line string) error {
	p, err := registry.ParseLine(line, algorithm)
	if err != nil {
		return err
	}
	added, err := reg.Add(p, algorithm)
	if err != nil {
		return err
	}
	fmt.Printf("process %q added to %s\n", added.Name, algorithm.StoreName())
	return nil
}

func present(response responses.ScheduleResponse) {
	presenter.RenderSchedule(os.Stdout, response)
}
