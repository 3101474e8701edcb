package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, h SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fifo", h.FirstComeFirstServe)
		v1.Post("/sjf", h.ShortestJobFirst)
		v1.Post("/priority", h.Priority)
		v1.Post("/rr", h.RoundRobin)
		v1.Post("/mlfq", h.MultilevelFeedbackQueue)
		v1.Post("/simulate", h.Simulate)
		v1.Post("/all", h.AllAlgorithms)

		v1.Get("/registry/:algorithm", h.ListProcesses)
		v1.Post("/registry/:algorithm/processes", h.AddProcess)
		v1.Post("/registry/:algorithm/simulate", h.SimulateRegistry)
	}
}
