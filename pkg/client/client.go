package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"scheduling-simulator/internal/core"
	"scheduling-simulator/internal/logger"
	"scheduling-simulator/internal/requests"
	"scheduling-simulator/internal/responses"
)

// Scheduler talks to a running scheduling api.
type Scheduler struct {
	BaseURL string
	HTTP    *http.Client
	Log     *slog.Logger
}

func NewScheduler(baseURL string, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
		Log:     log,
	}
}

type apiError struct {
	Error string `json:"error"`
}

// Simulate sends processes to the api and returns the measured schedule.
func (s *Scheduler) Simulate(ctx context.Context, algorithm core.Algorithm, processes []core.Process) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	err := s.post(ctx, "/api/v1/simulate", requests.FromProcesses(algorithm, processes), http.StatusOK, &response)
	return response, err
}

// SimulateRegistry simulates the process list the server keeps for algorithm.
func (s *Scheduler) SimulateRegistry(ctx context.Context, algorithm core.Algorithm) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	path := fmt.Sprintf("/api/v1/registry/%s/simulate", url.PathEscape(string(algorithm)))
	err := s.post(ctx, path, nil, http.StatusOK, &response)
	return response, err
}

func (s *Scheduler) AddProcess(ctx context.Context, algorithm core.Algorithm, p core.Process) (core.Process, error) {
	var added core.Process
	path := fmt.Sprintf("/api/v1/registry/%s/processes", url.PathEscape(string(algorithm)))
	job := requests.Job{Name: p.Name, Duration: p.Duration, Arrival: p.Arrival, Priority: p.Priority}
	err := s.post(ctx, path, job, http.StatusCreated, &added)
	return added, err
}

func (s *Scheduler) post(ctx context.Context, path string, body interface{}, wantStatus int, out interface{}) error {
	var payload io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		s.Log.Error("scheduler api request failed",
			logger.ErrAttr(err),
			logger.StringAttr("url", req.URL.String()),
		)
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != wantStatus {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		s.Log.Error("scheduler api responded with error",
			logger.StringAttr("url", req.URL.String()),
			logger.IntAttr("status_code", resp.StatusCode),
		)
		return fmt.Errorf("scheduler api responded with status %d: %s", resp.StatusCode, apiErr.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	s.Log.Debug("scheduler api request done",
		logger.StringAttr("url", req.URL.String()),
		logger.IntAttr("status_code", resp.StatusCode),
	)
	return nil
}
