// internal/workers/matching/match-lenders/handler.go
package matchlenders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"broker-workers/internal/audit"
	"broker-workers/internal/common/logger"
	"broker-workers/internal/common/metrics"
	"broker-workers/internal/matching"
	"broker-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "match-lenders"
)

type Handler struct {
	config   *Config
	matcher  *matching.Matcher
	recorder *audit.Recorder
	logger   logger.Logger
}

// NewHandler wires the matcher and the audit recorder. recorder may be nil
// when the audit index is not configured; matching still runs.
func NewHandler(config *Config, matcher *matching.Matcher, recorder *audit.Recorder, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		matcher:  matcher,
		recorder: recorder,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PROFILE_PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, "MATCH_FAILED", err.Error())
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	profile := input.ApplicantProfile
	if profile == nil {
		// No profile means every fact is unknown: no soft check can be
		// satisfied, so the panel comes back empty without special-casing.
		profile = &models.ApplicantProfile{}
	}

	result := h.matcher.Match(ctx, profile)

	rec := audit.NewRecord(input.ApplicationID, profile, result.CatalogSize, result.CatalogFailed, result.Matches, result.Duration)
	if h.recorder != nil {
		h.recorder.Write(ctx, rec)
	}

	h.logger.Info("match completed", map[string]interface{}{
		"applicationId": input.ApplicationID,
		"catalogSize":   result.CatalogSize,
		"catalogFailed": result.CatalogFailed,
		"matchCount":    len(result.Matches),
		"durationMs":    result.Duration.Milliseconds(),
		"auditRunId":    rec.RunID,
	})

	return &Output{
		MatchedLenders: result.Matches,
		MatchCount:     len(result.Matches),
		AuditRunID:     rec.RunID,
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

// Execute exposes the business path for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
