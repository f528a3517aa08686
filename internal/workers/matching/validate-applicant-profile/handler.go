// internal/workers/matching/validate-applicant-profile/handler.go
package validateapplicantprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"broker-workers/internal/common/errors"
	"broker-workers/internal/common/logger"
	"broker-workers/internal/common/metrics"
	"broker-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const (
	TaskType = "validate-applicant-profile"
)

// profileSchema is the matching engine's contract with the onboarding
// collector. Every field is optional: an absent fact stays absent and the
// downstream checks skip it. The schema rejects wrongly typed or out-of-range
// values so a malformed answer never reaches the evaluator disguised as a
// real fact.
var profileSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"tradingTime": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{"0-3", "3-6", "6-12", "12-24", "24+"},
		},
		"monthlyRevenue":      map[string]interface{}{"type": "number", "minimum": 0},
		"fundingAmount":       map[string]interface{}{"type": "number", "minimum": 0},
		"businessType":        map[string]interface{}{"type": "string", "minLength": 1},
		"industry":            map[string]interface{}{"type": "string", "minLength": 1},
		"hasFiledAccounts":    map[string]interface{}{"type": "boolean"},
		"hasCcjs":             map[string]interface{}{"type": "boolean"},
		"ccjValue":            map[string]interface{}{"type": "number", "minimum": 0},
		"directorsHomeowners": map[string]interface{}{"type": "boolean"},
		"cardPaymentPct":      map[string]interface{}{"type": "number", "minimum": 0, "maximum": 100},
		"hasExistingLending":  map[string]interface{}{"type": "boolean"},
		"existingLenderCount": map[string]interface{}{"type": "integer", "minimum": 0},
		// Profit and net assets may legitimately be negative.
		"annualProfit": map[string]interface{}{"type": "number"},
		"netAssets":    map[string]interface{}{"type": "number"},
	},
}

type Handler struct {
	config       *Config
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		logger:       l,
		errorHandler: errors.NewErrorHandler(l),
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
		h.failJob(client, job, errors.NewProfileParseError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, errors.NewProfileValidationError(err.Error()))
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if input.ProfileData == nil {
		// Nothing collected yet. An all-unknown profile is still a valid
		// profile; matching will simply find nothing to score.
		return &Output{Valid: true, ApplicantProfile: &models.ApplicantProfile{}}, nil
	}

	schemaLoader := gojsonschema.NewGoLoader(profileSchema)
	documentLoader := gojsonschema.NewGoLoader(input.ProfileData)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	if !result.Valid() {
		errs := make([]ValidationError, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			errs = append(errs, ValidationError{
				Field:   e.Field(),
				Message: e.Description(),
			})
		}
		h.logger.Warn("profile rejected", map[string]interface{}{
			"applicationId": input.ApplicationID,
			"errorCount":    len(errs),
		})
		return &Output{Valid: false, Errors: errs}, nil
	}

	profile, err := decodeProfile(input.ProfileData)
	if err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	h.logger.Info("profile validated", map[string]interface{}{
		"applicationId": input.ApplicationID,
	})

	return &Output{Valid: true, ApplicantProfile: profile}, nil
}

// decodeProfile maps the validated payload onto the typed profile. Fields not
// present in the payload stay nil, preserving the unknown/absent distinction.
func decodeProfile(data map[string]interface{}) (*models.ApplicantProfile, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var profile models.ApplicantProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
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

func (h *Handler) failJob(client worker.JobClient, job entities.Job, stdErr *errors.StandardError) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
	h.errorHandler.HandleJobError(context.Background(), client, job, stdErr)
}

// Execute exposes the business path for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
