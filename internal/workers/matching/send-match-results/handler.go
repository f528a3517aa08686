// internal/workers/matching/send-match-results/handler.go
package sendmatchresults

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"broker-workers/internal/common/logger"
	"broker-workers/internal/common/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "send-match-results"
)

var (
	ErrNotificationSendFailed = errors.New("NOTIFICATION_SEND_FAILED")
)

// Interfaces over the AWS clients so tests can substitute mocks.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Handler struct {
	config    *Config
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(config.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Handler{
		config:    config,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, "NOTIFICATION_SEND_FAILED", err.Error())
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if !h.config.Enabled || input.RecipientEmail == "" {
		h.logger.Info("notification skipped", map[string]interface{}{
			"applicationId": input.ApplicationID,
			"enabled":       h.config.Enabled,
		})
		return &Output{
			NotificationID: uuid.New().String(),
			Status:         StatusDisabled,
			SentAt:         time.Now().UTC().Format(time.RFC3339),
		}, nil
	}

	subject, body := buildEmail(input)

	_, err := h.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(h.config.FromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{input.RecipientEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotificationSendFailed, err)
	}

	// Partner notifications are best-effort: the applicant email is the
	// contractual delivery, the topic is a convenience feed.
	if h.config.PartnerTopicARN != "" && input.PartnerID != "" {
		if err := h.publishPartnerEvent(ctx, input); err != nil {
			h.logger.Warn("partner notification failed", map[string]interface{}{
				"applicationId": input.ApplicationID,
				"partnerId":     input.PartnerID,
				"error":         err,
			})
		}
	}

	notificationID := uuid.New().String()
	h.logger.Info("match results sent", map[string]interface{}{
		"applicationId":  input.ApplicationID,
		"notificationId": notificationID,
		"matchCount":     len(input.MatchedLenders),
	})

	return &Output{
		NotificationID: notificationID,
		Status:         StatusSent,
		SentAt:         time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *Handler) publishPartnerEvent(ctx context.Context, input *Input) error {
	event := map[string]interface{}{
		"applicationId": input.ApplicationID,
		"partnerId":     input.PartnerID,
		"matchCount":    len(input.MatchedLenders),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = h.snsClient.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(h.config.PartnerTopicARN),
		Message:  aws.String(string(payload)),
	})
	return err
}

func buildEmail(input *Input) (subject, body string) {
	var b strings.Builder

	name := input.RecipientName
	if name == "" {
		name = "there"
	}

	if len(input.MatchedLenders) == 0 {
		subject = "Your funding application update"
		fmt.Fprintf(&b, "Hi %s,\n\n", name)
		b.WriteString("We couldn't match your business with any lenders on our panel right now. ")
		b.WriteString("A member of our team will review your application and be in touch.\n")
		return subject, b.String()
	}

	subject = fmt.Sprintf("We found %d lender(s) for your business", len(input.MatchedLenders))
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	fmt.Fprintf(&b, "Good news. Based on what you told us, %d lender(s) on our panel may be able to help:\n\n", len(input.MatchedLenders))

	for i, lender := range input.MatchedLenders {
		fmt.Fprintf(&b, "%d. %s\n", i+1, lender.Name)
		for _, reason := range lender.Reasons {
			fmt.Fprintf(&b, "   - %s\n", reason)
		}
		b.WriteString("\n")
	}

	b.WriteString("Log in to your dashboard to review the panel and choose who to proceed with.\n")
	return subject, b.String()
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
