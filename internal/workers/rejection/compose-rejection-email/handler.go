// internal/workers/rejection/compose-rejection-email/handler.go
package composerejectionemail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"saif-rejection-agent/internal/common/camunda"
	"saif-rejection-agent/internal/common/config"
	"saif-rejection-agent/internal/common/errors"
	"saif-rejection-agent/internal/common/logger"
	"saif-rejection-agent/internal/common/metrics"
	"saif-rejection-agent/internal/common/observability"
	"saif-rejection-agent/internal/common/validation"
	"saif-rejection-agent/internal/rejection"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "compose-rejection-email"

// failReportTimeout bounds reporting a failure back to the broker. It is
// independent of the job's own deadline, which may already have passed.
const failReportTimeout = 10 * time.Second

type Handler struct {
	config       *Config
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	obs          *observability.Observability
	newID        func() string
	now          func() time.Time
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Logger        logger.Logger
	Observability *observability.Observability
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	workerConfig := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)

	if err := workerConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}

	var loggerInstance logger.Logger
	if opts.Logger != nil {
		loggerInstance = opts.Logger
	} else {
		loggerInstance = logger.NewStructured("info", "json")
	}
	loggerInstance = loggerInstance.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config:       workerConfig,
		logger:       loggerInstance,
		errorHandler: errors.NewErrorHandler(loggerInstance),
		obs:          opts.Observability,
		newID:        uuid.NewString,
		now:          time.Now,
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.GetKey(),
		"processInstanceKey": job.GetProcessInstanceKey(),
	})

	input, err := h.parseInput(job)
	if err != nil {
		h.fail(client, job, err, startTime)
		return
	}

	output, err := h.Execute(ctx, input)
	if err != nil {
		h.fail(client, job, err, startTime)
		return
	}

	if err := h.completeJob(ctx, client, job, output); err != nil {
		h.fail(client, job, err, startTime)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
	h.obs.RecordJobProcessed(ctx, TaskType, "success")
	h.obs.RecordJobDuration(ctx, TaskType, time.Since(startTime), "success")
}

func (h *Handler) parseInput(job entities.Job) (*Input, error) {
	variables, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, errors.NewInputParsingFailedError(err)
	}

	// null variables are treated as absent
	for key, value := range variables {
		if value == nil {
			delete(variables, key)
		}
	}

	result := validation.ValidateInput(variables, GetInputSchema())
	if !result.Valid {
		return nil, errors.NewApplicationValidationFailedError(
			strings.Join(result.GetErrorMessages(), "; "),
		)
	}

	var input Input
	if err := job.GetVariablesAs(&input); err != nil {
		return nil, errors.NewInputParsingFailedError(err)
	}
	return &input, nil
}

// Execute composes the rejection draft for one application.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError(TaskType, err)
	}

	if h.config.RequireDescription && strings.TrimSpace(input.Description) == "" {
		return nil, errors.NewApplicationValidationFailedError("description is required").
			WithMetadata("companyName", input.CompanyName)
	}

	app := rejection.NewApplication(
		input.CompanyName,
		input.ContactEmail,
		input.FounderNames,
		input.Description,
		input.RejectionReasons,
	)
	email := rejection.ComposeEmail(app)

	reasonTag, _ := app.PrimaryReason()
	output := &Output{
		DraftID:        h.newID(),
		ApplicationID:  input.ApplicationID,
		RejectionEmail: email.String(),
		ReasonTag:      reasonTag,
		UsedFallback:   email.Feedback.UsedFallback(),
		ClosingWish:    email.ClosingWish,
		Recipient:      input.ContactEmail,
		ComposedAt:     h.now().UTC().Format(time.RFC3339),
	}
	if tmpl := email.Feedback.Template; tmpl != nil {
		output.TemplateSummary = tmpl.Summary
	}
	if h.config.IncludeSections {
		output.Sections = &EmailSections{
			Greeting: email.Greeting,
			Opening:  email.Opening,
			Feedback: email.Feedback.Text,
			Closing:  email.Closing,
		}
	}

	metrics.RecordComposed(reasonTag, output.UsedFallback)
	h.obs.RecordDraft(ctx, reasonTag, output.UsedFallback)

	h.logger.Info("rejection draft composed", map[string]interface{}{
		"draftId":       output.DraftID,
		"applicationId": output.ApplicationID,
		"reasonTag":     reasonTag,
		"usedFallback":  output.UsedFallback,
	})

	return output, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	request, err := client.NewCompleteJobCommand().JobKey(job.GetKey()).VariablesFromObject(output)
	if err != nil {
		return errors.NewEmailComposeFailedError(err)
	}

	_, err = camunda.ExecuteWithRetry(ctx, camunda.DefaultRetryConfig, func(ctx context.Context) (interface{}, error) {
		return request.Send(ctx)
	}, "complete-job")
	if err != nil {
		return err
	}

	h.logger.Info("job completed", map[string]interface{}{
		"jobKey":  job.GetKey(),
		"draftId": output.DraftID,
	})
	return nil
}

func (h *Handler) fail(client worker.JobClient, job entities.Job, err error, startTime time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), failReportTimeout)
	defer cancel()

	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errors.ExtractCode(err)).Inc()
	h.obs.RecordJobProcessed(ctx, TaskType, "failed")
	h.obs.RecordJobDuration(ctx, TaskType, time.Since(startTime), "failed")
	h.errorHandler.HandleJobError(ctx, client, job, err)
}

func (h *Handler) GetTaskType() string {
	return TaskType
}

func (h *Handler) IsEnabled() bool {
	return h.config.Enabled
}

func (h *Handler) GetConfig() *Config {
	return h.config
}
