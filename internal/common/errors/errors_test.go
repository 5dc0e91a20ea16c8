package errors

import (
	"fmt"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name          string
		err           *StandardError
		expectedCode  string
		expectedRetry int
	}{
		{
			name:          "validation error is thrown without retries",
			err:           NewApplicationValidationFailedError("companyName is required"),
			expectedCode:  "APPLICATION_VALIDATION_FAILED",
			expectedRetry: 0,
		},
		{
			name:          "compose failure is retried",
			err:           NewEmailComposeFailedError(fmt.Errorf("boom")),
			expectedCode:  "EMAIL_COMPOSE_FAILED",
			expectedRetry: 3,
		},
		{
			name:          "unmapped code falls back to itself",
			err:           NewTimeoutError("zeebe", fmt.Errorf("deadline exceeded")),
			expectedCode:  "TIMEOUT_ERROR",
			expectedRetry: 2,
		},
		{
			name: "non-retryable flag zeroes retries",
			err: &StandardError{
				Code:      ErrCodeEmailComposeFailed,
				Message:   "forced",
				Retryable: false,
				Timestamp: time.Now().UTC(),
			},
			expectedCode:  "EMAIL_COMPOSE_FAILED",
			expectedRetry: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmnErr := ConvertToBPMNError(tt.err)
			assert.Equal(t, tt.expectedCode, bpmnErr.Code)
			assert.Equal(t, tt.expectedRetry, bpmnErr.Retries)
			assert.Equal(t, string(tt.err.Code), bpmnErr.ErrorVariables["originalErrorCode"])

			vars := bpmnErr.ToErrorVariables()
			assert.Equal(t, tt.expectedCode, vars["errorCode"])
			assert.Equal(t, tt.err.Message, vars["errorMessage"])
			assert.Contains(t, vars, "timestamp")
		})
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInputParsingFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeApplicationValidationFailed))
	assert.Equal(t, "COMPOSER", GetErrorCategory(ErrCodeEmailComposeFailed))
	assert.Equal(t, "CONFIG", GetErrorCategory(ErrCodeConfigInvalid))
	assert.Equal(t, "PROMPT", GetErrorCategory(ErrCodePromptAborted))
	assert.Equal(t, "TRANSPORT", GetErrorCategory(ErrCodeTimeout))
	assert.Equal(t, "OTHER", GetErrorCategory("SOMETHING_ELSE"))
}

func TestExtractCodeAndNormalize(t *testing.T) {
	assert.Equal(t, "CONFIG_INVALID", ExtractCode(NewConfigInvalidError("x")))
	assert.Equal(t, "UNKNOWN_ERROR", ExtractCode(fmt.Errorf("plain")))
	assert.Equal(t, "UNKNOWN_ERROR", ExtractCode(nil))

	normalized := Normalize(fmt.Errorf("plain"))
	assert.Equal(t, ErrCodeInternal, normalized.Code)
	assert.Equal(t, "plain", normalized.Details)
	assert.False(t, normalized.Timestamp.IsZero())

	original := NewPromptAbortedError()
	assert.Same(t, original, Normalize(original))
}

func TestStandardError_WithMetadata(t *testing.T) {
	err := NewApplicationValidationFailedError("missing").WithMetadata("field", "companyName")
	require.NotNil(t, err.Metadata)
	assert.Equal(t, "companyName", err.Metadata["field"])
	assert.Equal(t, "StandardError[APPLICATION_VALIDATION_FAILED]: Application validation failed", err.Error())
}

func TestRetriesFor(t *testing.T) {
	tests := []struct {
		name     string
		retries  int32
		budget   int
		expected int32
	}{
		{name: "decrements within budget", retries: 3, budget: 3, expected: 2},
		{name: "decrements below budget", retries: 2, budget: 3, expected: 1},
		{name: "last attempt exhausts", retries: 1, budget: 3, expected: 0},
		{name: "capped by code budget", retries: 5, budget: 2, expected: 2},
		{name: "already exhausted", retries: 0, budget: 3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := entities.Job{ActivatedJob: &pb.ActivatedJob{Retries: tt.retries}}
			assert.Equal(t, tt.expected, retriesFor(job, tt.budget))
		})
	}
}

func TestRetriesFor_TimeoutReachesZero(t *testing.T) {
	budget := GetRetryCount(ErrCodeTimeout)
	remaining := int32(3)
	var sent []int32
	for remaining > 0 {
		remaining = retriesFor(entities.Job{ActivatedJob: &pb.ActivatedJob{Retries: remaining}}, budget)
		sent = append(sent, remaining)
	}
	assert.Equal(t, []int32{2, 1, 0}, sent)
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeEmailComposeFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeApplicationValidationFailed))
}
