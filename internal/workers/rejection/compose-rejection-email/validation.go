package composerejectionemail

import "saif-rejection-agent/internal/common/validation"

// GetInputSchema describes the process variables read by the worker. Other
// variables in the process scope are allowed.
func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"companyName"},
		Properties: map[string]validation.Property{
			"applicationId": {
				Type:        "string",
				Description: "Identifier of the application record",
				MaxLength:   validation.IntPtr(100),
			},
			"companyName": {
				Type:        "string",
				Description: "Applicant company name",
				MinLength:   validation.IntPtr(1),
				MaxLength:   validation.IntPtr(200),
			},
			"contactEmail": {
				Type:        "string",
				Description: "Address the draft is meant for",
				MaxLength:   validation.IntPtr(320),
			},
			"founderNames": {
				Type:        "string",
				Description: "Founder names used in the greeting",
				MaxLength:   validation.IntPtr(500),
			},
			"description": {
				Type:        "string",
				Description: "Free-text company description",
			},
			"rejectionReasons": {
				Type:        "array",
				Description: "Reason tags; only the first selects a template",
				Items:       &validation.Property{Type: "string"},
			},
		},
	}
}
