// internal/workers/rejection/compose-rejection-email/models.go
package composerejectionemail

type Input struct {
	ApplicationID    string   `json:"applicationId,omitempty"`
	CompanyName      string   `json:"companyName"`
	ContactEmail     string   `json:"contactEmail,omitempty"`
	FounderNames     string   `json:"founderNames,omitempty"`
	Description      string   `json:"description,omitempty"`
	RejectionReasons []string `json:"rejectionReasons,omitempty"`
}

type Output struct {
	DraftID         string         `json:"draftId"`
	ApplicationID   string         `json:"applicationId,omitempty"`
	RejectionEmail  string         `json:"rejectionEmail"`
	ReasonTag       string         `json:"reasonTag"`
	TemplateSummary string         `json:"templateSummary"`
	UsedFallback    bool           `json:"usedFallback"`
	ClosingWish     string         `json:"closingWish"`
	Recipient       string         `json:"recipient,omitempty"`
	ComposedAt      string         `json:"composedAt"` // RFC3339, UTC
	Sections        *EmailSections `json:"emailSections,omitempty"`
}

// EmailSections is only set when composer.include_sections is enabled.
type EmailSections struct {
	Greeting string `json:"greeting"`
	Opening  string `json:"opening"`
	Feedback string `json:"feedback"`
	Closing  string `json:"closing"`
}
