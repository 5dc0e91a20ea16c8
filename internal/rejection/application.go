// internal/rejection/application.go
package rejection

// Application describes one applicant. Only the first rejection reason is used
// when composing.
type Application struct {
	CompanyName      string   `json:"companyName"`
	ContactEmail     string   `json:"contactEmail,omitempty"`
	FounderNames     string   `json:"founderNames,omitempty"`
	Description      string   `json:"description"`
	RejectionReasons []string `json:"rejectionReasons,omitempty"`
}

// NewApplication copies the reason slice so later changes by the caller do not
// leak into the record.
func NewApplication(company, contact, founders, description string, reasons []string) Application {
	var rs []string
	if len(reasons) > 0 {
		rs = make([]string, len(reasons))
		copy(rs, reasons)
	}
	return Application{
		CompanyName:      company,
		ContactEmail:     contact,
		FounderNames:     founders,
		Description:      description,
		RejectionReasons: rs,
	}
}

// PrimaryReason returns the first reason tag, if any.
func (a Application) PrimaryReason() (string, bool) {
	if len(a.RejectionReasons) == 0 {
		return "", false
	}
	return a.RejectionReasons[0], true
}

// HasFounders reports whether a named greeting can be used. Any non-empty
// value counts, whitespace included.
func (a Application) HasFounders() bool {
	return a.FounderNames != ""
}
