// internal/rejection/feedback.go
package rejection

import "fmt"

const fallbackFeedback = "While we appreciate your submission, %s does not currently align with our investment criteria."

// Feedback is the middle paragraph of a rejection email together with the
// template decision that produced it.
type Feedback struct {
	Text     string
	Reason   Reason
	Template *RejectionTemplate
}

// UsedFallback reports whether no catalog template matched.
func (f Feedback) UsedFallback() bool {
	return f.Template == nil
}

// ResolveFeedback picks the template for the first rejection reason. Missing or
// unknown tags fall back to the generic sentence.
func ResolveFeedback(app Application) Feedback {
	tag, ok := app.PrimaryReason()
	if !ok {
		return Feedback{Text: fallbackParagraph(app)}
	}
	r, ok := ParseReason(tag)
	if !ok {
		return Feedback{Text: fallbackParagraph(app)}
	}
	tmpl, _ := r.Template()
	return Feedback{
		Text:     fmt.Sprintf("[TEMPLATE: %s]\n%s", tmpl.Summary, tmpl.Body),
		Reason:   r,
		Template: &tmpl,
	}
}

// FeedbackParagraph returns only the paragraph text of ResolveFeedback.
func FeedbackParagraph(app Application) string {
	return ResolveFeedback(app).Text
}

func fallbackParagraph(app Application) string {
	return fmt.Sprintf(fallbackFeedback, app.CompanyName)
}
