// internal/rejection/composer.go
package rejection

import (
	"fmt"
	"strings"
)

const (
	genericGreeting = "Hi there,"
	openingFormat   = "Thanks very much for expressing interest in being part of SAIF and our efforts to create a better future with AI. Unfortunately at this time we don't think that %s fits within the criteria we are using for our fund."
	closingFormat   = "We wish you the best as you continue %s."
	signature       = "Best,\nThe SAIF Team"
)

// Email is a composed rejection broken into its sections.
type Email struct {
	Greeting    string
	Opening     string
	Feedback    Feedback
	ClosingWish string
	Closing     string
}

// String joins the sections with blank lines.
func (e Email) String() string {
	return strings.Join([]string{e.Greeting, e.Opening, e.Feedback.Text, e.Closing}, "\n\n")
}

// ComposeEmail builds every section of the rejection for app.
func ComposeEmail(app Application) Email {
	wish := ClosingWish(app.Description)
	return Email{
		Greeting:    greeting(app),
		Opening:     fmt.Sprintf(openingFormat, app.CompanyName),
		Feedback:    ResolveFeedback(app),
		ClosingWish: wish,
		Closing:     fmt.Sprintf(closingFormat, wish) + "\n\n" + signature,
	}
}

// Compose returns the full rejection email text for app.
func Compose(app Application) string {
	return ComposeEmail(app).String()
}

func greeting(app Application) string {
	if !app.HasFounders() {
		return genericGreeting
	}
	return fmt.Sprintf("Hi %s,", app.FounderNames)
}
