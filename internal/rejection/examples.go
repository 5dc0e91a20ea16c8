// internal/rejection/examples.go
package rejection

import (
	"fmt"
	"io"
	"strings"
)

// Example is a reference rejection sent by the SAIF team.
type Example struct {
	Company string
	Reason  string
	Email   string
}

var examples = []Example{
	{
		Company: "WormAI, Inc. (Sec0)",
		Reason:  "Early stage, no cofounder",
		Email: `Hi Ashish,

Thanks very much for expressing interest in being part of SAIF and our efforts to create a better future with AI. Unfortunately at this time we don't think that Sec0 fits within the criteria we are using for our fund.

Wrapping agent workflows with governance, monitoring, and control layers is an important direction, and we can see why this category will matter as agentic systems become more widely deployed. However, Sec0 is still at a very early stage, and we generally look for teams with a committed founding group, clear technical ownership, and a more defined product trajectory before engaging as investors. Given the current state of the team and the work, we don't believe this is the right fit for SAIF at this time.

We wish you the best as you continue developing the idea and building toward a more complete product.

Best,
The SAIF Team`,
	},
	{
		Company: "Tova",
		Reason:  "No technical cofounder",
		Email: `Hi there,

Thanks very much for expressing interest in being part of SAIF and our efforts to create a better future with AI. Unfortunately at this time we don't think that Tova fits within the criteria we are using for our fund.

Helping users detect scams and risky interactions in real time is an important problem, and we can see the appeal of a product that integrates directly into messaging and financial platforms. However, SAIF typically looks for teams with strong technical founding leadership given the complexity and competitiveness of building safety-critical AI systems. At this stage, and without a technical cofounder driving the core system, we don't believe Tova is the right fit for SAIF's focus.

We wish you the best as you continue developing the product and exploring partnerships.

Best,
The SAIF Team`,
	},
	{
		Company: "VAITION",
		Reason:  "Too conceptual",
		Email: `Hi Vadim,

Thanks very much for expressing interest in being part of SAIF and our efforts to create a better future with AI. Unfortunately at this time we don't think that VAITION fits within the criteria we are using for our fund.

Your proposal explores ambitious ideas around human presence and trust in digital systems. However, the approach as described is highly conceptual, and it's difficult for us to assess a clear technical pathway, feasibility, or near-term product direction. SAIF's focus is on companies building practical, deployable technologies that can be validated and scaled to improve safety and security in real-world AI systems, and VAITION does not currently align with that focus.

We appreciate you reaching out and wish you the best as you continue developing your ideas.

Best,
The SAIF Team`,
	},
}

// Examples returns a copy of the reference emails.
func Examples() []Example {
	out := make([]Example, len(examples))
	copy(out, examples)
	return out
}

// WriteExamples prints the reference emails with a banner.
func WriteExamples(w io.Writer) error {
	rule := strings.Repeat("=", 80)
	if _, err := fmt.Fprintf(w, "\n%s\nEXAMPLE REJECTION EMAILS FROM SAIF\n%s\n", rule, rule); err != nil {
		return err
	}
	for i, ex := range examples {
		_, err := fmt.Fprintf(w, "\n--- Example %d: %s ---\nRejection Reason: %s\n%s\n%s\n\n",
			i+1, ex.Company, ex.Reason, strings.Repeat("-", 40), ex.Email)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCatalog prints the numbered reason menu.
func WriteCatalog(w io.Writer) error {
	for i, e := range Entries() {
		if _, err := fmt.Fprintf(w, "  %d. %s: %s\n", i+1, e.Tag, e.Summary); err != nil {
			return err
		}
	}
	return nil
}
