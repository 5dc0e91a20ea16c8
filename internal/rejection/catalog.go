// internal/rejection/catalog.go
package rejection

// Reason is one entry of the fixed rejection-reason catalog.
type Reason int

const (
	ReasonNotAISafety Reason = iota
	ReasonEarlyStageNoTeam
	ReasonNoTechCofounder
	ReasonTooConceptual
	ReasonSafetyAngleUnclear
	ReasonNotForProfit
	ReasonGeneralNotAligned

	reasonCount
)

// RejectionTemplate holds the menu label and the feedback body for a reason.
// Body placeholders such as {company_name} are left for the reviewer to fill.
type RejectionTemplate struct {
	Tag     string
	Summary string
	Body    string
}

// Entry is a (tag, summary) pair used for menu rendering.
type Entry struct {
	Reason  Reason
	Tag     string
	Summary string
}

var catalog = [reasonCount]RejectionTemplate{
	ReasonNotAISafety: {
		Tag:     "not_ai_safety",
		Summary: "Product is not focused on AI safety",
		Body:    "Your work on {product_focus} is meaningful and clearly impactful. However, {company_name} is focused on {actual_focus} rather than on technologies that directly improve safety and security in the presence of risks created by advanced AI systems. Because of this, the project falls outside the scope of SAIF's investment mandate.",
	},
	ReasonEarlyStageNoTeam: {
		Tag:     "early_stage_no_team",
		Summary: "Too early stage with incomplete founding team",
		Body:    "{product_area} is an important direction, and we can see why this category will matter as agentic systems become more widely deployed. However, {company_name} is still at a very early stage, and we generally look for teams with a committed founding group, clear technical ownership, and a more defined product trajectory before engaging as investors. Given the current state of the team and the work, we don't believe this is the right fit for SAIF at this time.",
	},
	ReasonNoTechCofounder: {
		Tag:     "no_tech_cofounder",
		Summary: "Lacks technical founding leadership",
		Body:    "{problem_statement} is an important problem, and we can see the appeal of a product that {product_appeal}. However, SAIF typically looks for teams with strong technical founding leadership given the complexity and competitiveness of building safety-critical AI systems. At this stage, and without a technical cofounder driving the core system, we don't believe {company_name} is the right fit for SAIF's focus.",
	},
	ReasonTooConceptual: {
		Tag:     "too_conceptual",
		Summary: "Approach is too conceptual or lacks clear technical pathway",
		Body:    "Your proposal explores ambitious ideas around {topic_area}. However, the approach as described is highly conceptual, and it's difficult for us to assess a clear technical pathway, feasibility, or near-term product direction. SAIF's focus is on companies building practical, deployable technologies that can be validated and scaled to improve safety and security in real-world AI systems, and {company_name} does not currently align with that focus.",
	},
	ReasonSafetyAngleUnclear: {
		Tag:     "safety_angle_unclear",
		Summary: "Safety impact is not clear or central to the product",
		Body:    "{company_name}'s approach to {product_description} is thoughtful, and we can see how tools like this could be valuable for {target_users}. However, SAIF's focus is on companies building products that directly improve safety and security in the presence of advanced AI systems, and we are not yet convinced that {company_name}'s safety impact is sufficiently clear or central to the product. In addition, we typically look for teams with a full-time founder.",
	},
	ReasonNotForProfit: {
		Tag:     "not_for_profit",
		Summary: "Not a for-profit company with scalable business model",
		Body:    "We appreciate the work you've put into {company_name} and your commitment to developing {mission}. However, SAIF is structured specifically to invest in for-profit companies with scalable business models. As {company_name} is {structure} and won't be offering equity to investors, we do not see a clear path for sufficient venture funding to be raised. Additionally, it is unclear to us that {distribution_concern}.",
	},
	ReasonGeneralNotAligned: {
		Tag:     "general_not_aligned",
		Summary: "General non-alignment with SAIF focus",
		Body:    "We appreciate your ambition to {mission}. However, {company_name} appears primarily focused on {actual_focus}, which, while potentially impactful, are not aligned with SAIF's mission. Our focus is specifically centered on companies building products that directly improve safety and security in the presence of threats caused or created by AI systems. Given this focus, {category} sit outside the scope of what we fund.",
	},
}

// Tag returns the catalog identifier, or "" for a value outside the catalog.
func (r Reason) Tag() string {
	if !r.valid() {
		return ""
	}
	return catalog[r].Tag
}

func (r Reason) String() string {
	return r.Tag()
}

// Template returns the catalog entry for r.
func (r Reason) Template() (RejectionTemplate, bool) {
	if !r.valid() {
		return RejectionTemplate{}, false
	}
	return catalog[r], true
}

func (r Reason) valid() bool {
	return r >= 0 && r < reasonCount
}

// ParseReason resolves a tag to its catalog variant.
func ParseReason(tag string) (Reason, bool) {
	for i := range catalog {
		if catalog[i].Tag == tag {
			return Reason(i), true
		}
	}
	return 0, false
}

// Lookup returns the template registered under tag.
func Lookup(tag string) (RejectionTemplate, bool) {
	r, ok := ParseReason(tag)
	if !ok {
		return RejectionTemplate{}, false
	}
	return r.Template()
}

// Entries lists the catalog in declaration order.
func Entries() []Entry {
	out := make([]Entry, 0, len(catalog))
	for i, t := range catalog {
		out = append(out, Entry{Reason: Reason(i), Tag: t.Tag, Summary: t.Summary})
	}
	return out
}

// Len is the number of catalog entries.
func Len() int {
	return int(reasonCount)
}

// ReasonAt maps a 1-based menu index to its reason.
func ReasonAt(index int) (Reason, bool) {
	r := Reason(index - 1)
	return r, r.valid()
}
