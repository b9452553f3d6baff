package ai

// ATSReport is the result of an ATS analysis. Sections are keyed by
// category (contact, experience, education, skills, format).
type ATSReport struct {
	Score                  float64                 `json:"score"`
	Rating                 string                  `json:"rating"`
	Sections               map[string]SectionScore `json:"sections"`
	ForensicChecklist      []CheckItem             `json:"forensicChecklist"`
	KeyImprovements        []string                `json:"keyImprovements"`
	CompanyContextFeedback string                  `json:"companyContextFeedback"`
}

type SectionScore struct {
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
	Label    string  `json:"label"`
	Status   string  `json:"status"`
	Feedback string  `json:"feedback"`
}

type CheckItem struct {
	Category string `json:"category"`
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

// Checklist and section statuses.
const (
	StatusPassed  = "passed"
	StatusWarning = "warning"
	StatusFailed  = "failed"
)

// RatingUnavailable marks the fallback report so callers can tell a real
// analysis from the sentinel.
const RatingUnavailable = "UNAVAILABLE"

// fallbackReport is the fixed mock returned when every attempt to reach the
// model failed. Always a renderable shape, never nil.
func fallbackReport() *ATSReport {
	section := func(label string) SectionScore {
		return SectionScore{Score: 0, MaxScore: 20, Label: label, Status: StatusFailed, Feedback: "Analysis unavailable."}
	}
	return &ATSReport{
		Score:  0,
		Rating: RatingUnavailable,
		Sections: map[string]SectionScore{
			"contact":    section("Contact"),
			"experience": section("Experience"),
			"education":  section("Education"),
			"skills":     section("Skills"),
			"format":     section("Format"),
		},
		ForensicChecklist: []CheckItem{
			{Category: "AI Analysis", Status: StatusFailed, Feedback: "Service unreachable"},
		},
		KeyImprovements: []string{
			"The AI analysis service is currently unavailable.",
			"Wait a few minutes and analyze again, or continue editing manually.",
		},
		CompanyContextFeedback: "Analysis could not be completed. Your resume was not modified.",
	}
}
