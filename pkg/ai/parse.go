package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

// Model responses are free text that may wrap JSON in Markdown code fences
// or pad it with prose. Extraction strips the fences, locates the first
// balanced {...} span and decodes it against a schema. A parse failure is a
// fallback-worthy error, never retried.

func stripFences(s string) string {
	i := strings.Index(s, "```")
	if i < 0 {
		return s
	}
	rest := s[i+3:]
	// drop the language tag on the opening fence line
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	}
	if j := strings.Index(rest, "```"); j >= 0 {
		rest = rest[:j]
	}
	return rest
}

func extractJSON(s string) (string, bool) {
	s = stripFences(s)
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inStr := false
	esc := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inStr {
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func decodeObject(text string) (map[string]interface{}, error) {
	raw, ok := extractJSON(text)
	if !ok {
		return nil, fmt.Errorf("ai: no JSON object in model response")
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("ai: malformed JSON in model response: %w", err)
	}
	return m, nil
}

// Aliases some model runs use instead of the document's field names.
var (
	personalAliases   = map[string]string{"name": "fullName", "title": "jobTitle"}
	experienceAliases = map[string]string{"jobTitle": "position", "title": "position", "employer": "company"}
	educationAliases  = map[string]string{"institution": "school", "university": "school", "startYear": "startDate", "endYear": "endDate"}
)

func renameKeys(m map[string]interface{}, aliases map[string]string) {
	for from, to := range aliases {
		v, ok := m[from]
		if !ok {
			continue
		}
		if _, taken := m[to]; !taken {
			m[to] = v
		}
		delete(m, from)
	}
}

func normalizeResumeMap(m map[string]interface{}) {
	if pi, ok := m["personalInfo"].(map[string]interface{}); ok {
		renameKeys(pi, personalAliases)
	}
	renameListKeys(m, "experience", experienceAliases)
	renameListKeys(m, "education", educationAliases)
}

func renameListKeys(m map[string]interface{}, field string, aliases map[string]string) {
	list, ok := m[field].([]interface{})
	if !ok {
		return
	}
	for _, item := range list {
		if obj, ok := item.(map[string]interface{}); ok {
			renameKeys(obj, aliases)
		}
	}
}

// decodeResume turns a model response into a Resume, validating the shape
// before mapping it onto the document model.
func decodeResume(text string) (model.Resume, error) {
	m, err := decodeObject(text)
	if err != nil {
		return model.Resume{}, err
	}
	normalizeResumeMap(m)
	if err := model.ValidateResumeMap(m); err != nil {
		return model.Resume{}, fmt.Errorf("ai: resume shape mismatch: %w", err)
	}
	b, err := json.Marshal(m)
	if err != nil {
		return model.Resume{}, err
	}
	var r model.Resume
	if err := json.Unmarshal(b, &r); err != nil {
		return model.Resume{}, fmt.Errorf("ai: resume decode: %w", err)
	}
	return r.Normalize(), nil
}

// rawReport accepts both observed field spellings for the checklist and the
// improvement list.
type rawReport struct {
	Score                  float64                 `json:"score"`
	Rating                 string                  `json:"rating"`
	Sections               map[string]SectionScore `json:"sections"`
	ForensicChecklist      []rawCheck              `json:"forensicChecklist"`
	Checks                 []rawCheck              `json:"checks"`
	KeyImprovements        []string                `json:"keyImprovements"`
	Suggestions            []string                `json:"suggestions"`
	CompanyContextFeedback string                  `json:"companyContextFeedback"`
}

type rawCheck struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Label    string `json:"label"`
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

func toChecklist(raw []rawCheck) []CheckItem {
	out := make([]CheckItem, 0, len(raw))
	for _, c := range raw {
		cat := c.Category
		if cat == "" {
			cat = c.Label
		}
		out = append(out, CheckItem{Category: cat, Status: strings.ToLower(c.Status), Feedback: c.Feedback})
	}
	return out
}

// normalizeReportMap lowercases section statuses so a capitalized answer
// does not fail the schema's enum. Checklist statuses are handled later by
// toChecklist.
func normalizeReportMap(m map[string]interface{}) {
	secs, ok := m["sections"].(map[string]interface{})
	if !ok {
		return
	}
	for _, v := range secs {
		sec, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		if status, ok := sec["status"].(string); ok {
			sec["status"] = strings.ToLower(status)
		}
	}
}

func decodeReport(text string) (*ATSReport, error) {
	m, err := decodeObject(text)
	if err != nil {
		return nil, err
	}
	normalizeReportMap(m)
	if err := model.ValidateReportMap(m); err != nil {
		return nil, fmt.Errorf("ai: report shape mismatch: %w", err)
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var raw rawReport
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("ai: report decode: %w", err)
	}

	checklist := raw.ForensicChecklist
	if len(checklist) == 0 {
		checklist = raw.Checks
	}
	rep := &ATSReport{
		Score:                  raw.Score,
		Rating:                 raw.Rating,
		Sections:               raw.Sections,
		ForensicChecklist:      toChecklist(checklist),
		KeyImprovements:        raw.KeyImprovements,
		CompanyContextFeedback: raw.CompanyContextFeedback,
	}
	if len(rep.KeyImprovements) == 0 {
		rep.KeyImprovements = raw.Suggestions
	}
	if rep.Sections == nil {
		rep.Sections = map[string]SectionScore{}
	}
	return rep, nil
}
