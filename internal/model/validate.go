package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

//go:embed schema/ats_report.schema.json
var atsReportSchema []byte

// ValidateResumeMap validates a decoded model response against the resume
// schema before it is allowed anywhere near the document.
func ValidateResumeMap(m map[string]interface{}) error {
	return validateAgainst(resumeSchema, m)
}

// ValidateReportMap validates a decoded ATS analysis against the report schema.
func ValidateReportMap(m map[string]interface{}) error {
	return validateAgainst(atsReportSchema, m)
}

func validateAgainst(schema []byte, m map[string]interface{}) error {
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewGoLoader(m))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
