package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeParsed(t *testing.T) {
	base := NewEmptyResume()
	base.PersonalInfo = PersonalInfo{FullName: "Old Name", Phone: "555-0001", Summary: "old summary"}
	base.Skills = []string{"Existing"}
	base.Languages = []string{"English"}

	parsed := Resume{
		PersonalInfo: PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
		Experience:   []Experience{{Company: "Analytical Engines", Position: "Engineer"}},
		Projects:     []Project{{Name: "Notes"}},
		Skills:       []string{"Mathematics"},
	}

	out := MergeParsed(base, parsed)

	// parsed fields overlay, untouched fields survive
	assert.Equal(t, "Ada Lovelace", out.PersonalInfo.FullName)
	assert.Equal(t, "ada@example.com", out.PersonalInfo.Email)
	assert.Equal(t, "555-0001", out.PersonalInfo.Phone)
	assert.Equal(t, "old summary", out.PersonalInfo.Summary)

	// structured sections are replaced and re-id'd
	assert.Len(t, out.Experience, 1)
	assert.Equal(t, "Analytical Engines", out.Experience[0].Company)
	assert.NotEmpty(t, out.Experience[0].ID)
	assert.Len(t, out.Projects, 1)
	assert.Equal(t, ProjectTypeKey, out.Projects[0].Type)

	// non-empty flat lists replace, empty ones keep the current value
	assert.Equal(t, []string{"Mathematics"}, out.Skills)
	assert.Equal(t, []string{"English"}, out.Languages)
}

func TestMergeParsedEmptyImport(t *testing.T) {
	base := SampleResume()
	out := MergeParsed(base, Resume{})

	assert.Equal(t, base.PersonalInfo, out.PersonalInfo)
	assert.Empty(t, out.Experience)
	assert.Equal(t, base.Skills, out.Skills)
}

func TestMergeOptimized(t *testing.T) {
	base := SampleResume()
	baseIDs := []string{base.Experience[0].ID}

	opt := Resume{
		PersonalInfo: PersonalInfo{Summary: "Results-driven engineer."},
		Experience:   []Experience{{Company: base.Experience[0].Company, Description: "Shipped things, measurably."}},
		Skills:       []string{"Go", "Leadership"},
	}

	out := MergeOptimized(base, opt)

	assert.Equal(t, "Results-driven engineer.", out.PersonalInfo.Summary)
	assert.Equal(t, []string{"Go", "Leadership"}, out.Skills)
	assert.Equal(t, "Shipped things, measurably.", out.Experience[0].Description)
	// ids are kept so the editor's item addressing stays stable
	assert.Equal(t, baseIDs[0], out.Experience[0].ID)
	// sections the optimizer does not touch are untouched
	assert.Equal(t, base.Education, out.Education)
	assert.Equal(t, base.PersonalInfo.FullName, out.PersonalInfo.FullName)
}

func TestMergeOptimizedIdentityOnEmpty(t *testing.T) {
	base := SampleResume()
	out := MergeOptimized(base, Resume{})
	assert.Equal(t, base, out)
}
